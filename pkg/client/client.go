// Package client talks to the AxoDen recommendation service. All
// intelligence lives on the service side; this client composes requests,
// parses responses, and fails loudly when no usable recommendation comes
// back. It never synthesizes a recommendation locally.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/axoden/axoden-go/pkg/config"
	"github.com/axoden/axoden-go/pkg/credentials"
	"github.com/axoden/axoden-go/pkg/detect"
	"github.com/axoden/axoden-go/pkg/model"
)

// requestTimeout bounds every outbound call so the CLI never hangs.
const requestTimeout = 8 * time.Second

// Client is a single-invocation API client. Construct with New; a Client
// always carries a resolved configuration and a credential.
type Client struct {
	cfg    *config.Config
	apiKey string
	http   *http.Client
	warn   io.Writer
}

// Options configures client construction. All fields are optional except
// that a credential must be resolvable from somewhere.
type Options struct {
	// APIKey overrides the environment and the OS keychain.
	APIKey string
	// BaseURL overrides the resolved base URL.
	BaseURL string
	// Config supplies a pre-resolved configuration instead of loading one.
	Config *config.Config
	// SkipRegistration disables the agent registration probe, for
	// operations that make no recommendation calls.
	SkipRegistration bool
}

// New resolves configuration and credentials and returns a ready client.
// A missing credential is ErrNoAPIKey, raised before any network traffic.
// The registration probe runs here and is never fatal.
func New(opts Options) (*Client, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.Load(config.WithBaseURL(opts.BaseURL))
		if err != nil {
			return nil, err
		}
	}

	key := credentials.Resolve(opts.APIKey)
	if key == "" {
		return nil, ErrNoAPIKey
	}

	c := &Client{
		cfg:    cfg,
		apiKey: key,
		http:   &http.Client{Timeout: requestTimeout},
		warn:   os.Stderr,
	}

	if !opts.SkipRegistration {
		c.ensureRegistered()
	}
	return c, nil
}

// Config returns the resolved configuration backing this client.
func (c *Client) Config() *config.Config {
	return c.cfg
}

// Recommend asks the service for a methodology matching the problem. A
// nil ctx triggers auto-detection against the current directory. Any
// outcome other than an OK response with recognizable methodology data is
// a *MethodologyNotFoundError.
func (c *Client) Recommend(problem string, ctx *model.ProjectContext, format string) (*model.MethodologyRecommendation, error) {
	if strings.TrimSpace(problem) == "" {
		return nil, fmt.Errorf("problem description must not be empty")
	}

	if ctx == nil {
		detected, err := detect.ProjectContext(".")
		if err != nil {
			return nil, err
		}
		ctx = &detected
	}

	request := model.MethodologyRequest{
		ProblemDescription: problem,
		ProjectContext:     *ctx,
		Constraints: map[string]string{
			"format":     format,
			"agent_type": "integration-agent",
		},
	}

	path := "/api/v1/assignments/request?agent_id=" + url.QueryEscape(c.cfg.AgentID)
	resp, err := c.do(http.MethodPost, path, request)
	if err != nil {
		return nil, &MethodologyNotFoundError{Problem: problem, Detail: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &MethodologyNotFoundError{Problem: problem, Detail: err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &MethodologyNotFoundError{
			Problem: problem,
			Status:  resp.StatusCode,
			Detail:  strings.TrimSpace(string(raw)),
		}
	}

	return parseRecommendation(raw, problem)
}

// parseRecommendation maps the untyped upstream payload onto a typed
// record with explicit defaults for every optional field. An OK response
// with no recognizable methodology fields is a failure, not an empty
// recommendation.
func parseRecommendation(raw []byte, problem string) (*model.MethodologyRecommendation, error) {
	var payload struct {
		Methodology  string   `json:"methodology"`
		Description  string   `json:"description"`
		Confidence   *float64 `json:"confidence"`
		Steps        []string `json:"steps"`
		Reasoning    string   `json:"reasoning"`
		Alternatives []string `json:"alternatives"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &MethodologyNotFoundError{
			Problem: problem,
			Detail:  fmt.Sprintf("unparseable response body: %v", err),
		}
	}

	if payload.Methodology == "" && len(payload.Steps) == 0 {
		return nil, &MethodologyNotFoundError{
			Problem: problem,
			Detail:  "API returned success but no methodology data; the service may be missing its knowledge base",
		}
	}

	rec := &model.MethodologyRecommendation{
		MethodologyName: payload.Methodology,
		Description:     payload.Description,
		Confidence:      0.5,
		Steps:           payload.Steps,
		Reasoning:       payload.Reasoning,
		Alternatives:    payload.Alternatives,
		Timestamp:       time.Now(),
	}
	if payload.Confidence != nil {
		rec.Confidence = *payload.Confidence
	}
	if rec.MethodologyName == "" {
		rec.MethodologyName = "Unknown"
	}
	if rec.Steps == nil {
		rec.Steps = []string{}
	}
	if rec.Alternatives == nil {
		rec.Alternatives = []string{}
	}
	return rec, nil
}

// HealthStatus is the /health response body.
type HealthStatus struct {
	Status string `json:"status"`
}

// Health checks service liveness and that the credential is accepted.
func (c *Client) Health() (*HealthStatus, error) {
	resp, err := c.do(http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("health check failed (HTTP %d)", resp.StatusCode)
	}

	var status HealthStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	if status.Status == "" {
		status.Status = "unknown"
	}
	return &status, nil
}

// MethodologyInfo is a catalog entry for the list command.
type MethodologyInfo struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// catalog mirrors the service's built-in methodology set. The API exposes
// no listing endpoint, so list renders this fixed catalog locally.
var catalog = []MethodologyInfo{
	{Name: "Test-Driven Development", Domain: "software_development"},
	{Name: "Root Cause Analysis", Domain: "debugging"},
	{Name: "Design Thinking", Domain: "innovation"},
}

// ListMethodologies returns the known methodologies, optionally filtered
// by domain.
func (c *Client) ListMethodologies(domain string) []MethodologyInfo {
	if domain == "" {
		return append([]MethodologyInfo(nil), catalog...)
	}
	var out []MethodologyInfo
	for _, m := range catalog {
		if m.Domain == domain {
			out = append(out, m)
		}
	}
	return out
}

// ProjectAnalysis is the result of a local project analysis.
type ProjectAnalysis struct {
	ProjectContext           model.ProjectContext `json:"project_context"`
	RecommendedMethodologies []string             `json:"recommended_methodologies"`
	Confidence               float64              `json:"confidence"`
}

// AnalyzeProject detects the project context at path and pairs it with
// the baseline methodology set for that kind of work.
func (c *Client) AnalyzeProject(path string) (*ProjectAnalysis, error) {
	ctx, err := detect.ProjectContext(path)
	if err != nil {
		return nil, err
	}
	return &ProjectAnalysis{
		ProjectContext: ctx,
		RecommendedMethodologies: []string{
			"Code Review Process",
			"Continuous Integration",
			"Documentation-Driven Development",
		},
		Confidence: 0.8,
	}, nil
}

// ensureRegistered probes for this agent and registers it when the
// service has never seen it. Failures here never block the primary
// operation.
func (c *Client) ensureRegistered() {
	resp, err := c.do(http.MethodGet, "/api/v1/agents/"+url.PathEscape(c.cfg.AgentID), nil)
	if err != nil {
		fmt.Fprintf(c.warn, "Warning: could not verify agent registration: %v\n", err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		c.register()
	}
}

func (c *Client) register() {
	user := os.Getenv("USER")
	if user == "" {
		user = "User"
	}
	profile := model.AgentProfile{
		AgentID: c.cfg.AgentID,
		Name:    fmt.Sprintf("AxoDen Go Client (%s)", user),
		CognitiveProfile: model.CognitiveProfile{
			Processing:  0.7,
			Focus:       0.8,
			Flexibility: 0.6,
			Abstraction: 0.7,
		},
		Capabilities: []string{
			"methodology_application",
			"development",
			"debugging",
			"analysis",
		},
	}

	resp, err := c.do(http.MethodPost, "/api/v1/agents/register", profile)
	if err != nil {
		fmt.Fprintf(c.warn, "Warning: agent registration failed: %v\n", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(c.warn, "Warning: agent registration failed: %s\n", strings.TrimSpace(string(body)))
	}
}

// do issues a single API request with the standard headers.
func (c *Client) do(method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "axoden-go/"+config.Version)

	return c.http.Do(req)
}
