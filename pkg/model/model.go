package model

import "time"

// ProjectContext describes the caller's working project. It is detected
// fresh from the working directory (or supplied by the caller) for each
// request and never persisted.
type ProjectContext struct {
	Language    string `json:"language" yaml:"language"`
	Framework   string `json:"framework" yaml:"framework"`
	ProjectType string `json:"project_type" yaml:"project_type"`
}

// DefaultProjectContext returns an undetected context.
func DefaultProjectContext() ProjectContext {
	return ProjectContext{
		Language:    "unknown",
		Framework:   "unknown",
		ProjectType: "general",
	}
}

// MethodologyRequest is the outbound recommendation payload.
type MethodologyRequest struct {
	ProblemDescription string            `json:"problem_description"`
	ProjectContext     ProjectContext    `json:"project_context"`
	Constraints        map[string]string `json:"constraints"`
}

// CognitiveProfile biases methodology matching on the service side.
type CognitiveProfile struct {
	Processing  float64 `json:"processing"`
	Focus       float64 `json:"focus"`
	Flexibility float64 `json:"flexibility"`
	Abstraction float64 `json:"abstraction"`
}

// AgentProfile is the agent registration payload.
type AgentProfile struct {
	AgentID          string           `json:"agent_id"`
	Name             string           `json:"name"`
	CognitiveProfile CognitiveProfile `json:"cognitive_profile"`
	Capabilities     []string         `json:"capabilities"`
}

// MethodologyRecommendation is the parsed recommendation. Confidence is
// always set (0.5 when the service omits it); Steps and Alternatives are
// always non-nil. Immutable after construction.
type MethodologyRecommendation struct {
	MethodologyName string    `json:"methodology" yaml:"methodology"`
	Description     string    `json:"description" yaml:"description"`
	Confidence      float64   `json:"confidence" yaml:"confidence"`
	Steps           []string  `json:"steps" yaml:"steps"`
	Reasoning       string    `json:"reasoning" yaml:"reasoning"`
	Alternatives    []string  `json:"alternatives" yaml:"alternatives"`
	Timestamp       time.Time `json:"timestamp" yaml:"timestamp"`
}
