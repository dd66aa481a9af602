package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/axoden/axoden-go/pkg/client"
	"github.com/axoden/axoden-go/pkg/formatter"
	"github.com/axoden/axoden-go/pkg/model"
)

var (
	recommendContext string
	recommendFormat  string
	recommendSave    bool
)

func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend PROBLEM",
		Short: "Get a methodology recommendation for a specific problem",
		Long: `Ask the AxoDen service which problem-solving methodology fits your
development challenge.

Examples:
  # Get a recommendation for a debugging task
  axoden recommend "fix memory leak in production API"

  # Override the auto-detected project context
  axoden recommend "fix flaky tests" --context '{"language": "python"}'

  # Machine-readable output, saved to a file
  axoden recommend "optimize database queries" --format json --save`,
		Args: cobra.ExactArgs(1),
		RunE: runRecommend,
	}

	cmd.Flags().StringVarP(&recommendContext, "context", "c", "", "Project context as JSON (overrides auto-detection)")
	cmd.Flags().StringVarP(&recommendFormat, "format", "f", "claude", "Output format (claude, json, yaml)")
	cmd.Flags().BoolVarP(&recommendSave, "save", "s", false, "Save the recommendation to a file")

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	problem := args[0]

	// Malformed context is rejected before any network traffic.
	var ctx *model.ProjectContext
	if recommendContext != "" {
		parsed := model.DefaultProjectContext()
		if err := json.Unmarshal([]byte(recommendContext), &parsed); err != nil {
			return fmt.Errorf("invalid JSON in --context: %w", err)
		}
		ctx = &parsed
	}

	c, err := client.New(client.Options{})
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Consulting the methodology database..."
	s.Start()
	rec, err := c.Recommend(problem, ctx, recommendFormat)
	s.Stop()
	if err != nil {
		return err
	}

	if err := formatter.Display(rec, recommendFormat); err != nil {
		return err
	}

	if recommendSave {
		content, ext, err := formatter.Render(rec, recommendFormat)
		if err != nil {
			return err
		}
		filename := fmt.Sprintf("axoden_recommendation_%s%s", rec.Timestamp.Format("20060102_150405"), ext)
		if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
			return fmt.Errorf("save recommendation: %w", err)
		}
		printSuccess("Saved to " + filename)
	}

	return nil
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printError(msg string) {
	red := color.New(color.FgRed)
	red.Printf("✗ %s\n", msg)
}
