// Package formatter renders recommendations. Every function here is a
// deterministic transform of its input record; no I/O except Display
// writing to stdout.
package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/axoden/axoden-go/pkg/model"
)

// Narrative renders the human/agent-readable report. Section order is
// fixed: title, confidence percentage, description, numbered steps,
// reasoning, alternatives, closing guidance. Reasoning and alternatives
// are omitted when empty.
func Narrative(rec *model.MethodologyRecommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎯 Recommended Methodology: %s\n\n", rec.MethodologyName)
	fmt.Fprintf(&b, "📊 Confidence: %.0f%%\n\n", rec.Confidence*100)
	fmt.Fprintf(&b, "📝 Description: %s\n\n", rec.Description)

	if len(rec.Steps) > 0 {
		b.WriteString("📋 Implementation Steps:\n")
		for i, step := range rec.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}

	if rec.Reasoning != "" {
		fmt.Fprintf(&b, "💡 Reasoning: %s\n\n", rec.Reasoning)
	}

	if len(rec.Alternatives) > 0 {
		b.WriteString("🔄 Alternative Approaches:\n")
		for _, alt := range rec.Alternatives {
			fmt.Fprintf(&b, "- %s\n", alt)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n")
	b.WriteString("💭 To apply this methodology, describe what you want to build using these principles.\n")
	return b.String()
}

// JSON renders the structured representation.
func JSON(rec *model.MethodologyRecommendation) (string, error) {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// YAML renders the structured representation as YAML.
func YAML(rec *model.MethodologyRecommendation) (string, error) {
	out, err := yaml.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Render returns the file content and extension for --save in the given
// format.
func Render(rec *model.MethodologyRecommendation, format string) (content string, ext string, err error) {
	switch format {
	case "json":
		content, err = JSON(rec)
		return content, ".json", err
	case "yaml":
		content, err = YAML(rec)
		return content, ".yaml", err
	default:
		return Narrative(rec), ".md", nil
	}
}

// Display writes the recommendation to stdout in the requested format.
func Display(rec *model.MethodologyRecommendation, format string) error {
	switch format {
	case "json":
		out, err := JSON(rec)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "yaml":
		out, err := YAML(rec)
		if err != nil {
			return err
		}
		fmt.Print(out)
	case "claude":
		fallthrough
	default:
		displayNarrative(rec)
	}
	return nil
}

func displayNarrative(rec *model.MethodologyRecommendation) {
	blue := color.New(color.FgBlue, color.Bold)
	fmt.Println()
	blue.Println("AxoDen Methodology Recommendation")
	fmt.Println(strings.Repeat("─", 60))
	fmt.Print(Narrative(rec))
	fmt.Println(strings.Repeat("─", 60))
}
