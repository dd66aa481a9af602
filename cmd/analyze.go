package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/axoden/axoden-go/pkg/client"
)

var analyzePath string

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a project and suggest methodologies",
		Long: `Detect the language and framework of a project from its top-level files
and show the baseline methodology set for that kind of work.

Examples:
  # Analyze the current directory
  axoden analyze

  # Analyze another project
  axoden analyze --path ../backend`,
		Args: cobra.NoArgs,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzePath, "path", "p", ".", "Project path to analyze")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Analysis is local; skip the registration probe.
	c, err := client.New(client.Options{SkipRegistration: true})
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(analyzePath)
	if err != nil {
		abs = analyzePath
	}
	fmt.Printf("Analyzing project at: %s\n\n", abs)

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Analyzing project structure..."
	s.Start()
	analysis, err := c.AnalyzeProject(analyzePath)
	s.Stop()
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("Project Context:")
	fmt.Printf("  Language:     %s\n", analysis.ProjectContext.Language)
	fmt.Printf("  Framework:    %s\n", analysis.ProjectContext.Framework)
	fmt.Printf("  Project Type: %s\n", analysis.ProjectContext.ProjectType)
	fmt.Println()

	cyan.Println("Recommended Methodologies:")
	for _, m := range analysis.RecommendedMethodologies {
		fmt.Printf("  • %s\n", m)
	}
	fmt.Printf("\nConfidence: %.0f%%\n", analysis.Confidence*100)

	return nil
}
