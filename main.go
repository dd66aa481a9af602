package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axoden/axoden-go/cmd"
	"github.com/axoden/axoden-go/pkg/config"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "axoden",
		Short: "AI-powered development guidance",
		Long: `axoden forwards a description of your development challenge to the
AxoDen recommendation service and renders the methodology it suggests,
with implementation steps, reasoning, and alternatives.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewRecommendCmd(),
		cmd.NewAnalyzeCmd(),
		cmd.NewConfigCmd(),
		cmd.NewListCmd(),
		cmd.NewQuickstartCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("axoden version %s\n", config.Version)
		},
	}
}
