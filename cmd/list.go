package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/axoden/axoden-go/pkg/client"
)

var listDomain string

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known methodologies",
		Long: `List the methodology catalog, optionally filtered by domain.

The catalog is rendered locally; the recommendation service picks from a
larger set when answering recommend requests.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listDomain, "domain", "d", "", "Filter by domain")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := client.New(client.Options{SkipRegistration: true})
	if err != nil {
		return err
	}

	methodologies := c.ListMethodologies(listDomain)
	if len(methodologies) == 0 {
		fmt.Printf("No methodologies found for domain %q\n", listDomain)
		return nil
	}

	cyan := color.New(color.FgCyan, color.Bold)
	if listDomain != "" {
		cyan.Printf("Available Methodologies (%s)\n", listDomain)
	} else {
		cyan.Println("Available Methodologies")
	}
	for _, m := range methodologies {
		fmt.Printf("  %-35s %s\n", m.Name, m.Domain)
	}

	return nil
}
