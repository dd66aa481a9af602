package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/axoden/axoden-go/pkg/credentials"
)

func NewQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Interactive first-run setup",
		Args:  cobra.NoArgs,
		RunE:  runQuickstart,
	}
}

func runQuickstart(cmd *cobra.Command, args []string) error {
	blue := color.New(color.FgBlue, color.Bold)
	blue.Println("Welcome to AxoDen!")
	fmt.Println("Let's get you set up for methodology recommendations.")
	fmt.Println()

	if credentials.Resolve("") == "" {
		if err := promptForAPIKey(cmd.InOrStdin()); err != nil {
			return err
		}
		fmt.Println()
	} else {
		printSuccess("API key already configured")
		fmt.Println()
	}

	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("Example usage:")
	examples := [][2]string{
		{"Debug a problem", `axoden recommend "fix memory leak in production API"`},
		{"Analyze a project", "axoden analyze"},
		{"Machine-readable output", `axoden recommend "optimize database queries" --format json`},
	}
	for _, ex := range examples {
		fmt.Printf("  %s:\n    $ %s\n", ex[0], ex[1])
	}
	fmt.Println()

	cyan.Println("Next steps:")
	fmt.Println("  1. Try the examples above")
	fmt.Println("  2. Verify your setup with: axoden config --test")
	fmt.Println("  3. See all commands with: axoden --help")

	return nil
}

func promptForAPIKey(in io.Reader) error {
	fmt.Println("First, you'll need an AxoDen API key.")
	fmt.Println("Visit https://axoden.com/beta to request access.")
	fmt.Println()
	fmt.Print("Enter your API key (or press Enter to skip): ")

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	key := strings.TrimSpace(line)

	if key == "" {
		fmt.Println("Skipped. Set it later with: axoden config --api-key YOUR_KEY")
		fmt.Printf("Or via environment: export %s='your_key'\n", credentials.EnvVar)
		return nil
	}
	if len(key) < 10 {
		return fmt.Errorf("API key seems too short, check it and try again")
	}

	if err := credentials.Save(key); err != nil {
		printError("Could not save API key securely.")
		fmt.Printf("Set it via environment instead: export %s='your_key'\n", credentials.EnvVar)
		return nil
	}
	printSuccess("API key saved")
	return nil
}
