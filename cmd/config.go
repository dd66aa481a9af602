package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/axoden/axoden-go/pkg/client"
	"github.com/axoden/axoden-go/pkg/config"
	"github.com/axoden/axoden-go/pkg/credentials"
)

var (
	configAPIKey  string
	configBaseURL string
	configShow    bool
	configTest    bool
	configReset   bool
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configure client settings",
		Long: `Configure the AxoDen client.

Examples:
  # Store an API key in the OS keychain
  axoden config --api-key YOUR_API_KEY

  # Point the client at a different deployment
  axoden config --base-url https://axoden.internal.example.com

  # Inspect and verify the current setup
  axoden config --show
  axoden config --test`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}

	cmd.Flags().StringVar(&configAPIKey, "api-key", "", "Set the API key (or use the AXODEN_API_KEY env var)")
	cmd.Flags().StringVar(&configBaseURL, "base-url", "", "Set the API base URL")
	cmd.Flags().BoolVar(&configShow, "show", false, "Show the current configuration")
	cmd.Flags().BoolVar(&configTest, "test", false, "Test the API connection")
	cmd.Flags().BoolVar(&configReset, "reset", false, "Reset configuration and stored credentials")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if configShow {
		showConfig(cfg)
		return nil
	}

	if configReset {
		if err := cfg.Reset(); err != nil {
			return err
		}
		if err := credentials.Delete(); err != nil {
			fmt.Printf("Warning: %v\n", err)
		}
		printSuccess("Configuration reset to defaults")
		return nil
	}

	if configAPIKey != "" {
		if err := saveAPIKey(configAPIKey); err != nil {
			return err
		}
	}

	if configBaseURL != "" {
		cfg.BaseURL = configBaseURL
		if err := cfg.Save(); err != nil {
			return err
		}
		printSuccess("Base URL updated to: " + configBaseURL)
	}

	if configTest {
		return testConnection(cfg)
	}

	if configAPIKey == "" && configBaseURL == "" {
		return cmd.Help()
	}
	return nil
}

func showConfig(cfg *config.Config) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("AxoDen Configuration")

	fmt.Printf("  API Key:        %s\n", maskedAPIKey())
	fmt.Printf("  Base URL:       %s\n", cfg.BaseURL)
	fmt.Printf("  Agent ID:       %s\n", cfg.AgentID)
	fmt.Printf("  Default Format: %s\n", cfg.DefaultFormat)
	fmt.Printf("  Config File:    %s\n", cfg.Path())
}

func maskedAPIKey() string {
	key := credentials.Resolve("")
	if key == "" {
		return "Not set"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 20) + "..." + key[len(key)-4:]
}

func saveAPIKey(key string) error {
	// Catch pasted paths and unexpanded env references before they end up
	// in the keychain.
	if strings.HasPrefix(key, "$") || strings.HasPrefix(key, "~") || strings.Contains(key, "/") {
		printError("This looks like a file path or env var reference, not an API key.")
		fmt.Println("If you meant to use an environment variable, set it directly:")
		fmt.Printf("  export %s='your_actual_key'\n", credentials.EnvVar)
		return nil
	}
	if len(key) < 10 {
		return fmt.Errorf("API key seems too short, check it and try again")
	}

	if err := credentials.Save(key); err != nil {
		printError("Could not save API key securely.")
		fmt.Println("Set it via environment variable instead:")
		fmt.Printf("  export %s='your_actual_key'\n", credentials.EnvVar)
		return nil
	}
	printSuccess(fmt.Sprintf("API key saved securely (%d characters)", len(key)))
	return nil
}

func testConnection(cfg *config.Config) error {
	c, err := client.New(client.Options{Config: cfg, SkipRegistration: true})
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Connecting to the AxoDen API..."
	s.Start()
	status, err := c.Health()
	s.Stop()
	if err != nil {
		return fmt.Errorf("API connection failed: %w", err)
	}

	printSuccess("API connection successful")
	fmt.Printf("Status: %s\n", status.Status)
	return nil
}
