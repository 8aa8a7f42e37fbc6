// Package cli implements the studia command line client.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studia-cl/studia-mobile/internal/app"
)

var (
	flagBaseURL string
	flagTenant  string
	flagStore   string
)

var rootCmd = &cobra.Command{
	Use:   "studia",
	Short: "Client for the StudIA tutoring portal.",
	Long: `studia is a command line client for the StudIA university tutoring
portal. It logs in as a student, browses subjects and tutoring sessions
("ayudantías"), and manages enrollments.

Credentials are stored on the device, sealed at rest, and access tokens are
refreshed automatically when they expire. Command output is a JSON envelope:
{"success": true, "data": ...} or {"success": false, "error": "..."}.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "backend base URL (overrides STUDIA_API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagTenant, "tenant", "", "default tenant schema (overrides STUDIA_TENANT)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "credential store driver: file or sqlite (overrides STUDIA_STORE)")
}

// runWithApp wires the application for a command invocation and tears it
// down afterwards.
func runWithApp(fn func(ctx context.Context, a *app.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := app.LoadConfig()
		if flagBaseURL != "" {
			cfg.BaseURL = flagBaseURL
		}
		if flagTenant != "" {
			cfg.Tenant = flagTenant
		}
		if flagStore != "" {
			cfg.StoreDriver = flagStore
		}

		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		return fn(cmd.Context(), a, args)
	}
}

// printJSON writes the envelope to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
