package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/studia-cl/studia-mobile/internal/app"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear stored credentials.",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, a *app.App, _ []string) error {
		return printJSON(a.Session.Logout(ctx))
	}),
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
