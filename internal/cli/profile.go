package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/studia-cl/studia-mobile/internal/app"
	"github.com/studia-cl/studia-mobile/pkg/credstore"
	"github.com/studia-cl/studia-mobile/pkg/studiasdk"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the authenticated student's profile.",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, a *app.App, _ []string) error {
		user, err := a.Client.Profile(ctx)
		return printJSON(studiasdk.Wrap(user, err))
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the local session state.",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, a *app.App, _ []string) error {
		a.Session.Start(ctx)
		snap := a.Session.Snapshot()

		out := struct {
			State        string          `json:"state"`
			User         *studiasdk.User `json:"user,omitempty"`
			TokenExpires string          `json:"token_expires,omitempty"`
			Tenant       string          `json:"tenant"`
		}{
			State:  snap.State.String(),
			User:   snap.User,
			Tenant: a.Client.Tenant(ctx),
		}

		if token, err := a.Store.Get(ctx, credstore.KeyAccessToken); err == nil {
			if exp, ok := studiasdk.TokenExpiry(token); ok {
				out.TokenExpires = exp.String()
			}
		}

		return printJSON(studiasdk.Ok(out))
	}),
}

func init() {
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(statusCmd)
}
