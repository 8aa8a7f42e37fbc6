package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/studia-cl/studia-mobile/internal/app"
	"github.com/studia-cl/studia-mobile/pkg/studiasdk"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Show the active tenant schema.",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, a *app.App, _ []string) error {
		return printJSON(studiasdk.Ok(a.Client.Tenant(ctx)))
	}),
}

var tenantSetCmd = &cobra.Command{
	Use:     "set <schema>",
	Short:   "Persist the tenant schema used on every request.",
	Example: "studia tenant set inacap",
	Args:    cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, a *app.App, args []string) error {
		err := a.Client.SetTenant(ctx, args[0])
		return printJSON(studiasdk.Wrap(args[0], err))
	}),
}

func init() {
	tenantCmd.AddCommand(tenantSetCmd)
	rootCmd.AddCommand(tenantCmd)
}
