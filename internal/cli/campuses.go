package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/studia-cl/studia-mobile/internal/app"
	"github.com/studia-cl/studia-mobile/pkg/studiasdk"
)

var campusesCmd = &cobra.Command{
	Use:   "campuses",
	Short: "List university campuses.",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, a *app.App, _ []string) error {
		page, err := a.Client.Campuses(ctx)
		return printJSON(studiasdk.Wrap(page, err))
	}),
}

func init() {
	rootCmd.AddCommand(campusesCmd)
}
