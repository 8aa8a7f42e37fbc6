package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studia-cl/studia-mobile/internal/app"
	"github.com/studia-cl/studia-mobile/pkg/studiasdk"
)

var flagEnrollmentsPage int

var enrollmentsCmd = &cobra.Command{
	Use:   "enrollments",
	Short: "List your enrollments.",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, a *app.App, _ []string) error {
		page, err := a.Client.Enrollments(ctx, flagEnrollmentsPage)
		return printJSON(studiasdk.Wrap(page, err))
	}),
}

var cancelCmd = &cobra.Command{
	Use:     "cancel <enrollment-id>",
	Short:   "Cancel an active enrollment.",
	Example: "studia cancel 7",
	Args:    cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, a *app.App, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		err = a.Client.CancelEnrollment(ctx, id)
		return printJSON(studiasdk.Wrap(id, err))
	}),
}

func init() {
	enrollmentsCmd.Flags().IntVar(&flagEnrollmentsPage, "page", 1, "page number (1-based)")
	rootCmd.AddCommand(enrollmentsCmd)
	rootCmd.AddCommand(cancelCmd)
}
