package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studia-cl/studia-mobile/internal/app"
	"github.com/studia-cl/studia-mobile/pkg/studiasdk"
)

var (
	flagTutoringSubject int
	flagTutoringPage    int
	flagTutoringAll     bool
)

var tutoringCmd = &cobra.Command{
	Use:     "tutoring [id]",
	Short:   "List tutoring sessions, or show one by id.",
	Example: "studia tutoring --subject 12 --all",
	Args:    cobra.MaximumNArgs(1),
	RunE: runWithApp(func(ctx context.Context, a *app.App, args []string) error {
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			session, err := a.Client.TutoringSession(ctx, id)
			return printJSON(studiasdk.Wrap(session, err))
		}

		if flagTutoringAll {
			all, err := collectPages(func(page int) (*studiasdk.Page[studiasdk.TutoringSession], error) {
				return a.Client.TutoringSessions(ctx, flagTutoringSubject, page)
			})
			return printJSON(studiasdk.Wrap(all, err))
		}

		page, err := a.Client.TutoringSessions(ctx, flagTutoringSubject, flagTutoringPage)
		return printJSON(studiasdk.Wrap(page, err))
	}),
}

var enrollCmd = &cobra.Command{
	Use:     "enroll <session-id>",
	Short:   "Enroll in a tutoring session.",
	Example: "studia enroll 34",
	Args:    cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, a *app.App, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		enrollment, err := a.Client.Enroll(ctx, id)
		return printJSON(studiasdk.Wrap(enrollment, err))
	}),
}

func init() {
	tutoringCmd.Flags().IntVar(&flagTutoringSubject, "subject", 0, "filter by subject id")
	tutoringCmd.Flags().IntVar(&flagTutoringPage, "page", 1, "page number (1-based)")
	tutoringCmd.Flags().BoolVar(&flagTutoringAll, "all", false, "fetch every page")
	rootCmd.AddCommand(tutoringCmd)
	rootCmd.AddCommand(enrollCmd)
}
