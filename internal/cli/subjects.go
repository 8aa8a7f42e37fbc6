package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studia-cl/studia-mobile/internal/app"
	"github.com/studia-cl/studia-mobile/pkg/studiasdk"
)

var (
	flagSubjectsPage int
	flagSubjectsAll  bool
)

var subjectsCmd = &cobra.Command{
	Use:     "subjects [id]",
	Short:   "List subjects, or show one by id.",
	Example: "studia subjects --all",
	Args:    cobra.MaximumNArgs(1),
	RunE: runWithApp(func(ctx context.Context, a *app.App, args []string) error {
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			subject, err := a.Client.Subject(ctx, id)
			return printJSON(studiasdk.Wrap(subject, err))
		}

		if flagSubjectsAll {
			all, err := collectPages(func(page int) (*studiasdk.Page[studiasdk.Subject], error) {
				return a.Client.Subjects(ctx, page)
			})
			return printJSON(studiasdk.Wrap(all, err))
		}

		page, err := a.Client.Subjects(ctx, flagSubjectsPage)
		return printJSON(studiasdk.Wrap(page, err))
	}),
}

// collectPages walks a paginated listing from page 1 until no next page
// remains, concatenating the results in order.
func collectPages[T any](fetch func(page int) (*studiasdk.Page[T], error)) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		p, err := fetch(page)
		if err != nil {
			return nil, err
		}
		all = append(all, p.Results...)
		if !p.HasNext() {
			return all, nil
		}
	}
}

func init() {
	subjectsCmd.Flags().IntVar(&flagSubjectsPage, "page", 1, "page number (1-based)")
	subjectsCmd.Flags().BoolVar(&flagSubjectsAll, "all", false, "fetch every page")
	rootCmd.AddCommand(subjectsCmd)
}
