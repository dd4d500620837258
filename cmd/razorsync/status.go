package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/RazorSync/app/repository"
)

func newStatusCmd(rt *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show how many records are mirrored locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := rt.openDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			ctx := cmd.Context()
			repos := repository.NewFactory(db).GetRepositories()
			counters := []struct {
				name  string
				count func() (int64, error)
			}{
				{"plan items", func() (int64, error) { return repos.PlanItem.Count(ctx) }},
				{"plans", func() (int64, error) { return repos.Plan.Count(ctx) }},
				{"customers", func() (int64, error) { return repos.Customer.Count(ctx) }},
				{"subscriptions", func() (int64, error) { return repos.Subscription.Count(ctx) }},
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Local records")
			fmt.Fprintln(out, strings.Repeat("-", 30))
			for _, c := range counters {
				n, err := c.count()
				if err != nil {
					return fmt.Errorf("count %s: %w", c.name, err)
				}
				fmt.Fprintf(out, "%-16s %d\n", c.name, n)
			}
			return nil
		},
	}
}
