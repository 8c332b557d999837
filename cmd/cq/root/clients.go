package root

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"crmquest/internal/engine"
	"crmquest/internal/ui"
)

func newClientsCmd(a *app) *cobra.Command {
	var search string
	var tier string
	var sortKey string
	var dir string
	var desc bool

	cmd := &cobra.Command{
		Use:     "clients",
		Aliases: []string{"roster"},
		Short:   "List clients",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			q := engine.ClientQuery{
				Search:    search,
				Tier:      engine.ParseTier(tier),
				Sort:      engine.ParseClientSortKey(sortKey),
				Direction: direction(dir, desc),
			}
			clients, err := svc.Roster(ctx, q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPeople, "Clients"))
			if len(clients) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No clients match."))
				return nil
			}

			now := svc.Now()
			rows := make([][]string, 0, len(clients))
			for _, c := range clients {
				rows = append(rows, []string{
					c.ID,
					c.Name,
					ui.TierBadge(c.Tier),
					ui.Number(c.RelationshipPoints),
					ui.RelTime(c.LastContact, now),
					ui.MaybeRelTime(c.NextMeeting, now),
					c.Industry,
				})
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(ui.Muted).
				Headers("ID", "NAME", "TIER", "POINTS", "LAST CONTACT", "NEXT MEETING", "INDUSTRY").
				Rows(rows...)
			fmt.Fprintln(out, t.Render())
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d clients, sorted by %s %s", len(clients), q.Sort, q.Direction)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Match name, email or industry")
	cmd.Flags().StringVarP(&tier, "tier", "t", engine.FilterAll, "Tier filter (all|bronze|silver|gold|platinum)")
	cmd.Flags().StringVar(&sortKey, "sort", string(engine.SortByName), "Sort key (name|tier|lastContact|nextMeeting|relationshipPoints)")
	cmd.Flags().StringVar(&dir, "dir", string(engine.Ascending), "Sort direction (asc|desc)")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending, same as --dir desc")

	return cmd
}

// direction reads --dir; --desc wins when set.
func direction(dir string, desc bool) engine.SortDirection {
	if desc {
		return engine.Descending
	}
	return engine.ParseDirection(dir)
}
