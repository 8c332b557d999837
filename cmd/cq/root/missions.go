package root

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"crmquest/internal/engine"
	"crmquest/internal/ui"
)

func newMissionsCmd(a *app) *cobra.Command {
	var search string
	var priority string
	var missionType string
	var sortKey string
	var dir string
	var desc bool

	cmd := &cobra.Command{
		Use:   "missions",
		Short: "List active missions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			q := engine.MissionQuery{
				Search:    search,
				Priority:  engine.ParsePriority(priority),
				Type:      engine.ParseMissionType(missionType),
				Sort:      engine.ParseMissionSortKey(sortKey),
				Direction: direction(dir, desc),
			}
			missions, err := svc.Missions(ctx, q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Missions"))
			if len(missions) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No missions match."))
				return nil
			}
			now := svc.Now()
			for _, m := range missions {
				fmt.Fprintln(out, missionCard(m, now))
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d missions, sorted by %s %s", len(missions), q.Sort, q.Direction)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Match client name or description")
	cmd.Flags().StringVarP(&priority, "priority", "p", engine.FilterAll, "Priority filter (all|low|medium|high)")
	cmd.Flags().StringVarP(&missionType, "type", "t", engine.FilterAll, "Type filter (all|follow_up|check_in|meeting|email|opportunity|call|task)")
	cmd.Flags().StringVar(&sortKey, "sort", string(engine.SortByDueDate), "Sort key (dueDate|priority|xpReward|clientName)")
	cmd.Flags().StringVar(&dir, "dir", string(engine.Ascending), "Sort direction (asc|desc)")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending, same as --dir desc")

	return cmd
}

func missionCard(m engine.Mission, now time.Time) string {
	head := fmt.Sprintf("%s %s · %s %s  %s",
		ui.MissionTypeIcon(m.Type),
		ui.H2.Render(m.ClientName),
		ui.TierBadge(m.ClientTier),
		ui.Muted.Render(ui.MissionTypeLabel(m.Type)),
		ui.PriorityText(m.Priority),
	)
	if engine.IsUrgent(m, now) {
		head += "  " + ui.BadgeUrgent
	}
	lines := []string{
		head,
		m.Description,
		ui.Muted.Render(fmt.Sprintf("due %s · +%d XP · +%d RP · id %s",
			ui.RelTime(m.DueDate, now), m.XPReward, m.RelationshipPoints, m.ID)),
	}
	return ui.Panel.Render(strings.Join(lines, "\n"))
}
