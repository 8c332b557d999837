package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"crmquest/internal/engine"
	"crmquest/internal/ui"
)

func newStatusCmd(a *app) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, progress and achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Progress(ctx)
			if err != nil {
				return err
			}
			missions, err := svc.Missions(ctx, engine.MissionQuery{})
			if err != nil {
				return err
			}
			now := svc.Now()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Progress"))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", ui.Number(p.XP)))
			fmt.Fprintln(out, ui.LabelValue("Level progress", ui.XPProgress(p, 20)))
			fmt.Fprintln(out, ui.LabelValue("Missions", fmt.Sprintf("%d/%d completed %s",
				p.CompletedMissions, p.TotalMissions, ui.Muted.Render(fmt.Sprintf("(%d%%)", engine.CompletionPercent(p))))))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d days", p.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Relationship points", ui.Number(p.RelationshipPoints)))
			today, err := svc.CompletedToday(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue("Completed today", today))

			next := engine.NextMissionDue(missions)
			if next == nil {
				fmt.Fprintln(out, ui.LabelValue("Next mission due", ui.Muted.Render("nothing scheduled")))
			} else {
				urgent := 0
				for _, m := range missions {
					if engine.IsUrgent(m, now) {
						urgent++
					}
				}
				line := ui.IconClock + " " + ui.RelTime(*next, now)
				if urgent > 0 {
					line += " " + ui.Warn.Render(fmt.Sprintf("%s %d urgent", ui.IconWarn, urgent))
				}
				fmt.Fprintln(out, ui.LabelValue("Next mission due", line))
			}
			fmt.Fprintln(out, "")

			achievements, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, engine.CountEarned(achievements), len(achievements))))
			for _, ach := range achievements {
				if ach.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", ach.Icon, ui.Good.Render(ach.Name), ui.Muted.Render(ach.Description))
				} else {
					fmt.Fprintf(out, "- 🔒 %s %s\n", ui.Muted.Render(ach.Name), ui.Muted.Render(ach.Description))
				}
			}

			if recent <= 0 {
				return nil
			}
			log, err := svc.CompletionRepo().ListRecent(ctx, recent)
			if err != nil {
				return err
			}
			if len(log) == 0 {
				return nil
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconBolt+" Recent completions"))
			for _, c := range log {
				line := fmt.Sprintf("- %s mission %s +%d XP +%d RP", ui.RelTime(c.CompletedAt, now), c.MissionID, c.XPAwarded, c.RelationshipPoints)
				if c.LevelUp {
					line += " " + ui.BadgeLevelUp
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 5, "Number of recent completions to show (0 hides them)")

	return cmd
}
