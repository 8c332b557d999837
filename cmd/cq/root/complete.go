package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"crmquest/internal/ui"
)

func newCompleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "complete <mission-id>",
		Aliases: []string{"do"},
		Short:   "Complete a mission and collect its XP",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("mission id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id := strings.TrimSpace(args[0])
			res, err := svc.Complete(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.Found {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s no active mission %q", ui.IconInfo, id)))
				return nil
			}

			if res.LevelUp {
				fmt.Fprintln(out, ui.BadgeLevelUp+" "+ui.Gold.Render(res.Message))
			} else {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" "+res.Message))
			}
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Muted.Render(ui.MissionTypeIcon(res.Mission.Type)),
				res.Mission.ClientName,
				ui.Muted.Render(fmt.Sprintf("· %s (+%d RP)", res.Mission.Description, res.Mission.RelationshipPoints)))
			p := res.Progress
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("Level progress", ui.XPProgress(p, 20)))
			return nil
		},
	}

	return cmd
}
