package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"crmquest/internal/engine"
	"crmquest/internal/session"
	"crmquest/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a mission or a client",
	}
	cmd.AddCommand(newAddMissionCmd(a), newAddClientCmd(a))
	return cmd
}

func newAddMissionCmd(a *app) *cobra.Command {
	var clientID string
	var missionType string
	var priority string
	var due string
	var xp int
	var rp int

	cmd := &cobra.Command{
		Use:   "mission <description>",
		Short: "Add a mission for a client",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("description is required")
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

			dueDate, err := parseDue(due, svc.Now())
			if err != nil {
				return err
			}
			typ := engine.ParseMissionType(missionType)
			if typ == "" {
				return fmt.Errorf("unknown mission type %q", missionType)
			}

			m, err := svc.AddMission(ctx, session.AddMissionInput{
				ClientID:           clientID,
				Type:               typ,
				Priority:           engine.ParsePriority(priority),
				Description:        strings.Join(args, " "),
				DueDate:            dueDate,
				BaseXP:             xp,
				RelationshipPoints: rp,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Mission added"),
				ui.MissionTypeIcon(m.Type),
				m.ClientName,
				ui.Muted.Render(fmt.Sprintf("(+%d XP, due %s, id %s)", m.XPReward, ui.RelTime(m.DueDate, svc.Now()), m.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&clientID, "client", "c", "", "Client ID")
	cmd.Flags().StringVarP(&missionType, "type", "t", string(engine.MissionTask), "Mission type (follow_up|check_in|meeting|email|opportunity|call|task)")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(engine.PriorityMedium), "Priority (low|medium|high)")
	cmd.Flags().StringVarP(&due, "due", "d", "24h", "Due date: a duration from now (48h, 3d) or a date (2006-01-02, RFC3339)")
	cmd.Flags().IntVar(&xp, "xp", 100, "Base XP, scaled by the client tier")
	cmd.Flags().IntVar(&rp, "rp", 10, "Relationship points awarded on completion")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}

func newAddClientCmd(a *app) *cobra.Command {
	var tier string
	var points int
	var email string
	var phone string
	var industry string
	var meeting string

	cmd := &cobra.Command{
		Use:   "client <name>",
		Short: "Add a client",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("name is required")
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

			var next *time.Time
			if meeting != "" {
				t, err := parseDue(meeting, svc.Now())
				if err != nil {
					return err
				}
				next = &t
			}

			c, err := svc.AddClient(ctx, engine.NewClientInput{
				Name:               strings.Join(args, " "),
				Tier:               engine.ParseTier(tier),
				RelationshipPoints: points,
				Email:              email,
				Phone:              phone,
				Industry:           industry,
				NextMeeting:        next,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Client added"),
				c.Name,
				ui.TierBadge(c.Tier),
				ui.Muted.Render("id "+c.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tier, "tier", "t", "", "Tier (bronze|silver|gold|platinum); derived from points when empty")
	cmd.Flags().IntVar(&points, "rp", 0, "Starting relationship points")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&industry, "industry", "", "Industry")
	cmd.Flags().StringVar(&meeting, "next-meeting", "", "Next meeting: a duration from now or a date")

	return cmd
}

// parseDue accepts a Go duration, a whole number of days ("3d"), a date or
// an RFC3339 timestamp.
func parseDue(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("due date is required")
	}
	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(d), nil
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil {
			return now.AddDate(0, 0, n), nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, now.Location()); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse due date %q", s)
}
