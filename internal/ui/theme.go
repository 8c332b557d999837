package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"crmquest/internal/engine"
)

// crmquest theme (CLI + TUI).

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconClock   = "⏰"
	IconPeople  = "👥"
	IconTarget  = "🎯"
)

var (
	cPrimary  = lipgloss.Color("63")  // blue
	cAccent   = lipgloss.Color("205") // magenta
	cGood     = lipgloss.Color("42")  // green
	cWarn     = lipgloss.Color("214") // orange
	cBad      = lipgloss.Color("196") // red
	cMuted    = lipgloss.Color("244") // gray
	cGold     = lipgloss.Color("220")
	cSilver   = lipgloss.Color("250")
	cBronze   = lipgloss.Color("173")
	cPlatinum = lipgloss.Color("147")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	ActiveTab   = lipgloss.NewStyle().Bold(true).Foreground(cGold).Underline(true)
	InactiveTab = lipgloss.NewStyle().Foreground(cMuted)
	Banner      = lipgloss.NewStyle().Bold(true).Foreground(cGold).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cGold).Padding(0, 1)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeUrgent  = lipgloss.NewStyle().Bold(true).Foreground(cBad).Render("URGENT")
)

var tierStyles = map[engine.Tier]lipgloss.Style{
	engine.TierBronze:   lipgloss.NewStyle().Bold(true).Foreground(cBronze),
	engine.TierSilver:   lipgloss.NewStyle().Bold(true).Foreground(cSilver),
	engine.TierGold:     lipgloss.NewStyle().Bold(true).Foreground(cGold),
	engine.TierPlatinum: lipgloss.NewStyle().Bold(true).Foreground(cPlatinum),
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func TierBadge(t engine.Tier) string {
	style, ok := tierStyles[t]
	if !ok {
		return Muted.Render(string(t))
	}
	return style.Render(strings.ToUpper(string(t)))
}

func PriorityText(p engine.Priority) string {
	switch p {
	case engine.PriorityHigh:
		return Bad.Render("high")
	case engine.PriorityMedium:
		return Warn.Render("medium")
	case engine.PriorityLow:
		return Good.Render("low")
	default:
		return Muted.Render(string(p))
	}
}

func MissionTypeIcon(t engine.MissionType) string {
	switch t {
	case engine.MissionFollowUp:
		return "🔄"
	case engine.MissionCheckIn:
		return "👋"
	case engine.MissionMeeting:
		return "📅"
	case engine.MissionEmail:
		return "✉️"
	case engine.MissionOpportunity:
		return "💰"
	case engine.MissionCall:
		return "📞"
	default:
		return "📌"
	}
}

// MissionTypeLabel turns follow_up into "follow up".
func MissionTypeLabel(t engine.MissionType) string {
	return strings.ReplaceAll(string(t), "_", " ")
}

// RelTime renders t relative to now ("3 days ago", "2 days from now").
func RelTime(t, now time.Time) string {
	if t.IsZero() {
		return Muted.Render("never")
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// MaybeRelTime is RelTime for optional times.
func MaybeRelTime(t *time.Time, now time.Time) string {
	if t == nil {
		return Muted.Render("not scheduled")
	}
	return RelTime(*t, now)
}

// Number formats n with thousands separators.
func Number(n int) string {
	return humanize.Comma(int64(n))
}

// ProgressBar renders value/total as a bar of the given width.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// PercentBar renders a 0..100 percentage.
func PercentBar(pct int, width int) string {
	return ProgressBar(pct, 100, width)
}

// XPProgress renders the level curve: bar, XP in the level against the
// level threshold, and the percentage of that threshold.
func XPProgress(p engine.UserProgress, width int) string {
	pct := engine.XPProgressPercent(p)
	return fmt.Sprintf("%s %s/%s %s", PercentBar(pct, width),
		Number(p.XPProgress), Number(engine.XPThresholdForLevel(p.Level)), Muted.Render(fmt.Sprintf("(%d%%)", pct)))
}
