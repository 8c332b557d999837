package ui

import (
	"strings"
	"testing"
	"time"

	"crmquest/internal/engine"
)

func TestProgressBar(t *testing.T) {
	cases := []struct {
		value, total, width int
		want                string
	}{
		{0, 100, 10, "[----------]"},
		{50, 100, 10, "[#####-----]"},
		{100, 100, 10, "[##########]"},
		{150, 100, 10, "[##########]"},
		{-5, 100, 4, "[----]"},
		{1, 0, 4, "[####]"},
		{1, 2, 1, "[#--]"},
	}
	for _, c := range cases {
		if got := ProgressBar(c.value, c.total, c.width); got != c.want {
			t.Fatalf("ProgressBar(%d,%d,%d)=%q want %q", c.value, c.total, c.width, got, c.want)
		}
	}
}

func TestXPProgressShowsPercentDenominator(t *testing.T) {
	cases := []struct {
		p    engine.UserProgress
		want []string
	}{
		{engine.UserProgress{Level: 3, XPProgress: 250, XPToNextLevel: 500}, []string{"[----------]", "250/3,000", "(8%)"}},
		{engine.UserProgress{Level: 2, XPProgress: 1000, XPToNextLevel: 2000}, []string{"[#####-----]", "1,000/2,000", "(50%)"}},
	}
	for _, c := range cases {
		got := XPProgress(c.p, 10)
		for _, w := range c.want {
			if !strings.Contains(got, w) {
				t.Fatalf("XPProgress(%+v)=%q missing %q", c.p, got, w)
			}
		}
	}
}

func TestNumber(t *testing.T) {
	if got := Number(1250); got != "1,250" {
		t.Fatalf("Number(1250)=%q", got)
	}
	if got := Number(80); got != "80" {
		t.Fatalf("Number(80)=%q", got)
	}
}

func TestRelTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if got := RelTime(now.Add(-3*24*time.Hour), now); got != "3 days ago" {
		t.Fatalf("RelTime past=%q", got)
	}
	if got := RelTime(now.Add(2*24*time.Hour), now); got != "2 days from now" {
		t.Fatalf("RelTime future=%q", got)
	}
	if got := MaybeRelTime(nil, now); !strings.Contains(got, "not scheduled") {
		t.Fatalf("MaybeRelTime(nil)=%q", got)
	}
}

func TestLabelsAndBadges(t *testing.T) {
	if got := MissionTypeLabel(engine.MissionFollowUp); got != "follow up" {
		t.Fatalf("MissionTypeLabel=%q", got)
	}
	for _, tier := range engine.Tiers {
		if !strings.Contains(TierBadge(tier), strings.ToUpper(string(tier))) {
			t.Fatalf("TierBadge(%s) missing name", tier)
		}
	}
	for _, p := range engine.Priorities {
		if !strings.Contains(PriorityText(p), string(p)) {
			t.Fatalf("PriorityText(%s) missing name", p)
		}
	}
	for _, mt := range engine.MissionTypes {
		if MissionTypeIcon(mt) == "" {
			t.Fatalf("MissionTypeIcon(%s) empty", mt)
		}
	}
}
