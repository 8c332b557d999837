package root

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "cq.db"),
	}
	cmd.SetArgs(append(base, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seeded(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := run(t, dir, "db", "seed"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return dir
}

func TestMissionsListsSeededMissions(t *testing.T) {
	dir := seeded(t)
	out, err := run(t, dir, "missions")
	if err != nil {
		t.Fatalf("missions: %v", err)
	}
	for _, want := range []string{"Acme Corporation", "Globex Industries", "Cyberdyne Systems", "3 missions, sorted by dueDate asc"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missions output missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, dir, "missions", "--priority", "high", "--sort", "bogus")
	if err != nil {
		t.Fatalf("missions filtered: %v", err)
	}
	if !strings.Contains(out, "1 missions, sorted by clientName asc") {
		t.Fatalf("unknown sort key should fall back to clientName:\n%s", out)
	}
}

func TestClientsFilterByTier(t *testing.T) {
	dir := seeded(t)
	out, err := run(t, dir, "clients", "--tier", "gold")
	if err != nil {
		t.Fatalf("clients: %v", err)
	}
	if !strings.Contains(out, "Acme Corporation") || strings.Contains(out, "Globex") {
		t.Fatalf("gold filter output:\n%s", out)
	}
}

func TestSortDirectionFlags(t *testing.T) {
	dir := seeded(t)
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"clients", "--dir", "desc"}, "4 clients, sorted by name desc"},
		{[]string{"clients", "--dir", "DESCENDING"}, "4 clients, sorted by name desc"},
		{[]string{"clients", "--dir", "sideways"}, "4 clients, sorted by name asc"},
		{[]string{"clients", "--dir", "asc", "--desc"}, "4 clients, sorted by name desc"},
		{[]string{"missions", "--sort", "xpReward", "--dir", "desc"}, "3 missions, sorted by xpReward desc"},
	}
	for _, c := range cases {
		out, err := run(t, dir, c.args...)
		if err != nil {
			t.Fatalf("%v: %v", c.args, err)
		}
		if !strings.Contains(out, c.want) {
			t.Fatalf("%v output missing %q:\n%s", c.args, c.want, out)
		}
	}
}

func TestCompleteThenCompleteAgain(t *testing.T) {
	dir := seeded(t)

	out, err := run(t, dir, "complete", "1")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !strings.Contains(out, "Mission completed! +100 XP") {
		t.Fatalf("complete output:\n%s", out)
	}

	out, err = run(t, dir, "complete", "1")
	if err != nil {
		t.Fatalf("second complete should not fail: %v", err)
	}
	if !strings.Contains(out, "no active mission") {
		t.Fatalf("second complete output:\n%s", out)
	}
}

func TestAddClientAndMission(t *testing.T) {
	dir := seeded(t)

	out, err := run(t, dir, "add", "client", "Umbrella", "Corp", "--rp", "600", "--industry", "Pharma")
	if err != nil {
		t.Fatalf("add client: %v", err)
	}
	if !strings.Contains(out, "Umbrella Corp") || !strings.Contains(out, "GOLD") {
		t.Fatalf("add client output:\n%s", out)
	}

	out, err = run(t, dir, "add", "mission", "--client", "client3", "--type", "meeting", "--xp", "100", "--due", "2d", "Renewal", "kickoff")
	if err != nil {
		t.Fatalf("add mission: %v", err)
	}
	if !strings.Contains(out, "+200 XP") {
		t.Fatalf("platinum client should double the reward:\n%s", out)
	}

	out, err = run(t, dir, "missions", "--search", "renewal")
	if err != nil {
		t.Fatalf("missions: %v", err)
	}
	if !strings.Contains(out, "Renewal kickoff") {
		t.Fatalf("new mission not listed:\n%s", out)
	}
}

func TestAddMissionRejectsUnknownType(t *testing.T) {
	dir := seeded(t)
	if _, err := run(t, dir, "add", "mission", "--client", "client1", "--type", "lunch", "x"); err == nil {
		t.Fatal("expected an error for an unknown mission type")
	}
}

func TestStatusShowsProgressAndAchievements(t *testing.T) {
	dir := seeded(t)
	out, err := run(t, dir, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, want := range []string{"Level: 3", "1,250", "250/3,000", "(8%)", "24/36 completed", "Completed today: 0", "Achievements (4/12)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status output missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, dir, "complete", "3"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	out, err = run(t, dir, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, want := range []string{"Completed today: 1", "25/36 completed", "325/3,000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status after complete missing %q:\n%s", want, out)
		}
	}
}

func TestParseDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		in   string
		want time.Time
	}{
		{"48h", now.Add(48 * time.Hour)},
		{"3d", now.AddDate(0, 0, 3)},
		{"2026-04-01", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		{"2026-04-01T09:30:00Z", time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := parseDue(c.in, now)
		if err != nil {
			t.Fatalf("parseDue(%q): %v", c.in, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("parseDue(%q)=%s want %s", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"", "soon", "xd"} {
		if _, err := parseDue(bad, now); err == nil {
			t.Fatalf("parseDue(%q) should fail", bad)
		}
	}
}
