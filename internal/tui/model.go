package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"crmquest/internal/banner"
	"crmquest/internal/engine"
	"crmquest/internal/ui"
)

// Service is the part of session.Service the board needs.
type Service interface {
	Roster(ctx context.Context, q engine.ClientQuery) ([]engine.Client, error)
	Missions(ctx context.Context, q engine.MissionQuery) ([]engine.Mission, error)
	Progress(ctx context.Context) (engine.UserProgress, error)
	Complete(ctx context.Context, missionID string) (*engine.CompleteResult, error)
	Now() time.Time
}

type tab int

const (
	tabMissions tab = iota
	tabClients
)

func (t tab) String() string {
	if t == tabClients {
		return "Clients"
	}
	return "Missions"
}

type boardModel struct {
	ctx    context.Context
	svc    Service
	banner *banner.Banner
	locale language.Tag

	keys      keyMap
	help      help.Model
	search    textinput.Model
	searching bool

	width  int
	height int

	tab      tab
	selected int

	progress engine.UserProgress
	clients  []engine.Client
	missions []engine.Mission

	rosterSort     engine.SortState[engine.ClientSortKey]
	missionSort    engine.SortState[engine.MissionSortKey]
	tierFilter     engine.Tier
	priorityFilter engine.Priority
	typeFilter     engine.MissionType

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	progress engine.UserProgress
	clients  []engine.Client
	missions []engine.Mission
	err      error
}

type completedMsg struct {
	id  string
	res *engine.CompleteResult
	err error
}

// bannerMsg is sent by the banner whenever its text changes.
type bannerMsg struct {
	text string
}

func newBoardModel(ctx context.Context, svc Service, b *banner.Banner, locale language.Tag) boardModel {
	search := textinput.New()
	search.Placeholder = "client, description, industry…"
	search.Prompt = "/ "
	search.CharLimit = 64
	search.Width = 40

	return boardModel{
		ctx:         ctx,
		svc:         svc,
		banner:      b,
		locale:      locale,
		keys:        defaultKeyMap(),
		help:        help.New(),
		search:      search,
		rosterSort:  engine.InitialRosterSort(),
		missionSort: engine.InitialMissionSort(),
		loading:     true,
		lastLog:     "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Progress(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		clients, err := m.svc.Roster(m.ctx, engine.ClientQuery{})
		if err != nil {
			return loadedMsg{err: err}
		}
		missions, err := m.svc.Missions(m.ctx, engine.MissionQuery{})
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{progress: p, clients: clients, missions: missions}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Complete(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

// showBannerCmd runs Show off the event loop: the banner's change callback
// sends into the program, which would block inside Update.
func (m boardModel) showBannerCmd(text string) tea.Cmd {
	b := m.banner
	if b == nil {
		return nil
	}
	return func() tea.Msg {
		b.Show(text)
		return nil
	}
}

func (m boardModel) clientQuery() engine.ClientQuery {
	return engine.ClientQuery{
		Search:    m.search.Value(),
		Tier:      m.tierFilter,
		Sort:      m.rosterSort.Key,
		Direction: m.rosterSort.Direction,
		Locale:    m.locale,
	}
}

func (m boardModel) missionQuery() engine.MissionQuery {
	return engine.MissionQuery{
		Search:    m.search.Value(),
		Priority:  m.priorityFilter,
		Type:      m.typeFilter,
		Sort:      m.missionSort.Key,
		Direction: m.missionSort.Direction,
		Locale:    m.locale,
	}
}

func (m boardModel) visibleClients() []engine.Client {
	return engine.RosterView(m.clients, m.clientQuery())
}

func (m boardModel) visibleMissions() []engine.Mission {
	return engine.MissionView(m.missions, m.missionQuery())
}

func (m boardModel) rowCount() int {
	if m.tab == tabClients {
		return len(m.visibleClients())
	}
	return len(m.visibleMissions())
}

func (m *boardModel) clampSelection() {
	n := m.rowCount()
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case bannerMsg:
		// Text is read from the banner in View; this only triggers a redraw.
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.progress = msg.progress
		m.clients = msg.clients
		m.missions = msg.missions
		m.clampSelection()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", m.svc.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.res.Found {
			m.lastLog = fmt.Sprintf("No active mission %s.", msg.id)
			return m, nil
		}
		m.missions = msg.res.Missions
		m.progress = msg.res.Progress
		m.clampSelection()
		m.lastLog = fmt.Sprintf("Completed %s for %s.", msg.id, msg.res.Mission.ClientName)
		return m, tea.Batch(m.showBannerCmd(msg.res.Message), m.loadCmd())
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m boardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
		m.selected = 0
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.selected = 0
	return m, cmd
}

func (m boardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.Tab):
		if m.tab == tabMissions {
			m.tab = tabClients
		} else {
			m.tab = tabMissions
		}
		m.selected = 0
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < m.rowCount()-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Sort):
		if m.tab == tabClients {
			m.rosterSort = m.rosterSort.Select(engine.NextClientSortKey(m.rosterSort.Key))
		} else {
			m.missionSort = m.missionSort.Select(engine.NextMissionSortKey(m.missionSort.Key))
		}
	case key.Matches(msg, m.keys.Order):
		if m.tab == tabClients {
			m.rosterSort = m.rosterSort.Toggle()
		} else {
			m.missionSort = m.missionSort.Toggle()
		}
	case key.Matches(msg, m.keys.Filter):
		if m.tab == tabClients {
			m.tierFilter = cycle(engine.Tiers, m.tierFilter)
		} else {
			m.priorityFilter = cycle(engine.Priorities, m.priorityFilter)
		}
		m.clampSelection()
	case key.Matches(msg, m.keys.Type):
		if m.tab == tabMissions {
			m.typeFilter = cycle(engine.MissionTypes, m.typeFilter)
			m.clampSelection()
		}
	case key.Matches(msg, m.keys.Complete):
		if m.tab != tabMissions {
			m.lastLog = "Switch to the missions tab to complete a mission."
			return m, nil
		}
		visible := m.visibleMissions()
		if m.selected < 0 || m.selected >= len(visible) {
			return m, nil
		}
		id := visible[m.selected].ID
		m.lastLog = fmt.Sprintf("Completing %s…", id)
		return m, m.completeCmd(id)
	}
	return m, nil
}

// cycle steps through "" (all) and then each of values in order.
func cycle[T comparable](values []T, cur T) T {
	var zero T
	if cur == zero {
		if len(values) == 0 {
			return zero
		}
		return values[0]
	}
	for i, v := range values {
		if v == cur && i+1 < len(values) {
			return values[i+1]
		}
	}
	return zero
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.banner != nil {
		if text := m.banner.Text(); text != "" {
			b.WriteString(ui.Banner.Render(text))
			b.WriteString("\n")
		}
	}
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n\n")
	if m.loading {
		b.WriteString("Loading…\n")
	} else if m.tab == tabClients {
		b.WriteString(m.renderClients())
	} else {
		b.WriteString(m.renderMissions())
	}
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m boardModel) renderHeader() string {
	p := m.progress
	bar := ui.ProgressBar(p.XPProgress, p.XPToNextLevel, 20)
	return fmt.Sprintf("%s | Level %d | XP %s %s %d/%d | Missions %d/%d (%d%%)",
		ui.Title.Render(ui.IconQuest+" crmquest"),
		p.Level,
		ui.Number(p.XP),
		bar,
		p.XPProgress,
		p.XPToNextLevel,
		p.CompletedMissions,
		p.TotalMissions,
		engine.CompletionPercent(p),
	)
}

func (m boardModel) renderTabs() string {
	var parts []string
	for _, t := range []tab{tabMissions, tabClients} {
		label := t.String()
		if t == m.tab {
			parts = append(parts, ui.ActiveTab.Render(label))
		} else {
			parts = append(parts, ui.InactiveTab.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func arrow(d engine.SortDirection) string {
	if d == engine.Descending {
		return "↓"
	}
	return "↑"
}

func orAll[T ~string](v T) string {
	if v == "" {
		return engine.FilterAll
	}
	return string(v)
}

func (m boardModel) renderControls() string {
	var parts []string
	if m.tab == tabClients {
		parts = append(parts,
			fmt.Sprintf("sort: %s %s", m.rosterSort.Key, arrow(m.rosterSort.Direction)),
			"tier: "+orAll(m.tierFilter),
		)
	} else {
		parts = append(parts,
			fmt.Sprintf("sort: %s %s", m.missionSort.Key, arrow(m.missionSort.Direction)),
			"priority: "+orAll(m.priorityFilter),
			"type: "+orAll(m.typeFilter),
		)
	}
	line := ui.Muted.Render(strings.Join(parts, " | "))
	if m.searching || m.search.Value() != "" {
		line += "\n" + m.search.View()
	}
	return line
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func (m boardModel) renderMissions() string {
	missions := m.visibleMissions()
	if len(missions) == 0 {
		return "(no missions)\n"
	}
	now := m.svc.Now()
	var b strings.Builder
	for i, ms := range missions {
		line := fmt.Sprintf("%s%s %s · %s  %s  due %s  +%d XP",
			cursor(i == m.selected),
			ui.MissionTypeIcon(ms.Type),
			ms.ClientName,
			ms.Description,
			ui.PriorityText(ms.Priority),
			ui.RelTime(ms.DueDate, now),
			ms.XPReward,
		)
		if engine.IsUrgent(ms, now) {
			line += " " + ui.BadgeUrgent
		}
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m boardModel) renderClients() string {
	clients := m.visibleClients()
	if len(clients) == 0 {
		return "(no clients)\n"
	}
	now := m.svc.Now()
	var b strings.Builder
	for i, c := range clients {
		line := fmt.Sprintf("%s%s %s  %s pts  last contact %s  next meeting %s",
			cursor(i == m.selected),
			ui.TierBadge(c.Tier),
			c.Name,
			ui.Number(c.RelationshipPoints),
			ui.RelTime(c.LastContact, now),
			ui.MaybeRelTime(c.NextMeeting, now),
		)
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
