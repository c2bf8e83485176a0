package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trackerdto "focustracker/internal/modules/tracker/dto"
	transferdto "focustracker/internal/modules/transfer/dto"
	"focustracker/internal/ui/components"
	"focustracker/internal/ui/theme"
	analyticsview "focustracker/internal/ui/views/analytics"
	pomodoroview "focustracker/internal/ui/views/pomodoro"
	settingsview "focustracker/internal/ui/views/settings"
	timerview "focustracker/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type trackerPort interface {
	Status(ctx context.Context) (trackerdto.StateOutput, error)
	Start(ctx context.Context, kind string) (trackerdto.StateOutput, error)
	Pause(ctx context.Context) (trackerdto.StateOutput, error)
	Resume(ctx context.Context) (trackerdto.StateOutput, error)
	Stop(ctx context.Context) (trackerdto.FinishOutput, error)
	Discard(ctx context.Context) (trackerdto.StateOutput, error)
	Tick(ctx context.Context) (trackerdto.TickOutput, error)
	SetPhase(ctx context.Context, phase string) (trackerdto.StateOutput, error)
	ResetPomodoroCount(ctx context.Context) (trackerdto.StateOutput, error)
	Settings(ctx context.Context) (trackerdto.Settings, error)
	SetSetting(ctx context.Context, key, value string) (trackerdto.StateOutput, error)
	Reset(ctx context.Context) (trackerdto.StateOutput, error)
}

type transferPort interface {
	Export(ctx context.Context, dir string) (transferdto.ExportOutput, error)
	Import(ctx context.Context, path string) (transferdto.ImportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabPomodoro
	tabAnalytics
	tabSettings
	tabCount
)

var tabLabels = [tabCount]string{
	"Timer", "Pomodoro", "Analytics", "Settings",
}

const tickInterval = time.Second

// ─── async messages ───────────────────────────────────────────────────────────

type stateLoadedMsg struct {
	state trackerdto.StateOutput
	err   error
}

// tickMsg is tagged with the generation that scheduled it so that a stale
// tick left over from a stopped timer is ignored.
type tickMsg struct{ gen int }

type tickedMsg struct {
	out trackerdto.TickOutput
	err error
}

type autoStartMsg struct{}

type exportedMsg struct {
	out transferdto.ExportOutput
	err error
}

type importedMsg struct {
	out transferdto.ImportOutput
	err error
}

type resetMsg struct {
	state trackerdto.StateOutput
	err   error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Start   key.Binding
	Pause   key.Binding
	Stop    key.Binding
	Discard key.Binding
	Phase   key.Binding
	Count   key.Binding
	Edit    key.Binding
	Refresh key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Pause:   key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/resume")),
		Stop:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		Discard: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "discard (timer)")),
		Phase:   key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "set phase")),
		Count:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "reset count")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit setting")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh stats")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Stop, k.Discard},
		{k.Phase, k.Count, k.Edit, k.Refresh},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the one-second
// tick that drives a running timer, the help overlay and the command
// palette. Tracker state is held here and pushed into the timer views.
type Model struct {
	exportDir string

	tracker  trackerPort
	transfer transferPort

	timerView     timerview.Model
	pomodoroView  pomodoroview.Model
	analyticsView analyticsview.Model
	settingsView  settingsview.Model

	state     trackerdto.StateOutput
	ticking   bool
	tickGen   int
	pending   bool
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(exportDir string, tracker trackerPort, analytics analyticsview.Port, transfer transferPort) Model {
	return Model{
		exportDir:     exportDir,
		tracker:       tracker,
		transfer:      transfer,
		timerView:     timerview.New(timerPortBridge{p: tracker}),
		pomodoroView:  pomodoroview.New(pomodoroPortBridge{p: tracker}),
		analyticsView: analyticsview.New(analytics),
		settingsView:  settingsview.New(tracker),
		activeTab:     tabTimer,
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(components.Hints),
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStateCmd(), m.settingsView.Init())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if _, isKey := msg.(tea.KeyMsg); isKey && m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case stateLoadedMsg:
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.status = resumeStatus(msg.state)
		return m, m.applyState(msg.state)

	case timerview.ChangedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = timerStatus(msg)
		cmds = append(cmds, m.applyState(msg.State))
		if msg.Recorded != nil {
			cmds = append(cmds, m.analyticsView.Refresh())
		}
		return m, tea.Batch(cmds...)

	case pomodoroview.ChangedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = pomodoroStatus(msg.State)
		return m, m.applyState(msg.State)

	case tickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		m.ticking = false
		return m, m.tickCmd()

	case tickedMsg:
		if msg.err != nil {
			m.status = "tick failed: " + msg.err.Error()
			return m, nil
		}
		if o := msg.out.Outcome; o != nil {
			m.status = o.Message
			cmds = append(cmds, m.analyticsView.Refresh())
			if o.AutoStart {
				m.pending = true
				cmds = append(cmds, tea.Tick(o.AutoStartAfter, func(time.Time) tea.Msg { return autoStartMsg{} }))
			}
		}
		cmds = append(cmds, m.applyState(msg.out.State))
		return m, tea.Batch(cmds...)

	case autoStartMsg:
		if !m.pending {
			return m, nil
		}
		m.pending = false
		return m, m.startPomodoroCmd()

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("exported %d sessions to %s", msg.out.Sessions, msg.out.Path)
		}

	case importedMsg:
		if msg.err != nil {
			m.status = msg.out.Message
			if m.status == "" {
				m.status = "import failed: " + msg.err.Error()
			}
			return m, nil
		}
		m.status = msg.out.Message
		return m, tea.Batch(m.loadStateCmd(), m.settingsView.Init(), m.analyticsView.Refresh())

	case resetMsg:
		if msg.err != nil {
			m.status = "reset failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "all data reset"
		return m, tea.Batch(m.applyState(msg.state), m.settingsView.Init(), m.analyticsView.Refresh())

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case analyticsview.LoadedMsg, settingsview.LoadedMsg:
		// always routed to their views regardless of the active tab
		return m.routeBackground(msg)

	case settingsview.SavedMsg:
		var cmd tea.Cmd
		m.settingsView, cmd = m.settingsView.Update(msg)
		if msg.Err == nil {
			cmds = append(cmds, m.applyState(msg.State))
		}
		return m, tea.Batch(append(cmds, cmd)...)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		if m.activeTab == tabSettings && m.settingsView.Editing() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			return m, m.switchTab((m.activeTab + 1) % tabCount)
		case "shift+tab":
			return m, m.switchTab((m.activeTab + tabCount - 1) % tabCount)
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
		if m.pending && (msg.String() == "s" || msg.String() == "x") {
			m.pending = false
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTimer:
		m.timerView, tabCmd = m.timerView.Update(msg)
	case tabPomodoro:
		m.pomodoroView, tabCmd = m.pomodoroView.Update(msg)
	case tabAnalytics:
		m.analyticsView, tabCmd = m.analyticsView.Update(msg)
	case tabSettings:
		m.settingsView, tabCmd = m.settingsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabPomodoro:
		return m.pomodoroView.View()
	case tabAnalytics:
		return m.analyticsView.View()
	case tabSettings:
		return m.settingsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := " " + tabLabels[i] + " "
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(label)
		} else {
			parts[i] = theme.Muted.Render(label)
		}
	}
	bar := "focustracker  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	switch {
	case m.state.Running:
		left = theme.Phase(m.state.Phase).Render("● "+m.runningLabel()) + "  " + left
	case m.state.Paused:
		left = theme.Paused.Render("❚❚ "+m.runningLabel()) + "  " + left
	}
	if m.state.Warning != "" {
		left += "  " + theme.Warn.Render(m.state.Warning)
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m Model) runningLabel() string {
	if m.state.Kind == "pomodoro" {
		return m.state.PhaseLabel + " " + m.state.RemainingLabel
	}
	return "Timer " + m.state.ElapsedLabel
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	timerBridge := timerPortBridge{p: m.tracker}
	pomodoroBridge := pomodoroPortBridge{p: m.tracker}

	switch parts[0] {
	case "timer:start":
		m.activeTab = tabTimer
		return m, timerStateCmd(timerBridge.Start)
	case "timer:stop":
		return m, func() tea.Msg {
			out, err := m.tracker.Stop(context.Background())
			return timerview.ChangedMsg{State: out.State, Recorded: out.Recorded, Err: err}
		}
	case "timer:discard":
		return m, timerStateCmd(m.tracker.Discard)
	case "pomodoro:start":
		m.activeTab = tabPomodoro
		return m, m.startPomodoroCmd()
	case "pomodoro:stop":
		m.pending = false
		return m, pomodoroStateCmd(pomodoroBridge.Stop)
	case "pomodoro:phase":
		if len(parts) < 2 {
			m.status = "usage: pomodoro:phase <focus|short-break|long-break>"
			return m, nil
		}
		return m, pomodoroStateCmd(func(ctx context.Context) (trackerdto.StateOutput, error) {
			return m.tracker.SetPhase(ctx, parts[1])
		})
	case "pomodoro:reset-count":
		return m, pomodoroStateCmd(m.tracker.ResetPomodoroCount)
	case "pause":
		return m, pomodoroStateCmd(m.tracker.Pause)
	case "resume":
		return m, pomodoroStateCmd(m.tracker.Resume)
	case "set":
		if len(parts) < 3 {
			m.status = "usage: set <key> <value>"
			return m, nil
		}
		return m, func() tea.Msg {
			state, err := m.tracker.SetSetting(context.Background(), parts[1], parts[2])
			return settingsview.SavedMsg{State: state, Err: err}
		}
	case "export":
		dir := m.exportDir
		if len(parts) >= 2 {
			dir = parts[1]
		}
		return m, m.exportCmd(dir)
	case "import":
		if len(parts) < 2 {
			m.status = "usage: import <file>"
			return m, nil
		}
		return m, m.importCmd(strings.TrimSpace(strings.TrimPrefix(input, parts[0])))
	case "reset":
		m.pending = false
		return m, func() tea.Msg {
			state, err := m.tracker.Reset(context.Background())
			return resetMsg{state: state, err: err}
		}
	case "stats":
		return m, m.switchTab(tabAnalytics)
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// applyState pushes the state into the timer views and keeps the tick
// running only while a timer runs.
func (m *Model) applyState(state trackerdto.StateOutput) tea.Cmd {
	m.state = state
	m.timerView.SetState(state)
	m.pomodoroView.SetState(state)
	if !state.Running || m.ticking {
		return nil
	}
	m.ticking = true
	m.tickGen++
	gen := m.tickGen
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m *Model) switchTab(tab tabID) tea.Cmd {
	m.activeTab = tab
	if tab == tabAnalytics {
		return m.analyticsView.Refresh()
	}
	return nil
}

func (m Model) routeBackground(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.(type) {
	case analyticsview.LoadedMsg:
		m.analyticsView, cmd = m.analyticsView.Update(msg)
	case settingsview.LoadedMsg:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return m, cmd
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.pomodoroView, _ = m.pomodoroView.Update(sz)
	m.analyticsView, _ = m.analyticsView.Update(sz)
	m.settingsView, _ = m.settingsView.Update(sz)
}

func resumeStatus(s trackerdto.StateOutput) string {
	switch {
	case s.Running:
		return "resumed running " + s.Kind + " session"
	case s.Paused:
		return "paused " + s.Kind + " session restored"
	}
	return "ready"
}

func timerStatus(msg timerview.ChangedMsg) string {
	switch {
	case msg.Recorded != nil:
		return "session recorded: " + msg.State.ElapsedLabel + " " + msg.Recorded.Type
	case msg.State.Running:
		return "timer running"
	case msg.State.Paused:
		return "timer paused"
	}
	return "timer stopped"
}

func pomodoroStatus(s trackerdto.StateOutput) string {
	if s.Kind == "manual" {
		return timerStatus(timerview.ChangedMsg{State: s})
	}
	switch {
	case s.Running:
		return s.PhaseLabel + " running"
	case s.Paused:
		return s.PhaseLabel + " paused"
	}
	return s.PhaseLabel + " ready"
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadStateCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.tracker.Status(context.Background())
		return stateLoadedMsg{state: state, err: err}
	}
}

func (m Model) tickCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.tracker.Tick(context.Background())
		return tickedMsg{out: out, err: err}
	}
}

func (m Model) startPomodoroCmd() tea.Cmd {
	return pomodoroStateCmd(pomodoroPortBridge{p: m.tracker}.Start)
}

func (m Model) exportCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		if m.transfer == nil {
			return exportedMsg{err: fmt.Errorf("transfer adapter not configured")}
		}
		out, err := m.transfer.Export(context.Background(), dir)
		return exportedMsg{out: out, err: err}
	}
}

func (m Model) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if m.transfer == nil {
			return importedMsg{err: fmt.Errorf("transfer adapter not configured")}
		}
		out, err := m.transfer.Import(context.Background(), path)
		return importedMsg{out: out, err: err}
	}
}

func timerStateCmd(action func(context.Context) (trackerdto.StateOutput, error)) tea.Cmd {
	return func() tea.Msg {
		state, err := action(context.Background())
		return timerview.ChangedMsg{State: state, Err: err}
	}
}

func pomodoroStateCmd(action func(context.Context) (trackerdto.StateOutput, error)) tea.Cmd {
	return func() tea.Msg {
		state, err := action(context.Background())
		return pomodoroview.ChangedMsg{State: state, Err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Bridges fix the session kind so the timer views only see the actions they
// offer.

type timerPortBridge struct{ p trackerPort }

func (b timerPortBridge) Start(ctx context.Context) (trackerdto.StateOutput, error) {
	return b.p.Start(ctx, "manual")
}
func (b timerPortBridge) Pause(ctx context.Context) (trackerdto.StateOutput, error) {
	return b.p.Pause(ctx)
}
func (b timerPortBridge) Resume(ctx context.Context) (trackerdto.StateOutput, error) {
	return b.p.Resume(ctx)
}
func (b timerPortBridge) Stop(ctx context.Context) (trackerdto.FinishOutput, error) {
	return b.p.Stop(ctx)
}
func (b timerPortBridge) Discard(ctx context.Context) (trackerdto.StateOutput, error) {
	return b.p.Discard(ctx)
}

type pomodoroPortBridge struct{ p trackerPort }

func (b pomodoroPortBridge) Start(ctx context.Context) (trackerdto.StateOutput, error) {
	return b.p.Start(ctx, "pomodoro")
}
func (b pomodoroPortBridge) Pause(ctx context.Context) (trackerdto.StateOutput, error) {
	return b.p.Pause(ctx)
}
func (b pomodoroPortBridge) Resume(ctx context.Context) (trackerdto.StateOutput, error) {
	return b.p.Resume(ctx)
}
func (b pomodoroPortBridge) Stop(ctx context.Context) (trackerdto.StateOutput, error) {
	return b.p.Discard(ctx)
}
func (b pomodoroPortBridge) SetPhase(ctx context.Context, phase string) (trackerdto.StateOutput, error) {
	return b.p.SetPhase(ctx, phase)
}
func (b pomodoroPortBridge) ResetPomodoroCount(ctx context.Context) (trackerdto.StateOutput, error) {
	return b.p.ResetPomodoroCount(ctx)
}
