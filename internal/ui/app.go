// Package ui provides a Bubble Tea-based TUI for MindSync.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindsyncapp/mindsync/internal/backend"
	"github.com/mindsyncapp/mindsync/internal/bloom"
	"github.com/mindsyncapp/mindsync/internal/config"
	"github.com/mindsyncapp/mindsync/internal/journal"
	"github.com/mindsyncapp/mindsync/internal/prefs"
	"github.com/mindsyncapp/mindsync/internal/state"
	"github.com/mindsyncapp/mindsync/internal/stats"
	"github.com/mindsyncapp/mindsync/internal/timer"
)

// View represents the current active view.
type View int

const (
	ViewDashboard View = iota
	ViewTimer
	ViewSchedule
	ViewReminders
	ViewEmotion
)

const (
	uiTick        = time.Second
	statsEvery    = 30 * time.Second
	noticeTimeout = 4 * time.Second
	recentWindow  = 500 // journal entries to aggregate for the dashboard
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *backend.Client
	Store     *state.Store
	Timer     *timer.Engine
	Bloom     *bloom.Tracker
	Journal   *journal.Store
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	PollTick  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *backend.Client
	store     *state.Store
	engine    *timer.Engine
	streak    *bloom.Tracker
	sessions  *journal.Store
	cfg       config.Config
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	snapshot   state.Snapshot
	timerState timer.State
	bloomState bloom.State
	summary    stats.Summary
	emotions   stats.EmotionSummary
	lastStats  time.Time

	// Transient notice line (completion results, errors, fired reminders)
	notice   string
	noticeAt time.Time

	// Per-view state
	timerView    timerViewState
	scheduleView scheduleViewState
	emotionView  emotionViewState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	themeName := opts.Prefs.Theme
	if themeName == "" {
		themeName = "Bloom"
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = opts.Config.PollInterval
	}

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		engine:      opts.Timer,
		streak:      opts.Bloom,
		sessions:    opts.Journal,
		cfg:         opts.Config,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		currentView: ViewDashboard,
		timerView:   newTimerViewState(),
		emotionView: newEmotionViewState(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
		loadStatsCmd(m.sessions),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case statsMsg:
		m.summary = msg.summary
		m.lastStats = time.Now()
		return m, nil

	case classifyResultMsg:
		return m.handleClassifyResult(msg)

	case logEmotionResultMsg:
		return m.handleLogEmotionResult(msg)

	case completeResultMsg:
		return m.handleCompleteResult(msg)

	case scheduleActionMsg:
		return m.handleScheduleAction(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.emotionView.wait, cmd = m.emotionView.wait.Update(msg)
		if m.emotionView.classifying || m.emotionView.saving {
			return m, cmd
		}
		return m, nil
	}

	// Text input owns most keystrokes while the emotion form is focused.
	if m.currentView == ViewEmotion {
		var cmd tea.Cmd
		m.emotionView, cmd = m.emotionView.update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDashboard:
		return m.renderDashboard()
	case ViewTimer:
		return m.renderTimer()
	case ViewSchedule:
		return m.renderSchedule()
	case ViewReminders:
		return m.renderReminders()
	case ViewEmotion:
		return m.renderEmotion()
	default:
		return ""
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// The subject input captures printable keys while editing.
	if m.currentView == ViewTimer && m.timerView.editing {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleTimerKey(msg)
	}

	// The emotion form captures printable keys for its text input; only
	// escape and ctrl+c pass through as global keys there.
	if m.currentView == ViewEmotion && m.emotionView.focused() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.currentView = ViewDashboard
			m.emotionView = m.emotionView.blurred()
			return m, nil
		}
		return m.handleEmotionKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		// Cycle theme
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			loaded, _ := prefs.Load(m.prefsPath)
			loaded.Theme = m.theme.Name
			_ = prefs.Save(m.prefsPath, loaded)
		}
		return m, nil

	case "tab":
		m.currentView = nextView(m.currentView)
		return m.enterView()

	case "shift+tab":
		m.currentView = prevView(m.currentView)
		return m.enterView()

	case "d":
		m.currentView = ViewDashboard
		return m, loadStatsCmd(m.sessions)

	case "t":
		m.currentView = ViewTimer
		return m, nil

	case "s":
		m.currentView = ViewSchedule
		return m, nil

	case "r":
		m.currentView = ViewReminders
		return m, nil

	case "m":
		m.currentView = ViewEmotion
		return m.enterView()

	case "esc":
		m.currentView = ViewDashboard
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewTimer:
		return m.handleTimerKey(msg)
	case ViewSchedule:
		return m.handleScheduleKey(msg)
	case ViewEmotion:
		return m.handleEmotionKey(msg)
	}

	return m, nil
}

// enterView runs view entry hooks (focus inputs, refresh data).
func (m Model) enterView() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewDashboard:
		return m, loadStatsCmd(m.sessions)
	case ViewEmotion:
		var cmd tea.Cmd
		m.emotionView, cmd = m.emotionView.focus()
		return m, cmd
	}
	return m, nil
}

func nextView(v View) View {
	if v == ViewEmotion {
		return ViewDashboard
	}
	return v + 1
}

func prevView(v View) View {
	if v == ViewDashboard {
		return ViewEmotion
	}
	return v - 1
}

// handleTick refreshes local snapshots once a second and schedules the next
// tick. Stats reload on a slower cadence; everything else is cheap.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd()}

	if m.store != nil {
		m.snapshot = m.store.Snapshot()
		for _, alert := range m.store.DrainAlerts() {
			m.notice = alert.Title + ": " + alert.Body
			m.noticeAt = alert.At
		}
	}
	if m.engine != nil {
		m.timerState = m.engine.Snapshot()
	}
	if m.streak != nil {
		m.bloomState = m.streak.Snapshot()
	}
	if len(m.snapshot.EmotionLogs) > 0 {
		m.emotions = stats.SummarizeEmotions(m.snapshot.EmotionLogs)
	}

	if m.notice != "" && now.Sub(m.noticeAt) > noticeTimeout {
		m.notice = ""
	}

	if m.sessions != nil && now.Sub(m.lastStats) >= statsEvery {
		m.lastStats = now
		cmds = append(cmds, loadStatsCmd(m.sessions))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeAt = time.Now()
}

// Messages

type tickMsg time.Time

type statsMsg struct {
	summary stats.Summary
}

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(uiTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loadStatsCmd(sessions *journal.Store) tea.Cmd {
	if sessions == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := sessions.RecentSessions(recentWindow)
		if err != nil {
			return statsMsg{}
		}
		return statsMsg{summary: stats.Summarize(entries, time.Now())}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
