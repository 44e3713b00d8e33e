package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	// View switching
	ViewDashboard key.Binding
	ViewTimer     key.Binding
	ViewSchedule  key.Binding
	ViewReminders key.Binding
	ViewEmotion   key.Binding

	// Timer actions
	StartTimer  key.Binding
	PauseResume key.Binding
	StopTimer   key.Binding
	ResetTimer  key.Binding
	EditSubject key.Binding

	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle views"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Cycle views (reverse)"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Return to dashboard"),
		),

		// View switching
		ViewDashboard: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Dashboard"),
		),
		ViewTimer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Focus timer"),
		),
		ViewSchedule: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Schedule"),
		),
		ViewReminders: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reminders"),
		),
		ViewEmotion: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Mood check-in"),
		),

		// Timer actions
		StartTimer: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Start"),
		),
		PauseResume: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Pause/resume"),
		),
		StopTimer: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Stop and record"),
		),
		ResetTimer: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reset"),
		),
		EditSubject: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit subject"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "Previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "Next day"),
		),

		// Actions
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Tab, k.ViewDashboard, k.ViewTimer, k.ViewSchedule, k.ViewReminders, k.ViewEmotion},
		{k.Up, k.Down, k.Left, k.Right},
		// Timer
		{k.StartTimer, k.PauseResume, k.StopTimer, k.ResetTimer, k.EditSubject},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
