package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderHeader renders the status bar with connection, timer, and streak info.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string

	parts = append(parts, bg.Render("mindsync", styles.Logo))

	// Connection indicator
	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	} else if m.snapshot.LastError != nil {
		parts = append(parts, bg.Render("● RETRYING", styles.WarningText))
	} else {
		parts = append(parts, bg.Render("● ONLINE", styles.SuccessText))
	}

	// Timer mini display
	if m.timerState.Tracking {
		label := "focus"
		style := styles.SuccessText
		if m.timerState.Paused {
			label = "paused"
			style = styles.WarningText
		}
		parts = append(parts,
			bg.Render(label, styles.MutedText)+bg.Space()+
				bg.Render(formatClock(m.timerState.ElapsedSeconds), style))
	}

	// Bloom progress and streak
	parts = append(parts,
		bg.Render("bloom:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%.0f%%", m.bloomState.Progress), styles.AccentText))
	parts = append(parts,
		bg.Render("streak:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%dd", m.bloomState.StreakDays), styles.Text))

	// Last successful poll with relative time
	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	// Poll error detail
	if m.snapshot.LastError != nil {
		errText := truncate(fmt.Sprintf("%v", m.snapshot.LastError), 60)
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(errText, styles.DangerText))
	}

	// Transient notice (completion results, fired reminders)
	if m.notice != "" {
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.notice, 60), styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.snapshot.LastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.snapshot.LastUpdated)
	timeStr := m.snapshot.LastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// renderCommandBar renders the command hints bar for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewTimer:
		startLabel := "Start"
		if m.timerState.Tracking {
			startLabel = ternary(m.timerState.Paused, "Resume", "Pause")
		}
		commands = []cmd{
			{"enter", "Start"},
			{"Space", startLabel},
			{"x", "Stop+record"},
			{"R", "Reset"},
			{"e", "Subject"},
			{"d", "Dashboard"},
			{"?", "More"},
		}
	case ViewSchedule:
		commands = []cmd{
			{"j/k", "Session"},
			{"←/→", "Day"},
			{"enter", "Mark done"},
			{"g", "Generate"},
			{"d", "Dashboard"},
			{"?", "More"},
		}
	case ViewReminders:
		commands = []cmd{
			{"d", "Dashboard"},
			{"t", "Timer"},
			{"?", "More"},
		}
	case ViewEmotion:
		commands = []cmd{
			{"enter", "Classify"},
			{"ctrl+s", "Save log"},
			{"esc", "Back"},
			{"?", "More"},
		}
	default: // ViewDashboard
		commands = []cmd{
			{"t", "Timer"},
			{"s", "Schedule"},
			{"r", "Reminders"},
			{"m", "Mood"},
			{"Tab", "Cycle"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
