package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultSubject = "General"

// timerViewState holds the focus timer view's local state.
type timerViewState struct {
	subject textinput.Model
	editing bool
	started time.Time
}

func newTimerViewState() timerViewState {
	input := textinput.New()
	input.Placeholder = defaultSubject
	input.CharLimit = 60
	input.Width = 24
	return timerViewState{subject: input}
}

func (s timerViewState) subjectOrDefault() string {
	subject := strings.TrimSpace(s.subject.Value())
	if subject == "" {
		return defaultSubject
	}
	return subject
}

// handleTimerKey processes keyboard input for the timer view.
func (m Model) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.timerView.editing {
		switch msg.String() {
		case "enter", "esc":
			m.timerView.editing = false
			m.timerView.subject.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.timerView.subject, cmd = m.timerView.subject.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		if m.engine != nil && !m.timerState.Tracking {
			m.engine.Start()
			m.timerView.started = time.Now()
			m.timerState = m.engine.Snapshot()
		}
		return m, nil

	case " ":
		if m.engine == nil || !m.timerState.Tracking {
			return m, nil
		}
		if m.timerState.Paused {
			m.engine.Resume()
		} else {
			m.engine.Pause()
		}
		m.timerState = m.engine.Snapshot()
		return m, nil

	case "x":
		return m.stopAndRecord()

	case "R":
		if m.engine != nil {
			m.engine.Reset()
			m.timerState = m.engine.Snapshot()
		}
		return m, nil

	case "e":
		m.timerView.editing = true
		return m, m.timerView.subject.Focus()
	}

	return m, nil
}

// stopAndRecord stops the timer and journals the finished session.
func (m Model) stopAndRecord() (tea.Model, tea.Cmd) {
	if m.engine == nil || !m.timerState.Tracking {
		return m, nil
	}

	elapsed := m.engine.Stop()
	m.timerState = m.engine.Snapshot()
	if elapsed <= 0 {
		m.setNotice("Nothing to record")
		return m, nil
	}

	subject := m.timerView.subjectOrDefault()
	endedAt := time.Now()
	startedAt := m.timerView.started
	if startedAt.IsZero() {
		startedAt = endedAt.Add(-time.Duration(elapsed) * time.Second)
	}

	if m.sessions != nil {
		if _, err := m.sessions.RecordSession(subject, startedAt, endedAt, elapsed, nil); err != nil {
			m.setNotice("Session not saved: " + err.Error())
			return m, nil
		}
	}

	m.setNotice(fmt.Sprintf("Recorded %s on %s", formatHours(elapsed), subject))
	return m, loadStatsCmd(m.sessions)
}

// renderTimer renders the focus timer view.
func (m Model) renderTimer() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render("Focus timer"))
	b.WriteString("\n\n")

	clockStyle := styles.Text.Bold(true)
	status := "idle"
	switch {
	case m.timerState.Tracking && m.timerState.Paused:
		status = "paused"
		clockStyle = styles.WarningText.Bold(true)
	case m.timerState.Tracking:
		status = "tracking"
		clockStyle = styles.SuccessText.Bold(true)
	}

	b.WriteString("  ")
	b.WriteString(clockStyle.Render(formatClock(m.timerState.ElapsedSeconds)))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(status))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("Subject: "))
	if m.timerView.editing {
		b.WriteString(m.timerView.subject.View())
	} else {
		b.WriteString(styles.Text.Render(m.timerView.subjectOrDefault()))
		b.WriteString(styles.FaintText.Render("  (e to edit)"))
	}
	b.WriteString("\n\n")

	// Daily goal progress
	b.WriteString(styles.MutedText.Render("Today "))
	b.WriteString(styles.Text.Render(formatHours(m.bloomState.TodayStudySeconds)))
	b.WriteString(styles.MutedText.Render(" of "))
	b.WriteString(styles.Text.Render(formatHours(m.cfg.DailyGoalSeconds)))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(styles.AccentText.Render(progressBar(int(m.bloomState.Progress), 30)))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf(" %.0f%%", m.bloomState.Progress)))

	if m.bloomState.Progress >= 100 {
		b.WriteString("\n\n")
		b.WriteString(styles.SuccessText.Render("Full bloom! Daily goal reached."))
	}

	return styles.Panel.Width(60).Render(b.String())
}
