package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindsyncapp/mindsync/internal/backend"
)

// Planned slots carry no explicit length; an hour is assumed when marking
// one complete without a timed session behind it.
const defaultSlotSeconds = 3600

// scheduleViewState holds cursor position inside the weekly plan.
type scheduleViewState struct {
	dayIndex     int
	sessionIndex int
}

// handleScheduleKey processes keyboard input for the schedule view.
func (m Model) handleScheduleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	schedule := m.snapshot.Schedule
	if schedule == nil {
		if msg.String() == "g" {
			m.setNotice("No schedule to regenerate; create one from the app first")
		}
		return m, nil
	}

	days := len(schedule.WeeklyPlan)
	if days == 0 {
		return m, nil
	}
	if m.scheduleView.dayIndex >= days {
		m.scheduleView.dayIndex = days - 1
	}
	day := schedule.WeeklyPlan[m.scheduleView.dayIndex]

	switch msg.String() {
	case "left":
		if m.scheduleView.dayIndex > 0 {
			m.scheduleView.dayIndex--
			m.scheduleView.sessionIndex = 0
		}
	case "right":
		if m.scheduleView.dayIndex < days-1 {
			m.scheduleView.dayIndex++
			m.scheduleView.sessionIndex = 0
		}
	case "j", "down":
		if m.scheduleView.sessionIndex < len(day.Sessions)-1 {
			m.scheduleView.sessionIndex++
		}
	case "k", "up":
		if m.scheduleView.sessionIndex > 0 {
			m.scheduleView.sessionIndex--
		}
	case "enter":
		return m.markSelectedComplete(schedule, day)
	case "g":
		m.setNotice("Generating a fresh schedule...")
		return m, regenerateScheduleCmd(m.ctx, m.client, schedule)
	}

	return m, nil
}

// markSelectedComplete submits a completion for the highlighted slot. The
// request is sent once; a duplicate is reported as already done, not retried.
func (m Model) markSelectedComplete(schedule *backend.Schedule, day backend.DayPlan) (tea.Model, tea.Cmd) {
	if len(day.Sessions) == 0 {
		return m, nil
	}
	index := m.scheduleView.sessionIndex
	if index >= len(day.Sessions) {
		index = len(day.Sessions) - 1
	}
	session := day.Sessions[index]

	duration := defaultSlotSeconds
	if m.timerState.Tracking {
		duration = m.timerState.ElapsedSeconds
	}

	completion := backend.Completion{
		ScheduleID:      schedule.ID,
		Day:             day.Day,
		SessionIndex:    index,
		Subject:         session.Subject,
		DurationSeconds: duration,
	}
	return m, completeSessionCmd(m.ctx, m.client, completion)
}

// renderSchedule renders the weekly plan with completion markers.
func (m Model) renderSchedule() string {
	styles := m.theme.Styles()
	schedule := m.snapshot.Schedule

	if schedule == nil {
		message := "No active schedule."
		if m.snapshot.IsOffline() {
			message = "Schedule unavailable while offline."
		}
		return styles.Panel.Width(70).Render(styles.FaintText.Render(message))
	}

	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render("Weekly schedule"))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("  %s → %s", schedule.StartDate, schedule.EndDate)))
	b.WriteString("\n\n")

	done := completionSet(m.snapshot.Completions)

	for dayIdx, day := range schedule.WeeklyPlan {
		dayStyle := styles.MutedText
		if dayIdx == m.scheduleView.dayIndex {
			dayStyle = styles.AccentText.Bold(true)
		}
		b.WriteString(dayStyle.Render(day.Day))
		b.WriteString("\n")

		if len(day.Sessions) == 0 {
			b.WriteString(styles.FaintText.Render("  rest day"))
			b.WriteString("\n")
			continue
		}

		for sessIdx, session := range day.Sessions {
			marker := "  "
			line := fmt.Sprintf("%s %s  %s", session.Time, session.Subject, session.Topic)

			style := styles.Text
			if done[completionKey(day.Day, sessIdx)] {
				style = styles.FaintText
				marker = styles.SuccessText.Render("✓ ")
			}
			if dayIdx == m.scheduleView.dayIndex && sessIdx == m.scheduleView.sessionIndex {
				style = styles.Selected
				marker = "> "
			}

			b.WriteString("  ")
			b.WriteString(marker)
			b.WriteString(style.Render(truncate(line, 60)))
			b.WriteString("\n")
		}
	}

	if len(schedule.Tips) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Tip: "))
		b.WriteString(styles.FaintText.Render(truncate(schedule.Tips[0], 64)))
	}

	return styles.Panel.Width(70).Render(strings.TrimRight(b.String(), "\n"))
}

func completionKey(day string, index int) string {
	return fmt.Sprintf("%s#%d", strings.ToLower(day), index)
}

func completionSet(completions []backend.Completion) map[string]bool {
	set := make(map[string]bool, len(completions))
	for _, completion := range completions {
		set[completionKey(completion.Day, completion.SessionIndex)] = true
	}
	return set
}

// Messages

type completeResultMsg struct {
	subject string
	already bool
	err     error
}

type scheduleActionMsg struct {
	schedule *backend.Schedule
	err      error
}

// handleCompleteResult surfaces the completion outcome in the notice line.
func (m Model) handleCompleteResult(msg completeResultMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.already:
		m.setNotice("Already completed")
	case msg.err != nil:
		m.setNotice(errorMessage(msg.err))
	default:
		m.setNotice("Marked " + msg.subject + " complete")
	}
	return m, nil
}

func (m Model) handleScheduleAction(msg scheduleActionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setNotice(errorMessage(msg.err))
		return m, nil
	}
	m.setNotice("New schedule accepted")
	if msg.schedule != nil && m.store != nil {
		// Show the fresh schedule immediately rather than waiting a poll.
		m.store.Update(msg.schedule, nil, m.snapshot.Reminders, m.snapshot.EmotionLogs, nil)
	}
	return m, nil
}

// Commands

func completeSessionCmd(ctx context.Context, client *backend.Client, completion backend.Completion) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		_, err := client.MarkSessionComplete(reqCtx, completion)
		if errors.Is(err, backend.ErrAlreadyCompleted) {
			return completeResultMsg{subject: completion.Subject, already: true}
		}
		return completeResultMsg{subject: completion.Subject, err: err}
	}
}

// regenerateScheduleCmd asks the inference service for a fresh plan over the
// current schedule's subjects, then stores it as the new active schedule.
func regenerateScheduleCmd(ctx context.Context, client *backend.Client, current *backend.Schedule) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
		defer cancel()

		start := time.Now()
		request := backend.ScheduleRequest{
			Subjects:  current.Subjects,
			StartDate: start.Format("2006-01-02"),
			EndDate:   start.AddDate(0, 0, 6).Format("2006-01-02"),
		}
		generated, err := client.GenerateSchedule(reqCtx, request)
		if err != nil {
			return scheduleActionMsg{err: err}
		}

		draft := backend.ScheduleDraft{
			Subjects:   current.Subjects,
			WeeklyPlan: generated.WeeklyPlan,
			TotalHours: generated.TotalHours,
			Tips:       generated.Tips,
			Priorities: generated.Priorities,
			StartDate:  request.StartDate,
			EndDate:    request.EndDate,
		}
		accepted, err := client.AcceptSchedule(reqCtx, draft)
		return scheduleActionMsg{schedule: accepted, err: err}
	}
}

// errorMessage maps backend errors to the fixed user-facing strings.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "Something went wrong. Please try again."
}
