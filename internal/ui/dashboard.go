package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mindsyncapp/mindsync/internal/stats"
)

// renderDashboard renders the study statistics overview.
func (m Model) renderDashboard() string {
	styles := m.theme.Styles()

	today := m.renderTodayPanel(styles)
	week := m.renderWeekPanel(styles)
	mood := m.renderMoodPanel(styles)

	top := lipgloss.JoinHorizontal(lipgloss.Top, today, " ", week, " ", mood)

	subjects := m.renderSubjectsPanel(styles)

	return lipgloss.JoinVertical(lipgloss.Left, top, subjects)
}

func (m Model) renderTodayPanel(styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render("Today"))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("Study time  "))
	b.WriteString(styles.Text.Render(formatHours(m.summary.StudySecondsToday)))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("Yesterday   "))
	b.WriteString(styles.FaintText.Render(formatHours(m.summary.StudySecondsYesterday)))
	b.WriteString("\n\n")

	// Bloom progress toward the daily goal
	b.WriteString(styles.MutedText.Render("Bloom "))
	b.WriteString(styles.AccentText.Render(fmt.Sprintf("%3.0f%% ", m.bloomState.Progress)))
	b.WriteString(styles.Text.Render(progressBar(int(m.bloomState.Progress), 16)))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("Streak      "))
	b.WriteString(styles.Text.Render(fmt.Sprintf("%d days", m.bloomState.StreakDays)))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("Full blooms "))
	b.WriteString(styles.Text.Render(fmt.Sprintf("%d", m.bloomState.FullBloomDays)))
	b.WriteString("\n\n")

	completed, total := m.todayPlanCounts()
	score := stats.FocusScore(m.summary.StudySecondsToday, m.cfg.DailyGoalSeconds, completed, total)
	b.WriteString(styles.MutedText.Render("Focus score "))
	scoreStyle := styles.SuccessText
	if score < 40 {
		scoreStyle = styles.DangerText
	} else if score < 70 {
		scoreStyle = styles.WarningText
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d", score)))

	return styles.Panel.Width(30).Render(b.String())
}

func (m Model) renderWeekPanel(styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render("This week"))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("Total  "))
	b.WriteString(styles.Text.Render(formatHours(m.summary.WeeklyStudySeconds)))
	b.WriteString("\n\n")

	maxHours := 0.1
	for _, day := range m.summary.WeeklyProgress {
		if day.Hours > maxHours {
			maxHours = day.Hours
		}
	}

	for _, day := range m.summary.WeeklyProgress {
		label := day.Day
		if len(label) > 3 {
			label = label[:3]
		}
		width := int(day.Hours / maxHours * 14)
		b.WriteString(styles.MutedText.Render(label + " "))
		b.WriteString(styles.AccentText.Render(strings.Repeat("▇", width)))
		if day.Hours > 0 {
			b.WriteString(styles.FaintText.Render(fmt.Sprintf(" %.1f", day.Hours)))
		}
		b.WriteString("\n")
	}

	return styles.Panel.Width(30).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderMoodPanel(styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render("Wellbeing"))
	b.WriteString("\n\n")

	if m.emotions.TotalLogs == 0 {
		b.WriteString(styles.FaintText.Render("No mood check-ins yet.\nPress m to log one."))
		return styles.Panel.Width(28).Render(b.String())
	}

	b.WriteString(styles.MutedText.Render("Latest  "))
	b.WriteString(styles.EmotionStyle(m.emotions.Latest).Render(m.emotions.Latest))
	b.WriteString("\n\n")

	if m.emotions.AverageFocus > 0 {
		b.WriteString(styles.MutedText.Render("Avg focus   "))
		b.WriteString(styles.Text.Render(fmt.Sprintf("%d/10", m.emotions.AverageFocus)))
		b.WriteString("\n")
	}
	if m.emotions.AverageStress > 0 {
		b.WriteString(styles.MutedText.Render("Avg stress  "))
		b.WriteString(styles.Text.Render(fmt.Sprintf("%d/10", m.emotions.AverageStress)))
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedText.Render("Check-ins   "))
	b.WriteString(styles.Text.Render(fmt.Sprintf("%d", m.emotions.TotalLogs)))

	return styles.Panel.Width(28).Render(b.String())
}

func (m Model) renderSubjectsPanel(styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render("Subjects (7 days)"))
	b.WriteString("\n\n")

	if len(m.summary.SubjectBreakdown) == 0 {
		b.WriteString(styles.FaintText.Render("No sessions recorded yet. Press t to start the focus timer."))
		return styles.Panel.Width(90).Render(b.String())
	}

	maxHours := 0.1
	for _, subject := range m.summary.SubjectBreakdown {
		if subject.Hours > maxHours {
			maxHours = subject.Hours
		}
	}

	for _, subject := range m.summary.SubjectBreakdown {
		width := int(subject.Hours / maxHours * 40)
		b.WriteString(styles.Text.Render(fmt.Sprintf("%-16s ", truncate(subject.Subject, 16))))
		b.WriteString(styles.InfoText.Render(strings.Repeat("▇", width)))
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(" %.1fh", subject.Hours)))
		b.WriteString("\n")
	}

	return styles.Panel.Width(90).Render(strings.TrimRight(b.String(), "\n"))
}

// todayPlanCounts returns how many of today's scheduled sessions are done
// and how many exist, based on the latest snapshot.
func (m Model) todayPlanCounts() (completed, total int) {
	if m.snapshot.Schedule == nil {
		return 0, 0
	}
	today := time.Now().Weekday().String()
	for _, day := range m.snapshot.Schedule.WeeklyPlan {
		if !strings.EqualFold(day.Day, today) {
			continue
		}
		total = len(day.Sessions)
		break
	}
	for _, completion := range m.snapshot.Completions {
		if strings.EqualFold(completion.Day, today) {
			completed++
		}
	}
	return completed, total
}
