package ui

import (
	"fmt"
	"strings"
)

// renderReminders renders the reminder list from the latest snapshot.
// Reminders are managed elsewhere; this view shows what will fire locally.
func (m Model) renderReminders() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render("Reminders"))
	b.WriteString("\n\n")

	if len(m.snapshot.Reminders) == 0 {
		message := "No reminders configured."
		if m.snapshot.IsOffline() {
			message = "Reminders unavailable while offline."
		}
		b.WriteString(styles.FaintText.Render(message))
		return styles.Panel.Width(60).Render(b.String())
	}

	for _, reminder := range m.snapshot.Reminders {
		titleStyle := styles.Text
		stateLabel := styles.SuccessText.Render("on ")
		if !reminder.Active {
			titleStyle = styles.FaintText
			stateLabel = styles.FaintText.Render("off")
		}

		b.WriteString(stateLabel)
		b.WriteString(" ")
		b.WriteString(styles.InfoText.Render(reminder.TimeOfDay))
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(truncate(reminder.Title, 28)))
		b.WriteString("  ")
		b.WriteString(styles.MutedText.Render(shortDays(reminder.DaysOfWeek)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(
		fmt.Sprintf("Checked every %s; list refreshes every %s.",
			m.cfg.ReminderInterval, m.pollTick)))

	return styles.Panel.Width(60).Render(b.String())
}

// shortDays compresses weekday names to a compact "Mon,Wed,Fri" form.
func shortDays(days []string) string {
	if len(days) == 7 {
		return "every day"
	}
	short := make([]string, 0, len(days))
	for _, day := range days {
		if len(day) > 3 {
			day = day[:3]
		}
		short = append(short, day)
	}
	return strings.Join(short, ",")
}
