// Package stats derives dashboard numbers from journal entries and emotion
// logs. Everything here is a pure function over already-fetched data.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/mindsyncapp/mindsync/internal/backend"
	"github.com/mindsyncapp/mindsync/internal/journal"
)

const dateLayout = "2006-01-02"

// SubjectHours is total study time for one subject.
type SubjectHours struct {
	Subject string
	Hours   float64
}

// DayHours is total study time for one calendar day.
type DayHours struct {
	Day   string // weekday name
	Hours float64
}

// Summary holds study-time aggregates for the dashboard.
type Summary struct {
	StudySecondsToday     int
	StudySecondsYesterday int
	WeeklyStudySeconds    int
	SubjectBreakdown      []SubjectHours
	WeeklyProgress        []DayHours
}

// Summarize aggregates the past week of journal entries relative to now.
// WeeklyProgress always holds seven entries, oldest day first, ending today.
func Summarize(entries []journal.Entry, now time.Time) Summary {
	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	weekStart := now.AddDate(0, 0, -6)

	var summary Summary
	bySubject := make(map[string]int)
	byDate := make(map[string]int)

	for _, entry := range entries {
		date := entry.EndedAt.Format(dateLayout)
		if entry.EndedAt.Before(startOfDay(weekStart)) {
			continue
		}
		summary.WeeklyStudySeconds += entry.DurationSeconds
		bySubject[entry.Subject] += entry.DurationSeconds
		byDate[date] += entry.DurationSeconds

		switch date {
		case today:
			summary.StudySecondsToday += entry.DurationSeconds
		case yesterday:
			summary.StudySecondsYesterday += entry.DurationSeconds
		}
	}

	for subject, seconds := range bySubject {
		summary.SubjectBreakdown = append(summary.SubjectBreakdown, SubjectHours{
			Subject: subject,
			Hours:   roundHours(seconds),
		})
	}
	sort.Slice(summary.SubjectBreakdown, func(i, j int) bool {
		a, b := summary.SubjectBreakdown[i], summary.SubjectBreakdown[j]
		if a.Hours != b.Hours {
			return a.Hours > b.Hours
		}
		return a.Subject < b.Subject
	})

	for offset := -6; offset <= 0; offset++ {
		day := now.AddDate(0, 0, offset)
		summary.WeeklyProgress = append(summary.WeeklyProgress, DayHours{
			Day:   day.Weekday().String(),
			Hours: roundHours(byDate[day.Format(dateLayout)]),
		})
	}

	return summary
}

// FocusScore blends today's study time against the daily goal with today's
// schedule completion ratio, each worth half, clamped to [0,100]. With no
// scheduled sessions the study-time half is simply doubled.
func FocusScore(studySecondsToday, goalSeconds, completedToday, totalToday int) int {
	if goalSeconds <= 0 {
		return 0
	}
	study := float64(studySecondsToday) / float64(goalSeconds)
	if study > 1 {
		study = 1
	}
	if totalToday <= 0 {
		return int(math.Round(study * 100))
	}
	completion := float64(completedToday) / float64(totalToday)
	if completion > 1 {
		completion = 1
	}
	return int(math.Round((study*0.5 + completion*0.5) * 100))
}

// EmotionSummary aggregates emotion logs for the wellbeing panel.
type EmotionSummary struct {
	Latest         string
	AverageFocus   int
	AverageStress  int
	EmotionCounts  map[string]int
	TotalLogs      int
}

// SummarizeEmotions aggregates logs, which arrive newest first.
func SummarizeEmotions(logs []backend.EmotionLog) EmotionSummary {
	summary := EmotionSummary{EmotionCounts: make(map[string]int)}
	if len(logs) == 0 {
		return summary
	}

	summary.Latest = logs[0].Emotion
	summary.TotalLogs = len(logs)

	var focusSum, focusCount, stressSum, stressCount int
	for _, entry := range logs {
		summary.EmotionCounts[entry.Emotion]++
		if entry.FocusLevel != nil {
			focusSum += *entry.FocusLevel
			focusCount++
		}
		if entry.StressLevel != nil {
			stressSum += *entry.StressLevel
			stressCount++
		}
	}
	if focusCount > 0 {
		summary.AverageFocus = int(math.Round(float64(focusSum) / float64(focusCount)))
	}
	if stressCount > 0 {
		summary.AverageStress = int(math.Round(float64(stressSum) / float64(stressCount)))
	}
	return summary
}

func startOfDay(at time.Time) time.Time {
	return time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
}

func roundHours(seconds int) float64 {
	return math.Round(float64(seconds)/3600*10) / 10
}
