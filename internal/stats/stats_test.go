package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/mindsyncapp/mindsync/internal/backend"
	"github.com/mindsyncapp/mindsync/internal/journal"
)

func entry(subject string, endedAt time.Time, seconds int) journal.Entry {
	return journal.Entry{
		Subject:         subject,
		StartedAt:       endedAt.Add(-time.Duration(seconds) * time.Second),
		EndedAt:         endedAt,
		DurationSeconds: seconds,
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC) // Monday

	entries := []journal.Entry{
		entry("Algebra", now.Add(-2*time.Hour), 3600),
		entry("Algebra", now.Add(-30*time.Minute), 1800),
		entry("History", now.AddDate(0, 0, -1), 7200),
		entry("Biology", now.AddDate(0, 0, -3), 1800),
		entry("Algebra", now.AddDate(0, 0, -10), 9000), // outside the week
	}

	summary := Summarize(entries, now)

	if summary.StudySecondsToday != 5400 {
		t.Fatalf("StudySecondsToday = %d, want 5400", summary.StudySecondsToday)
	}
	if summary.StudySecondsYesterday != 7200 {
		t.Fatalf("StudySecondsYesterday = %d, want 7200", summary.StudySecondsYesterday)
	}
	if summary.WeeklyStudySeconds != 5400+7200+1800 {
		t.Fatalf("WeeklyStudySeconds = %d, want %d", summary.WeeklyStudySeconds, 5400+7200+1800)
	}

	wantSubjects := []SubjectHours{
		{Subject: "History", Hours: 2},
		{Subject: "Algebra", Hours: 1.5},
		{Subject: "Biology", Hours: 0.5},
	}
	if !reflect.DeepEqual(summary.SubjectBreakdown, wantSubjects) {
		t.Fatalf("SubjectBreakdown = %+v, want %+v", summary.SubjectBreakdown, wantSubjects)
	}

	if len(summary.WeeklyProgress) != 7 {
		t.Fatalf("len(WeeklyProgress) = %d, want 7", len(summary.WeeklyProgress))
	}
	if summary.WeeklyProgress[0].Day != "Tuesday" {
		t.Fatalf("WeeklyProgress starts on %q, want Tuesday", summary.WeeklyProgress[0].Day)
	}
	last := summary.WeeklyProgress[6]
	if last.Day != "Monday" || last.Hours != 1.5 {
		t.Fatalf("WeeklyProgress[6] = %+v, want 1.5h on Monday", last)
	}
	if summary.WeeklyProgress[5].Hours != 2 { // Sunday
		t.Fatalf("WeeklyProgress[5] = %+v, want 2h", summary.WeeklyProgress[5])
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC))
	if summary.StudySecondsToday != 0 || summary.WeeklyStudySeconds != 0 {
		t.Fatalf("empty summary has nonzero totals: %+v", summary)
	}
	if len(summary.WeeklyProgress) != 7 {
		t.Fatalf("len(WeeklyProgress) = %d, want 7", len(summary.WeeklyProgress))
	}
}

func TestFocusScore(t *testing.T) {
	cases := []struct {
		name                          string
		study, goal, completed, total int
		want                          int
	}{
		{"no goal", 3600, 0, 1, 1, 0},
		{"no schedule uses study alone", 7200, 14400, 0, 0, 50},
		{"half study full completion", 7200, 14400, 3, 3, 75},
		{"study capped at goal", 20000, 14400, 0, 0, 100},
		{"nothing done", 0, 14400, 0, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FocusScore(tc.study, tc.goal, tc.completed, tc.total)
			if got != tc.want {
				t.Fatalf("FocusScore(%d, %d, %d, %d) = %d, want %d",
					tc.study, tc.goal, tc.completed, tc.total, got, tc.want)
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func TestSummarizeEmotions(t *testing.T) {
	logs := []backend.EmotionLog{
		{Emotion: backend.EmotionJoy, FocusLevel: intPtr(8), StressLevel: intPtr(2)},
		{Emotion: backend.EmotionNeutral, FocusLevel: intPtr(5)},
		{Emotion: backend.EmotionJoy, StressLevel: intPtr(4)},
	}

	summary := SummarizeEmotions(logs)

	if summary.Latest != backend.EmotionJoy {
		t.Fatalf("Latest = %q, want joy", summary.Latest)
	}
	if summary.TotalLogs != 3 {
		t.Fatalf("TotalLogs = %d, want 3", summary.TotalLogs)
	}
	if summary.EmotionCounts[backend.EmotionJoy] != 2 || summary.EmotionCounts[backend.EmotionNeutral] != 1 {
		t.Fatalf("EmotionCounts = %v", summary.EmotionCounts)
	}
	if summary.AverageFocus != 7 { // round(13/2)
		t.Fatalf("AverageFocus = %d, want 7", summary.AverageFocus)
	}
	if summary.AverageStress != 3 {
		t.Fatalf("AverageStress = %d, want 3", summary.AverageStress)
	}
}

func TestSummarizeEmotions_Empty(t *testing.T) {
	summary := SummarizeEmotions(nil)
	if summary.Latest != "" || summary.TotalLogs != 0 {
		t.Fatalf("empty summary = %+v", summary)
	}
	if summary.AverageFocus != 0 || summary.AverageStress != 0 {
		t.Fatalf("averages without samples = %+v", summary)
	}
}
