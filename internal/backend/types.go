package backend

import "time"

// Emotion labels returned by the classifier.
const (
	EmotionJoy      = "joy"
	EmotionSadness  = "sadness"
	EmotionAnger    = "anger"
	EmotionFear     = "fear"
	EmotionSurprise = "surprise"
	EmotionNeutral  = "neutral"
)

// Schedule lifecycle states.
const (
	ScheduleActive    = "active"
	ScheduleCompleted = "completed"
	ScheduleExpired   = "expired"
)

// Session describes a single focus-timer run stored in the record store.
type Session struct {
	ID              string    `json:"id"`
	StartedAt       time.Time `json:"startedAt"`
	EndedAt         time.Time `json:"endedAt"`
	DurationSeconds int       `json:"durationSeconds"`
	Subjects        []string  `json:"subjects"`
	Emotion         string    `json:"emotion,omitempty"`
}

// Subject is one entry in a schedule request: a course with a weekly target.
type Subject struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	HoursPerWeek float64 `json:"hoursPerWeek"`
	Deadline     string  `json:"deadline,omitempty"`
}

// PlanSession is one slot inside a day plan.
type PlanSession struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	Type    string `json:"type"`
}

// DayPlan holds the ordered session slots for one weekday.
type DayPlan struct {
	Day      string        `json:"day"`
	Sessions []PlanSession `json:"sessions"`
}

// Schedule is a stored 7-day study plan. At most one schedule per user is
// active at a time; the record store enforces that invariant on accept.
type Schedule struct {
	ID         string    `json:"id"`
	Subjects   []Subject `json:"subjects"`
	WeeklyPlan []DayPlan `json:"weeklyPlan"`
	TotalHours float64   `json:"totalHours"`
	Tips       []string  `json:"tips"`
	Priorities []string  `json:"priorities"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Status     string    `json:"status"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
}

// ScheduleDraft is the payload for accepting a generated schedule.
type ScheduleDraft struct {
	Subjects   []Subject `json:"subjects"`
	WeeklyPlan []DayPlan `json:"weeklyPlan"`
	TotalHours float64   `json:"totalHours"`
	Tips       []string  `json:"tips"`
	Priorities []string  `json:"priorities"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
}

// Completion records one finished schedule slot. The record store holds a
// uniqueness constraint on (schedule, day, session index).
type Completion struct {
	ID              string `json:"id"`
	ScheduleID      string `json:"scheduleId"`
	Day             string `json:"day"`
	SessionIndex    int    `json:"sessionIndex"`
	Subject         string `json:"subject"`
	DurationSeconds int    `json:"durationSeconds"`
	CompletedAt     string `json:"completedAt"`
}

// Reminder is a user-defined study reminder evaluated locally by the
// scheduler. TimeOfDay uses HH:MM; DaysOfWeek holds weekday names.
type Reminder struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	TimeOfDay  string   `json:"time"`
	DaysOfWeek []string `json:"daysOfWeek"`
	Active     bool     `json:"isActive"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

// ReminderDraft is the payload for creating or updating a reminder.
type ReminderDraft struct {
	Title      string   `json:"title"`
	TimeOfDay  string   `json:"time"`
	DaysOfWeek []string `json:"daysOfWeek"`
	Active     bool     `json:"isActive"`
}

// EmotionLog is one append-only mood entry.
type EmotionLog struct {
	ID          string  `json:"id"`
	SessionID   string  `json:"sessionId,omitempty"`
	Emotion     string  `json:"emotion"`
	Confidence  float64 `json:"confidence"`
	FocusLevel  *int    `json:"focusLevel,omitempty"`
	StressLevel *int    `json:"stressLevel,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Source      string  `json:"source"`
	CreatedAt   string  `json:"createdAt"`
}

// EmotionLogDraft is the payload for appending an emotion log.
type EmotionLogDraft struct {
	SessionID   string  `json:"sessionId,omitempty"`
	Emotion     string  `json:"emotion"`
	Confidence  float64 `json:"confidence"`
	FocusLevel  *int    `json:"focusLevel,omitempty"`
	StressLevel *int    `json:"stressLevel,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Source      string  `json:"source"`
}

// EmotionResult is the classifier's typed output.
type EmotionResult struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
	Motivation string  `json:"motivation,omitempty"`
}

// ScheduleRequest carries the inputs for schedule generation.
type ScheduleRequest struct {
	Subjects    []Subject `json:"subjects"`
	Constraints string    `json:"constraints,omitempty"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
}

// GeneratedSchedule is the generator's typed output: a 7-entry weekly plan
// plus free-text guidance.
type GeneratedSchedule struct {
	WeeklyPlan []DayPlan `json:"weeklyPlan"`
	TotalHours float64   `json:"totalHours"`
	Tips       []string  `json:"tips"`
	Priorities []string  `json:"priorities"`
}
