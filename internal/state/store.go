package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/mindsyncapp/mindsync/internal/backend"
)

// Snapshot represents the latest remote data available to the UI.
type Snapshot struct {
	Schedule            *backend.Schedule
	Completions         []backend.Completion
	Reminders           []backend.Reminder
	EmotionLogs         []backend.EmotionLog
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Alert is a reminder notification waiting to be shown in the UI.
type Alert struct {
	Title string
	Body  string
	At    time.Time
}

// Store coordinates concurrent updates to the snapshot and queues reminder
// alerts raised by the scheduler until the UI drains them.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	alerts   []Alert
}

// Update replaces the stored snapshot. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(schedule *backend.Schedule, completions []backend.Completion, reminders []backend.Reminder, emotions []backend.EmotionLog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Schedule = cloneSchedule(schedule)
	s.snapshot.Completions = cloneSlice(completions)
	s.snapshot.Reminders = cloneSlice(reminders)
	s.snapshot.EmotionLogs = cloneSlice(emotions)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Schedule = cloneSchedule(s.snapshot.Schedule)
	snap.Completions = cloneSlice(s.snapshot.Completions)
	snap.Reminders = cloneSlice(s.snapshot.Reminders)
	snap.EmotionLogs = cloneSlice(s.snapshot.EmotionLogs)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Reminders returns the active reminders from the latest snapshot.
func (s *Store) Reminders() []backend.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.snapshot.Reminders)
}

// PushAlert queues a reminder alert for the UI.
func (s *Store) PushAlert(title, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, Alert{Title: title, Body: body, At: time.Now()})
}

// DrainAlerts returns all queued alerts and clears the queue.
func (s *Store) DrainAlerts() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	drained := s.alerts
	s.alerts = nil
	return drained
}

func cloneSchedule(schedule *backend.Schedule) *backend.Schedule {
	if schedule == nil {
		return nil
	}
	dup := *schedule
	dup.Subjects = cloneSlice(schedule.Subjects)
	dup.Tips = cloneSlice(schedule.Tips)
	dup.Priorities = cloneSlice(schedule.Priorities)
	dup.WeeklyPlan = cloneSlice(schedule.WeeklyPlan)
	for i := range dup.WeeklyPlan {
		dup.WeeklyPlan[i].Sessions = cloneSlice(schedule.WeeklyPlan[i].Sessions)
	}
	return &dup
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
