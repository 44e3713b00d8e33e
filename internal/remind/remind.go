package remind

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mindsyncapp/mindsync/internal/backend"
)

const (
	// DefaultPollInterval balances precision against wakeups. The poll must
	// stay at or below one minute or a matching minute could be skipped.
	DefaultPollInterval = 30 * time.Second
	maxPollInterval     = time.Minute

	// firedTTL is how long a reminder stays in cooldown after firing. It
	// covers the matching minute so repeated polls cannot re-fire.
	firedTTL = time.Minute
)

// Notifier receives the alert side effect when a reminder fires.
type Notifier interface {
	Notify(title, body string)
}

// Source supplies the current reminder definitions. The scheduler only reads
// reminders; it never mutates them.
type Source interface {
	Reminders() []backend.Reminder
}

// Scheduler evaluates reminders against wall-clock time on a fixed cadence.
// Each reminder fires at most once per matching minute, enforced by an
// in-memory cooldown that is never persisted.
type Scheduler struct {
	mu       sync.Mutex
	source   Source
	notifier Notifier
	interval time.Duration
	now      func() time.Time
	cooldown map[string]time.Time
}

// NewScheduler builds a Scheduler. A non-positive interval selects the
// default; intervals above one minute are clamped down to it.
func NewScheduler(source Source, notifier Notifier, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if interval > maxPollInterval {
		interval = maxPollInterval
	}
	return &Scheduler{
		source:   source,
		notifier: notifier,
		interval: interval,
		now:      time.Now,
		cooldown: make(map[string]time.Time),
	}
}

// Run polls until ctx is cancelled. One check happens immediately on start.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check()
		}
	}
}

func (s *Scheduler) check() {
	s.evaluate(s.now(), s.source.Reminders())
}

func (s *Scheduler) evaluate(now time.Time, reminders []backend.Reminder) {
	weekday := now.Weekday().String()
	minute := now.Format("15:04")

	s.mu.Lock()
	for id, until := range s.cooldown {
		if !now.Before(until) {
			delete(s.cooldown, id)
		}
	}

	var fired []backend.Reminder
	for _, reminder := range reminders {
		if !reminder.Active {
			continue
		}
		if !matchesDay(reminder.DaysOfWeek, weekday) {
			continue
		}
		if timeOfDay(reminder.TimeOfDay) != minute {
			continue
		}
		if until, cooling := s.cooldown[reminder.ID]; cooling && now.Before(until) {
			continue
		}
		s.cooldown[reminder.ID] = now.Add(firedTTL)
		fired = append(fired, reminder)
	}
	s.mu.Unlock()

	for _, reminder := range fired {
		s.notifier.Notify(reminder.Title, "Time to start your study session!")
	}
}

func matchesDay(days []string, weekday string) bool {
	for _, day := range days {
		if strings.EqualFold(strings.TrimSpace(day), weekday) {
			return true
		}
	}
	return false
}

// timeOfDay normalizes a reminder time to minute resolution, tolerating an
// HH:MM:SS value from the record store.
func timeOfDay(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > 5 {
		trimmed = trimmed[:5]
	}
	return trimmed
}
