package bloom

import (
	"log"
	"sync"
	"time"

	"github.com/mindsyncapp/mindsync/internal/statefile"
)

const (
	stateKey   = "bloom"
	dateLayout = "2006-01-02"

	// DefaultDailyGoalSeconds is the study time needed for a full bloom: 4 hours.
	DefaultDailyGoalSeconds = 4 * 3600
)

// State is the persisted bloom snapshot. FullBloomDays is a lifetime count
// and never decreases; StreakDays counts consecutive full-bloom days ending
// yesterday or today.
type State struct {
	Progress          float64 `json:"progress"`
	StreakDays        int     `json:"streakDays"`
	FullBloomDays     int     `json:"fullBloomDays"`
	TodayStudySeconds int     `json:"todayStudySeconds"`
	LastRecordedDate  string  `json:"lastRecordedDate"`
}

// Tracker accumulates daily study time into a goal percentage and maintains
// the streak and full-bloom counters.
type Tracker struct {
	mu          sync.Mutex
	state       State
	store       statefile.Store
	goalSeconds int
	now         func() time.Time
	degraded    bool
}

// NewTracker returns a Tracker backed by store. goalSeconds <= 0 selects the
// default 4-hour goal.
func NewTracker(store statefile.Store, goalSeconds int) *Tracker {
	if goalSeconds <= 0 {
		goalSeconds = DefaultDailyGoalSeconds
	}
	return &Tracker{
		store:       store,
		goalSeconds: goalSeconds,
		now:         time.Now,
	}
}

// Restore loads the persisted snapshot and reconciles day boundaries. Run
// once at startup, before any AddStudyTime call.
//
// A snapshot recorded today restores verbatim. A snapshot from exactly
// yesterday keeps the streak only if yesterday reached 100%; anything older
// breaks the streak unconditionally. Today's counters always restart at zero
// on a new day, and FullBloomDays is never altered by rollover.
func (t *Tracker) Restore() {
	t.mu.Lock()
	defer t.mu.Unlock()

	var saved State
	ok, err := t.store.Load(stateKey, &saved)
	if err != nil {
		t.degradeLocked(err)
	}
	if !ok {
		return
	}

	now := t.now()
	today := now.Format(dateLayout)
	if saved.LastRecordedDate == today {
		t.state = saved
		return
	}

	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	streak := 0
	if saved.LastRecordedDate == yesterday && saved.Progress >= 100 {
		streak = saved.StreakDays
	}

	t.state = State{
		StreakDays:       streak,
		FullBloomDays:    saved.FullBloomDays,
		LastRecordedDate: today,
	}
	t.persistLocked()
}

// AddStudyTime credits deltaSeconds of study time to today and updates the
// derived counters. The goal-crossing check compares the previous progress
// strictly below 100 against the new progress at or above it, so the
// counters increment exactly once per day no matter how the time is split
// across calls.
func (t *Tracker) AddStudyTime(deltaSeconds int) {
	if deltaSeconds <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.TodayStudySeconds += deltaSeconds

	newProgress := float64(t.state.TodayStudySeconds) / float64(t.goalSeconds) * 100
	if newProgress > 100 {
		newProgress = 100
	}

	if t.state.Progress < 100 && newProgress >= 100 {
		t.state.FullBloomDays++
		t.state.StreakDays++
	}
	t.state.Progress = newProgress
	t.persistLocked()
}

// Snapshot returns a copy of the current bloom state.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// GoalSeconds reports the configured daily goal.
func (t *Tracker) GoalSeconds() int {
	return t.goalSeconds
}

func (t *Tracker) persistLocked() {
	t.state.LastRecordedDate = t.now().Format(dateLayout)
	if t.degraded {
		return
	}
	if err := t.store.Save(stateKey, t.state); err != nil {
		t.degradeLocked(err)
	}
}

func (t *Tracker) degradeLocked(err error) {
	if t.degraded {
		return
	}
	t.degraded = true
	log.Printf("bloom state storage unavailable, continuing in memory: %v", err)
}
