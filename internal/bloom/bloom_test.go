package bloom

import (
	"math"
	"testing"
	"time"

	"github.com/mindsyncapp/mindsync/internal/statefile"
)

func trackerAt(t *testing.T, store statefile.Store, at time.Time) *Tracker {
	t.Helper()
	tracker := NewTracker(store, 0)
	tracker.now = func() time.Time { return at }
	tracker.Restore()
	return tracker
}

func TestAddStudyTime_SplitCrossingScenario(t *testing.T) {
	tracker := trackerAt(t, statefile.NewMemStore(), time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC))

	tracker.AddStudyTime(7200)
	snap := tracker.Snapshot()
	if snap.Progress != 50 {
		t.Fatalf("progress after 7200s = %v, want 50", snap.Progress)
	}
	if snap.FullBloomDays != 0 || snap.StreakDays != 0 {
		t.Fatalf("counters = %+v, want untouched", snap)
	}

	tracker.AddStudyTime(7199)
	snap = tracker.Snapshot()
	if math.Abs(snap.Progress-99.99305) > 0.001 {
		t.Fatalf("progress after 14399s = %v, want ~99.99", snap.Progress)
	}
	if snap.FullBloomDays != 0 || snap.StreakDays != 0 {
		t.Fatalf("counters incremented before goal: %+v", snap)
	}

	tracker.AddStudyTime(1)
	snap = tracker.Snapshot()
	if snap.Progress != 100 {
		t.Fatalf("progress after 14400s = %v, want 100", snap.Progress)
	}
	if snap.FullBloomDays != 1 || snap.StreakDays != 1 {
		t.Fatalf("counters = %+v, want both 1", snap)
	}
}

func TestAddStudyTime_CrossingIsIdempotentWithinDay(t *testing.T) {
	tracker := trackerAt(t, statefile.NewMemStore(), time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC))

	tracker.AddStudyTime(14400)
	tracker.AddStudyTime(3600)
	tracker.AddStudyTime(1)

	snap := tracker.Snapshot()
	if snap.FullBloomDays != 1 || snap.StreakDays != 1 {
		t.Fatalf("counters = %+v, want exactly one increment", snap)
	}
	if snap.Progress != 100 {
		t.Fatalf("progress = %v, want saturated at 100", snap.Progress)
	}
	if snap.TodayStudySeconds != 18001 {
		t.Fatalf("TodayStudySeconds = %d, want 18001", snap.TodayStudySeconds)
	}
}

func TestAddStudyTime_ProgressIsMonotoneAndSaturating(t *testing.T) {
	tracker := trackerAt(t, statefile.NewMemStore(), time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC))

	previous := 0.0
	for i := 0; i < 12; i++ {
		tracker.AddStudyTime(1800)
		snap := tracker.Snapshot()
		if snap.Progress < previous {
			t.Fatalf("progress decreased: %v -> %v", previous, snap.Progress)
		}
		if snap.Progress > 100 {
			t.Fatalf("progress exceeded 100: %v", snap.Progress)
		}
		previous = snap.Progress
	}
	if previous != 100 {
		t.Fatalf("final progress = %v, want 100", previous)
	}
}

func TestAddStudyTime_IgnoresNonPositiveDeltas(t *testing.T) {
	tracker := trackerAt(t, statefile.NewMemStore(), time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC))
	tracker.AddStudyTime(0)
	tracker.AddStudyTime(-60)
	if snap := tracker.Snapshot(); snap.TodayStudySeconds != 0 {
		t.Fatalf("TodayStudySeconds = %d, want 0", snap.TodayStudySeconds)
	}
}

func TestRestore_SameDayRestoresVerbatim(t *testing.T) {
	store := statefile.NewMemStore()
	day := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	first := trackerAt(t, store, day)
	first.AddStudyTime(5400)
	want := first.Snapshot()

	second := trackerAt(t, store, day.Add(6*time.Hour))
	got := second.Snapshot()
	if got != want {
		t.Fatalf("restored state = %+v, want %+v", got, want)
	}
}

func TestRestore_YesterdayBloomedKeepsStreak(t *testing.T) {
	store := statefile.NewMemStore()
	yesterday := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)

	first := trackerAt(t, store, yesterday)
	first.state.StreakDays = 4
	first.state.FullBloomDays = 9
	first.AddStudyTime(14400)

	second := trackerAt(t, store, yesterday.AddDate(0, 0, 1))
	got := second.Snapshot()
	if got.StreakDays != 5 {
		t.Fatalf("StreakDays = %d, want 5 carried over", got.StreakDays)
	}
	if got.FullBloomDays != 10 {
		t.Fatalf("FullBloomDays = %d, want 10 untouched by rollover", got.FullBloomDays)
	}
	if got.Progress != 0 || got.TodayStudySeconds != 0 {
		t.Fatalf("today counters = %+v, want reset", got)
	}
}

func TestRestore_YesterdayFellShortBreaksStreak(t *testing.T) {
	store := statefile.NewMemStore()
	yesterday := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)

	first := trackerAt(t, store, yesterday)
	first.state.StreakDays = 4
	first.state.FullBloomDays = 9
	first.AddStudyTime(7200)

	second := trackerAt(t, store, yesterday.AddDate(0, 0, 1))
	got := second.Snapshot()
	if got.StreakDays != 0 {
		t.Fatalf("StreakDays = %d, want 0", got.StreakDays)
	}
	if got.FullBloomDays != 9 {
		t.Fatalf("FullBloomDays = %d, want 9 untouched", got.FullBloomDays)
	}
}

func TestRestore_GapBreaksStreakEvenAfterBloom(t *testing.T) {
	store := statefile.NewMemStore()
	lastUse := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)

	first := trackerAt(t, store, lastUse)
	first.state.StreakDays = 11
	first.state.FullBloomDays = 30
	first.AddStudyTime(14400)

	second := trackerAt(t, store, lastUse.AddDate(0, 0, 3))
	got := second.Snapshot()
	if got.StreakDays != 0 {
		t.Fatalf("StreakDays = %d, want 0 after gap", got.StreakDays)
	}
	if got.FullBloomDays != 31 {
		t.Fatalf("FullBloomDays = %d, want 31 untouched", got.FullBloomDays)
	}
	if got.Progress != 0 || got.TodayStudySeconds != 0 {
		t.Fatalf("today counters = %+v, want reset", got)
	}
}

func TestRestore_NewDayCanBloomAgain(t *testing.T) {
	store := statefile.NewMemStore()
	yesterday := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)

	first := trackerAt(t, store, yesterday)
	first.AddStudyTime(14400)

	second := trackerAt(t, store, yesterday.AddDate(0, 0, 1))
	second.AddStudyTime(14400)
	got := second.Snapshot()
	if got.FullBloomDays != 2 {
		t.Fatalf("FullBloomDays = %d, want 2", got.FullBloomDays)
	}
	if got.StreakDays != 2 {
		t.Fatalf("StreakDays = %d, want 2", got.StreakDays)
	}
}

func TestNewTracker_CustomGoal(t *testing.T) {
	tracker := NewTracker(statefile.NewMemStore(), 600)
	tracker.now = func() time.Time { return time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC) }
	tracker.Restore()

	tracker.AddStudyTime(300)
	if got := tracker.Snapshot().Progress; got != 50 {
		t.Fatalf("progress = %v, want 50 against 600s goal", got)
	}
	tracker.AddStudyTime(300)
	snap := tracker.Snapshot()
	if snap.Progress != 100 || snap.FullBloomDays != 1 {
		t.Fatalf("state = %+v, want bloom at custom goal", snap)
	}
}
