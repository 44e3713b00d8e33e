package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/mindsyncapp/mindsync/internal/statefile"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestRestore_RunningTimerCatchesUp(t *testing.T) {
	store := statefile.NewMemStore()
	checkpoint := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	if err := store.Save(stateKey, State{
		ElapsedSeconds: 120,
		Tracking:       true,
		Paused:         false,
		LastCheckpoint: checkpoint,
	}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	var delivered int
	engine := NewEngine(store, func(delta int) { delivered += delta })
	engine.now = fixedClock(checkpoint.Add(45 * time.Second))
	engine.Restore()

	snap := engine.Snapshot()
	if snap.ElapsedSeconds != 165 {
		t.Fatalf("ElapsedSeconds = %d, want 165", snap.ElapsedSeconds)
	}
	if !snap.Tracking || snap.Paused {
		t.Fatalf("state = %+v, want tracking and not paused", snap)
	}
	if delivered != 45 {
		t.Fatalf("sink received %d seconds, want 45", delivered)
	}
}

func TestRestore_PausedTimerDoesNotCatchUp(t *testing.T) {
	store := statefile.NewMemStore()
	checkpoint := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	if err := store.Save(stateKey, State{
		ElapsedSeconds: 90,
		Tracking:       true,
		Paused:         true,
		LastCheckpoint: checkpoint,
	}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	var delivered int
	engine := NewEngine(store, func(delta int) { delivered += delta })
	engine.now = fixedClock(checkpoint.Add(45 * time.Second))
	engine.Restore()

	snap := engine.Snapshot()
	if snap.ElapsedSeconds != 90 {
		t.Fatalf("ElapsedSeconds = %d, want 90", snap.ElapsedSeconds)
	}
	if delivered != 0 {
		t.Fatalf("sink received %d seconds, want 0", delivered)
	}
}

func TestRestore_NoSavedState(t *testing.T) {
	engine := NewEngine(statefile.NewMemStore(), nil)
	engine.Restore()

	snap := engine.Snapshot()
	if snap.ElapsedSeconds != 0 || snap.Tracking || snap.Paused {
		t.Fatalf("state = %+v, want zero state", snap)
	}
}

func TestTick_IncrementsOnlyWhileRunning(t *testing.T) {
	var delivered int
	engine := NewEngine(statefile.NewMemStore(), func(delta int) { delivered += delta })

	engine.tick()
	if got := engine.Snapshot().ElapsedSeconds; got != 0 {
		t.Fatalf("ElapsedSeconds after tick while stopped = %d, want 0", got)
	}

	engine.Start()
	engine.tick()
	engine.tick()
	if got := engine.Snapshot().ElapsedSeconds; got != 2 {
		t.Fatalf("ElapsedSeconds = %d, want 2", got)
	}
	if delivered != 2 {
		t.Fatalf("sink received %d seconds, want 2", delivered)
	}

	engine.Pause()
	engine.tick()
	if got := engine.Snapshot().ElapsedSeconds; got != 2 {
		t.Fatalf("ElapsedSeconds after tick while paused = %d, want 2", got)
	}

	engine.Resume()
	engine.tick()
	if got := engine.Snapshot().ElapsedSeconds; got != 3 {
		t.Fatalf("ElapsedSeconds after resume = %d, want 3", got)
	}
}

func TestStart_OnRunningTimerKeepsElapsed(t *testing.T) {
	engine := NewEngine(statefile.NewMemStore(), nil)
	engine.Start()
	engine.tick()
	engine.tick()
	engine.Start()

	snap := engine.Snapshot()
	if snap.ElapsedSeconds != 2 {
		t.Fatalf("ElapsedSeconds = %d, want 2 after idempotent restart", snap.ElapsedSeconds)
	}
	if !snap.Tracking || snap.Paused {
		t.Fatalf("state = %+v, want running", snap)
	}
}

func TestStop_ZeroesStateAndClearsStore(t *testing.T) {
	store := statefile.NewMemStore()
	engine := NewEngine(store, nil)
	engine.Start()
	engine.tick()
	engine.tick()
	engine.tick()

	elapsed := engine.Stop()
	if elapsed != 3 {
		t.Fatalf("Stop returned %d, want 3", elapsed)
	}

	snap := engine.Snapshot()
	if snap.ElapsedSeconds != 0 || snap.Tracking || snap.Paused {
		t.Fatalf("state after Stop = %+v, want zero state", snap)
	}

	var saved State
	ok, err := store.Load(stateKey, &saved)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatal("persisted snapshot survived Stop")
	}
}

func TestReset_ClearsLikeStop(t *testing.T) {
	store := statefile.NewMemStore()
	engine := NewEngine(store, nil)
	engine.Start()
	engine.tick()
	engine.Reset()

	if got := engine.Snapshot().ElapsedSeconds; got != 0 {
		t.Fatalf("ElapsedSeconds = %d, want 0", got)
	}
	var saved State
	if ok, _ := store.Load(stateKey, &saved); ok {
		t.Fatal("persisted snapshot survived Reset")
	}
}

func TestPersist_WritesFreshCheckpoint(t *testing.T) {
	store := statefile.NewMemStore()
	engine := NewEngine(store, nil)
	at := time.Date(2026, 3, 9, 12, 30, 0, 0, time.UTC)
	engine.now = fixedClock(at)

	engine.Start()

	var saved State
	ok, err := store.Load(stateKey, &saved)
	if err != nil || !ok {
		t.Fatalf("Load = (%v, %v), want saved snapshot", ok, err)
	}
	if !saved.LastCheckpoint.Equal(at) {
		t.Fatalf("LastCheckpoint = %v, want %v", saved.LastCheckpoint, at)
	}
}

// failStore errors on every operation to exercise degraded mode.
type failStore struct{}

func (failStore) Load(string, any) (bool, error) { return false, errors.New("disk gone") }
func (failStore) Save(string, any) error         { return errors.New("disk gone") }
func (failStore) Clear(string) error             { return errors.New("disk gone") }

func TestStorageFailure_DegradesToMemory(t *testing.T) {
	engine := NewEngine(failStore{}, nil)
	engine.Restore()
	engine.Start()
	engine.tick()
	engine.tick()

	if got := engine.Snapshot().ElapsedSeconds; got != 2 {
		t.Fatalf("ElapsedSeconds = %d, want 2 despite storage failure", got)
	}

	if elapsed := engine.Stop(); elapsed != 2 {
		t.Fatalf("Stop returned %d, want 2", elapsed)
	}
}
