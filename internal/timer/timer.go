package timer

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mindsyncapp/mindsync/internal/statefile"
)

const (
	stateKey     = "timer"
	tickInterval = time.Second
)

// State is the persisted timer snapshot. Paused is only meaningful while
// Tracking is true.
type State struct {
	ElapsedSeconds int       `json:"elapsedSeconds"`
	Tracking       bool      `json:"isTracking"`
	Paused         bool      `json:"isPaused"`
	LastCheckpoint time.Time `json:"lastCheckpoint"`
}

// Engine is the durable focus timer. It ticks at 1 Hz while running and
// persists a full snapshot with a fresh checkpoint on every state change so
// elapsed time survives process restarts.
type Engine struct {
	mu       sync.Mutex
	state    State
	store    statefile.Store
	sink     func(deltaSeconds int)
	now      func() time.Time
	degraded bool
}

// NewEngine returns an Engine backed by store. sink receives every
// elapsed-second delta the timer accumulates and may be nil.
func NewEngine(store statefile.Store, sink func(deltaSeconds int)) *Engine {
	return &Engine{
		store: store,
		sink:  sink,
		now:   time.Now,
	}
}

// Restore loads the persisted snapshot. When the timer was left running, the
// wall-clock gap since the last checkpoint is credited in whole seconds; a
// paused or stopped snapshot is restored verbatim.
func (e *Engine) Restore() {
	e.mu.Lock()

	var saved State
	ok, err := e.store.Load(stateKey, &saved)
	if err != nil {
		e.degradeLocked(err)
	}
	if !ok {
		e.mu.Unlock()
		return
	}

	catchUp := 0
	if saved.Tracking && !saved.Paused && !saved.LastCheckpoint.IsZero() {
		catchUp = int(e.now().Sub(saved.LastCheckpoint) / time.Second)
		if catchUp < 0 {
			catchUp = 0
		}
		saved.ElapsedSeconds += catchUp
	}
	e.state = saved
	e.persistLocked()
	e.mu.Unlock()

	if catchUp > 0 {
		e.emit(catchUp)
	}
}

// Start begins tracking. Starting an already-running timer simply resumes
// ticking from the current elapsed count.
func (e *Engine) Start() {
	e.mu.Lock()
	e.state.Tracking = true
	e.state.Paused = false
	e.persistLocked()
	e.mu.Unlock()
}

// Pause freezes the elapsed count.
func (e *Engine) Pause() {
	e.mu.Lock()
	e.state.Paused = true
	e.persistLocked()
	e.mu.Unlock()
}

// Resume continues ticking after a pause.
func (e *Engine) Resume() {
	e.mu.Lock()
	e.state.Paused = false
	e.persistLocked()
	e.mu.Unlock()
}

// Stop ends the session, zeroes the elapsed count, and removes the persisted
// snapshot. It returns the elapsed seconds at the moment of stopping so
// callers can record the finished session.
func (e *Engine) Stop() int {
	e.mu.Lock()
	elapsed := e.state.ElapsedSeconds
	e.clearLocked()
	e.mu.Unlock()
	return elapsed
}

// Reset has the same effect as Stop but carries no "session ended" meaning.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.clearLocked()
	e.mu.Unlock()
}

// Snapshot returns a copy of the current timer state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Run ticks the timer at 1 Hz until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

func (e *Engine) tick() {
	e.mu.Lock()
	if !e.state.Tracking || e.state.Paused {
		e.mu.Unlock()
		return
	}
	e.state.ElapsedSeconds++
	e.persistLocked()
	e.mu.Unlock()

	e.emit(1)
}

func (e *Engine) emit(deltaSeconds int) {
	if e.sink != nil && deltaSeconds > 0 {
		e.sink(deltaSeconds)
	}
}

func (e *Engine) persistLocked() {
	e.state.LastCheckpoint = e.now()
	if e.degraded {
		return
	}
	if err := e.store.Save(stateKey, e.state); err != nil {
		e.degradeLocked(err)
	}
}

func (e *Engine) clearLocked() {
	e.state = State{}
	if e.degraded {
		return
	}
	if err := e.store.Clear(stateKey); err != nil {
		e.degradeLocked(err)
	}
}

// degradeLocked switches the engine to in-memory-only operation. Storage
// trouble must never take the timer down.
func (e *Engine) degradeLocked(err error) {
	if e.degraded {
		return
	}
	e.degraded = true
	log.Printf("timer state storage unavailable, continuing in memory: %v", err)
}
