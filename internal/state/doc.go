// Package state provides thread-safe state management for the MindSync client.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing remote
// data (active schedule, completions, reminders, emotion logs) between the
// background poller and the UI. It also queues reminder alerts raised by the
// reminder scheduler until the UI drains them. It acts as the coordination
// point where background goroutines meet UI rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producers:                     Consumer (UI):
//	┌────────────────┐            ┌──────────────────┐
//	│ poller         │            │                  │
//	│ store.Update() │───────────→│ store.Snapshot() │
//	│                │  (mutex)   │                  │
//	│ reminder       │            │                  │
//	│ scheduler      │───────────→│ store.DrainAlerts│
//	│ store.PushAlert│            │                  │
//	└────────────────┘            └──────────────────┘
//
// The Store mediates between these independent goroutines, ensuring:
//   - Atomic updates (no partial/torn reads)
//   - No data races (mutex-protected access)
//   - Immutable snapshots (defensive copying)
//
// # Update Semantics
//
// The Update method has special error handling behavior:
//
//	// Success case: Replace entire snapshot
//	store.Update(schedule, completions, reminders, emotions, nil)
//	→ snapshot data replaced
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Error case: Keep old data, record error
//	store.Update(nil, nil, nil, nil, err)
//	→ snapshot data unchanged
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// This ensures the UI always has the most recent successful data to display,
// while also being informed of polling failures. IsOffline reports true once
// two consecutive polls have failed.
//
// # Defensive Copying
//
// Both Update and Snapshot perform deep copies to prevent shared state:
// slices are cloned, the schedule (including its weekly plan) is copied,
// and error values are wrapped rather than shared. The cost is negligible
// for the data sizes involved in a desktop client.
//
// # Reminder Alerts
//
// The reminder scheduler calls PushAlert when a reminder fires; the UI calls
// DrainAlerts on its refresh tick and shows whatever accumulated since the
// last drain. The Store also implements the scheduler's reminder source via
// Reminders, so fired reminders always reflect the latest poll.
//
// # Testing Considerations
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
//
// Snapshot() returns a zero Snapshot if never updated, and updates are atomic
// and immediately visible.
package state
