// Package app provides the orchestration layer for the MindSync application.
//
// # Overview
//
// This package wires together configuration, local persistence, background
// workers, and the UI to create the complete MindSync TUI experience. It
// serves as the composition root where all dependencies are initialized and
// connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/mindsync/config.toml
//  2. Load user preferences (theme, desktop notifications)
//  3. Open the state directory and the local session journal
//  4. Initialize the HTTP client for the record store and inference service
//  5. Restore the bloom tracker and focus timer from disk
//  6. Launch background workers (timer loop, data poller, reminder
//     scheduler, journal sync)
//  7. Start the TUI and block until user exits or context cancels
//
// # Components
//
//   - app.go: Main Run function and dependency wiring
//   - poller.go: Background goroutine that fetches the active schedule,
//     completions, reminders, and emotion logs periodically
//   - sync.go: Background goroutine that pushes locally recorded sessions
//     to the record store
//   - notify.go: Reminder alert delivery (UI queue plus optional desktop)
//
// # Polling Behavior
//
// The poller runs continuously in the background at a configurable interval
// (default: 30 seconds). On each tick it fetches remote data and updates the
// shared state.Store atomically. Errors are logged and polling continues;
// while the backend is unreachable the poll interval doubles per consecutive
// failure, capped at two minutes.
//
// The UI reads snapshots from the store at its own refresh rate (1 second).
// This separation keeps the UI responsive even during slow API calls.
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - State directory or journal database cannot be opened
//   - Backend client initialization failure (bad API URL)
//
// Recoverable errors (logged, work continues):
//   - Periodic fetch failures and network timeouts
//   - Journal sync push failures (entries retry on the next tick)
//   - State file write failures (timer and bloom degrade to memory-only)
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	opts := app.Options{
//		ConfigPath: "", // Use default
//	}
//
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatalf("mindsync failed: %v", err)
//	}
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal and focused.
// Business logic lives in domain packages (timer, bloom, remind, backend,
// journal, stats, state, ui). The app package simply connects these pieces
// with sensible defaults.
package app
