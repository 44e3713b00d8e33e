// Package ui implements the MindSync terminal user interface with Bubble Tea.
//
// # Overview
//
// The UI is a single Bubble Tea model with five views: dashboard, focus
// timer, weekly schedule, reminders, and mood check-in. A one-second tick
// drives refresh: each tick the model snapshots the timer engine, the bloom
// tracker, and the shared state store, and drains any reminder alerts the
// scheduler queued since the last tick.
//
// # Data Flow
//
// The UI never blocks on the network inside Update. Remote actions (marking
// a session complete, classifying a mood, regenerating a schedule) run as
// tea.Cmd functions and come back as typed messages. Remote reads arrive
// indirectly: the background poller writes to the state store and the tick
// picks them up.
//
// Dashboard statistics aggregate the local session journal. They reload on a
// slower cadence (30 seconds) and whenever a session is recorded, since
// aggregation hits SQLite.
//
// # Views
//
//   - Dashboard: today/weekly study time, bloom progress, streak, focus
//     score, per-subject bars, wellbeing summary
//   - Timer: clock, subject input, daily goal progress; stopping records
//     the session to the journal
//   - Schedule: weekly plan with completion markers; enter marks the
//     highlighted slot done, duplicates surface as "Already completed"
//   - Reminders: read-only list of what will fire locally
//   - Mood: free-text classify flow with spinner, then optional save
//
// # Theming
//
// Three built-in themes cycle with T and persist to the prefs file. Styles
// are derived from a small Theme palette struct; emotion labels get badge
// colors per theme.
package ui
