// Package backend provides the HTTP client for the MindSync cloud API.
//
// Two remote collaborators live behind one client: the record store (one
// logical table each for sessions, schedules, completions, reminders, and
// emotion logs) and the inference service (emotion classification and
// schedule generation). Both are exposed as interfaces, RecordStore and
// Inference, so the UI and tests can substitute stubs.
//
// # Error handling
//
// Responses with status >= 400 decode into *APIError, which classifies the
// failure: 400 invalid input, 402 quota exhausted, 429 rate limited, 5xx
// service failure. Errors are surfaced to the caller verbatim and are never
// retried by the client; the user decides whether to try again. Two
// distinguished outcomes are not failures at all: an absent active schedule
// returns (nil, nil), and a duplicate completion insert returns the
// ErrAlreadyCompleted sentinel so the UI can say "already done".
//
// All requests carry context for cancellation, bearer authentication when a
// key is configured, and a 15-second timeout.
package backend
