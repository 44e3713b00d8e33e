// Package journal keeps a local SQLite history of completed focus sessions.
//
// The journal is what lets the dashboard show study-time statistics without
// a network round trip, and it doubles as the outbox for pushing sessions to
// the remote record store: entries start unsynced and are flagged once the
// upload succeeds. Timestamps are stored as RFC3339Nano text in UTC.
package journal
