package journal

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	store, err := New(db)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return store
}

func TestRecordAndRecentSessions(t *testing.T) {
	store := openTestStore(t)
	started := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	emotion := "joy"
	first, err := store.RecordSession("Algebra", started, started.Add(30*time.Minute), 1800, &emotion)
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	second, err := store.RecordSession("History", started.Add(time.Hour), started.Add(2*time.Hour), 3600, nil)
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if first == second {
		t.Fatal("RecordSession returned duplicate ids")
	}

	entries, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Subject != "History" {
		t.Fatalf("newest first: got %q", entries[0].Subject)
	}
	if entries[1].Emotion == nil || *entries[1].Emotion != "joy" {
		t.Fatalf("emotion = %v, want joy", entries[1].Emotion)
	}
	if entries[0].Emotion != nil {
		t.Fatalf("emotion = %v, want nil", entries[0].Emotion)
	}
	if !entries[1].StartedAt.Equal(started) {
		t.Fatalf("StartedAt = %v, want %v", entries[1].StartedAt, started)
	}
}

func TestRecordSession_RejectsNonPositiveDuration(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RecordSession("Algebra", time.Now(), time.Now(), 0, nil); err == nil {
		t.Fatal("RecordSession with zero duration returned nil error")
	}
}

func TestTotalsByDay(t *testing.T) {
	store := openTestStore(t)
	monday := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	mustRecord := func(start time.Time, seconds int) {
		t.Helper()
		if _, err := store.RecordSession("Algebra", start, start.Add(time.Duration(seconds)*time.Second), seconds, nil); err != nil {
			t.Fatalf("RecordSession: %v", err)
		}
	}
	mustRecord(monday, 1800)
	mustRecord(monday.Add(4*time.Hour), 1200)
	mustRecord(monday.AddDate(0, 0, 1), 3600)
	mustRecord(monday.AddDate(0, 0, -10), 900) // outside the window

	totals, err := store.TotalsByDay(monday.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("TotalsByDay: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("len(totals) = %d, want 2: %+v", len(totals), totals)
	}
	if totals[0].Date != "2026-03-09" || totals[0].Seconds != 3000 {
		t.Fatalf("totals[0] = %+v, want 3000s on 2026-03-09", totals[0])
	}
	if totals[1].Date != "2026-03-10" || totals[1].Seconds != 3600 {
		t.Fatalf("totals[1] = %+v, want 3600s on 2026-03-10", totals[1])
	}
}

func TestUnsyncedAndMarkSynced(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	oldID, err := store.RecordSession("Algebra", base, base.Add(time.Hour), 3600, nil)
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	newID, err := store.RecordSession("History", base.Add(2*time.Hour), base.Add(3*time.Hour), 3600, nil)
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	pending, err := store.UnsyncedSessions(10)
	if err != nil {
		t.Fatalf("UnsyncedSessions: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != oldID {
		t.Fatalf("pending = %+v, want oldest first", pending)
	}

	if err := store.MarkSynced(oldID); err != nil {
		t.Fatalf("MarkSynced: %v", err)
	}

	pending, err = store.UnsyncedSessions(10)
	if err != nil {
		t.Fatalf("UnsyncedSessions: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != newID {
		t.Fatalf("pending after sync = %+v, want only the new session", pending)
	}
}

func TestMarkSynced_UnknownIDErrors(t *testing.T) {
	store := openTestStore(t)
	if err := store.MarkSynced("no-such-id"); err == nil {
		t.Fatal("MarkSynced for unknown id returned nil error")
	}
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := Migrate(db); err != nil {
		t.Fatalf("first Migrate: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}
