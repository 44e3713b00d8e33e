package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mindsyncapp/mindsync/internal/backend"
	"github.com/mindsyncapp/mindsync/internal/journal"
)

type fakeWriter struct {
	failOn   string
	received []backend.Session
}

func (f *fakeWriter) CreateSession(ctx context.Context, session backend.Session) error {
	if f.failOn != "" && session.ID == f.failOn {
		return errors.New("backend down")
	}
	f.received = append(f.received, session)
	return nil
}

func openSyncJournal(t *testing.T) *journal.Store {
	t.Helper()
	db, err := journal.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := journal.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	store, err := journal.New(db)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return store
}

func TestSyncOnce_PushesAndMarks(t *testing.T) {
	sessions := openSyncJournal(t)
	base := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	emotion := "joy"
	if _, err := sessions.RecordSession("Algebra", base, base.Add(time.Hour), 3600, &emotion); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if _, err := sessions.RecordSession("History", base.Add(2*time.Hour), base.Add(3*time.Hour), 3600, nil); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	writer := &fakeWriter{}
	syncOnce(context.Background(), sessions, writer)

	if len(writer.received) != 2 {
		t.Fatalf("pushed %d sessions, want 2", len(writer.received))
	}
	if writer.received[0].Emotion != "joy" {
		t.Fatalf("Emotion = %q, want joy", writer.received[0].Emotion)
	}
	if len(writer.received[0].Subjects) != 1 || writer.received[0].Subjects[0] != "Algebra" {
		t.Fatalf("Subjects = %#v, want [Algebra]", writer.received[0].Subjects)
	}

	pending, err := sessions.UnsyncedSessions(10)
	if err != nil {
		t.Fatalf("UnsyncedSessions: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending = %d, want 0 after sync", len(pending))
	}
}

func TestSyncOnce_StopsAtFirstFailure(t *testing.T) {
	sessions := openSyncJournal(t)
	base := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	firstID, err := sessions.RecordSession("Algebra", base, base.Add(time.Hour), 3600, nil)
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if _, err := sessions.RecordSession("History", base.Add(2*time.Hour), base.Add(3*time.Hour), 3600, nil); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	writer := &fakeWriter{failOn: firstID}
	syncOnce(context.Background(), sessions, writer)

	if len(writer.received) != 0 {
		t.Fatalf("pushed %d sessions, want 0 after leading failure", len(writer.received))
	}

	pending, err := sessions.UnsyncedSessions(10)
	if err != nil {
		t.Fatalf("UnsyncedSessions: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want both retained for retry", len(pending))
	}
}
