package app

import (
	"context"
	"log"
	"time"

	"github.com/mindsyncapp/mindsync/internal/backend"
	"github.com/mindsyncapp/mindsync/internal/journal"
)

const syncBatchSize = 25

// sessionWriter is the slice of the record store the sync worker writes to.
type sessionWriter interface {
	CreateSession(ctx context.Context, session backend.Session) error
}

// StartJournalSync launches a background goroutine that pushes locally
// recorded sessions to the record store. Entries stay in the journal either
// way; syncing only flips their synced flag.
func StartJournalSync(ctx context.Context, sessions *journal.Store, client sessionWriter, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			syncOnce(ctx, sessions, client)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// syncOnce pushes one batch of unsynced sessions, stopping at the first
// failure so the batch retries intact on the next tick.
func syncOnce(ctx context.Context, sessions *journal.Store, client sessionWriter) {
	pending, err := sessions.UnsyncedSessions(syncBatchSize)
	if err != nil {
		log.Printf("journal sync: list pending: %v", err)
		return
	}

	for _, entry := range pending {
		if err := client.CreateSession(ctx, sessionFromEntry(entry)); err != nil {
			log.Printf("journal sync: push session %s: %v", entry.ID, err)
			return
		}
		if err := sessions.MarkSynced(entry.ID); err != nil {
			log.Printf("journal sync: mark synced %s: %v", entry.ID, err)
			return
		}
	}
}

func sessionFromEntry(entry journal.Entry) backend.Session {
	session := backend.Session{
		ID:              entry.ID,
		StartedAt:       entry.StartedAt,
		EndedAt:         entry.EndedAt,
		DurationSeconds: entry.DurationSeconds,
		Subjects:        []string{entry.Subject},
	}
	if entry.Emotion != nil {
		session.Emotion = *entry.Emotion
	}
	return session
}
