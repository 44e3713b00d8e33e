package app

import (
	"context"
	"log"
	"time"

	"github.com/mindsyncapp/mindsync/internal/backend"
	"github.com/mindsyncapp/mindsync/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 2 * time.Minute
	recentEmotionLogs   = 50
)

// remoteReader is the slice of the record store the poller reads.
type remoteReader interface {
	ActiveSchedule(ctx context.Context) (*backend.Schedule, error)
	Completions(ctx context.Context, scheduleID string) ([]backend.Completion, error)
	Reminders(ctx context.Context) ([]backend.Reminder, error)
	EmotionLogs(ctx context.Context, limit int) ([]backend.EmotionLog, error)
}

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the backend is unreachable. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, client remoteReader, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(ctx, store, client)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure, capped
// at maxBackoff. Zero failures return the base interval unchanged.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

func refresh(ctx context.Context, store *state.Store, client remoteReader) {
	schedule, err := client.ActiveSchedule(ctx)
	if err != nil {
		store.Update(nil, nil, nil, nil, err)
		log.Printf("schedule poll failed: %v", err)
		return
	}

	var completions []backend.Completion
	if schedule != nil {
		completions, err = client.Completions(ctx, schedule.ID)
		if err != nil {
			store.Update(nil, nil, nil, nil, err)
			log.Printf("completions poll failed: %v", err)
			return
		}
	}

	reminders, err := client.Reminders(ctx)
	if err != nil {
		store.Update(nil, nil, nil, nil, err)
		log.Printf("reminders poll failed: %v", err)
		return
	}

	emotions, err := client.EmotionLogs(ctx, recentEmotionLogs)
	if err != nil {
		store.Update(nil, nil, nil, nil, err)
		log.Printf("emotion log poll failed: %v", err)
		return
	}

	store.Update(schedule, completions, reminders, emotions, nil)
}
