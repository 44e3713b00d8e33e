package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mindsyncapp/mindsync/internal/backend"
	"github.com/mindsyncapp/mindsync/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 30 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 30 * time.Second},
		{"negative failures", -1, 30 * time.Second},
		{"one failure", 1, time.Minute},
		{"two failures capped", 2, 2 * time.Minute},
		{"many failures capped", 10, 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 30 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type fakeRemote struct {
	schedule    *backend.Schedule
	completions []backend.Completion
	reminders   []backend.Reminder
	emotions    []backend.EmotionLog
	err         error

	completionCalls int
}

func (f *fakeRemote) ActiveSchedule(ctx context.Context) (*backend.Schedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedule, nil
}

func (f *fakeRemote) Completions(ctx context.Context, scheduleID string) ([]backend.Completion, error) {
	f.completionCalls++
	return f.completions, f.err
}

func (f *fakeRemote) Reminders(ctx context.Context) ([]backend.Reminder, error) {
	return f.reminders, f.err
}

func (f *fakeRemote) EmotionLogs(ctx context.Context, limit int) ([]backend.EmotionLog, error) {
	return f.emotions, f.err
}

func TestRefresh_PopulatesStore(t *testing.T) {
	remote := &fakeRemote{
		schedule:  &backend.Schedule{ID: "sched-1", Status: backend.ScheduleActive},
		reminders: []backend.Reminder{{ID: "rem-1"}},
		emotions:  []backend.EmotionLog{{Emotion: backend.EmotionJoy}},
	}
	store := &state.Store{}

	refresh(context.Background(), store, remote)

	snap := store.Snapshot()
	if snap.Schedule == nil || snap.Schedule.ID != "sched-1" {
		t.Fatalf("schedule = %#v, want sched-1", snap.Schedule)
	}
	if len(snap.Reminders) != 1 {
		t.Fatalf("reminders = %#v, want 1 entry", snap.Reminders)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
	if remote.completionCalls != 1 {
		t.Fatalf("completionCalls = %d, want 1", remote.completionCalls)
	}
}

func TestRefresh_SkipsCompletionsWithoutSchedule(t *testing.T) {
	remote := &fakeRemote{}
	store := &state.Store{}

	refresh(context.Background(), store, remote)

	if remote.completionCalls != 0 {
		t.Fatalf("completionCalls = %d, want 0 when no schedule is active", remote.completionCalls)
	}
	if store.Snapshot().LastError != nil {
		t.Fatalf("LastError = %v, want nil", store.Snapshot().LastError)
	}
}

func TestRefresh_RecordsFailure(t *testing.T) {
	remote := &fakeRemote{err: errors.New("backend down")}
	store := &state.Store{}

	refresh(context.Background(), store, remote)
	refresh(context.Background(), store, remote)

	snap := store.Snapshot()
	if snap.LastError == nil {
		t.Fatal("LastError = nil, want error")
	}
	if snap.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}
	if !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true after two failed polls")
	}
}
