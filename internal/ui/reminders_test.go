package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/mindsyncapp/mindsync/internal/backend"
	"github.com/mindsyncapp/mindsync/internal/config"
	"github.com/mindsyncapp/mindsync/internal/state"
)

func TestRenderRemindersShowsBothCadences(t *testing.T) {
	m := Model{
		theme:    GetTheme("Bloom"),
		cfg:      config.Config{ReminderInterval: 45 * time.Second},
		pollTick: 30 * time.Second,
	}
	m.snapshot = state.Snapshot{Reminders: []backend.Reminder{{
		ID:         "r1",
		Title:      "Morning review",
		TimeOfDay:  "08:30",
		DaysOfWeek: []string{"Monday"},
		Active:     true,
	}}}

	out := m.renderReminders()
	if !strings.Contains(out, "every 45s") {
		t.Fatalf("renderReminders() = %q, want the firing cadence %q", out, "every 45s")
	}
	if !strings.Contains(out, "every 30s") {
		t.Fatalf("renderReminders() = %q, want the refresh cadence %q", out, "every 30s")
	}
}

func TestNewPollTickDefaultsToConfig(t *testing.T) {
	m := New(Options{Config: config.Config{PollInterval: 20 * time.Second}})
	if m.pollTick != 20*time.Second {
		t.Fatalf("pollTick = %v, want %v", m.pollTick, 20*time.Second)
	}

	m = New(Options{PollTick: 5 * time.Second})
	if m.pollTick != 5*time.Second {
		t.Fatalf("pollTick = %v, want %v", m.pollTick, 5*time.Second)
	}
}
