package app

import (
	"os/exec"
	"time"

	"github.com/mindsyncapp/mindsync/internal/state"
)

func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// alertNotifier queues fired reminders for the UI and optionally forwards
// them to the desktop via notify-send.
type alertNotifier struct {
	store   *state.Store
	desktop bool
}

func newAlertNotifier(store *state.Store, desktop bool) *alertNotifier {
	return &alertNotifier{store: store, desktop: desktop}
}

// Notify records the alert. Desktop delivery is best effort; a missing
// notify-send binary is not an error worth surfacing.
func (n *alertNotifier) Notify(title, body string) {
	n.store.PushAlert(title, body)
	if !n.desktop {
		return
	}
	if path, err := exec.LookPath("notify-send"); err == nil {
		_ = exec.Command(path, title, body).Start()
	}
}
