package app

import (
	"context"
	"fmt"

	"github.com/mindsyncapp/mindsync/internal/backend"
	"github.com/mindsyncapp/mindsync/internal/bloom"
	"github.com/mindsyncapp/mindsync/internal/config"
	"github.com/mindsyncapp/mindsync/internal/journal"
	"github.com/mindsyncapp/mindsync/internal/prefs"
	"github.com/mindsyncapp/mindsync/internal/remind"
	"github.com/mindsyncapp/mindsync/internal/state"
	"github.com/mindsyncapp/mindsync/internal/statefile"
	"github.com/mindsyncapp/mindsync/internal/timer"
	"github.com/mindsyncapp/mindsync/internal/ui"
)

// Options configure the MindSync application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/mindsync/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the MindSync TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = secondsToDuration(opts.PollEvery)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	files, err := statefile.NewDirStore(cfg.StateDir())
	if err != nil {
		return fmt.Errorf("init state dir: %w", err)
	}

	db, err := journal.Open(cfg.JournalDir())
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() { _ = db.Close() }()
	if err := journal.Migrate(db); err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	sessions, err := journal.New(db)
	if err != nil {
		return fmt.Errorf("init journal: %w", err)
	}

	client, err := backend.NewClient(cfg.APIURL, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	store := &state.Store{}

	streak := bloom.NewTracker(files, cfg.DailyGoalSeconds)
	streak.Restore()

	engine := timer.NewEngine(files, streak.AddStudyTime)
	engine.Restore()
	go engine.Run(ctx)

	// Start background workers before the UI so the first frame already has
	// data to show.
	StartPoller(ctx, store, client, cfg.PollInterval)
	refresh(ctx, store, client)

	notifier := newAlertNotifier(store, userPrefs.DesktopNotifications)
	scheduler := remind.NewScheduler(store, notifier, cfg.ReminderInterval)
	go scheduler.Run(ctx)

	StartJournalSync(ctx, sessions, client, cfg.PollInterval)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Timer:     engine,
		Bloom:     streak,
		Journal:   sessions,
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		PollTick:  cfg.PollInterval,
	}
	return ui.Run(uiOpts)
}
