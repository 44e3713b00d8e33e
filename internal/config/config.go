package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields MindSync needs to reach its backend and lay out
// local data.
type Config struct {
	APIURL           string
	APIKey           string
	DataDir          string
	DailyGoalSeconds int
	PollInterval     time.Duration
	ReminderInterval time.Duration
}

const (
	defaultConfigPath       = "~/.config/mindsync/config.toml"
	defaultDataDir          = "~/.local/share/mindsync"
	defaultAPIURL           = "http://127.0.0.1:8787"
	defaultDailyGoalSeconds = 4 * 3600
	defaultPollSeconds      = 30
	defaultReminderSeconds  = 30
	maxReminderSeconds      = 60
)

// Load locates and parses the MindSync config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIURL:           defaultAPIURL,
		DataDir:          mustExpand(defaultDataDir),
		DailyGoalSeconds: defaultDailyGoalSeconds,
		PollInterval:     defaultPollSeconds * time.Second,
		ReminderInterval: defaultReminderSeconds * time.Second,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL           string `toml:"api_url"`
		APIKey           string `toml:"api_key"`
		DataDir          string `toml:"data_dir"`
		DailyGoalSeconds int    `toml:"daily_goal_seconds"`
		PollSeconds      int    `toml:"poll_seconds"`
		ReminderSeconds  int    `toml:"reminder_poll_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.APIURL); url != "" {
		cfg.APIURL = url
	}
	cfg.APIKey = strings.TrimSpace(raw.APIKey)

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}

	if raw.DailyGoalSeconds > 0 {
		cfg.DailyGoalSeconds = raw.DailyGoalSeconds
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.ReminderSeconds > 0 {
		seconds := raw.ReminderSeconds
		if seconds > maxReminderSeconds {
			seconds = maxReminderSeconds
		}
		cfg.ReminderInterval = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}

// StateDir returns the directory holding timer and streak state files.
func (c Config) StateDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return filepath.Join(mustExpand(defaultDataDir), "state")
	}
	return filepath.Join(c.DataDir, "state")
}

// JournalDir returns the directory holding the local session journal.
func (c Config) JournalDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir)
	}
	return c.DataDir
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
