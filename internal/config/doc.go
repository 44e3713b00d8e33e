// Package config handles loading and parsing MindSync configuration files.
//
// # Overview
//
// This package reads MindSync's TOML configuration to discover the backend
// API endpoint, credentials, and local data locations. All fields are
// optional; the client works out of the box with defaults.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/mindsync/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/mindsync/config.toml
//   - API endpoint: http://127.0.0.1:8787
//   - Data directory: ~/.local/share/mindsync
//   - Daily study goal: 14400 seconds (4 hours)
//   - Data poll interval: 30 seconds
//   - Reminder poll interval: 30 seconds (clamped to at most 60)
//
// # TOML Format
//
// Example config.toml:
//
//	api_url = "https://api.example.com"
//	api_key = "sk-..."
//	data_dir = "~/.local/share/mindsync"
//	daily_goal_seconds = 14400
//	poll_seconds = 30
//	reminder_poll_seconds = 30
//
// Tilde expansion is performed automatically on paths.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors. Missing
// config files are NOT an error.
//
// # Design Philosophy
//
// The config package is read-only and stateless. It loads configuration once
// at startup and returns an immutable Config struct. No global state or
// singleton patterns are used.
package config
