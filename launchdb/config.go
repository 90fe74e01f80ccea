package launchdb

import (
	"log/slog"

	"launchdash.dev/internal/appconf"
)

// Config holds configuration options for the Client
type Config struct {
	DBPath  string // Path to SQLite database file, or ":memory:"
	Env     appconf.Environment
	Logger  *slog.Logger
	verbose bool
}

func NewConfig(dbPath string, env appconf.Environment, verbose bool) Config {
	return Config{
		DBPath:  dbPath,
		Env:     env,
		verbose: verbose,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
