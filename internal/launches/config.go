package launches

import (
	"log/slog"
	"strings"

	"launchdash.dev/internal/appconf"
)

type Config struct {
	DataURL string // http(s) URL or local path of the CSV
	DBPath  string // SQLite path for the launch mirror
	Env     appconf.Environment
	Verbose bool
	Logger  *slog.Logger
}

func (config Config) isLocalFile() bool {
	return !strings.HasPrefix(config.DataURL, "http://") && !strings.HasPrefix(config.DataURL, "https://")
}

func (config Config) logger() *slog.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	return slog.Default()
}
