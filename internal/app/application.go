package app

import (
	"log/slog"

	"launchdash.dev/internal/appconf"
	"launchdash.dev/internal/launches"
)

// Application holds the dependencies shared by the HTTP handlers, helpers
// and middleware of the REST API and the web UI.
type Application struct {
	Config        appconf.Config
	LaunchConfig  launches.Config
	Logger        *slog.Logger
	LaunchManager *launches.Manager
}
