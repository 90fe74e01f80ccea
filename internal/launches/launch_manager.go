package launches

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"launchdash.dev/internal/logging"
	"launchdash.dev/launchdb"
)

// Manager owns the launch records loaded at startup: the in-memory table that
// serves the charts, and its SQLite mirror used for aggregate statistics.
type Manager struct {
	source       string
	isLocalFile  bool
	table        *Table
	LaunchDB     *launchdb.Client
	loadedAt     time.Time
	loadDuration time.Duration
	config       Config
	shutdownOnce sync.Once
}

// Summary describes the loaded dataset.
type Summary struct {
	Source         string    `json:"source"`
	IsLocalFile    bool      `json:"isLocalFile"`
	LoadedAt       time.Time `json:"loadedAt"`
	LoadDurationMs float64   `json:"loadDurationMs"`
	LaunchCount    int       `json:"launchCount"`
	SiteCount      int       `json:"siteCount"`
	MinPayloadKg   float64   `json:"minPayloadKg"`
	MaxPayloadKg   float64   `json:"maxPayloadKg"`
}

// InitLaunchManager loads the dataset from config.DataURL, which can be either a URL
// or a local file path, and mirrors it into the launch database.
func InitLaunchManager(ctx context.Context, config Config) (*Manager, error) {
	start := time.Now()

	table, err := loadLaunchData(ctx, config)
	if err != nil {
		return nil, err
	}

	dbConfig := launchdb.NewConfig(config.DBPath, config.Env, config.Verbose)
	dbConfig.Logger = config.logger()
	db, err := launchdb.NewClient(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("error building launch database: %w", err)
	}

	if err := db.ImportLaunches(ctx, toCreateParams(table)); err != nil {
		logging.SafeCloseWithLogging(db, config.logger(), "launch_database")
		return nil, fmt.Errorf("error importing launches: %w", err)
	}

	manager := &Manager{
		source:       config.DataURL,
		isLocalFile:  config.isLocalFile(),
		table:        table,
		LaunchDB:     db,
		loadedAt:     time.Now(),
		loadDuration: time.Since(start),
		config:       config,
	}

	return manager, nil
}

func toCreateParams(table *Table) []launchdb.CreateLaunchParams {
	params := make([]launchdb.CreateLaunchParams, 0, table.Len())
	for i, l := range table.Launches() {
		params = append(params, launchdb.CreateLaunchParams{
			Position:               i,
			FlightNumber:           l.FlightNumber,
			LaunchSite:             l.LaunchSite,
			Class:                  l.Class,
			PayloadMassKg:          l.PayloadMassKg,
			BoosterVersion:         l.BoosterVersion,
			BoosterVersionCategory: l.BoosterVersionCategory,
		})
	}
	return params
}

// Shutdown releases the launch database. It is safe to call more than once.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		if manager.LaunchDB != nil {
			logging.SafeCloseWithLogging(manager.LaunchDB, manager.config.logger(), "launch_database")
		}
	})
}

func (manager *Manager) Table() *Table {
	return manager.table
}

func (manager *Manager) SiteStats(ctx context.Context) ([]launchdb.SiteStats, error) {
	return manager.LaunchDB.SiteStats(ctx)
}

func (manager *Manager) Summary() Summary {
	minPayload, maxPayload := manager.table.PayloadBounds()
	return Summary{
		Source:         manager.source,
		IsLocalFile:    manager.isLocalFile,
		LoadedAt:       manager.loadedAt,
		LoadDurationMs: float64(manager.loadDuration.Microseconds()) / 1000,
		LaunchCount:    manager.table.Len(),
		SiteCount:      len(manager.table.Sites()),
		MinPayloadKg:   minPayload,
		MaxPayloadKg:   maxPayload,
	}
}

func (manager *Manager) LogStatistics(logger *slog.Logger) {
	s := manager.Summary()
	logging.LogOperation(logger, "launch_data_loaded",
		slog.String("source", s.Source),
		slog.Bool("local_file", s.IsLocalFile),
		slog.Int("launch_count", s.LaunchCount),
		slog.Int("site_count", s.SiteCount),
		slog.Float64("min_payload_kg", s.MinPayloadKg),
		slog.Float64("max_payload_kg", s.MaxPayloadKg),
		slog.Duration("duration", manager.loadDuration),
		slog.String("component", "launch_manager"))
}
