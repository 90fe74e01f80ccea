package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"launchdash.dev/internal/app"
	"launchdash.dev/internal/appconf"
	"launchdash.dev/internal/launches"
	"launchdash.dev/internal/logging"
	"launchdash.dev/internal/restapi"
	"launchdash.dev/internal/webui"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewLogger(os.Stdout, cfg.Env, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.LogError(logger, "server exited with error", err)
		stop()
		os.Exit(1)
	}
}

// parseConfig reads command-line flags. Settings from an optional -config
// YAML file apply only where the matching flag was not given.
func parseConfig(args []string) (appconf.Config, error) {
	cfg := appconf.DefaultConfig()

	var envFlag, configPath string
	fs := flag.NewFlagSet("launchdash", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	fs.StringVar(&envFlag, "env", cfg.Env.String(), "Environment (development|test|production)")
	fs.StringVar(&cfg.DataURL, "data-url", cfg.DataURL, "URL or local path of the launch records CSV")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path for the launch mirror")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second allowed per client (negative disables limiting)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging")
	fs.StringVar(&configPath, "config", "", "Optional YAML config file")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)

	if configPath != "" {
		explicit := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) {
			explicit[f.Name] = true
		})

		fileConfig, err := appconf.LoadFile(configPath)
		if err != nil {
			return cfg, err
		}
		fileConfig.ApplyTo(&cfg, explicit)
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid port %d", cfg.Port)
	}

	return cfg, nil
}

// run loads the dataset and serves the dashboard until ctx is cancelled.
func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) error {
	launchConfig := launches.Config{
		DataURL: cfg.DataURL,
		DBPath:  cfg.DBPath,
		Env:     cfg.Env,
		Verbose: cfg.Verbose,
		Logger:  logger,
	}

	manager, err := launches.InitLaunchManager(ctx, launchConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize launch manager: %w", err)
	}
	defer manager.Shutdown()

	manager.LogStatistics(logger)

	application := &app.Application{
		Config:        cfg,
		LaunchConfig:  launchConfig,
		Logger:        logger,
		LaunchManager: manager,
	}

	api := restapi.NewRestAPI(application)
	defer api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      buildHandler(api, webui.NewWebUI(application)),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}

	logger.Info("starting server", "addr", ln.Addr().String(), "env", cfg.Env.String())
	return serve(ctx, srv, ln, logger)
}

// serve runs srv on ln until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
