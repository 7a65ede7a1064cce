// Command entrypoint is the container bootstrap: it waits for the database,
// applies pending schema migrations, and then transfers process identity to
// the long-running service.
//
// Usage:
//
//	entrypoint [delegate command...]
//
// The arguments, if any, are the exact delegate command and are passed
// through unmodified. With no arguments the built-in default launch
// configuration is used: all interfaces, port 8000, reload-on-change enabled.
//
// Environment:
//
//	MIGRATE_BIN              migration tool (default: /app/migrate)
//	BOOTSTRAP_SKIP_MIGRATIONS=true  skip the migration phase
//	BOOTSTRAP_DB_DSN         enable the database wait with this DSN
//	BOOTSTRAP_DB_DRIVER      database driver for the wait (default: postgres)
//	BOOTSTRAP_DB_TIMEOUT     database wait deadline (default: 30s)
//	BOOTSTRAP_METRICS_ADDR   serve Prometheus metrics during bootstrap
//	SERVICE_BIN/HOST/PORT/RELOAD  default launch overrides
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/getpup/bootstrap-orchestrator"
	"github.com/getpup/bootstrap-orchestrator/dbwait"
	"github.com/getpup/bootstrap-orchestrator/delegate"
	"github.com/getpup/bootstrap-orchestrator/launch"
	"github.com/getpup/bootstrap-orchestrator/metrics"
	"github.com/getpup/bootstrap-orchestrator/pkg/version"
	"github.com/getpup/bootstrap-orchestrator/runner"
)

func main() {
	log.Printf("Starting bootstrap-orchestrator v%s", version.Version)

	ctx := context.Background()

	if addr := os.Getenv("BOOTSTRAP_METRICS_ADDR"); addr != "" {
		srv := metrics.NewServer(addr)
		srv.Start()
	}

	if dsn := os.Getenv("BOOTSTRAP_DB_DSN"); dsn != "" {
		cfg := dbwait.Config{
			Driver:  envOr("BOOTSTRAP_DB_DRIVER", "postgres"),
			DSN:     dsn,
			Timeout: envDuration("BOOTSTRAP_DB_TIMEOUT", 30*time.Second),
		}
		log.Printf("Waiting for %s database", cfg.Driver)
		if err := dbwait.Wait(ctx, cfg); err != nil {
			log.Printf("Database wait failed: %v", err)
			os.Exit(1)
		}
	}

	orch, err := bootstrap.New(
		bootstrap.WithPhases(buildPhases()...),
		bootstrap.WithArgs(os.Args[1:]),
		bootstrap.WithInvoker(runner.New()),
		bootstrap.WithTransfer(delegate.Transfer),
		bootstrap.WithLaunch(launch.FromEnv()),
	)
	if err != nil {
		log.Printf("Failed to create orchestrator: %v", err)
		os.Exit(1)
	}

	// On success Run does not return: the delegate owns the process.
	result, err := orch.Run(ctx)
	if err != nil {
		log.Printf("Bootstrap failed: %v", err)
	}
	os.Exit(result.ExitCode)
}

// buildPhases assembles the fixed phase pipeline from the environment. The
// environment decides whether a phase runs, never what the pipeline order is.
func buildPhases() []bootstrap.Phase {
	var phases []bootstrap.Phase

	if os.Getenv("BOOTSTRAP_SKIP_MIGRATIONS") != "true" {
		phases = append(phases, bootstrap.Phase{
			Name:    "migration",
			Command: []string{envOr("MIGRATE_BIN", "/app/migrate"), "up"},
		})
	}

	return phases
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
