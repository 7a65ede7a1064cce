// Package dbwait blocks until the service database accepts connections.
//
// Containers regularly start before their database does; running the
// migration phase against an unreachable database fails the whole bootstrap
// for no reason, so the entrypoint polls the database first.
package dbwait

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Config configures the database wait.
type Config struct {
	// Driver is the database/sql driver name: postgres, mysql, or sqlite3 (required).
	Driver string

	// DSN is the connection string (required).
	DSN string

	// Timeout bounds the whole wait (default: 30s).
	Timeout time.Duration

	// PollInterval is the delay between connection attempts (default: 1s).
	PollInterval time.Duration
}

// Wait opens the database and pings it until it responds or the timeout
// elapses. On timeout the last ping error is returned wrapped.
func Wait(ctx context.Context, cfg Config) error {
	if cfg.Driver == "" {
		return fmt.Errorf("driver is required")
	}
	if cfg.DSN == "" {
		return fmt.Errorf("dsn is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = time.Second
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		if lastErr = db.PingContext(ctx); lastErr == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("database not reachable after %s: %w", cfg.Timeout, lastErr)
		case <-ticker.C:
		}
	}
}
