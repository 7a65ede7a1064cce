package dbwait

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWait_RequiresDriverAndDSN(t *testing.T) {
	err := Wait(context.Background(), Config{DSN: ":memory:"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver is required")

	err = Wait(context.Background(), Config{Driver: "sqlite3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dsn is required")
}

func TestWait_ReachableDatabaseReturnsImmediately(t *testing.T) {
	start := time.Now()

	err := Wait(context.Background(), Config{
		Driver: "sqlite3",
		DSN:    ":memory:",
	})

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWait_UnreachableDatabaseTimesOut(t *testing.T) {
	// Port 1 refuses connections; the wait must give up at the deadline and
	// surface the last ping error.
	err := Wait(context.Background(), Config{
		Driver:       "postgres",
		DSN:          "postgres://bootstrap@127.0.0.1:1/app?sslmode=disable&connect_timeout=1",
		Timeout:      300 * time.Millisecond,
		PollInterval: 50 * time.Millisecond,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not reachable")
}

func TestWait_CancelledContextStopsWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Wait(ctx, Config{
		Driver:       "postgres",
		DSN:          "postgres://bootstrap@127.0.0.1:1/app?sslmode=disable&connect_timeout=1",
		Timeout:      10 * time.Second,
		PollInterval: 50 * time.Millisecond,
	})

	require.Error(t, err)
}

func TestWait_UnknownDriverFails(t *testing.T) {
	err := Wait(context.Background(), Config{
		Driver:  "oracle",
		DSN:     "whatever",
		Timeout: 200 * time.Millisecond,
	})

	require.Error(t, err)
}
