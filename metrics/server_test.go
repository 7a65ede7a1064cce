package metrics

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_CreatesServerWithAddress(t *testing.T) {
	server := NewServer(":9999")

	assert.NotNil(t, server)
	assert.NotNil(t, server.server)
	assert.Equal(t, ":9999", server.server.Addr)
}

func TestServer_StartAndShutdown(t *testing.T) {
	server := NewServer(":9998")

	server.Start()

	// Give the server a moment to start
	time.Sleep(100 * time.Millisecond)

	assert.NoError(t, server.Err())

	resp, err := http.Get("http://localhost:9998/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	assert.NoError(t, err)
}

func TestServer_MetricsEndpointReturnsPrometheusFormat(t *testing.T) {
	server := NewServer(":9997")

	server.Start()

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}()

	// Give the server a moment to start
	time.Sleep(100 * time.Millisecond)

	resp, err := http.Get("http://localhost:9997/metrics")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
}

func TestServer_ErrReturnsStartupErrors(t *testing.T) {
	server1 := NewServer(":9996")
	server1.Start()

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server1.Shutdown(ctx)
	}()

	// Give it time to bind
	time.Sleep(100 * time.Millisecond)

	// A second server on the same port must fail to bind
	server2 := NewServer(":9996")
	server2.Start()

	time.Sleep(100 * time.Millisecond)

	assert.Error(t, server2.Err())
}
