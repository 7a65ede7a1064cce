package runner

import (
	"context"
	"fmt"
	"testing"

	"github.com/getpup/bootstrap-orchestrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockInvoker_RecordsCalls(t *testing.T) {
	mock := NewMockInvoker()

	phase := bootstrap.Phase{Name: "migration", Command: []string{"/app/migrate", "up"}}
	code, err := mock.Invoke(context.Background(), phase)

	require.NoError(t, err)
	assert.Equal(t, 0, code)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, phase, calls[0])
}

func TestMockInvoker_UsesInvokeFunc(t *testing.T) {
	mock := NewMockInvoker()
	mock.InvokeFunc = func(ctx context.Context, phase bootstrap.Phase) (int, error) {
		return 42, fmt.Errorf("boom")
	}

	code, err := mock.Invoke(context.Background(), bootstrap.Phase{Name: "x"})

	require.Error(t, err)
	assert.Equal(t, 42, code)
	assert.Len(t, mock.Calls(), 1)
}

func TestMockInvoker_Reset(t *testing.T) {
	mock := NewMockInvoker()

	_, _ = mock.Invoke(context.Background(), bootstrap.Phase{Name: "a"})
	_, _ = mock.Invoke(context.Background(), bootstrap.Phase{Name: "b"})
	require.Len(t, mock.Calls(), 2)

	mock.Reset()

	assert.Empty(t, mock.Calls())
}
