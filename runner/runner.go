// Package runner executes bootstrap phases as subprocesses with inherited
// standard streams.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/getpup/bootstrap-orchestrator"
)

// Exit codes used when a phase never produced one of its own, following the
// shell convention: 126 for a command that cannot be started, 127 for a
// command that cannot be found.
const (
	exitStartFailure = 126
	exitNotFound     = 127
)

// Runner invokes phases synchronously with inherited standard streams.
type Runner struct{}

// Compile-time check that Runner implements bootstrap.Invoker.
var _ bootstrap.Invoker = (*Runner)(nil)

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Invoke runs the phase command to completion and returns its exit code.
//
// The subprocess inherits the orchestrator's stdin, stdout, and stderr, so
// operators see the native output of the tool. Termination signals received
// while the phase runs are forwarded to the subprocess, so a supervisor's
// stop request reaches the migration tool directly.
//
// A non-zero exit code is returned with a nil error; the caller decides what
// a failure means. An error is returned only when the command never ran or
// could not be waited on, with the conventional 126/127 code attached.
func (r *Runner) Invoke(ctx context.Context, phase bootstrap.Phase) (int, error) {
	if len(phase.Command) == 0 {
		return exitStartFailure, fmt.Errorf("phase %s has no command", phase.Name)
	}

	cmd := exec.CommandContext(ctx, phase.Command[0], phase.Command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return exitNotFound, fmt.Errorf("command not found: %s: %w", phase.Command[0], err)
		}
		return exitStartFailure, fmt.Errorf("failed to start %s: %w", phase.Command[0], err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	for {
		select {
		case sig := <-sigs:
			_ = cmd.Process.Signal(sig)
		case err := <-done:
			return exitStatus(err)
		}
	}
}

// exitStatus decodes the result of Cmd.Wait into an exit code. A subprocess
// terminated by a signal maps to 128+signal, matching what a shell would
// report (137 for SIGKILL).
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}

	return exitStartFailure, fmt.Errorf("failed waiting for command: %w", err)
}
