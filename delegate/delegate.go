// Package delegate performs process-identity transfer to the long-running
// service after bootstrap succeeds.
//
// The delegate must become the container's primary process so external
// supervisors deliver termination signals to it directly rather than to a
// wrapper. On unix the current process image is replaced; on other platforms
// the delegate runs as a signal-forwarded child and the orchestrator exits
// with its exact status, preserving the no-supervision invariant.
package delegate

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/getpup/bootstrap-orchestrator"
)

// Resolve locates the executable for the given delegate argv.
//
// A command that cannot be found maps to bootstrap.ErrDelegateNotFound; the
// caller must not fall back to the default launch, since that would mask a
// caller configuration error.
func Resolve(argv []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("%w: empty command", bootstrap.ErrDelegateStart)
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		// Non-existent and non-executable commands are both resolution
		// failures: the caller named something that cannot be run.
		return "", fmt.Errorf("%w: %s: %v", bootstrap.ErrDelegateNotFound, argv[0], err)
	}

	return path, nil
}

// Transfer hands the process over to the delegate command. The argv is passed
// through unmodified.
//
// On unix, Transfer does not return on success: the delegate inherits this
// process's pid, signal routing, and open file descriptors. On other
// platforms it returns the delegate's exit code once the delegate terminates.
// The delegate is never supervised or restarted.
func Transfer(argv []string) (int, error) {
	path, err := Resolve(argv)
	if err != nil {
		return ExitCode(err), err
	}

	return transfer(path, argv)
}

// ExitCode maps a delegation error to the reserved exit code contract:
// 127 for a delegate that cannot be found, 126 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return bootstrap.ExitSuccess
	}
	if errors.Is(err, bootstrap.ErrDelegateNotFound) {
		return bootstrap.ExitDelegateNotFound
	}
	return bootstrap.ExitDelegateStartFailure
}
