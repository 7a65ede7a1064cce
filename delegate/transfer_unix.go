//go:build unix

package delegate

import (
	"fmt"
	"os"
	"syscall"

	"github.com/getpup/bootstrap-orchestrator"
)

// transfer replaces the current process image with the delegate.
func transfer(path string, argv []string) (int, error) {
	if err := syscall.Exec(path, argv, os.Environ()); err != nil {
		return bootstrap.ExitDelegateStartFailure,
			fmt.Errorf("%w: exec %s: %v", bootstrap.ErrDelegateStart, path, err)
	}

	// Unreachable: Exec does not return on success.
	return bootstrap.ExitSuccess, nil
}
