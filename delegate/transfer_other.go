//go:build !unix

package delegate

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/getpup/bootstrap-orchestrator"
)

// transfer runs the delegate as a child with inherited streams, forwarding
// termination signals to it, and returns its exact exit code. There is no
// replace-process primitive on this platform; the child is still never
// supervised or restarted.
func transfer(path string, argv []string) (int, error) {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return bootstrap.ExitDelegateStartFailure,
			fmt.Errorf("%w: %s: %v", bootstrap.ErrDelegateStart, path, err)
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
			if err == nil {
				return bootstrap.ExitSuccess, nil
			}
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return exitErr.ExitCode(), nil
			}
			return bootstrap.ExitDelegateStartFailure,
				fmt.Errorf("%w: waiting for %s: %v", bootstrap.ErrDelegateStart, path, err)
		}
	}
}
