package bootstrap

import "errors"

var (
	// ErrDelegateNotFound indicates the caller-supplied delegate executable
	// does not exist or is not executable. The orchestrator never falls back
	// to the default launch configuration in this case, since that would mask
	// a caller configuration error.
	ErrDelegateNotFound = errors.New("delegate executable not found")

	// ErrDelegateStart indicates the delegate executable exists but could not
	// be started.
	ErrDelegateStart = errors.New("delegate failed to start")

	// ErrPhaseFailed indicates a phase exited non-zero or could not be
	// started. The phase's exit code is carried in the Result.
	ErrPhaseFailed = errors.New("bootstrap phase failed")
)
