package bootstrap

// Phase is one ordered step of the bootstrap sequence, such as applying
// pending schema migrations. Phases are immutable once defined; the sequence
// is fixed when the orchestrator is built, not at runtime.
type Phase struct {
	// Name identifies the phase in announcements and diagnostics.
	Name string

	// Command is the executable invocation: argv[0] and its arguments.
	Command []string
}

// State represents the lifecycle state of the orchestrator.
type State string

const (
	// StateStart indicates the orchestrator has been created but not run.
	StateStart State = "start"

	// StateMigrating indicates the phase pipeline is executing.
	StateMigrating State = "migrating"

	// StateMigrated indicates all phases completed successfully.
	StateMigrated State = "migrated"

	// StateDelegating indicates control is being transferred to the delegate.
	StateDelegating State = "delegating"

	// StateTransferred indicates the delegate now owns the process.
	// On platforms with a replace-process primitive this state is never
	// observed from inside the orchestrator, since its process image is gone.
	StateTransferred State = "transferred"

	// StateFailed indicates a phase or the delegation failed. Terminal.
	StateFailed State = "failed"
)

// Exit codes form the operational contract with container runtimes and
// process supervisors. A failing phase propagates its own exit code instead.
const (
	// ExitSuccess indicates every phase completed and delegation was initiated.
	ExitSuccess = 0

	// ExitDelegateStartFailure indicates the delegate executable exists but
	// could not be started.
	ExitDelegateStartFailure = 126

	// ExitDelegateNotFound indicates the delegate executable does not exist
	// or is not executable.
	ExitDelegateNotFound = 127
)

// Result is the terminal outcome of a bootstrap run.
//
// When control transfers to the delegate on a replace-process platform, no
// Result is ever observed: the orchestrator's process identity ends at that
// point. A Result therefore describes either an abort or, on spawn-fallback
// platforms, the delegate's own termination.
type Result struct {
	// State is the terminal state: StateTransferred or StateFailed.
	State State

	// FailedPhase names the phase that aborted the sequence, or "delegation"
	// if the delegate could not be started. Empty on success.
	FailedPhase string

	// ExitCode is the code the orchestrator process should exit with.
	ExitCode int
}
