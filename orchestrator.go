// Package bootstrap orchestrates container startup: it runs an ordered,
// fail-fast phase pipeline (database wait, schema migration) and then
// transfers process identity to the long-running service, so that a service
// never serves traffic against an unmigrated schema.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/getpup/bootstrap-orchestrator/launch"
	"github.com/getpup/bootstrap-orchestrator/metrics"
	"github.com/getpup/pupsourcing/es"
	"github.com/google/uuid"
)

// Invoker executes a single phase synchronously and reports its exit code.
// The phase's standard streams must be inherited from the orchestrator so
// operators see native tool output.
type Invoker interface {
	Invoke(ctx context.Context, phase Phase) (int, error)
}

// TransferFunc performs process-identity transfer to the given argv. On
// platforms with a replace-process primitive it does not return on success;
// elsewhere it runs the delegate to completion and returns its exit code.
type TransferFunc func(argv []string) (int, error)

// Option configures an Orchestrator.
type Option func(*config)

// config holds the internal configuration for creating an Orchestrator.
type config struct {
	phases         []Phase
	args           []string
	invoker        Invoker
	transfer       TransferFunc
	launch         launch.Config
	logger         es.Logger
	out            io.Writer
	metricsEnabled *bool
}

// Orchestrator runs the bootstrap sequence. Create one with New and run it
// once with Run; nothing survives past delegation.
type Orchestrator struct {
	config config
	runID  string
}

// New creates a new Orchestrator with the given options.
//
// Required options:
//   - WithInvoker: phase executor
//   - WithTransfer: process-identity transfer
//
// Optional configuration (with defaults):
//   - WithPhases: ordered phase pipeline (default: none)
//   - WithArgs: delegate command argv (default: empty, selects default launch)
//   - WithLaunch: default launch configuration (default: launch.DefaultConfig)
//   - WithLogger: logger for observability (default: nil)
//   - WithOutput: writer for phase announcements (default: os.Stdout)
//   - WithMetricsEnabled: enable Prometheus metrics (default: true)
//
// Example:
//
//	orch, err := bootstrap.New(
//	    bootstrap.WithPhases(bootstrap.Phase{Name: "migration", Command: []string{"/app/migrate", "up"}}),
//	    bootstrap.WithArgs(os.Args[1:]),
//	    bootstrap.WithInvoker(runner.New()),
//	    bootstrap.WithTransfer(delegate.Transfer),
//	)
//
// Returns an error if any required option is missing.
func New(opts ...Option) (*Orchestrator, error) {
	cfg := &config{
		launch: launch.DefaultConfig(),
		out:    os.Stdout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.invoker == nil {
		return nil, fmt.Errorf("invoker is required: use WithInvoker option")
	}
	if cfg.transfer == nil {
		return nil, fmt.Errorf("transfer is required: use WithTransfer option")
	}

	return &Orchestrator{
		config: *cfg,
		runID:  uuid.NewString(),
	}, nil
}

// WithPhases sets the ordered phase pipeline.
func WithPhases(phases ...Phase) Option {
	return func(c *config) {
		c.phases = phases
	}
}

// WithArgs sets the delegate command argv as supplied at startup. An empty
// argv selects the default launch configuration.
func WithArgs(args []string) Option {
	return func(c *config) {
		c.args = args
	}
}

// WithInvoker sets the phase executor.
func WithInvoker(invoker Invoker) Option {
	return func(c *config) {
		c.invoker = invoker
	}
}

// WithTransfer sets the process-identity transfer function.
func WithTransfer(transfer TransferFunc) Option {
	return func(c *config) {
		c.transfer = transfer
	}
}

// WithLaunch sets the default launch configuration used when no delegate
// argv is supplied.
func WithLaunch(cfg launch.Config) Option {
	return func(c *config) {
		c.launch = cfg
	}
}

// WithLogger sets the logger for observability.
func WithLogger(logger es.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithOutput sets the writer that receives phase announcements.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// WithMetricsEnabled enables or disables Prometheus metrics collection.
func WithMetricsEnabled(enabled bool) Option {
	return func(c *config) {
		c.metricsEnabled = &enabled
	}
}

// RunID returns the unique identifier for this bootstrap run, used for log
// correlation.
func (o *Orchestrator) RunID() string {
	return o.runID
}

// Run executes the phase pipeline in order and, if every phase succeeds,
// transfers process identity to the delegate.
//
// The first failing phase aborts the sequence: its exit code becomes the
// Result's exit code, no later phase runs, and delegation is never attempted.
// Phases are never retried; retrying a failed schema migration automatically
// is unsafe without idempotence guarantees the orchestrator cannot assume.
//
// On replace-process platforms Run does not return when delegation succeeds.
func (o *Orchestrator) Run(ctx context.Context) (Result, error) {
	o.logInfo(ctx, "bootstrap starting", "runID", o.runID, "phases", len(o.config.phases))

	for _, phase := range o.config.phases {
		fmt.Fprintf(o.config.out, "bootstrap: beginning %s\n", phase.Name)

		start := time.Now()
		code, err := o.config.invoker.Invoke(ctx, phase)
		o.observePhase(phase.Name, code, time.Since(start))

		if err != nil {
			o.logError(ctx, "phase could not run", "runID", o.runID, "phase", phase.Name, "error", err)
			return Result{State: StateFailed, FailedPhase: phase.Name, ExitCode: code},
				fmt.Errorf("%w: %s: %v", ErrPhaseFailed, phase.Name, err)
		}
		if code != 0 {
			o.logError(ctx, "phase failed", "runID", o.runID, "phase", phase.Name, "exitCode", code)
			return Result{State: StateFailed, FailedPhase: phase.Name, ExitCode: code},
				fmt.Errorf("%w: %s exited with code %d", ErrPhaseFailed, phase.Name, code)
		}

		o.logInfo(ctx, "phase complete", "runID", o.runID, "phase", phase.Name)
	}

	fmt.Fprintln(o.config.out, "bootstrap: beginning service delegation")

	argv := o.config.args
	mode := "delegate"
	if len(argv) == 0 {
		argv = o.config.launch.Command()
		mode = "default-launch"
	}
	o.observeDelegation(mode)
	o.logInfo(ctx, "transferring control", "runID", o.runID, "mode", mode, "command", argv[0])

	code, err := o.config.transfer(argv)
	if err != nil {
		o.logError(ctx, "delegation failed", "runID", o.runID, "error", err)
		return Result{State: StateFailed, FailedPhase: "delegation", ExitCode: code}, err
	}

	// Reached only on platforms where transfer spawns the delegate instead of
	// replacing the process image.
	return Result{State: StateTransferred, ExitCode: code}, nil
}

func (o *Orchestrator) metricsOn() bool {
	return o.config.metricsEnabled == nil || *o.config.metricsEnabled
}

func (o *Orchestrator) observePhase(name string, code int, elapsed time.Duration) {
	if !o.metricsOn() {
		return
	}
	outcome := "success"
	if code != 0 {
		outcome = "failure"
	}
	metrics.DefaultCollector.ObservePhase(name, outcome, elapsed)
}

func (o *Orchestrator) observeDelegation(mode string) {
	if !o.metricsOn() {
		return
	}
	metrics.DefaultCollector.IncDelegations(mode)
}

func (o *Orchestrator) logInfo(ctx context.Context, msg string, kv ...any) {
	if o.config.logger != nil {
		o.config.logger.Info(ctx, msg, kv...)
	}
}

func (o *Orchestrator) logError(ctx context.Context, msg string, kv ...any) {
	if o.config.logger != nil {
		o.config.logger.Error(ctx, msg, kv...)
	}
}
