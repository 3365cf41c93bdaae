package taskcall

import (
	"log/slog"
	"time"

	"github.com/taskcall/taskcall/ext"
	"github.com/taskcall/taskcall/middleware"
	"github.com/taskcall/taskcall/task"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher) error

// Dispatcher parses invocation strings and routes them to registered task
// handlers. Create one with New() and functional options, register tasks,
// then call Execute.
//
// The registry is expected to be populated at startup and treated as
// read-only afterward; Execute is safe for concurrent callers.
type Dispatcher struct {
	config     Config
	logger     *slog.Logger
	registry   *task.Registry
	extensions *ext.Registry
	mw         middleware.Middleware

	// Collected by options, consumed by New.
	pendingExts []ext.Extension
	userMws     []middleware.Middleware
}

// New creates a new Dispatcher with the given options.
func New(opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	if d.registry == nil {
		d.registry = task.NewRegistry(d.logger)
	}

	d.extensions = ext.NewRegistry(d.logger)
	for _, e := range d.pendingExts {
		d.extensions.Register(e)
	}
	d.pendingExts = nil

	// Built-in stack runs outermost-first: recover, tracing, metrics,
	// logging, timeout, then any user middleware.
	defaultMws := []middleware.Middleware{
		middleware.Recover(d.logger),
		middleware.Tracing(),
		middleware.Metrics(),
		middleware.Logging(d.logger),
		middleware.Timeout(d.logger),
	}
	allMws := make([]middleware.Middleware, 0, len(defaultMws)+len(d.userMws))
	allMws = append(allMws, defaultMws...)
	allMws = append(allMws, d.userMws...)
	d.userMws = nil
	d.mw = middleware.Chain(allMws...)

	return d, nil
}

// Logger returns the dispatcher's logger.
func (d *Dispatcher) Logger() *slog.Logger { return d.logger }

// Registry returns the dispatcher's task registry.
func (d *Dispatcher) Registry() *task.Registry { return d.registry }

// Extensions returns the dispatcher's extension registry.
func (d *Dispatcher) Extensions() *ext.Registry { return d.extensions }

// Config returns a copy of the dispatcher's configuration.
func (d *Dispatcher) Config() Config { return d.config }

// WithLogger sets the structured logger for the dispatcher.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) error {
		d.logger = l
		return nil
	}
}

// WithRegistry sets a pre-built task registry, for callers that share one
// registry across dispatchers.
func WithRegistry(r *task.Registry) Option {
	return func(d *Dispatcher) error {
		d.registry = r
		return nil
	}
}

// WithMiddleware appends middleware to the dispatcher's chain, after the
// built-in recover, tracing, metrics, logging, and timeout middleware.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(d *Dispatcher) error {
		d.userMws = append(d.userMws, mws...)
		return nil
	}
}

// WithExtension registers an extension with the dispatcher.
func WithExtension(e ext.Extension) Option {
	return func(d *Dispatcher) error {
		d.pendingExts = append(d.pendingExts, e)
		return nil
	}
}

// WithStrictArguments makes Execute fail the whole invocation when the
// argument list cannot be decoded, instead of dispatching with zero
// arguments.
func WithStrictArguments() Option {
	return func(d *Dispatcher) error {
		d.config.StrictArguments = true
		return nil
	}
}

// WithCallTimeout sets a deadline applied to every handler execution.
func WithCallTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) error {
		d.config.CallTimeout = timeout
		return nil
	}
}
