package taskcall

import "time"

// Config holds configuration for the Dispatcher.
type Config struct {
	// StrictArguments makes Execute fail when the argument list cannot
	// be decoded. When false (the default), a decode failure is logged
	// and the handler runs with zero arguments.
	StrictArguments bool

	// CallTimeout bounds each handler execution. Zero means no deadline;
	// a hung handler then hangs its caller's Execute indefinitely.
	CallTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		StrictArguments: false,
		CallTimeout:     0,
	}
}
