package host

import (
	"io"
	"log/slog"

	wz "github.com/autosplit-dev/autosplit-sdk/infrastructure/wazero"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithAdapterOptions configures the "env" host module.
func WithAdapterOptions(opts ...wz.AdapterOption) Option {
	return func(e *Executor) {
		e.adapterOpts = append(e.adapterOpts, opts...)
	}
}

// WithOutput routes the guest's WASI stdout and stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		if stdout != nil {
			e.stdout = stdout
		}
		if stderr != nil {
			e.stderr = stderr
		}
	}
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxOutput limits how much guest stderr each instance keeps for
// Instance.Stderr. It does not limit what is forwarded to WithOutput.
func WithMaxOutput(n int) Option {
	return func(e *Executor) {
		e.maxOutput = n
	}
}
