package platform

import (
	"log/slog"

	"github.com/aretw0/tagnote/pkg/core"
)

// Adapter names accepted by WithAdapter.
const (
	AdapterFS     = "fs"
	AdapterMemory = "memory"
)

// options holds the internal configuration for the tagnote service.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	adapter      string
	mustExist    bool
	readOnly     bool
	forceTemp    bool
	systemDir    string
	errorHandler func(error)
}

// Option defines a functional option for configuring tagnote.
type Option func(*options)

func defaultOptions() *options {
	return &options{adapter: AdapterFS}
}

func apply(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for the service and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository injects a custom storage adapter.
// If provided, the adapter selected by WithAdapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter selects the storage adapter by name ("fs" or "memory").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithMustExist requires the vault directory to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithReadOnly opens the vault without write access.
// Save, Delete and tag changes fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithForceTemp re-roots the vault under the system temp directory.
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithSystemDir sets the hidden directory name used for caches.
// Defaults to ".tagnote".
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.systemDir = name
	}
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
