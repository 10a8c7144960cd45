package tagnote

import (
	"log/slog"

	"github.com/aretw0/tagnote/internal/platform"
	"github.com/aretw0/tagnote/pkg/core"
)

// --- Types ---

type (
	Note      = core.Note
	NoteData  = core.NoteData
	Tag       = core.Tag
	Option    = core.Option
	Registry  = core.Registry
	Service   = core.Service
	Callbacks = core.Callbacks
	Event     = core.Event
)

// --- Configuration ---

// ServiceOption defines a functional option for configuring tagnote.
type ServiceOption = platform.Option

// Adapter names.
const (
	AdapterFS     = platform.AdapterFS
	AdapterMemory = platform.AdapterMemory
)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) ServiceOption {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) ServiceOption {
	return platform.WithAdapter(name)
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) ServiceOption {
	return platform.WithMustExist(must)
}

// WithReadOnly opens the vault without write access.
func WithReadOnly(enabled bool) ServiceOption {
	return platform.WithReadOnly(enabled)
}

// WithForceTemp forces the use of a temporary directory.
func WithForceTemp(force bool) ServiceOption {
	return platform.WithForceTemp(force)
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".tagnote").
func WithSystemDir(name string) ServiceOption {
	return platform.WithSystemDir(name)
}

// WithWatcherErrorHandler receives runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) ServiceOption {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new tagnote Service.
func New(path string, opts ...ServiceOption) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a repository explicitly.
func Init(path string, opts ...ServiceOption) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- Filtering ---

// FilterNotes returns the notes whose title contains query (case-insensitive)
// and that carry every selected tag.
func FilterNotes(notes []Note, query string, selected []Tag) []Note {
	return core.FilterNotes(notes, query, selected)
}

// --- Utils ---

// ResolveVaultPath determines the actual path for the vault.
func ResolveVaultPath(userPath string, forceTemp bool) string {
	return platform.ResolveVaultPath(userPath, forceTemp)
}

// FindVaultRoot recursively looks upwards for a vault root indicator.
func FindVaultRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
