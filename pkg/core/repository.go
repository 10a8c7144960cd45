package core

import "context"

// Repository defines the contract for storing notes and the tag registry.
// Adhering to this interface allows the core to be independent of the
// underlying storage mechanism.
type Repository interface {
	// Initialize ensures the underlying storage is ready (e.g. create directories).
	Initialize(ctx context.Context) error

	// Save persists a note. It creates if not exists, or updates if it does.
	Save(ctx context.Context, n Note) error

	// Get retrieves a note by its ID. Missing notes yield an error wrapping ErrNotFound.
	Get(ctx context.Context, id string) (Note, error)

	// List returns all notes, in no particular order.
	List(ctx context.Context) ([]Note, error)

	// Delete removes a note by its ID. Missing notes yield an error wrapping ErrNotFound.
	Delete(ctx context.Context, id string) error

	// LoadTags returns the stored tag registry in registration order.
	LoadTags(ctx context.Context) ([]Tag, error)

	// SaveTags replaces the stored tag registry.
	SaveTags(ctx context.Context, tags []Tag) error
}

// Watchable is implemented by repositories that can report external changes.
type Watchable interface {
	// Watch emits events for notes whose ID matches the glob pattern
	// until ctx is cancelled. An empty pattern matches everything.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
