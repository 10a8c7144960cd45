// Package memory provides an in-process core.Repository.
// Nothing is persisted; it backs tests and throwaway sessions.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/tagnote/pkg/core"
)

// Repository keeps notes and tags in maps guarded by a mutex.
type Repository struct {
	mu    sync.RWMutex
	notes map[string]core.Note
	tags  []core.Tag
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{notes: make(map[string]core.Note)}
}

// Initialize implements core.Repository. It is a no-op.
func (r *Repository) Initialize(ctx context.Context) error { return nil }

// Save implements core.Repository.
func (r *Repository) Save(ctx context.Context, n core.Note) error {
	if n.ID == "" {
		return fmt.Errorf("note has no ID")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n.Tags = append([]core.Tag(nil), n.Tags...)
	r.notes[n.ID] = n
	return nil
}

// Get implements core.Repository.
func (r *Repository) Get(ctx context.Context, id string) (core.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.notes[id]
	if !ok {
		return core.Note{}, fmt.Errorf("note %s: %w", id, core.ErrNotFound)
	}
	n.Tags = append([]core.Tag(nil), n.Tags...)
	return n, nil
}

// List implements core.Repository.
func (r *Repository) List(ctx context.Context) ([]core.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.Note, 0, len(r.notes))
	for _, n := range r.notes {
		n.Tags = append([]core.Tag(nil), n.Tags...)
		out = append(out, n)
	}
	return out, nil
}

// Delete implements core.Repository.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[id]; !ok {
		return fmt.Errorf("note %s: %w", id, core.ErrNotFound)
	}
	delete(r.notes, id)
	return nil
}

// LoadTags implements core.Repository.
func (r *Repository) LoadTags(ctx context.Context) ([]core.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]core.Tag(nil), r.tags...), nil
}

// SaveTags implements core.Repository.
func (r *Repository) SaveTags(ctx context.Context, tags []core.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = append([]core.Tag(nil), tags...)
	return nil
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return map[string]int{"notes": len(r.notes), "tags": len(r.tags)}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "memory"
}

var _ core.Repository = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
