package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Service owns the note store and the tag registry.
// Presentation code never writes to either directly; it goes through the
// operations below (or the Callbacks bundle built from them).
type Service struct {
	repo   Repository
	logger *slog.Logger
	mu     sync.RWMutex
}

// NewService creates a new Service. A nil logger discards output.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

// Registry returns the current tag registry snapshot.
func (s *Service) Registry(ctx context.Context) (Registry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry(ctx)
}

func (s *Service) registry(ctx context.Context) (Registry, error) {
	tags, err := s.repo.LoadTags(ctx)
	if err != nil {
		return Registry{}, fmt.Errorf("failed to load tags: %w", err)
	}
	return NewRegistry(tags), nil
}

// Notes returns every note with tag labels resolved against the registry,
// ordered by ID (which is creation order for generated IDs).
func (s *Service) Notes(ctx context.Context) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, err := s.registry(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return Resolved(notes, reg), nil
}

// Note returns a single resolved note.
func (s *Service) Note(ctx context.Context, id string) (Note, error) {
	if id == "" {
		return Note{}, ErrEmptyID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, err := s.registry(ctx)
	if err != nil {
		return Note{}, err
	}
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return Note{}, err
	}
	n.Tags = reg.Resolve(n.Tags)
	return n, nil
}

// Submit creates (empty id) or replaces a note from form data.
// Tags unknown to the registry are dropped so a submission can never
// introduce a dangling reference.
func (s *Service) Submit(ctx context.Context, id string, data NoteData) (Note, error) {
	if err := data.Validate(); err != nil {
		return Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := s.registry(ctx)
	if err != nil {
		return Note{}, err
	}

	created := id == ""
	if created {
		id = NewNoteID()
	}

	n := Note{
		ID:              id,
		Title:           data.Title,
		Text:            data.Text,
		Tags:            dedupe(reg.Resolve(data.Tags)),
		BackgroundColor: data.BackgroundColor,
	}
	if dropped := len(data.Tags) - len(n.Tags); dropped > 0 {
		s.logger.Debug("dropped tags not in registry", "note", id, "count", dropped)
	}

	if err := s.repo.Save(ctx, n); err != nil {
		return Note{}, fmt.Errorf("failed to save note %s: %w", id, err)
	}
	s.logger.Info("note saved", "id", id, "created", created, "tags", len(n.Tags))
	return n, nil
}

// Delete removes a note. Deleting a note that does not exist is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete note %s: %w", id, err)
	}
	s.logger.Info("note deleted", "id", id)
	return nil
}

// AddTag registers a new tag. Labels may repeat; identifiers may not.
func (s *Service) AddTag(ctx context.Context, t Tag) error {
	if t.ID == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(t.Label) == "" {
		return ErrEmptyLabel
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := s.registry(ctx)
	if err != nil {
		return err
	}
	if reg.Has(t.ID) {
		return fmt.Errorf("%s: %w", t.ID, ErrDuplicateTag)
	}
	if err := s.repo.SaveTags(ctx, reg.with(t).Tags()); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}
	s.logger.Info("tag added", "id", t.ID, "label", t.Label)
	return nil
}

// UpdateTag renames a tag. Only the registry changes; notes keep referencing
// the same identifier and pick up the new label when read.
func (s *Service) UpdateTag(ctx context.Context, id, label string) error {
	if id == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := s.registry(ctx)
	if err != nil {
		return err
	}
	if !reg.Has(id) {
		return fmt.Errorf("tag %s: %w", id, ErrNotFound)
	}
	if err := s.repo.SaveTags(ctx, reg.renamed(id, label).Tags()); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}
	s.logger.Info("tag renamed", "id", id, "label", label)
	return nil
}

// DeleteTag removes a tag from the registry and from every note that
// references it. Deleting an unknown tag is not an error.
func (s *Service) DeleteTag(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := s.registry(ctx)
	if err != nil {
		return err
	}
	if reg.Has(id) {
		if err := s.repo.SaveTags(ctx, reg.without(id).Tags()); err != nil {
			return fmt.Errorf("failed to save tags: %w", err)
		}
	}

	notes, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}
	touched := 0
	for _, n := range notes {
		if !n.HasTag(id) {
			continue
		}
		n.Tags = withoutTag(n.Tags, id)
		if err := s.repo.Save(ctx, n); err != nil {
			return fmt.Errorf("failed to detach tag from note %s: %w", n.ID, err)
		}
		touched++
	}
	s.logger.Info("tag deleted", "id", id, "notes", touched)
	return nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// Callbacks is the set of mutations handed to presentation code.
type Callbacks struct {
	OnSubmit    func(NoteData) error
	OnDelete    func(id string) error
	OnAddTag    func(Tag) error
	OnUpdateTag func(id, label string) error
	OnDeleteTag func(id string) error
}

// Callbacks binds the service operations to ctx. OnSubmit creates a new note
// when noteID is empty and replaces noteID otherwise.
func (s *Service) Callbacks(ctx context.Context, noteID string) Callbacks {
	return Callbacks{
		OnSubmit: func(d NoteData) error {
			_, err := s.Submit(ctx, noteID, d)
			return err
		},
		OnDelete:    func(id string) error { return s.Delete(ctx, id) },
		OnAddTag:    func(t Tag) error { return s.AddTag(ctx, t) },
		OnUpdateTag: func(id, label string) error { return s.UpdateTag(ctx, id, label) },
		OnDeleteTag: func(id string) error { return s.DeleteTag(ctx, id) },
	}
}

func withoutTag(tags []Tag, id string) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func dedupe(tags []Tag) []Tag {
	seen := make(map[string]struct{}, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
