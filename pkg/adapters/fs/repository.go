package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/tagnote/pkg/core"
)

const (
	// NoteExt is the extension of note files.
	NoteExt = ".md"
	// TagsFile holds the tag registry, at the vault root.
	TagsFile = "tags.yaml"
	// DefaultSystemDir is the hidden directory for caches.
	DefaultSystemDir = ".tagnote"
)

// Repository implements core.Repository on a directory of Markdown files.
//
// Layout:
//
//	vault/
//	  tags.yaml            tag registry
//	  01J....md            one file per note, YAML frontmatter + body
//	  .tagnote/index.json  parse cache
type Repository struct {
	Path   string
	config Config
	cache  *cache

	mu            sync.RWMutex
	watcherActive bool
	lastList      *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string
	MustExist bool
	ReadOnly  bool
	Logger    *slog.Logger
	SystemDir string // defaults to DefaultSystemDir
	// ErrorHandler receives watcher failures that would otherwise only be logged.
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.SystemDir == "" {
		config.SystemDir = DefaultSystemDir
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{
		Path:   config.Path,
		config: config,
		cache:  newCache(config.Path, config.SystemDir),
	}
}

// Initialize prepares the vault directory.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist || r.config.ReadOnly {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("vault path does not exist: %s", r.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("vault path is not a directory: %s", r.Path)
		}
		if r.config.ReadOnly {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Join(r.Path, r.config.SystemDir), 0755); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}
	return nil
}

func (r *Repository) notePath(id string) (string, error) {
	if id == "" {
		return "", core.ErrEmptyID
	}
	if id != filepath.Base(id) || strings.HasPrefix(id, ".") || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("invalid note id %q", id)
	}
	return filepath.Join(r.Path, id+NoteExt), nil
}

// Save writes a note file atomically.
func (r *Repository) Save(ctx context.Context, n core.Note) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	path, err := r.notePath(n.ID)
	if err != nil {
		return err
	}

	data, err := encodeNote(n)
	if err != nil {
		return fmt.Errorf("failed to serialize note: %w", err)
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	r.invalidate(n.ID)
	r.config.Logger.Debug("note written", "id", n.ID, "path", path)
	return nil
}

// invalidate drops id from the persisted cache so a rewrite landing on the
// same mtime tick is never served stale.
func (r *Repository) invalidate(id string) {
	if err := r.cache.Load(); err != nil {
		return
	}
	r.cache.Delete(id)
	if err := r.cache.Save(); err != nil {
		r.config.Logger.Warn("failed to save cache", "error", err)
	}
}

// Get reads and parses a single note file.
func (r *Repository) Get(ctx context.Context, id string) (core.Note, error) {
	path, err := r.notePath(id)
	if err != nil {
		return core.Note{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Note{}, fmt.Errorf("note %s: %w", id, core.ErrNotFound)
		}
		return core.Note{}, err
	}
	n, err := decodeNote(id, data)
	if err != nil {
		return core.Note{}, fmt.Errorf("failed to parse note %s: %w", id, err)
	}
	return n, nil
}

// List scans the vault root for note files.
//
// Strategy:
//  1. Load the parse cache from disk.
//  2. For each *.md file, reuse the cached note when its mtime is unchanged,
//     otherwise parse it and refresh the cache.
//  3. Prune entries for files that disappeared and persist the cache.
func (r *Repository) List(ctx context.Context) ([]core.Note, error) {
	if err := r.cache.Load(); err != nil {
		r.config.Logger.Warn("failed to load cache", "error", err)
	}

	entries, err := os.ReadDir(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	seen := make(map[string]bool, len(entries))
	notes := make([]core.Note, 0, len(entries))
	hits := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != NoteExt {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		id := strings.TrimSuffix(name, NoteExt)
		seen[id] = true

		if n, ok := r.cache.Get(id, info.ModTime()); ok {
			notes = append(notes, n)
			hits++
			continue
		}

		n, err := r.Get(ctx, id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				continue
			}
			return nil, err
		}
		r.cache.Set(id, n, info.ModTime())
		notes = append(notes, n)
	}

	r.cache.Prune(seen)
	if !r.config.ReadOnly {
		if err := r.cache.Save(); err != nil {
			r.config.Logger.Warn("failed to save cache", "error", err)
		}
	}
	r.config.Logger.Debug("notes listed", "count", len(notes), "cache_hits", hits)

	now := time.Now()
	r.mu.Lock()
	r.lastList = &now
	r.mu.Unlock()
	return notes, nil
}

// Delete removes a note file.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	path, err := r.notePath(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("note %s: %w", id, core.ErrNotFound)
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	r.invalidate(id)
	return nil
}

// LoadTags reads the tag registry. A vault without tags.yaml has no tags.
func (r *Repository) LoadTags(ctx context.Context) ([]core.Tag, error) {
	data, err := os.ReadFile(filepath.Join(r.Path, TagsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return decodeTags(data)
}

// SaveTags replaces the tag registry file.
func (r *Repository) SaveTags(ctx context.Context, tags []core.Tag) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	data, err := encodeTags(tags)
	if err != nil {
		return fmt.Errorf("failed to serialize tags: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(r.Path, TagsFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write tags: %w", err)
	}
	return nil
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
