package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/tagnote/pkg/core"
)

const (
	watchDebounce   = 50 * time.Millisecond
	watchBufferSize = 100
)

// Watch reports changes to note files and to the tag registry until ctx is
// cancelled, at which point the returned channel is closed.
// pattern is a doublestar glob matched against note IDs; registry changes
// are always reported.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", r.Path, err)
	}

	events := make(chan core.Event, watchBufferSize)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()

		deb := newDebouncer(watchDebounce)
		defer deb.stopAndWait()

		for {
			select {
			case <-ctx.Done():
				return nil

			case fe, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, ok := r.translate(fe, pattern)
				if !ok {
					continue
				}
				r.config.Logger.Debug("vault change", "event", e.String())
				deb.add(e, func(e core.Event) {
					select {
					case events <- e:
					case <-ctx.Done():
					}
				})

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				r.reportError(werr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		r.reportError(fmt.Errorf("watcher panic: %w", err))
	}))

	return events, nil
}

func (r *Repository) reportError(err error) {
	r.config.Logger.Error("watcher error", "error", err)
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
	}
}

// translate maps a filesystem event onto a vault event.
func (r *Repository) translate(fe fsnotify.Event, pattern string) (core.Event, bool) {
	base := filepath.Base(fe.Name)
	if isTempFile(base) || strings.HasPrefix(base, ".") {
		return core.Event{}, false
	}
	if fe.Op == fsnotify.Chmod {
		return core.Event{}, false
	}

	now := time.Now().Unix()
	if base == TagsFile {
		return core.Event{Type: core.EventTags, Timestamp: now}, true
	}
	if filepath.Ext(base) != NoteExt {
		return core.Event{}, false
	}

	id := strings.TrimSuffix(base, NoteExt)
	if pattern != "" {
		if ok, _ := doublestar.Match(pattern, id); !ok {
			return core.Event{}, false
		}
	}

	var t core.EventType
	switch {
	case fe.Has(fsnotify.Create):
		t = core.EventCreate
	case fe.Has(fsnotify.Write):
		t = core.EventModify
	case fe.Has(fsnotify.Remove), fe.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}
	return core.Event{Type: t, ID: id, Timestamp: now}, true
}

// debouncer coalesces bursts of events per ID; the last event of a burst wins.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	pending map[string]*pendingEvent
	stopped bool
	wg      sync.WaitGroup
}

type pendingEvent struct {
	event core.Event
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, pending: make(map[string]*pendingEvent)}
}

func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	key := e.ID
	if e.Type == core.EventTags {
		key = "\x00" + TagsFile
	}
	if p, ok := d.pending[key]; ok && p.timer.Stop() {
		p.event = e
		p.timer.Reset(d.delay)
		return
	}

	p := &pendingEvent{event: e}
	d.pending[key] = p
	d.wg.Add(1)
	p.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.pending[key] != p {
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		ev := p.event
		d.mu.Unlock()
		fire(ev)
	})
}

// stopAndWait cancels queued events and waits for in-flight deliveries.
func (d *debouncer) stopAndWait() {
	d.mu.Lock()
	d.stopped = true
	for key, p := range d.pending {
		if p.timer.Stop() {
			d.wg.Done()
		}
		delete(d.pending, key)
	}
	d.mu.Unlock()
	d.wg.Wait()
}
