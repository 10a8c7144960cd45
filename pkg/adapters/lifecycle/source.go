// Package lifecycle exposes vault change events as a lifecycle.Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/tagnote/pkg/core"
)

type vaultSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource wraps a Watch channel. The returned source closes its own
// channel when events closes or the context passed to Start is cancelled.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &vaultSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *vaultSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *vaultSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
