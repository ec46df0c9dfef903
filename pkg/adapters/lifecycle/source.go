// Package lifecycle exposes note events as a lifecycle.Source.
package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/jotter/pkg/core"
)

// DefaultWindow is how long a source waits for a burst of events to settle.
// Editors saving a note typically produce several events within a few milliseconds.
const DefaultWindow = 100 * time.Millisecond

// Batch is the set of note changes seen during one window, in order of first
// appearance. Each note appears once, with its latest event.
type Batch []core.Event

// Names returns the names of the changed notes.
func (b Batch) Names() []string {
	names := make([]string, len(b))
	for i, e := range b {
		names[i] = e.Name
	}
	return names
}

func (b Batch) String() string {
	parts := make([]string, len(b))
	for i, e := range b {
		parts[i] = e.String()
	}
	return fmt.Sprintf("%d note(s) changed: %s", len(b), strings.Join(parts, ", "))
}

type noteSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
	window time.Duration
}

// Option configures a note source.
type Option func(*noteSource)

// WithWindow sets the coalescing window. Zero emits every event as its own batch.
func WithWindow(d time.Duration) Option {
	return func(s *noteSource) {
		s.window = d
	}
}

// NewSource creates a lifecycle.Source that emits note events as Batch values,
// so a consumer reloads once per burst instead of once per event.
// The output channel closes when the input closes or the context passed to Start ends;
// pending events are flushed when the input closes.
func NewSource(events <-chan core.Event, opts ...Option) lifecycle.Source {
	s := &noteSource{
		events: events,
		out:    make(chan lifecycle.Event),
		window: DefaultWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *noteSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)

		var (
			pending Batch
			index   = make(map[string]int)
			timer   *time.Timer
			fire    <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		flush := func() bool {
			if len(pending) == 0 {
				return true
			}
			batch := pending
			pending = nil
			clear(index)
			select {
			case s.out <- batch:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			select {
			case <-ctx.Done():
				return nil

			case e, ok := <-s.events:
				if !ok {
					flush()
					return nil
				}
				if i, seen := index[e.Name]; seen {
					pending[i] = e
				} else {
					index[e.Name] = len(pending)
					pending = append(pending, e)
				}
				if s.window <= 0 {
					if !flush() {
						return nil
					}
					continue
				}
				if fire == nil {
					timer = time.NewTimer(s.window)
					fire = timer.C
				}

			case <-fire:
				fire = nil
				if !flush() {
					return nil
				}
			}
		}
	})
	return nil
}
