package spotlight

import (
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/furry-spotlight/state"
)

// snapshot is the observable part of the sequencer.
type snapshot struct {
	target      Element
	active      bool
	cancellable bool
}

// Sequencer tracks which element of the current tour is targeted.
//
// It starts idle. Receiving a tour targets its first element immediately;
// Next advances through the rest and goes idle after the last one. Cancel
// forgets the tour, so only a new Receive can target again.
//
// A Sequencer is not safe for concurrent mutation. Bind it with the app's
// state scheduler so deliveries run on the UI loop.
type Sequencer struct {
	tour        *Tour
	cursor      int
	cancellable bool

	state  *state.Signal[snapshot]
	unbind func()

	session ulid.ULID
	logger  *slog.Logger
}

// SequencerOption configures a Sequencer.
type SequencerOption func(*Sequencer)

// WithLogger sets the logger used for transition events.
func WithLogger(logger *slog.Logger) SequencerOption {
	return func(s *Sequencer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id ulid.ULID) SequencerOption {
	return func(s *Sequencer) {
		s.session = id
	}
}

// NewSequencer creates an idle sequencer.
func NewSequencer(opts ...SequencerOption) *Sequencer {
	s := &Sequencer{
		state:       state.NewSignal(snapshot{cancellable: true}),
		session:     ulid.Make(),
		logger:      slog.New(slog.DiscardHandler),
		cancellable: true,
	}
	s.state.SetEqualFunc(state.EqualComparable[snapshot])
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.session.String())
	return s
}

// Session returns the presentation session id.
func (s *Sequencer) Session() ulid.ULID {
	return s.session
}

// Bind subscribes the sequencer to source. The current value is received
// synchronously, later values through scheduler (nil runs them inline).
// Binding again drops the previous source. The returned func unbinds.
func (s *Sequencer) Bind(source state.Readable[*Tour], scheduler state.Scheduler) func() {
	if s == nil {
		return func() {}
	}
	s.Unbind()
	if source == nil {
		return func() {}
	}
	unbind := state.Watch(source, scheduler, s.Receive)
	s.unbind = unbind
	return s.Unbind
}

// Unbind drops the current source, if any. The current target is kept.
func (s *Sequencer) Unbind() {
	if s == nil || s.unbind == nil {
		return
	}
	unbind := s.unbind
	s.unbind = nil
	unbind()
}

// Receive starts tour from its first element. A nil tour makes the
// sequencer idle. A tour arriving mid-sequence replaces the old one.
func (s *Sequencer) Receive(tour *Tour) {
	if s == nil {
		return
	}
	s.tour = tour
	s.cursor = 0
	s.cancellable = tour.Cancellable()
	if tour == nil {
		s.logger.Debug("spotlight tour cleared")
		s.publish(Element{}, false)
		return
	}
	s.logger.Debug("spotlight tour received",
		"tour", tour.Name(),
		"elements", tour.Len(),
		"cancellable", tour.Cancellable(),
	)
	s.Next()
}

// Next targets the next element, or nothing once the tour is exhausted.
// Calls after exhaustion keep yielding nothing.
func (s *Sequencer) Next() {
	if s == nil {
		return
	}
	el, ok := s.tour.At(s.cursor)
	if ok {
		s.cursor++
		s.logger.Debug("spotlight target", "key", el.Key, "step", s.cursor, "total", s.tour.Len())
	} else if s.Active() {
		s.logger.Debug("spotlight tour finished", "tour", s.tour.Name())
	}
	s.publish(el, ok)
}

// Cancel clears the target and forgets the tour and cursor. The
// cancellable flag of the last tour is kept.
func (s *Sequencer) Cancel() {
	if s == nil {
		return
	}
	if s.Active() {
		s.logger.Debug("spotlight tour cancelled", "tour", s.tour.Name(), "step", s.cursor)
	}
	s.tour = nil
	s.cursor = 0
	s.state.Set(snapshot{cancellable: s.cancellable})
}

// Target returns the current element.
func (s *Sequencer) Target() (Element, bool) {
	if s == nil {
		return Element{}, false
	}
	snap := s.state.Get()
	return snap.target, snap.active
}

// Active reports whether an element is targeted.
func (s *Sequencer) Active() bool {
	_, ok := s.Target()
	return ok
}

// Cancellable reports the cancellable flag of the most recent tour, true
// when no tour has been received.
func (s *Sequencer) Cancellable() bool {
	if s == nil {
		return true
	}
	return s.state.Get().cancellable
}

// Progress returns the 1-based step of the current target and the tour
// length. Step is 0 when idle.
func (s *Sequencer) Progress() (step, total int) {
	if s == nil {
		return 0, 0
	}
	if !s.Active() {
		return 0, s.tour.Len()
	}
	return s.cursor, s.tour.Len()
}

// Tour returns the tour being walked, nil after Cancel or Receive(nil).
func (s *Sequencer) Tour() *Tour {
	if s == nil {
		return nil
	}
	return s.tour
}

// Subscribe registers a listener for target changes.
func (s *Sequencer) Subscribe(fn func()) func() {
	if s == nil {
		return func() {}
	}
	return s.state.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
func (s *Sequencer) SubscribeWithScheduler(scheduler state.Scheduler, fn func()) func() {
	if s == nil {
		return func() {}
	}
	return s.state.SubscribeWithScheduler(scheduler, fn)
}

func (s *Sequencer) publish(el Element, active bool) {
	s.state.Set(snapshot{
		target:      el,
		active:      active,
		cancellable: s.cancellable,
	})
}
