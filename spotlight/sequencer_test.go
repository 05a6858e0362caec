package spotlight

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/furry-spotlight/state"
)

func threeStepTour(cancellable bool) *Tour {
	return NewTour([]Element{
		NewElement("a", "first"),
		NewElement("b", "second", RoundedRect(4)),
		NewElement("c", "third"),
	}, cancellable)
}

func TestSequencer_IdleByDefault(t *testing.T) {
	s := NewSequencer()

	_, ok := s.Target()
	assert.False(t, ok)
	assert.False(t, s.Active())
	assert.True(t, s.Cancellable())
	step, total := s.Progress()
	assert.Equal(t, 0, step)
	assert.Equal(t, 0, total)
}

func TestSequencer_WalksEveryElementOnce(t *testing.T) {
	s := NewSequencer()
	tour := threeStepTour(true)

	s.Receive(tour)
	var seen []string
	for {
		el, ok := s.Target()
		if !ok {
			break
		}
		seen = append(seen, el.Key)
		s.Next()
	}
	assert.Equal(t, []string{"a", "b", "c"}, seen)

	for range 3 {
		s.Next()
		assert.False(t, s.Active(), "exhausted tour must stay idle")
	}
}

func TestSequencer_Progress(t *testing.T) {
	s := NewSequencer()
	s.Receive(threeStepTour(true))

	step, total := s.Progress()
	assert.Equal(t, 1, step)
	assert.Equal(t, 3, total)

	s.Next()
	s.Next()
	step, _ = s.Progress()
	assert.Equal(t, 3, step)

	s.Next()
	step, total = s.Progress()
	assert.Equal(t, 0, step)
	assert.Equal(t, 3, total)
}

func TestSequencer_CancellableFollowsTour(t *testing.T) {
	s := NewSequencer()

	s.Receive(threeStepTour(false))
	assert.False(t, s.Cancellable())

	s.Receive(threeStepTour(true))
	assert.True(t, s.Cancellable())
}

func TestSequencer_CancelClearsTarget(t *testing.T) {
	s := NewSequencer()
	s.Receive(threeStepTour(false))
	s.Next()

	s.Cancel()
	_, ok := s.Target()
	assert.False(t, ok)
	assert.Nil(t, s.Tour())
	assert.False(t, s.Cancellable(), "cancel keeps the last tour's flag")
}

func TestSequencer_NextAfterCancelStaysIdle(t *testing.T) {
	s := NewSequencer()
	s.Receive(threeStepTour(false))

	s.Cancel()
	s.Next()
	s.Next()
	assert.False(t, s.Active())
	assert.False(t, s.Cancellable(), "flag survives transitions after cancel")

	s.Cancel()
	assert.False(t, s.Cancellable())

	s.Receive(nil)
	assert.True(t, s.Cancellable())
}

func TestSequencer_ExhaustionKeepsCancellable(t *testing.T) {
	s := NewSequencer()
	s.Receive(NewTour([]Element{NewElement("only", "")}, false))
	s.Next()
	s.Next()

	assert.False(t, s.Active())
	assert.False(t, s.Cancellable())
}

func TestSequencer_ReceiveAfterExhaustion(t *testing.T) {
	s := NewSequencer()
	s.Receive(NewTour([]Element{NewElement("only", "")}, true))
	s.Next()
	require.False(t, s.Active())

	s.Receive(NewTour([]Element{NewElement("x", ""), NewElement("y", "")}, true))
	el, ok := s.Target()
	require.True(t, ok)
	assert.Equal(t, "x", el.Key)
}

func TestSequencer_ReceiveMidTourRestarts(t *testing.T) {
	s := NewSequencer()
	s.Receive(threeStepTour(true))
	s.Next()

	s.Receive(NewTour([]Element{NewElement("z", "")}, true))
	el, _ := s.Target()
	assert.Equal(t, "z", el.Key)
}

func TestSequencer_ReceiveNil(t *testing.T) {
	s := NewSequencer()
	s.Receive(threeStepTour(false))

	s.Receive(nil)
	assert.False(t, s.Active())
	assert.True(t, s.Cancellable())
}

func TestSequencer_EmptyTour(t *testing.T) {
	s := NewSequencer()
	s.Receive(NewTour(nil, false))

	assert.False(t, s.Active())
	assert.False(t, s.Cancellable())
}

func TestSequencer_BindReplaysCurrentValue(t *testing.T) {
	source := state.NewSignal(threeStepTour(true))
	s := NewSequencer()

	unbind := s.Bind(source, nil)
	el, ok := s.Target()
	require.True(t, ok, "bind must deliver the value already held")
	assert.Equal(t, "a", el.Key)

	source.Set(NewTour([]Element{NewElement("next", "")}, false))
	el, _ = s.Target()
	assert.Equal(t, "next", el.Key)

	unbind()
	source.Set(threeStepTour(true))
	el, _ = s.Target()
	assert.Equal(t, "next", el.Key, "unbound sequencer ignores the source")
}

func TestSequencer_BindWithQueue(t *testing.T) {
	source := state.NewSignal[*Tour](nil)
	queue := state.NewQueue()
	s := NewSequencer()
	s.Bind(source, queue)
	defer s.Unbind()

	source.Set(threeStepTour(true))
	assert.False(t, s.Active())

	queue.Flush()
	assert.True(t, s.Active())
}

func TestSequencer_SubscribeNotifiesOnChange(t *testing.T) {
	s := NewSequencer()
	calls := 0
	unsub := s.Subscribe(func() { calls++ })
	defer unsub()

	s.Receive(threeStepTour(true))
	s.Next()
	s.Cancel()
	assert.Equal(t, 3, calls)

	s.Cancel()
	assert.Equal(t, 3, calls, "no-op cancel does not notify")
}

func TestSequencer_SessionID(t *testing.T) {
	id := ulid.Make()
	s := NewSequencer(WithSessionID(id))
	assert.Equal(t, id, s.Session())

	assert.NotEqual(t, NewSequencer().Session(), NewSequencer().Session())
}

func TestSequencer_NilSafe(t *testing.T) {
	var s *Sequencer
	s.Receive(threeStepTour(true))
	s.Next()
	s.Cancel()
	assert.False(t, s.Active())
	assert.True(t, s.Cancellable())
}
