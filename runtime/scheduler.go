package runtime

import (
	"sync/atomic"

	"github.com/odvcencio/furry-spotlight/state"
)

// QueueFlushPolicy configures when the app flushes its state queue.
type QueueFlushPolicy int

const (
	// FlushOnMessageAndTick flushes after any message or tick.
	FlushOnMessageAndTick QueueFlushPolicy = iota + 1
	// FlushOnMessage flushes after messages other than TickMsg.
	FlushOnMessage
	// FlushOnTick flushes only on TickMsg.
	FlushOnTick
	// FlushManual flushes only on QueueFlushMsg.
	FlushManual
)

func shouldFlushQueue(policy QueueFlushPolicy, msg Message) bool {
	if _, ok := msg.(QueueFlushMsg); ok {
		return true
	}
	_, isTick := msg.(TickMsg)
	switch policy {
	case FlushManual:
		return false
	case FlushOnMessage:
		return !isTick
	case FlushOnTick:
		return isTick
	default:
		return true
	}
}

// coalescer posts msg at most once until reset.
type coalescer struct {
	post    PostFunc
	msg     Message
	pending atomic.Bool
}

func (c *coalescer) trigger() {
	if c == nil || c.post == nil {
		return
	}
	if c.pending.CompareAndSwap(false, true) && !c.post(c.msg) {
		c.pending.Store(false)
	}
}

func (c *coalescer) reset() {
	if c != nil {
		c.pending.Store(false)
	}
}

// QueueScheduler enqueues callbacks on a state.Queue and wakes the app so
// the queue is flushed on the UI goroutine.
type QueueScheduler struct {
	queue *state.Queue
	wake  coalescer
}

// NewQueueScheduler wires queue to post.
func NewQueueScheduler(queue *state.Queue, post PostFunc) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	return &QueueScheduler{
		queue: queue,
		wake:  coalescer{post: post, msg: QueueFlushMsg{}},
	}
}

// Schedule enqueues fn and requests a flush.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	s.wake.trigger()
}

func (s *QueueScheduler) resetPending() {
	if s != nil {
		s.wake.reset()
	}
}

// Invalidator requests render passes, coalescing bursts into one message.
type Invalidator struct {
	wake coalescer
}

// NewInvalidator creates an invalidator wired to post.
func NewInvalidator(post PostFunc) *Invalidator {
	return &Invalidator{wake: coalescer{post: post, msg: InvalidateMsg{}}}
}

// Invalidate requests a render pass.
func (i *Invalidator) Invalidate() {
	if i != nil {
		i.wake.trigger()
	}
}

// Schedule runs fn inline and requests a render pass.
func (i *Invalidator) Schedule(fn func()) {
	if fn == nil {
		return
	}
	fn()
	i.Invalidate()
}

func (i *Invalidator) resetPending() {
	if i != nil {
		i.wake.reset()
	}
}
