// Package state provides small reactive primitives for terminal UIs.
//
// A Signal holds one value and notifies subscribers when it changes.
// Watch adds the replay-latest form used by consumers that must see the
// current value before any later change, such as a tour sequencer bound
// to the tour a host publishes.
package state

// Subscribable emits change notifications.
type Subscribable interface {
	Subscribe(fn func()) func()
}

// Readable exposes read-only reactive state.
type Readable[T any] interface {
	Subscribable
	Get() T
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Writable exposes read/write reactive state.
type Writable[T any] interface {
	Readable[T]
	Set(value T) bool
	Update(fn func(T) T) bool
}

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}
