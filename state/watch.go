package state

import "sync/atomic"

// Watch delivers the current value of source to fn immediately and then
// the latest value after every change, dispatched through scheduler (nil
// runs inline). Each delivery reads the value at delivery time, so a
// queued delivery never hands out a stale value.
// The returned func stops delivery, including deliveries already queued.
func Watch[T any](source Readable[T], scheduler Scheduler, fn func(T)) func() {
	if source == nil || fn == nil {
		return func() {}
	}
	var stopped atomic.Bool
	deliver := func() {
		if stopped.Load() {
			return
		}
		fn(source.Get())
	}
	unsub := source.SubscribeWithScheduler(scheduler, deliver)
	deliver()
	return func() {
		stopped.Store(true)
		unsub()
	}
}
