package runtime

import (
	"log/slog"
	"time"

	"github.com/odvcencio/furry-spotlight/state"
)

// Services is the handle widgets receive through Bind.
type Services struct {
	app *App
}

// Services returns a service handle for the app.
func (a *App) Services() Services {
	return Services{app: a}
}

func (s Services) isZero() bool {
	return s.app == nil
}

// Scheduler returns the scheduler that runs callbacks on the UI loop.
func (s Services) Scheduler() state.Scheduler {
	if s.app == nil {
		return nil
	}
	return s.app.StateScheduler()
}

// Logger returns the app logger, or a discarding logger when unbound.
func (s Services) Logger() *slog.Logger {
	if s.app == nil || s.app.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.app.logger
}

// Invalidate requests a render pass.
func (s Services) Invalidate() {
	if s.app != nil {
		s.app.Invalidate()
	}
}

// Post sends a message into the app loop without blocking.
func (s Services) Post(msg Message) bool {
	if s.app == nil {
		return false
	}
	return s.app.TryPost(msg)
}

// After schedules a delayed message.
func (s Services) After(delay time.Duration, msg Message) {
	if s.app != nil {
		s.app.Spawn(After(delay, msg))
	}
}
