package domutil

import (
	"sync"
	"time"
)

// Handler receives the debounced call. err is always nil today; args is the
// argument bundle of the last invocation inside the delay window, passed as
// one slice rather than spread.
type Handler func(err error, args []any)

// Debounce wraps fn in a trailing-edge debouncer. Each call of the returned
// function cancels any pending timer and schedules a new one, so only the
// last call in a burst fires, delay after that call, with that call's
// arguments, asynchronously on the timer goroutine. There is no leading
// edge, no maximum wait, and no way to flush or cancel a pending call other
// than superseding it. The timer handle swap is mutex-guarded so the wrapped
// function is safe for concurrent callers.
func Debounce(fn Handler, delay time.Duration) func(args ...any) {
	var mu sync.Mutex
	var timer *time.Timer
	return func(args ...any) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			fn(nil, args)
		})
	}
}
