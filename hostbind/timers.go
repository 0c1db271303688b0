package hostbind

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dop251/goja"
)

// Global names for the timer bindings.
const (
	SetTimeoutBinding    = "setTimeout"
	ClearTimeoutBinding  = "clearTimeout"
	SetIntervalBinding   = "setInterval"
	ClearIntervalBinding = "clearInterval"
)

const defaultTimerLimit = 1024

// TimerFunc is a scheduled callback. A non-nil error from a callback is
// reported by RunDue but does not cancel other due timers.
type TimerFunc func() error

type timer struct {
	id        int64
	due       time.Time
	interval  time.Duration
	repeating bool
	fn        TimerFunc
}

// TimerQueue holds pending timer callbacks. The SDK core never fires
// them: scheduling and cancellation happen synchronously inside script
// turns, and the embedding host drains due callbacks with RunDue as
// separate, later turns.
type TimerQueue struct {
	clock  func() time.Time
	timers map[int64]*timer
	nextID int64
	limit  int
}

// TimerOption configures a TimerQueue.
type TimerOption func(*TimerQueue)

// WithClock substitutes the time source, mainly for tests.
func WithClock(clock func() time.Time) TimerOption {
	return func(q *TimerQueue) {
		q.clock = clock
	}
}

// WithLimit bounds the number of concurrently pending timers.
func WithLimit(limit int) TimerOption {
	return func(q *TimerQueue) {
		q.limit = limit
	}
}

// NewTimerQueue creates a TimerQueue.
func NewTimerQueue(opts ...TimerOption) *TimerQueue {
	q := &TimerQueue{
		timers: make(map[int64]*timer),
		limit:  defaultTimerLimit,
	}
	for _, opt := range opts {
		opt(q)
	}
	if q.clock == nil {
		q.clock = time.Now
	}
	return q
}

// Schedule registers fn to run once (or repeatedly) after delay.
// Timer IDs are positive and never reused within a queue.
func (q *TimerQueue) Schedule(delay time.Duration, repeating bool, fn TimerFunc) (int64, error) {
	if len(q.timers) >= q.limit {
		return 0, fmt.Errorf("timer queue full: limit of %d pending timers reached", q.limit)
	}
	if delay < 0 {
		delay = 0
	}
	q.nextID++
	id := q.nextID
	q.timers[id] = &timer{
		id:        id,
		due:       q.clock().Add(delay),
		interval:  delay,
		repeating: repeating,
		fn:        fn,
	}
	return id, nil
}

// Cancel removes a pending timer. Unknown IDs are ignored.
func (q *TimerQueue) Cancel(id int64) bool {
	if _, ok := q.timers[id]; !ok {
		return false
	}
	delete(q.timers, id)
	return true
}

// Len returns the number of pending timers.
func (q *TimerQueue) Len() int {
	return len(q.timers)
}

// Reset drops all pending timers.
func (q *TimerQueue) Reset() {
	q.timers = make(map[int64]*timer)
}

// RunDue fires every callback due at now, each at most once per call so
// a zero-delay interval cannot starve the host. Repeating timers are
// rescheduled relative to now; one-shot timers are removed before their
// callback runs, so a callback rescheduling itself sees a free slot.
// Returns the number of callbacks fired and the joined callback errors.
func (q *TimerQueue) RunDue(now time.Time) (int, error) {
	due := make([]*timer, 0)
	for _, t := range q.timers {
		if !t.due.After(now) {
			due = append(due, t)
		}
	}
	// Fire in due order, then by ID, for deterministic interleaving.
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})

	fired := 0
	var errs []error
	for _, t := range due {
		if _, ok := q.timers[t.id]; !ok {
			continue // canceled by an earlier callback in this drain
		}
		if t.repeating {
			t.due = now.Add(t.interval)
		} else {
			delete(q.timers, t.id)
		}
		fired++
		if err := t.fn(); err != nil {
			errs = append(errs, fmt.Errorf("timer %d: %w", t.id, err))
		}
	}
	return fired, errors.Join(errs...)
}

// providers returns the four timer bindings backed by this queue.
func (q *TimerQueue) providers() map[string]Provider {
	return map[string]Provider{
		SetTimeoutBinding:    q.scheduleProvider(false),
		SetIntervalBinding:   q.scheduleProvider(true),
		ClearTimeoutBinding:  q.cancelProvider(),
		ClearIntervalBinding: q.cancelProvider(),
	}
}

func (q *TimerQueue) scheduleProvider(repeating bool) Provider {
	return func(rt *goja.Runtime) (goja.Value, error) {
		return rt.ToValue(func(call goja.FunctionCall) goja.Value {
			fn, ok := goja.AssertFunction(call.Argument(0))
			if !ok {
				panic(rt.NewTypeError("first argument must be a function"))
			}
			delay := time.Duration(call.Argument(1).ToInteger()) * time.Millisecond
			id, err := q.Schedule(delay, repeating, func() error {
				_, err := fn(goja.Undefined())
				return err
			})
			if err != nil {
				panic(rt.NewGoError(err))
			}
			return rt.ToValue(id)
		}), nil
	}
}

func (q *TimerQueue) cancelProvider() Provider {
	return func(rt *goja.Runtime) (goja.Value, error) {
		return rt.ToValue(func(call goja.FunctionCall) goja.Value {
			q.Cancel(call.Argument(0).ToInteger())
			return goja.Undefined()
		}), nil
	}
}
