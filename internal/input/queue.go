// Package input collects events for a scene. Platform code pushes events
// from its own goroutine; the scene loop drains them once per tick.
package input

import (
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/scenekit/internal/clock"
	"github.com/vovakirdan/scenekit/internal/core"
)

// MaxPending bounds the queue; the oldest events are dropped past it.
const MaxPending = 256

// timerKey identifies a repeating event timer.
type timerKey struct {
	typ  core.EventType
	code int
	key  string
}

type timer struct {
	ev     core.Event
	period time.Duration
	due    time.Time
}

// Queue is a thread-safe event queue with repeating event timers.
type Queue struct {
	mu     sync.Mutex
	clock  clock.Clock
	events []core.Event
	timers map[timerKey]*timer
	closed bool
}

// NewQueue creates an empty queue. Timers are measured on c.
func NewQueue(c clock.Clock) *Queue {
	return &Queue{
		clock:  c,
		timers: make(map[timerKey]*timer),
	}
}

// Push appends an event. Pushing to a closed queue is a no-op.
func (q *Queue) Push(ev core.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.events = append(q.events, ev)
	if len(q.events) > MaxPending {
		q.events = q.events[len(q.events)-MaxPending:]
	}
}

// Poll returns all pending events in arrival order followed by the timer
// events that came due, oldest first. Each timer fires at most once per Poll.
func (q *Queue) Poll() []core.Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.events
	q.events = nil

	if len(q.timers) == 0 {
		return events
	}

	now := q.clock.Now()
	var due []*timer
	for _, t := range q.timers {
		if !now.Before(t.due) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].due.Before(due[j].due)
	})

	for _, t := range due {
		events = append(events, t.ev)
		t.due = t.due.Add(t.period)
		if !t.due.After(now) {
			t.due = now.Add(t.period)
		}
	}
	return events
}

// SetTimer posts ev every d, starting d from now. Timers are keyed by the
// event's type, code and key; setting the same event again replaces its
// timer and a non-positive d cancels it.
func (q *Queue) SetTimer(ev core.Event, d time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()

	k := timerKey{typ: ev.Type, code: ev.Code, key: ev.Key}
	if d <= 0 {
		delete(q.timers, k)
		return
	}
	q.timers[k] = &timer{ev: ev, period: d, due: q.clock.Now().Add(d)}
}

// Len returns the number of pending events, not counting timers.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Close drops pending events and timers and ignores further pushes.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.events = nil
	q.timers = make(map[timerKey]*timer)
}
