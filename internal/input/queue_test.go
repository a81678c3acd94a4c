package input

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/scenekit/internal/clock"
	"github.com/vovakirdan/scenekit/internal/core"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPollDrainsInOrder(t *testing.T) {
	q := NewQueue(clock.NewManual(epoch))
	q.Push(core.KeyDown("a"))
	q.Push(core.PointerMove(3, 4))
	q.Push(core.QuitEvent())

	events := q.Poll()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	expected := []core.EventType{core.EventKeyDown, core.EventPointerMove, core.EventQuit}
	for i, want := range expected {
		if events[i].Type != want {
			t.Errorf("event %d = %v, expected %v", i, events[i].Type, want)
		}
	}

	if again := q.Poll(); len(again) != 0 {
		t.Errorf("second Poll() returned %d events, expected 0", len(again))
	}
}

func TestQueueBounded(t *testing.T) {
	q := NewQueue(clock.NewManual(epoch))
	for i := 0; i < MaxPending+10; i++ {
		q.Push(core.UserEvent(i))
	}

	if q.Len() != MaxPending {
		t.Fatalf("Len() = %d, expected %d", q.Len(), MaxPending)
	}
	if first := q.Poll()[0]; first.Code != 10 {
		t.Errorf("oldest kept event code = %d, expected 10", first.Code)
	}
}

func TestSetTimerRepeats(t *testing.T) {
	c := clock.NewManual(epoch)
	q := NewQueue(c)
	q.SetTimer(core.UserEvent(7), 100*time.Millisecond)

	if n := len(q.Poll()); n != 0 {
		t.Errorf("timer fired early: %d events", n)
	}

	c.Advance(100 * time.Millisecond)
	events := q.Poll()
	if len(events) != 1 || events[0].Code != 7 {
		t.Fatalf("expected one user event 7, got %+v", events)
	}

	c.Advance(50 * time.Millisecond)
	if n := len(q.Poll()); n != 0 {
		t.Errorf("timer fired before its period: %d events", n)
	}

	c.Advance(50 * time.Millisecond)
	if n := len(q.Poll()); n != 1 {
		t.Errorf("expected timer to fire again, got %d events", n)
	}
}

func TestSetTimerFiresOncePerPoll(t *testing.T) {
	c := clock.NewManual(epoch)
	q := NewQueue(c)
	q.SetTimer(core.UserEvent(1), 10*time.Millisecond)

	c.Advance(time.Second)
	if n := len(q.Poll()); n != 1 {
		t.Errorf("late timer produced %d events, expected 1", n)
	}
	c.Advance(5 * time.Millisecond)
	if n := len(q.Poll()); n != 0 {
		t.Errorf("timer should reschedule from now, got %d events", n)
	}
}

func TestSetTimerZeroCancels(t *testing.T) {
	c := clock.NewManual(epoch)
	q := NewQueue(c)
	q.SetTimer(core.UserEvent(3), 10*time.Millisecond)
	q.SetTimer(core.UserEvent(3), 0)

	c.Advance(time.Second)
	if n := len(q.Poll()); n != 0 {
		t.Errorf("canceled timer fired %d times", n)
	}
}

func TestTimersAfterPushedEvents(t *testing.T) {
	c := clock.NewManual(epoch)
	q := NewQueue(c)
	q.SetTimer(core.UserEvent(2), 20*time.Millisecond)
	q.SetTimer(core.UserEvent(1), 10*time.Millisecond)
	q.Push(core.KeyDown("space"))

	c.Advance(20 * time.Millisecond)
	events := q.Poll()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Type != core.EventKeyDown || events[1].Code != 1 || events[2].Code != 2 {
		t.Errorf("unexpected order: %+v", events)
	}
}

func TestClose(t *testing.T) {
	c := clock.NewManual(epoch)
	q := NewQueue(c)
	q.Push(core.KeyDown("a"))
	q.SetTimer(core.UserEvent(1), time.Millisecond)
	q.Close()

	q.Push(core.KeyDown("b"))
	c.Advance(time.Second)
	if n := len(q.Poll()); n != 0 {
		t.Errorf("closed queue returned %d events", n)
	}
}

func TestConcurrentPush(t *testing.T) {
	q := NewQueue(clock.Real())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				q.Push(core.KeyDown("x"))
			}
		}()
	}
	wg.Wait()

	if n := len(q.Poll()); n != 200 {
		t.Errorf("expected 200 events, got %d", n)
	}
}
