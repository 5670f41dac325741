package schedule_test

import (
	"sync/atomic"
	"testing"
	"time"

	"verichain/internal/schedule"
)

func TestManual_AfterFuncFiresOnceWhenDue(t *testing.T) {
	clock := schedule.NewManual(time.Unix(0, 0))
	var fired int
	clock.AfterFunc(1500*time.Millisecond, func() { fired++ })

	clock.Advance(1499 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early: %d", fired)
	}
	clock.Advance(time.Millisecond)
	clock.Advance(time.Hour)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if clock.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", clock.Pending())
	}
}

func TestManual_EveryFiresPerInterval(t *testing.T) {
	clock := schedule.NewManual(time.Unix(0, 0))
	var fired int
	task := clock.Every(200*time.Millisecond, func() { fired++ })

	clock.Advance(time.Second)
	if fired != 5 {
		t.Fatalf("fired = %d, want 5", fired)
	}
	if !task.Stop() {
		t.Fatal("Stop on active task returned false")
	}
	if task.Stop() {
		t.Fatal("second Stop returned true")
	}
	clock.Advance(time.Second)
	if fired != 5 {
		t.Fatalf("fired after stop: %d", fired)
	}
}

func TestManual_CallbackCanStopItself(t *testing.T) {
	clock := schedule.NewManual(time.Unix(0, 0))
	var fired int
	var task schedule.Task
	task = clock.Every(10*time.Millisecond, func() {
		fired++
		if fired == 3 {
			task.Stop()
		}
	})
	clock.Advance(time.Second)
	if fired != 3 {
		t.Fatalf("fired = %d, want 3", fired)
	}
}

func TestManual_FiresInDueOrder(t *testing.T) {
	clock := schedule.NewManual(time.Unix(0, 0))
	var order []string
	clock.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	clock.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })

	clock.Advance(time.Second)
	if got := len(order); got != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("order = %v", order)
	}
}

func TestManual_NowTracksCallbackTime(t *testing.T) {
	start := time.Unix(100, 0)
	clock := schedule.NewManual(start)
	var seen time.Time
	clock.AfterFunc(250*time.Millisecond, func() { seen = clock.Now() })
	clock.Advance(time.Second)

	if want := start.Add(250 * time.Millisecond); !seen.Equal(want) {
		t.Fatalf("callback saw %v, want %v", seen, want)
	}
	if want := start.Add(time.Second); !clock.Now().Equal(want) {
		t.Fatalf("Now = %v, want %v", clock.Now(), want)
	}
}

func TestReal_AfterFuncStopPreventsFire(t *testing.T) {
	var fired atomic.Int32
	task := schedule.NewReal().AfterFunc(50*time.Millisecond, func() { fired.Add(1) })
	if !task.Stop() {
		t.Fatal("Stop returned false for pending task")
	}
	time.Sleep(100 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatal("stopped task fired")
	}
}

func TestReal_EveryTicksUntilStopped(t *testing.T) {
	var fired atomic.Int32
	done := make(chan struct{})
	task := schedule.NewReal().Every(5*time.Millisecond, func() {
		if fired.Add(1) == 3 {
			close(done)
		}
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker never reached 3 fires")
	}
	task.Stop()
	after := fired.Load()
	time.Sleep(30 * time.Millisecond)
	// At most one in-flight fire may land after Stop.
	if got := fired.Load(); got > after+1 {
		t.Fatalf("ticks continued after stop: %d -> %d", after, got)
	}
}
