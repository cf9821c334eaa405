package profiler

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestProfiler() (*Profiler, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewProfiler()
	p.now = clock.now
	p.lastTime = clock.t
	p.SetLogging(false)
	return p, clock
}

func TestTickComputesStatsAfterInterval(t *testing.T) {
	p, clock := newTestProfiler()

	for range 9 {
		clock.advance(100 * time.Millisecond)
		if p.Tick(3) {
			t.Fatalf("Tick reported stats before the interval elapsed")
		}
	}
	clock.advance(100 * time.Millisecond)
	if !p.Tick(3) {
		t.Fatalf("Tick did not report stats after one second")
	}

	got := p.Last()
	if got.FPS != 10 {
		t.Errorf("FPS = %v, want 10", got.FPS)
	}
	if got.CameraUpdatesPerSecond != 30 {
		t.Errorf("CameraUpdatesPerSecond = %v, want 30", got.CameraUpdatesPerSecond)
	}
	if got.HeapMB <= 0 {
		t.Errorf("HeapMB = %v, want > 0", got.HeapMB)
	}
}

func TestTickResetsCounters(t *testing.T) {
	p, clock := newTestProfiler()

	clock.advance(time.Second)
	p.Tick(100)

	clock.advance(2 * time.Second)
	if !p.Tick(4) {
		t.Fatalf("second interval not reported")
	}
	if got := p.Last(); got.FPS != 0.5 || got.CameraUpdatesPerSecond != 2 {
		t.Fatalf("second interval stats = %+v, want FPS 0.5 and 2 updates/s", got)
	}
}

func TestSetInterval(t *testing.T) {
	p, clock := newTestProfiler()
	p.SetInterval(0)
	if p.updateInterval != time.Second {
		t.Fatalf("SetInterval(0) changed the interval to %v", p.updateInterval)
	}

	p.SetInterval(250 * time.Millisecond)
	clock.advance(250 * time.Millisecond)
	if !p.Tick(0) {
		t.Fatalf("Tick did not honour the shorter interval")
	}
}
