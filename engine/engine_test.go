package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/ogde/engine/camera"
	"github.com/Carmen-Shannon/ogde/engine/profiler"
)

func newRig(t *testing.T, n int) *camera.Rig {
	t.Helper()
	rig := camera.NewRig()
	t.Cleanup(rig.Close)
	for i := range n {
		c := camera.NewCamera(camera.WithLookAt(float32(i), 2, -5, 0, 0, 0))
		if err := rig.Add(string(rune('a'+i)), c); err != nil {
			t.Fatal(err)
		}
	}
	return rig
}

func TestRunStopsAtMaxFrames(t *testing.T) {
	rig := newRig(t, 3)
	e := NewEngine(WithRig(rig), WithMaxFrames(5))

	var rendered int
	e.SetRenderCallback(func(float32) {
		rendered++
		for _, name := range rig.Names() {
			if rig.Camera(name).ViewDirty() {
				t.Errorf("camera %s still dirty inside the render callback", name)
			}
		}
	})

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if rendered != 5 || e.Frames() != 5 {
		t.Fatalf("rendered %d frames (Frames() = %d), want 5", rendered, e.Frames())
	}
}

func TestQuitFromRenderCallback(t *testing.T) {
	e := NewEngine()
	if e.Rig() == nil {
		t.Fatalf("NewEngine without WithRig should create a rig")
	}
	e.SetRenderCallback(func(float32) {
		if e.Frames() == 2 {
			e.Quit()
			e.Quit()
		}
	})

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if got := e.Frames(); got != 3 {
		t.Fatalf("Frames = %d, want 3", got)
	}
}

func TestRunReturnsContextError(t *testing.T) {
	e := NewEngine(WithRenderFrameLimit(1000))
	ctx, cancel := context.WithCancel(context.Background())
	e.SetRenderCallback(func(float32) {
		cancel()
	})

	err := e.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}

func TestRunRecoversRenderPanic(t *testing.T) {
	e := NewEngine()
	e.SetRenderCallback(func(float32) {
		panic("boom")
	})

	err := e.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Run = %v, want an error carrying the panic value", err)
	}
}

func TestTickCallbackRuns(t *testing.T) {
	e := NewEngine(WithTickRate(500), WithRenderFrameLimit(200))
	ticks := make(chan float32, 1)
	e.SetTickCallback(func(dt float32) {
		select {
		case ticks <- dt:
		default:
		}
	})
	e.SetRenderCallback(func(float32) {
		select {
		case <-ticks:
			e.Quit()
		default:
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run = %v, want the tick callback to fire before the timeout", err)
	}
}

func TestProfilerTicksWhenEnabled(t *testing.T) {
	p := profiler.NewProfiler()
	p.SetLogging(false)
	p.SetInterval(time.Nanosecond)

	e := NewEngine(WithRig(newRig(t, 2)), WithProfiler(p), WithProfiling(true), WithMaxFrames(3), WithRenderFrameLimit(1000))
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if p.Last().CameraUpdatesPerSecond <= 0 {
		t.Fatalf("profiler did not record camera updates: %+v", p.Last())
	}
}

func TestSetTickRateWhileRunning(t *testing.T) {
	e := NewEngine(WithTickRate(1000), WithRenderFrameLimit(1000), WithMaxFrames(50))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 200 {
			e.SetTickRate(float64(100 + i))
		}
	}()

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run = %v", err)
	}
	<-done
	e.SetTickRate(0)
}
