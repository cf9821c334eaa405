package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is one interval's worth of frame statistics.
type Stats struct {
	// FPS is frames per second over the interval.
	FPS float64
	// CameraUpdatesPerSecond is the rate of Camera.Update calls over the interval.
	CameraUpdatesPerSecond float64
	// HeapMB is the live heap size in megabytes at the end of the interval.
	HeapMB float64
	// GCCount is the cumulative number of completed GC cycles.
	GCCount uint32
}

// Profiler tracks frame rate, camera update rate and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	cameraUpdates  int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	last           Stats
	logging        bool

	now func() time.Time
}

// NewProfiler creates a new Profiler that logs once per second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		logging:        true,
		now:            time.Now,
	}
}

// SetInterval changes how often statistics are computed and logged.
//
// Parameters:
//   - d: the interval (values <= 0 keep the current interval)
func (p *Profiler) SetInterval(d time.Duration) {
	if d > 0 {
		p.updateInterval = d
	}
}

// SetLogging turns log output on or off; statistics are still computed.
//
// Parameters:
//   - enabled: whether Tick logs when an interval elapses
func (p *Profiler) SetLogging(enabled bool) {
	p.logging = enabled
}

// Last returns the statistics of the most recently completed interval.
//
// Returns:
//   - Stats: the last computed stats (zero before the first interval completes)
func (p *Profiler) Last() Stats {
	return p.last
}

// Tick should be called once per frame with the number of cameras updated that frame.
// When the interval has elapsed it computes Stats and logs them.
//
// Parameters:
//   - cameraUpdates: Camera.Update calls made this frame
//
// Returns:
//   - bool: true if stats were computed this tick, false otherwise
func (p *Profiler) Tick(cameraUpdates int) bool {
	p.frameCount++
	p.cameraUpdates += cameraUpdates
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	seconds := elapsed.Seconds()
	p.last = Stats{
		FPS:                    float64(p.frameCount) / seconds,
		CameraUpdatesPerSecond: float64(p.cameraUpdates) / seconds,
		HeapMB:                 float64(p.memStats.Alloc) / 1024 / 1024,
		GCCount:                p.memStats.NumGC,
	}

	if p.logging {
		log.Printf("[Profiler] FPS: %.2f | Camera updates: %.1f/s | Heap: %.2f MB | GC: %d",
			p.last.FPS, p.last.CameraUpdatesPerSecond, p.last.HeapMB, p.last.GCCount)
	}

	p.frameCount = 0
	p.cameraUpdates = 0
	p.lastTime = currentTime
	return true
}
