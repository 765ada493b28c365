package profiler

import (
	"log/slog"
	"runtime"
	"time"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Stats are logged at Info level once per update interval.
type Profiler struct {
	logger         *slog.Logger
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	// last reported frame rate
	fps float64
}

// NewProfiler creates a new Profiler that reports through logger every interval.
// A nil logger uses slog.Default and a non-positive interval defaults to 1 second.
//
// Parameters:
//   - logger: the destination for stat lines
//   - interval: how often stats are logged
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(logger *slog.Logger, interval time.Duration) *Profiler {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Profiler{
		logger:         logger.With("component", "profiler"),
		lastTime:       time.Now(),
		updateInterval: interval,
	}
}

// Tick should be called once per frame.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	return p.tick(time.Now())
}

// FPS returns the frame rate computed at the last report.
func (p *Profiler) FPS() float64 {
	return p.fps
}

func (p *Profiler) tick(now time.Time) bool {
	p.frameCount++
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	p.fps = float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	const mb = 1024 * 1024
	allocRate := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / mb / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPause, maxPause time.Duration
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses
		lastPause = time.Duration(p.memStats.PauseNs[(gcCount-1)%256])
		start := p.lastGCCount
		if gcCount-start > 256 {
			start = gcCount - 256
		}
		for i := start; i < gcCount; i++ {
			maxPause = max(maxPause, time.Duration(p.memStats.PauseNs[i%256]))
		}
	}

	p.logger.Info("frame stats",
		"fps", p.fps,
		"heap_mb", float64(p.memStats.Alloc)/mb,
		"alloc_mb_per_s", allocRate,
		"gc", gcCount,
		"gc_last_pause", lastPause,
		"gc_max_pause", maxPause,
		"sys_mb", float64(p.memStats.Sys)/mb,
	)

	p.frameCount = 0
	p.lastTime = now
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
