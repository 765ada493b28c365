package profiler

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfilerReportsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(slog.New(slog.NewTextHandler(&buf, nil)), time.Second)
	start := p.lastTime

	for i := 1; i < 30; i++ {
		assert.False(t, p.tick(start.Add(time.Duration(i)*10*time.Millisecond)))
	}
	assert.Empty(t, buf.String())

	assert.True(t, p.tick(start.Add(time.Second)))
	assert.InDelta(t, 30, p.FPS(), 0.001)
	assert.Contains(t, buf.String(), "frame stats")
	assert.Contains(t, buf.String(), "component=profiler")

	// counter restarts after a report
	assert.False(t, p.tick(start.Add(1500*time.Millisecond)))
}

func TestNewProfilerDefaults(t *testing.T) {
	p := NewProfiler(nil, 0)
	assert.Equal(t, time.Second, p.updateInterval)
	assert.NotNil(t, p.logger)
}
