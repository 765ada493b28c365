package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEngineWindowDefaults(t *testing.T) {
	w := newEngineWindow()
	assert.Equal(t, "frost", w.Title())
	assert.Equal(t, 1280, w.Width())
	assert.Equal(t, 720, w.Height())
}

func TestNewEngineWindowOptions(t *testing.T) {
	w := newEngineWindow(
		WithTitle("cube"),
		WithSize(640, 0),
		WithMinSize(100, 80),
		WithMaxSize(1920, 1080),
	)
	assert.Equal(t, "cube", w.Title())
	assert.Equal(t, 640, w.Width())
	assert.Equal(t, 720, w.Height())
	assert.Equal(t, 100, w.minWidth)
	assert.Equal(t, 1080, w.maxHeight)

	w = newEngineWindow(WithTitle(""))
	assert.Equal(t, "frost", w.Title())
}

func TestHandleResize(t *testing.T) {
	w := newEngineWindow()
	var got [2]int
	w.SetResizeCallback(func(width, height int) {
		got = [2]int{width, height}
	})

	w.handleResize(800, 600)
	assert.Equal(t, [2]int{800, 600}, got)
	assert.Equal(t, 800, w.Width())
	assert.Equal(t, 600, w.Height())
}

func TestUninitializedWindow(t *testing.T) {
	w := newEngineWindow()
	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.Error(t, w.Close())

	called := false
	w.SetUpdateCallback(func() { called = true })
	w.ProcessMessages()
	assert.False(t, called)
}

func TestSizeLimit(t *testing.T) {
	assert.Equal(t, -1, sizeLimit(0))
	assert.Equal(t, 300, sizeLimit(300))
}
