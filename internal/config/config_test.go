package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frost.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	c := Defaults()
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, runtime.NumCPU(), c.Workers)
	assert.Equal(t, Window{Title: "frost", Width: 1280, Height: 720}, c.Window)
	assert.Equal(t, "vsync", c.Render.PresentMode)
	assert.Equal(t, 1, c.Render.MSAA)
	assert.Equal(t, DefaultClearColor, *c.Render.ClearColor)
	assert.Equal(t, float32(45), c.Camera.Fov)
	assert.Equal(t, float32(2.5), c.Camera.Distance)
	assert.Equal(t, Snapshot{Width: 512, Height: 512, Supersample: 2}, c.Snapshot)
	assert.Empty(t, c.Model)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
model = "assets/cube"
log_level = "DEBUG"
workers = 3

[window]
title = "cube"
width = 800

[render]
present_mode = "uncapped"
msaa = 4
clear_color = [0.1, 0.2, 0.3, 1.0]
profiler = true

[camera]
fov = 60.0

[snapshot]
width = 256
output = "cube.webp"
`)
	c, err := Load(path)
	require.NoError(t, err)
	c.Resolve(Flags{})

	assert.Equal(t, "assets/cube", c.Model)
	assert.Equal(t, slog.LevelDebug, c.Level())
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, Window{Title: "cube", Width: 800, Height: 720}, c.Window)
	assert.Equal(t, "uncapped", c.Render.PresentMode)
	assert.Equal(t, 4, c.Render.MSAA)
	assert.Equal(t, [4]float64{0.1, 0.2, 0.3, 1.0}, *c.Render.ClearColor)
	assert.True(t, c.Render.Profiler)
	assert.Equal(t, float32(60), c.Camera.Fov)
	assert.Equal(t, float32(2.5), c.Camera.Distance)
	assert.Equal(t, Snapshot{Width: 256, Height: 256, Supersample: 2, Output: "cube.webp"}, c.Snapshot)
}

func TestLoadKeepsExplicitZeroClearColor(t *testing.T) {
	path := writeConfig(t, "[render]\nclear_color = [0.0, 0.0, 0.0, 0.0]\n")
	c, err := Load(path)
	require.NoError(t, err)
	c.Resolve(Flags{})

	require.NotNil(t, c.Render.ClearColor)
	assert.Equal(t, [4]float64{}, *c.Render.ClearColor, "transparent black is a valid color, not unset")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "modle = \"typo\"\n"))
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "config: read")

	_, err = Load(writeConfig(t, "model = [\n"))
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolveFlagsOverride(t *testing.T) {
	c := Config{
		Model:    "from-file",
		Workers:  2,
		Render:   Render{PresentMode: "vsync", MSAA: 8},
		Snapshot: Snapshot{Width: 100, Height: 50, Output: "file.png"},
	}
	c.Resolve(Flags{
		Model:       "from-flag",
		LogLevel:    "warn",
		Workers:     6,
		PresentMode: "Uncapped",
		MSAA:        4,
		Profiler:    true,
		FrameLimit:  30,
		Width:       64,
		Supersample: 3,
		Output:      "flag.webp",
	})

	assert.Equal(t, "from-flag", c.Model)
	assert.Equal(t, slog.LevelWarn, c.Level())
	assert.Equal(t, 6, c.Workers)
	assert.Equal(t, "uncapped", c.Render.PresentMode)
	assert.Equal(t, 4, c.Render.MSAA)
	assert.True(t, c.Render.Profiler)
	assert.Equal(t, 30, c.Render.FrameLimit)
	assert.Equal(t, Snapshot{Width: 64, Height: 50, Supersample: 3, Output: "flag.webp"}, c.Snapshot)
}

func TestResolveNegativeValuesFallBack(t *testing.T) {
	c := Config{Workers: -1, Window: Window{Width: -5}, Render: Render{MSAA: -4}}
	c.Resolve(Flags{})
	assert.Equal(t, runtime.NumCPU(), c.Workers)
	assert.Equal(t, 1280, c.Window.Width)
	assert.Equal(t, 1, c.Render.MSAA)
}

func TestLevelUnknown(t *testing.T) {
	c := Config{LogLevel: "chatty"}
	assert.Equal(t, slog.LevelInfo, c.Level())
}
