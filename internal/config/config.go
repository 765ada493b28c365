package config

import (
	"bytes"
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every setting the frost binary reads from its TOML file.
// Zero fields are filled in by Resolve.
type Config struct {
	Model    string `toml:"model"`
	LogLevel string `toml:"log_level"`
	Workers  int    `toml:"workers"`

	Window   Window   `toml:"window"`
	Render   Render   `toml:"render"`
	Camera   Camera   `toml:"camera"`
	Snapshot Snapshot `toml:"snapshot"`
}

// Window configures the viewer window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Render configures the GPU renderer.
type Render struct {
	PresentMode string      `toml:"present_mode"` // "vsync" or "uncapped"
	MSAA        int         `toml:"msaa"`         // 1, 4, 8 or 16
	ClearColor  *[4]float64 `toml:"clear_color"`  // RGBA in [0, 1]; nil when unset
	FrameLimit  int         `toml:"frame_limit"`
	Profiler    bool        `toml:"profiler"`
}

// Camera configures the initial orbit camera.
type Camera struct {
	Fov      float32 `toml:"fov"`      // vertical field of view in degrees
	Distance float32 `toml:"distance"` // eye distance in bounding-sphere radii
}

// Snapshot configures the headless renderer.
type Snapshot struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Supersample int    `toml:"supersample"`
	Output      string `toml:"output"`
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting untouched.
type Flags struct {
	Model       string
	LogLevel    string
	Workers     int
	PresentMode string
	MSAA        int
	Profiler    bool
	FrameLimit  int
	Width       int
	Height      int
	Supersample int
	Output      string
}

// DefaultClearColor is used when the file leaves clear_color unset.
var DefaultClearColor = [4]float64{0, 1, 0, 1}

// Load reads a TOML config file. Unknown keys are rejected so typos surface early.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - Config: the decoded settings, unresolved
//   - error: an error if the file cannot be read or parsed
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies CLI overrides, then fills every empty field with its default.
//
// Parameters:
//   - flags: CLI values, non-zero entries win over the file
func (c *Config) Resolve(flags Flags) {
	c.Model = cmp.Or(flags.Model, c.Model)
	c.LogLevel = strings.ToLower(cmp.Or(flags.LogLevel, c.LogLevel, "info"))
	c.Workers = cmp.Or(max(flags.Workers, 0), max(c.Workers, 0), runtime.NumCPU())
	c.Render.Profiler = c.Render.Profiler || flags.Profiler

	c.Window.Title = cmp.Or(c.Window.Title, "frost")
	c.Window.Width = cmp.Or(max(c.Window.Width, 0), 1280)
	c.Window.Height = cmp.Or(max(c.Window.Height, 0), 720)

	c.Render.PresentMode = strings.ToLower(cmp.Or(flags.PresentMode, c.Render.PresentMode, "vsync"))
	c.Render.MSAA = cmp.Or(max(flags.MSAA, 0), max(c.Render.MSAA, 0), 1)
	c.Render.FrameLimit = cmp.Or(max(flags.FrameLimit, 0), max(c.Render.FrameLimit, 0))
	if c.Render.ClearColor == nil {
		cc := DefaultClearColor
		c.Render.ClearColor = &cc
	}

	c.Camera.Fov = cmp.Or(max(c.Camera.Fov, 0), 45)
	c.Camera.Distance = cmp.Or(max(c.Camera.Distance, 0), 2.5)

	c.Snapshot.Width = cmp.Or(max(flags.Width, 0), max(c.Snapshot.Width, 0), 512)
	c.Snapshot.Height = cmp.Or(max(flags.Height, 0), max(c.Snapshot.Height, 0), c.Snapshot.Width)
	c.Snapshot.Supersample = cmp.Or(max(flags.Supersample, 0), max(c.Snapshot.Supersample, 0), 2)
	c.Snapshot.Output = cmp.Or(flags.Output, c.Snapshot.Output)
}

// Level maps LogLevel onto a slog level. Unknown names fall back to Info.
//
// Returns:
//   - slog.Level: the configured level
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Defaults returns a Config with every field resolved and no file or flags applied.
//
// Returns:
//   - Config: the default settings
func Defaults() Config {
	var c Config
	c.Resolve(Flags{})
	return c
}
