package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/Carmen-Shannon/frost/common"
	"github.com/Carmen-Shannon/frost/engine/camera"
	"github.com/Carmen-Shannon/frost/engine/loader"
	"github.com/Carmen-Shannon/frost/engine/model"
	"github.com/Carmen-Shannon/frost/engine/renderer"
	"github.com/Carmen-Shannon/frost/engine/snapshot"
	"github.com/Carmen-Shannon/frost/engine/viewer"
	"github.com/Carmen-Shannon/frost/engine/window"
	"github.com/Carmen-Shannon/frost/internal/config"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// command binds a subcommand's flags onto config.Flags and runs it against the resolved config.
type command struct {
	flags func(fs *flag.FlagSet, f *config.Flags)
	run   func(cfg *config.Config, paths []string, stdout io.Writer) error
}

var commands = map[string]command{
	"view":     {flags: viewFlags, run: runView},
	"dump":     {flags: noFlags, run: runDump},
	"stats":    {flags: statsFlags, run: runStats},
	"snapshot": {flags: snapshotFlags, run: runSnapshot},
}

func noFlags(*flag.FlagSet, *config.Flags) {}

func viewFlags(fs *flag.FlagSet, f *config.Flags) {
	fs.StringVar(&f.PresentMode, "present-mode", "", "vsync or uncapped")
	fs.IntVar(&f.MSAA, "msaa", 0, "MSAA sample count: 1, 4, 8 or 16")
	fs.IntVar(&f.FrameLimit, "fps", 0, "frame rate cap, 0 for none")
	fs.BoolVar(&f.Profiler, "profile", false, "log frame statistics")
}

func statsFlags(fs *flag.FlagSet, f *config.Flags) {
	fs.IntVar(&f.Workers, "workers", 0, "concurrent loads (default: NumCPU)")
}

func snapshotFlags(fs *flag.FlagSet, f *config.Flags) {
	fs.StringVar(&f.Output, "o", "", "output image, .webp or .png (default: <model>.webp)")
	fs.IntVar(&f.Width, "width", 0, "image width in pixels")
	fs.IntVar(&f.Height, "height", 0, "image height in pixels (default: width)")
	fs.IntVar(&f.Supersample, "supersample", 0, "render at N times the size and downscale")
}

func runView(cfg *config.Config, paths []string, _ io.Writer) error {
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	cc := *cfg.Render.ClearColor
	rend := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(renderer.ParsePresentMode(cfg.Render.PresentMode)),
		renderer.WithMSAA(renderer.ParseMSAASampleCount(cfg.Render.MSAA)),
		renderer.WithClearColor(wgpu.Color{R: cc[0], G: cc[1], B: cc[2], A: cc[3]}),
	)
	cam := camera.NewCamera(
		camera.WithFov(mgl32.DegToRad(cfg.Camera.Fov)),
		camera.WithController(camera.NewCameraController()),
	)

	v, err := viewer.NewViewer(
		viewer.WithWindow(win),
		viewer.WithRenderer(rend),
		viewer.WithCamera(cam),
		viewer.WithLogger(slog.Default()),
		viewer.WithProfiling(cfg.Render.Profiler),
		viewer.WithRenderFrameLimit(float64(cfg.Render.FrameLimit)),
		viewer.WithCameraDistance(cfg.Camera.Distance),
	)
	if err != nil {
		return err
	}
	if err := v.Load(paths[0]); err != nil {
		// the first frame closes the window and Run releases the GPU resources
		v.Quit()
		v.Run()
		return err
	}
	v.Run()
	return nil
}

func runDump(_ *config.Config, paths []string, stdout io.Writer) error {
	mdl, err := loader.NewLoader(loader.BackendTypeWavefront).Load(paths[0])
	if err != nil {
		return err
	}
	for _, e := range mdl.Elements() {
		fmt.Fprintf(stdout, "%+v\n", e)
	}
	return nil
}

func runStats(cfg *config.Config, paths []string, stdout io.Writer) error {
	l := loader.NewLoader(loader.BackendTypeWavefront,
		loader.WithWorkers(cfg.Workers),
		loader.WithLogger(slog.Default()),
	)
	models, err := l.LoadAll(paths...)
	if err != nil {
		return err
	}

	sorted := slices.SortedFunc(maps.Values(models), func(a, b model.Model) int {
		return strings.Compare(a.Name(), b.Name())
	})

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tVERTICES\tTRIANGLES\tMIN\tMAX\tRADIUS")
	for _, m := range sorted {
		b := m.Bounds()
		fmt.Fprintf(tw, "%s\t%d\t%d\t%v\t%v\t%.4g\n",
			m.Name(), m.VertexCount(), m.TriangleCount(), b.Min, b.Max, b.Radius())
	}
	return tw.Flush()
}

func runSnapshot(cfg *config.Config, paths []string, stdout io.Writer) error {
	mdl, err := loader.NewLoader(loader.BackendTypeWavefront).Load(paths[0])
	if err != nil {
		return err
	}

	out := cfg.Snapshot.Output
	if out == "" {
		out = strings.TrimSuffix(paths[0], filepath.Ext(paths[0])) + ".webp"
	}

	cc := *cfg.Render.ClearColor
	img := snapshot.Render(mdl.Elements(),
		snapshot.WithSize(cfg.Snapshot.Width, cfg.Snapshot.Height),
		snapshot.WithSupersample(cfg.Snapshot.Supersample),
		snapshot.WithBackground(color.NRGBA{
			R: common.UnitToByte(float32(cc[0])),
			G: common.UnitToByte(float32(cc[1])),
			B: common.UnitToByte(float32(cc[2])),
			A: common.UnitToByte(float32(cc[3])),
		}),
		snapshot.WithFov(mgl32.DegToRad(cfg.Camera.Fov)),
		snapshot.WithDistance(cfg.Camera.Distance),
	)
	if err := snapshot.Save(out, img); err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)
	return nil
}
