package snapshot

import (
	"image"
	"image/color"

	"github.com/Carmen-Shannon/frost/engine/camera"
	"github.com/Carmen-Shannon/frost/engine/model"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// options collects the settings applied by SnapshotOption functions.
type options struct {
	width, height int
	supersample   int
	background    color.NRGBA

	fov       float32
	azimuth   float32
	elevation float32
	distance  float32
	ambient   float32
}

func defaultOptions() options {
	return options{
		width:       512,
		height:      512,
		supersample: 2,
		background:  color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		fov:         mgl32.DegToRad(45),
		azimuth:     math32.Pi / 6,
		elevation:   math32.Pi / 8,
		distance:    2.5,
		ambient:     0.25,
	}
}

// Render rasterizes a triangle list on the CPU the way the viewer draws it: the model's bounding
// sphere is framed by an orbit camera, triangles wound clockwise on screen are culled, depth is
// tested with less-than, and each pixel is lit by a headlight Lambert term over the interpolated
// vertex color.
//
// Parameters:
//   - elements: the triangle list, three elements per triangle
//   - opts: functional options (size, supersampling, background, camera placement)
//
// Returns:
//   - *image.NRGBA: the rendered image at the requested size
func Render(elements []model.Element, opts ...SnapshotOption) *image.NRGBA {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	factor := max(o.supersample, 1)
	fb := newFrameBuffer(o.width*factor, o.height*factor, o.background)

	if len(elements) >= 3 {
		bounds := model.ComputeBounds(elements)
		radius := bounds.Radius()
		if radius <= 0 {
			radius = 1
		}

		ctrl := camera.NewCameraController(
			camera.WithAzimuth(o.azimuth),
			camera.WithElevation(o.elevation),
		)
		ctrl.Fit(bounds.Center(), radius, o.distance)
		cam := camera.NewCamera(
			camera.WithController(ctrl),
			camera.WithFov(o.fov),
			camera.WithAspect(float32(o.width)/float32(o.height)),
			camera.WithClipPlanes(radius*0.01, radius*(o.distance+1)*10),
		)

		r := rasterizer{
			fb:       fb,
			viewProj: cam.ViewProjection(),
			eye:      cam.Uniform().CameraPosition,
			ambient:  o.ambient,
		}
		for i := 0; i+2 < len(elements); i += 3 {
			r.triangle(elements[i], elements[i+1], elements[i+2])
		}
	}

	if factor == 1 {
		return fb.img
	}
	return downsample(fb.img, o.width, o.height)
}
