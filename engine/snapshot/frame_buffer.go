package snapshot

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// frameBuffer pairs a color image with a per-pixel depth buffer.
type frameBuffer struct {
	img    *image.NRGBA
	depth  []float32
	width  int
	height int
}

func newFrameBuffer(width, height int, background color.NRGBA) *frameBuffer {
	fb := &frameBuffer{
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
		depth:  make([]float32, width*height),
		width:  width,
		height: height,
	}
	for i := range fb.depth {
		fb.depth[i] = math32.Inf(1)
	}
	for i := 0; i < len(fb.img.Pix); i += 4 {
		fb.img.Pix[i+0] = background.R
		fb.img.Pix[i+1] = background.G
		fb.img.Pix[i+2] = background.B
		fb.img.Pix[i+3] = background.A
	}
	return fb
}

// testAndSet writes c at (x, y) when z is nearer than the stored depth.
func (fb *frameBuffer) testAndSet(x, y int, z float32, c color.NRGBA) bool {
	idx := y*fb.width + x
	if z >= fb.depth[idx] {
		return false
	}
	fb.depth[idx] = z
	fb.img.SetNRGBA(x, y, c)
	return true
}
