package snapshot

import (
	"image"

	"golang.org/x/image/draw"
)

// downsample scales a supersampled render to the output size with a Catmull-Rom filter.
func downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
