package snapshot

import (
	"image/color"

	"github.com/Carmen-Shannon/frost/common"
	"github.com/Carmen-Shannon/frost/engine/model"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// minClipW rejects triangles touching or behind the eye plane.
const minClipW = 1e-6

// rasterizer draws triangles into a frameBuffer with the same conventions as the flat pipeline:
// counter-clockwise front faces, back-face culling and a [0, 1] depth range.
type rasterizer struct {
	fb       *frameBuffer
	viewProj mgl32.Mat4
	eye      mgl32.Vec3
	ambient  float32
}

// projected is a vertex after the view-projection transform.
type projected struct {
	ndc    mgl32.Vec3
	sx, sy float32 // screen position in pixels, y down
	invW   float32
	src    model.Element
}

func (r *rasterizer) project(e model.Element) (projected, bool) {
	clip := r.viewProj.Mul4x1(mgl32.Vec4{e.Position[0], e.Position[1], e.Position[2], 1})
	if clip.W() <= minClipW {
		return projected{}, false
	}
	invW := 1 / clip.W()
	ndc := mgl32.Vec3{clip.X() * invW, clip.Y() * invW, clip.Z() * invW}
	return projected{
		ndc:  ndc,
		sx:   (ndc.X()*0.5 + 0.5) * float32(r.fb.width),
		sy:   (1 - (ndc.Y()*0.5 + 0.5)) * float32(r.fb.height),
		invW: invW,
		src:  e,
	}, true
}

// triangle rasterizes one triangle. Triangles clockwise in NDC are culled.
func (r *rasterizer) triangle(e0, e1, e2 model.Element) {
	a, ok := r.project(e0)
	if !ok {
		return
	}
	b, ok := r.project(e1)
	if !ok {
		return
	}
	c, ok := r.project(e2)
	if !ok {
		return
	}

	if ndcArea(a.ndc, b.ndc, c.ndc) <= 0 {
		return
	}

	area := edge(a.sx, a.sy, b.sx, b.sy, c.sx, c.sy)
	if area == 0 {
		return
	}

	minX := max(int(math32.Floor(min(a.sx, b.sx, c.sx))), 0)
	maxX := min(int(math32.Ceil(max(a.sx, b.sx, c.sx))), r.fb.width-1)
	minY := max(int(math32.Floor(min(a.sy, b.sy, c.sy))), 0)
	maxY := min(int(math32.Ceil(max(a.sy, b.sy, c.sy))), r.fb.height-1)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edge(b.sx, b.sy, c.sx, c.sy, px, py) / area
			w1 := edge(c.sx, c.sy, a.sx, a.sy, px, py) / area
			w2 := edge(a.sx, a.sy, b.sx, b.sy, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*a.ndc.Z() + w1*b.ndc.Z() + w2*c.ndc.Z()
			if z < 0 || z > 1 {
				continue
			}
			if z >= r.fb.depth[y*r.fb.width+x] {
				continue
			}

			// perspective-correct weights
			p0, p1, p2 := w0*a.invW, w1*b.invW, w2*c.invW
			sum := p0 + p1 + p2
			p0, p1, p2 = p0/sum, p1/sum, p2/sum

			r.fb.testAndSet(x, y, z, r.shade(
				lerp3(a.src.Position, b.src.Position, c.src.Position, p0, p1, p2),
				lerp3(a.src.Normal, b.src.Normal, c.src.Normal, p0, p1, p2),
				lerp3(a.src.Color, b.src.Color, c.src.Color, p0, p1, p2),
			))
		}
	}
}

// shade applies the headlight Lambert term used by the flat shader.
func (r *rasterizer) shade(position, normal, albedo mgl32.Vec3) color.NRGBA {
	diffuse := float32(1)
	if n := normal.Len(); n > 1e-6 {
		toEye := r.eye.Sub(position)
		if d := toEye.Len(); d > 0 {
			diffuse = math32.Abs(normal.Mul(1 / n).Dot(toEye.Mul(1 / d)))
		}
	}
	light := r.ambient + (1-r.ambient)*diffuse
	return color.NRGBA{
		R: common.UnitToByte(albedo.X() * light),
		G: common.UnitToByte(albedo.Y() * light),
		B: common.UnitToByte(albedo.Z() * light),
		A: 255,
	}
}

// ndcArea returns twice the signed area of a triangle in NDC; positive is counter-clockwise.
func ndcArea(a, b, c mgl32.Vec3) float32 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (c.X()-a.X())*(b.Y()-a.Y())
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func lerp3(a, b, c [3]float32, wa, wb, wc float32) mgl32.Vec3 {
	return mgl32.Vec3{
		a[0]*wa + b[0]*wb + c[0]*wc,
		a[1]*wa + b[1]*wb + c[1]*wc,
		a[2]*wa + b[2]*wb + c[2]*wc,
	}
}
