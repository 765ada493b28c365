package model

import (
	"github.com/chewxy/math32"
)

// Bounds is an axis-aligned bounding box in model space.
type Bounds struct {
	// Min is the smallest coordinate on each axis.
	Min [3]float32

	// Max is the largest coordinate on each axis.
	Max [3]float32
}

// ComputeBounds walks every element position and returns the enclosing box.
// An empty slice yields the zero Bounds.
//
// Parameters:
//   - elements: the triangle list to measure
//
// Returns:
//   - Bounds: the axis-aligned box enclosing every position
func ComputeBounds(elements []Element) Bounds {
	if len(elements) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: elements[0].Position, Max: elements[0].Position}
	for _, e := range elements[1:] {
		for axis := 0; axis < 3; axis++ {
			b.Min[axis] = math32.Min(b.Min[axis], e.Position[axis])
			b.Max[axis] = math32.Max(b.Max[axis], e.Position[axis])
		}
	}
	return b
}

// Center returns the midpoint of the box.
//
// Returns:
//   - [3]float32: the center point
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) * 0.5,
		(b.Min[1] + b.Max[1]) * 0.5,
		(b.Min[2] + b.Max[2]) * 0.5,
	}
}

// Size returns the edge lengths of the box.
//
// Returns:
//   - [3]float32: extent along x, y and z
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Radius returns the radius of the sphere centered on Center that encloses the box.
//
// Returns:
//   - float32: half the box diagonal
func (b Bounds) Radius() float32 {
	s := b.Size()
	return 0.5 * math32.Sqrt(s[0]*s[0]+s[1]*s[1]+s[2]*s[2])
}
