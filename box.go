package hermite

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned box in 3D.
type Box struct {
	Min, Max mgl64.Vec3
}

// NewBoxFromPoints returns a box with the extents of p0 and p1, ensuring that
// all sides have non-negative length.
func NewBoxFromPoints(p0, p1 mgl64.Vec3) Box {
	return Box{p0, p1}.Abs()
}

// NewBoxFromCenter returns a box of the given size centered around center.
func NewBoxFromCenter(center, size mgl64.Vec3) Box {
	half := size.Mul(0.5)
	return NewBoxFromPoints(center.Sub(half), center.Add(half))
}

func (b Box) String() string {
	return fmt.Sprintf("[⟨%g, %g, %g⟩, ⟨%g, %g, %g⟩]",
		b.Min[0], b.Min[1], b.Min[2],
		b.Max[0], b.Max[1], b.Max[2])
}

// Abs returns a new box with the same extents as b, but ensuring that all
// sides have non-negative length.
func (b Box) Abs() Box {
	var out Box
	for i := range 3 {
		out.Min[i] = min(b.Min[i], b.Max[i])
		out.Max[i] = max(b.Min[i], b.Max[i])
	}
	return out
}

// Size returns Max − Min. Components may be negative.
func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// IsEmpty reports whether the box has zero volume.
func (b Box) IsEmpty() bool {
	sz := b.Size()
	return sz[0] <= 0 || sz[1] <= 0 || sz[2] <= 0
}

// Contains reports whether pt lies within the box, boundary included.
func (b Box) Contains(pt mgl64.Vec3) bool {
	for i := range 3 {
		if pt[i] < b.Min[i] || pt[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Union returns the smallest box enclosing b and o.
//
// Results are valid only if all sides have non-negative length.
func (b Box) Union(o Box) Box {
	var out Box
	for i := range 3 {
		out.Min[i] = min(b.Min[i], o.Min[i])
		out.Max[i] = max(b.Max[i], o.Max[i])
	}
	return out
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points yields their
// enclosing box.
func (b Box) UnionPoint(pt mgl64.Vec3) Box {
	return b.Union(Box{pt, pt})
}

// Intersect returns the intersection of two boxes.
//
// The result always has non-negative side lengths, and zero volume if the
// boxes don't overlap.
func (b Box) Intersect(o Box) Box {
	var out Box
	for i := range 3 {
		lo := max(b.Min[i], o.Min[i])
		hi := min(b.Max[i], o.Max[i])
		out.Min[i] = lo
		out.Max[i] = max(lo, hi)
	}
	return out
}

// Inflate expands a box by a constant amount in every direction.
func (b Box) Inflate(d float64) Box {
	v := mgl64.Vec3{d, d, d}
	return Box{b.Min.Sub(v), b.Max.Add(v)}
}
