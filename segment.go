package hermite

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Segment.Extrema]: up to two per coordinate.
const MaxExtrema = 6

// Segment is a single cubic Hermite piece of a [Spline], running from P0 at
// time T0 to P1 at time T1. V0 and V1 are the derivatives with respect to
// time at the two ends.
//
// The methods taking a time t accept values outside [T0, T1] and extrapolate
// the cubic.
type Segment struct {
	T0, T1 float64
	P0, P1 mgl64.Vec3
	V0, V1 mgl64.Vec3
}

// Duration returns T1 − T0.
func (seg Segment) Duration() float64 {
	return seg.T1 - seg.T0
}

// Param maps t ∈ [T0, T1] to u ∈ [0, 1].
func (seg Segment) Param(t float64) float64 {
	return (t - seg.T0) / seg.Duration()
}

// tangents returns the end velocities scaled to the unit parameter interval.
func (seg Segment) tangents() (mgl64.Vec3, mgl64.Vec3) {
	dt := seg.Duration()
	return seg.V0.Mul(dt), seg.V1.Mul(dt)
}

func (seg Segment) combine(b00, b10, b01, b11 float64) mgl64.Vec3 {
	m0, m1 := seg.tangents()
	return seg.P0.Mul(b00).
		Add(m0.Mul(b10)).
		Add(seg.P1.Mul(b01)).
		Add(m1.Mul(b11))
}

// EvalUnit evaluates the segment at the normalized parameter u.
func (seg Segment) EvalUnit(u float64) mgl64.Vec3 {
	u2 := u * u
	u3 := u2 * u
	return seg.combine(
		2*u3-3*u2+1,
		u3-2*u2+u,
		-2*u3+3*u2,
		u3-u2,
	)
}

// DerivUnit returns the derivative with respect to the normalized parameter u.
func (seg Segment) DerivUnit(u float64) mgl64.Vec3 {
	u2 := u * u
	return seg.combine(
		6*u2-6*u,
		3*u2-4*u+1,
		-6*u2+6*u,
		3*u2-2*u,
	)
}

// Deriv2Unit returns the second derivative with respect to the normalized
// parameter u.
func (seg Segment) Deriv2Unit(u float64) mgl64.Vec3 {
	return seg.combine(
		12*u-6,
		6*u-4,
		-12*u+6,
		6*u-2,
	)
}

// Eval returns the position at time t.
func (seg Segment) Eval(t float64) mgl64.Vec3 {
	return seg.EvalUnit(seg.Param(t))
}

// Deriv returns the derivative with respect to time at time t.
func (seg Segment) Deriv(t float64) mgl64.Vec3 {
	return seg.DerivUnit(seg.Param(t)).Mul(1 / seg.Duration())
}

// Deriv2 returns the second derivative with respect to time at time t.
func (seg Segment) Deriv2(t float64) mgl64.Vec3 {
	dt := seg.Duration()
	return seg.Deriv2Unit(seg.Param(t)).Mul(1 / (dt * dt))
}

// Bezier returns the control points of the cubic Bézier that traces the same
// curve as the segment, with u ∈ [0, 1] as its parameter.
func (seg Segment) Bezier() [4]mgl64.Vec3 {
	m0, m1 := seg.tangents()
	return [4]mgl64.Vec3{
		seg.P0,
		seg.P0.Add(m0.Mul(1.0 / 3.0)),
		seg.P1.Sub(m1.Mul(1.0 / 3.0)),
		seg.P1,
	}
}

// coefficients returns a, b, c, d such that the segment is a·u³ + b·u² + c·u + d.
func (seg Segment) coefficients() (a, b, c, d mgl64.Vec3) {
	m0, m1 := seg.tangents()
	p0, p1 := seg.P0, seg.P1
	a = p0.Mul(2).Add(m0).Sub(p1.Mul(2)).Add(m1)
	b = p1.Mul(3).Sub(p0.Mul(3)).Sub(m0.Mul(2)).Sub(m1)
	c = m0
	d = p0
	return a, b, c, d
}

// Subsegment returns the part of the segment between times t0 and t1 as a
// segment of its own. The result traces exactly the same cubic.
func (seg Segment) Subsegment(t0, t1 float64) Segment {
	return Segment{
		T0: t0,
		T1: t1,
		P0: seg.Eval(t0),
		P1: seg.Eval(t1),
		V0: seg.Deriv(t0),
		V1: seg.Deriv(t1),
	}
}

// Subdivide splits the segment in halves at its midpoint in time.
func (seg Segment) Subdivide() (Segment, Segment) {
	tm := 0.5 * (seg.T0 + seg.T1)
	return seg.Subsegment(seg.T0, tm), seg.Subsegment(tm, seg.T1)
}

// Extrema returns the times strictly between T0 and T1 at which one of the
// coordinates has a local extremum, in increasing order.
func (seg Segment) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var outN int
	a, b, c, _ := seg.coefficients()
	for k := range 3 {
		// d/du (a u³ + b u² + c u) = 3a u² + 2b u + c
		roots, n := quadraticRoots(c[k], 2*b[k], 3*a[k])
		for _, u := range roots[:n] {
			if u > 0.0 && u < 1.0 {
				out[outN] = seg.T0 + u*seg.Duration()
				outN++
			}
		}
	}
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned box enclosing the segment
// between T0 and T1.
func (seg Segment) BoundingBox() Box {
	bbox := NewBoxFromPoints(seg.P0, seg.P1)
	ex, n := seg.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(seg.Eval(t))
	}
	return bbox
}

// Arclen returns the length of the segment between T0 and T1.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature of
// the speed. The result is accurate to the given accuracy, subject to
// roundoff.
func (seg Segment) Arclen(accuracy float64) float64 {
	return seg.arclen(accuracy, 0)
}

func (seg Segment) arclen(accuracy float64, depth int) float64 {
	est8 := seg.speedQuadrature(gaussLegendre8)
	est16 := seg.speedQuadrature(gaussLegendre16)
	if math.Abs(est16-est8) < accuracy || depth >= 20 {
		return est16
	}
	s0, s1 := seg.Subdivide()
	return s0.arclen(accuracy*0.5, depth+1) + s1.arclen(accuracy*0.5, depth+1)
}

// speedQuadrature integrates |dP/du| over u ∈ [0, 1]. That is the arc length
// regardless of the segment's duration.
func (seg Segment) speedQuadrature(coeffs [][2]float64) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		sum += wi * seg.DerivUnit(0.5*(xi+1)).Len()
	}
	return 0.5 * sum
}

// Nearest finds the point on the segment, between T0 and T1, nearest to pt.
// It returns the squared distance and the time of that point.
func (seg Segment) Nearest(pt mgl64.Vec3, accuracy float64) (distSq, t float64) {
	// f is half the derivative of the squared distance with respect to u. Its
	// zero crossings from negative to positive are local minima of the
	// distance.
	f := func(u float64) float64 {
		return seg.EvalUnit(u).Sub(pt).Dot(seg.DerivUnit(u))
	}
	dist := func(u float64) float64 {
		return seg.EvalUnit(u).Sub(pt).LenSqr()
	}

	bestU := 0.0
	best := dist(0)
	if d := dist(1); d < best {
		best, bestU = d, 1
	}

	const n = 16
	epsilon := max(accuracy, 1e-12)
	u0, y0 := 0.0, f(0)
	for i := 1; i <= n; i++ {
		u1 := float64(i) / n
		y1 := f(u1)
		if y0 < 0 && y1 > 0 {
			u := solveITP(f, u0, u1, y0, y1, epsilon, 0.2)
			if d := dist(u); d < best {
				best, bestU = d, u
			}
		} else if y1 == 0 {
			if d := dist(u1); d < best {
				best, bestU = d, u1
			}
		}
		u0, y0 = u1, y1
	}
	return best, seg.T0 + bestU*seg.Duration()
}
