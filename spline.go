package hermite

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidSpline is wrapped by all errors returned by [Spline.Validate].
var ErrInvalidSpline = errors.New("invalid spline")

// ControlPoint is a waypoint of a [Spline]: the position the path passes
// through at time T, and the velocity it has there.
type ControlPoint struct {
	T        float64
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// Pt returns the control point (t, p, v).
func Pt(t float64, p, v mgl64.Vec3) ControlPoint {
	return ControlPoint{T: t, Position: p, Velocity: v}
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("(%g, ⟨%g, %g, %g⟩, ⟨%g, %g, %g⟩)",
		cp.T,
		cp.Position[0], cp.Position[1], cp.Position[2],
		cp.Velocity[0], cp.Velocity[1], cp.Velocity[2])
}

// Spline is a piecewise cubic Hermite curve in 3D, parametrized by time.
//
// Control points must be in strictly increasing order of T. This is the
// caller's responsibility and is not checked by [New] or by any of the
// evaluation methods; use [Spline.Validate] to check it explicitly. A spline
// is immutable after construction and may be evaluated from multiple
// goroutines concurrently.
type Spline struct {
	points []ControlPoint
}

// New returns a spline through the given control points. The points are
// copied.
func New(points ...ControlPoint) *Spline {
	return &Spline{points: append([]ControlPoint(nil), points...)}
}

// Points returns a copy of the spline's control points.
func (s *Spline) Points() []ControlPoint {
	return append([]ControlPoint(nil), s.points...)
}

// Len returns the number of control points.
func (s *Spline) Len() int { return len(s.points) }

// MinTime returns the time of the first control point.
func (s *Spline) MinTime() float64 { return s.points[0].T }

// MaxTime returns the time of the last control point.
func (s *Spline) MaxTime() float64 { return s.points[len(s.points)-1].T }

// Duration returns MaxTime − MinTime.
func (s *Spline) Duration() float64 { return s.MaxTime() - s.MinTime() }

// Validate reports whether the spline satisfies the preconditions of the
// evaluation methods: at least two control points, finite values, and
// strictly increasing times.
func (s *Spline) Validate() error {
	if len(s.points) < 2 {
		return fmt.Errorf("%w: need at least 2 control points, have %d", ErrInvalidSpline, len(s.points))
	}
	for i, cp := range s.points {
		if math.IsNaN(cp.T) || math.IsInf(cp.T, 0) {
			return fmt.Errorf("%w: control point %d has time %g", ErrInvalidSpline, i, cp.T)
		}
		if !isFinite(cp.Position) || !isFinite(cp.Velocity) {
			return fmt.Errorf("%w: control point %d is not finite: %v", ErrInvalidSpline, i, cp)
		}
		if i > 0 && cp.T <= s.points[i-1].T {
			return fmt.Errorf("%w: control point %d has time %g, not after %g",
				ErrInvalidSpline, i, cp.T, s.points[i-1].T)
		}
	}
	return nil
}

// Locate clamps t to [MinTime, MaxTime] and finds the segment containing it.
//
// The returned index i satisfies points[i].T <= t < points[i+1].T. When t
// coincides with the time of a control point k > 0, k is returned, which for
// the last control point is not the start of any segment; see [Spline.Eval]
// for how that is resolved. A spline with a single control point always
// reports segment 0.
func (s *Spline) Locate(t float64) (float64, int) {
	if t > s.MaxTime() {
		t = s.MaxTime()
	} else if t < s.MinTime() {
		t = s.MinTime()
	}
	for i := 1; i < len(s.points); i++ {
		if s.points[i].T > t {
			return t, i - 1
		} else if s.points[i].T == t {
			return t, i
		}
	}
	return t, 0
}

// segmentIndex maps a located index to the segment used for evaluation.
// Locate reports the last control point's index for t == MaxTime, and that
// index wraps around to the first segment.
func (s *Spline) segmentIndex(i int) int {
	if i >= len(s.points)-1 {
		return 0
	}
	return i
}

// Segment returns the i'th segment, spanning control points i and i+1.
func (s *Spline) Segment(i int) Segment {
	a, b := s.points[i], s.points[i+1]
	return Segment{
		T0: a.T,
		T1: b.T,
		P0: a.Position,
		P1: b.Position,
		V0: a.Velocity,
		V1: b.Velocity,
	}
}

// Segments returns an iterator over the spline's segments, in order.
func (s *Spline) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := range len(s.points) - 1 {
			if !yield(s.Segment(i)) {
				return
			}
		}
	}
}

func (s *Spline) segmentAt(t float64) (Segment, float64) {
	t, i := s.Locate(t)
	if len(s.points) == 1 {
		// A lone control point is a constant path.
		p := s.points[0]
		return Segment{T0: p.T, T1: p.T + 1, P0: p.Position, P1: p.Position}, t
	}
	return s.Segment(s.segmentIndex(i)), t
}

// Eval returns the position of the spline at time t.
//
// Times outside [MinTime, MaxTime] are clamped. At exactly MaxTime the first
// segment is evaluated, which for two control points is the last control
// point's position. With more control points, looping callers should use
// [Spline.EvalClosed] instead.
//
// A segment of zero duration produces NaNs. A spline with a single control
// point evaluates to that point's position everywhere, with zero derivative.
func (s *Spline) Eval(t float64) mgl64.Vec3 {
	seg, t := s.segmentAt(t)
	return seg.Eval(t)
}

// Deriv returns the derivative of the spline with respect to time at time t.
// It uses the same segment selection as [Spline.Eval].
func (s *Spline) Deriv(t float64) mgl64.Vec3 {
	seg, t := s.segmentAt(t)
	return seg.Deriv(t)
}

// wrapTime reduces t into [MinTime, MaxTime).
func (s *Spline) wrapTime(t float64) float64 {
	d := s.Duration()
	if d <= 0 {
		return s.MinTime()
	}
	t = math.Mod(t-s.MinTime(), d)
	if t < 0 {
		t += d
	}
	return s.MinTime() + t
}

// EvalClosed is like [Spline.Eval], but treats the spline as a loop of
// period [Spline.Duration]: t is wrapped into [MinTime, MaxTime) instead of
// being clamped.
func (s *Spline) EvalClosed(t float64) mgl64.Vec3 {
	return s.Eval(s.wrapTime(t))
}

// DerivClosed is like [Spline.Deriv], but wraps t like [Spline.EvalClosed].
func (s *Spline) DerivClosed(t float64) mgl64.Vec3 {
	return s.Deriv(s.wrapTime(t))
}

// BoundingBox returns the smallest axis-aligned box that encloses the spline
// between MinTime and MaxTime.
func (s *Spline) BoundingBox() Box {
	bbox := NewBoxFromPoints(s.points[0].Position, s.points[0].Position)
	for seg := range s.Segments() {
		bbox = bbox.Union(seg.BoundingBox())
	}
	return bbox
}

// Transform returns the spline transformed by the affine matrix m. Positions
// are transformed by m, velocities by its linear part.
func (s *Spline) Transform(m mgl64.Mat4) *Spline {
	lin := m.Mat3()
	out := &Spline{points: make([]ControlPoint, len(s.points))}
	for i, cp := range s.points {
		out.points[i] = ControlPoint{
			T:        cp.T,
			Position: mgl64.TransformCoordinate(cp.Position, m),
			Velocity: lin.Mul3x1(cp.Velocity),
		}
	}
	return out
}

func isFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
