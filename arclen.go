package hermite

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sample is the state of a spline at one point in time.
type Sample struct {
	T        float64
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// Arclen returns the length of the path traced between MinTime and MaxTime.
// Each segment's length is accurate to the given accuracy.
func (s *Spline) Arclen(accuracy float64) float64 {
	var sum float64
	for seg := range s.Segments() {
		sum += seg.Arclen(accuracy)
	}
	return sum
}

// SolveForArclen returns the time at which the arc length measured from
// MinTime reaches arclen. Lengths outside of [0, Arclen] are clamped to
// MinTime and MaxTime.
//
// Each segment is solved with the [ITP method].
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func (s *Spline) SolveForArclen(arclen float64, accuracy float64) float64 {
	if arclen <= 0 || s.Len() < 2 {
		return s.MinTime()
	}
	remaining := arclen
	for seg := range s.Segments() {
		l := seg.Arclen(accuracy)
		if remaining < l {
			return seg.solveForArclen(remaining, l, accuracy)
		}
		remaining -= l
	}
	return s.MaxTime()
}

// solveForArclen finds the time within the segment at which the arc length
// from T0 equals arclen, given the segment's total length.
func (seg Segment) solveForArclen(arclen, total, accuracy float64) float64 {
	if arclen <= 0 {
		return seg.T0
	}
	epsilon := accuracy / total * seg.Duration()
	n := 1.0 - min(math.Ceil(math.Log2(accuracy/total)), 0.0)
	innerAccuracy := accuracy / n
	f := func(t float64) float64 {
		return seg.Subsegment(seg.T0, t).Arclen(innerAccuracy) - arclen
	}
	return solveITP(f, seg.T0, seg.T1, -arclen, total-arclen, epsilon, 0.2/seg.Duration())
}

// Nearest finds the point on the spline nearest to pt. It returns the squared
// distance and the time of that point.
func (s *Spline) Nearest(pt mgl64.Vec3, accuracy float64) (distSq, t float64) {
	if s.Len() < 2 {
		return s.points[0].Position.Sub(pt).LenSqr(), s.MinTime()
	}
	var best option[float64]
	var bestT float64
	for seg := range s.Segments() {
		d, segT := seg.Nearest(pt, accuracy)
		if !best.isSet || d < best.value {
			best.set(d)
			bestT = segT
		}
	}
	return best.value, bestT
}

// lastSample returns the state at the last control point, without going
// through the wrap in Eval.
func (s *Spline) lastSample() Sample {
	cp := s.points[len(s.points)-1]
	return Sample{T: cp.T, Position: cp.Position, Velocity: cp.Velocity}
}

func (s *Spline) sample(t float64) Sample {
	if t >= s.MaxTime() {
		return s.lastSample()
	}
	return Sample{T: t, Position: s.Eval(t), Velocity: s.Deriv(t)}
}

// Samples returns an iterator over the spline's state at MinTime, MinTime +
// step, MinTime + 2·step, and so on, finishing with the last control point at
// MaxTime. It yields nothing if step isn't positive.
func (s *Spline) Samples(step float64) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		if !(step > 0) {
			return
		}
		t0, t1 := s.MinTime(), s.MaxTime()
		for i := 0; ; i++ {
			t := t0 + float64(i)*step
			if t >= t1 {
				break
			}
			if !yield(s.sample(t)) {
				return
			}
		}
		yield(s.lastSample())
	}
}

// ResampleArclen returns an iterator over n+1 samples spaced evenly by arc
// length, starting at MinTime and ending at MaxTime.
func (s *Spline) ResampleArclen(n int, accuracy float64) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		n := max(n, 1)
		total := s.Arclen(accuracy)
		if math.IsInf(total, 0) || math.IsNaN(total) {
			return
		}
		for i := range n {
			t := s.SolveForArclen(total*float64(i)/float64(n), accuracy)
			if !yield(s.sample(t)) {
				return
			}
		}
		yield(s.lastSample())
	}
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
