// Package hermite provides cubic Hermite splines in 3D, parametrized by time,
// for moving entities along smooth paths in games and animation.
//
// # Splines
//
// A [Spline] is built from an ordered list of [ControlPoint] values. Each
// control point specifies a time, the position the path passes through at
// that time, and the velocity it has there. Because velocities are given
// explicitly rather than inferred from neighboring points, the shape of the
// path can be controlled directly: zero velocities at the ends produce ease-in
// and ease-out, and matching velocities at the first and last point produce a
// smooth loop.
//
// [Spline.Eval] returns the position at a given time and [Spline.Deriv] the
// velocity, that is, the derivative with respect to time (not with respect to
// a normalized parameter). The speed of an entity following the path is the
// length of that velocity, which makes it suitable for driving the playback
// rate of walk cycles and similar animations.
//
// Times before the first control point and after the last are clamped, so
// every time is valid input. The control points must however be in strictly
// increasing order of time; this is not checked during evaluation.
// [Spline.Validate] can be used to check it ahead of time.
//
// # Segments
//
// Each pair of consecutive control points forms a [Segment], a single cubic.
// Segments can be evaluated on their own, converted to cubic Béziers (see
// [Segment.Bezier]), measured (see [Segment.Arclen] and
// [Segment.BoundingBox]), and split (see [Segment.Subsegment]).
//
// # Looping
//
// A time that falls exactly on the last control point selects the first
// segment, not the last. For splines with two control points, this yields the
// last control point. For longer splines, callers treating the path as a loop
// should use [Spline.EvalClosed] and [Spline.DerivClosed], which wrap time
// around instead of clamping it.
//
// # Walking
//
// [Walker] advances a clock along a spline in fixed time steps, the way a game
// loop would, and reports the position, velocity, orientation and animation
// playback rate of the walking entity in each [Frame].
//
// Vectors, matrices, and quaternions are those of [mgl64].
//
// # Literature
//
//   - [Cubic Hermite spline]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//
// [Cubic Hermite spline]: https://en.wikipedia.org/wiki/Cubic_Hermite_spline
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [mgl64]: https://pkg.go.dev/github.com/go-gl/mathgl/mgl64
package hermite
