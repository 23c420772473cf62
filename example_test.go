package hermite_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"honnef.co/go/hermite"
)

func ExampleSpline() {
	// Ease in and out: start and end at rest.
	s := hermite.New(
		hermite.Pt(0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 0}),
		hermite.Pt(10, mgl64.Vec3{10, 0, 0}, mgl64.Vec3{0, 0, 0}),
	)
	for _, t := range []float64{0, 2.5, 5, 7.5, 10} {
		fmt.Printf("t=%-4g x=%.3f speed=%.3f\n", t, s.Eval(t).X(), s.Deriv(t).Len())
	}
	// Output:
	// t=0    x=0.000 speed=0.000
	// t=2.5  x=1.562 speed=1.125
	// t=5    x=5.000 speed=1.500
	// t=7.5  x=8.438 speed=1.125
	// t=10   x=10.000 speed=0.000
}

func ExampleSpline_SolveForArclen() {
	s := hermite.Straight()
	l := s.Arclen(hermite.DefaultAccuracy)
	t := s.SolveForArclen(l/2, hermite.DefaultAccuracy)
	fmt.Printf("length %.3f, halfway at t=%.3f\n", l, t)
	// Output:
	// length 15.000, halfway at t=5.000
}

func ExampleWalker() {
	cfg := hermite.DefaultConfig()
	cfg.Loop = false
	w := hermite.NewWalker(hermite.Straight(), cfg)
	for range 4 {
		f := w.Advance(2.5)
		fmt.Printf("t=%.1f x=%.2f playback=%.3f\n", f.Time, f.Position.X(), f.PlaybackRate)
	}
	// Output:
	// t=2.5 x=3.75 playback=0.964
	// t=5.0 x=7.50 playback=0.964
	// t=7.5 x=11.25 playback=0.964
	// t=10.0 x=15.00 playback=0.964
}
