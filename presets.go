package hermite

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Straight returns a ten second path along +X at a constant 1.5 units per
// second.
func Straight() *Spline {
	return New(
		Pt(0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1.5, 0, 0}),
		Pt(10, mgl64.Vec3{15, 0, 0}, mgl64.Vec3{1.5, 0, 0}),
	)
}

// EaseInOut returns a ten second path along +X that starts and ends at rest.
func EaseInOut() *Spline {
	return New(
		Pt(0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 0}),
		Pt(10, mgl64.Vec3{15, 0, 0}, mgl64.Vec3{0, 0, 0}),
	)
}

// Circle returns an approximately circular closed path of radius 5 in the XZ
// plane, taking 20 seconds per lap.
func Circle() *Spline {
	return New(
		Pt(0, mgl64.Vec3{5, 0, 0}, mgl64.Vec3{0, 0, 1.5}),
		Pt(5, mgl64.Vec3{0, 0, 5}, mgl64.Vec3{-1.5, 0, 0}),
		Pt(10, mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{0, 0, -1.5}),
		Pt(15, mgl64.Vec3{0, 0, -5}, mgl64.Vec3{1.5, 0, 0}),
		Pt(20, mgl64.Vec3{5, 0, 0}, mgl64.Vec3{0, 0, 1.5}),
	)
}

// FigureEight returns a closed figure-eight path in the XZ plane, crossing
// itself at the origin, taking 20 seconds per lap.
func FigureEight() *Spline {
	return New(
		Pt(0, mgl64.Vec3{5, 0, 0}, mgl64.Vec3{0, 0, 1}),
		Pt(5, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{-1, 0, -1}),
		Pt(10, mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{0, 0, 1}),
		Pt(15, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, -1}),
		Pt(20, mgl64.Vec3{5, 0, 0}, mgl64.Vec3{0, 0, 1}),
	)
}

var presets = map[string]func() *Spline{
	"straight":     Straight,
	"ease":         EaseInOut,
	"circle":       Circle,
	"figure-eight": FigureEight,
}

// Preset returns the named example path. See [PresetNames] for the names.
func Preset(name string) (*Spline, bool) {
	fn, ok := presets[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// PresetNames returns the names accepted by [Preset], sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
