package hermite

import "github.com/go-gl/mathgl/mgl64"

// Config controls how a [Walker] moves along its spline.
type Config struct {
	// BaseSpeed is the speed at which the walked entity's own animation plays
	// at its natural rate. A frame's PlaybackRate is its path speed divided by
	// BaseSpeed. If BaseSpeed isn't positive, PlaybackRate is always 1.
	BaseSpeed float64
	// Forward is the entity's forward axis in its own frame. Orientations
	// rotate Forward onto the direction of travel.
	Forward mgl64.Vec3
	// Loop makes the clock wrap around to MinTime after passing MaxTime.
	// Otherwise, the clock stops at MaxTime.
	Loop bool
}

// DefaultConfig returns the configuration for a looping walk cycle whose
// root moves at about 1.55 units per second along +Z.
func DefaultConfig() Config {
	return Config{
		BaseSpeed: mgl64.Vec3{-0.0221038, 0.0296905, 1.55497}.Len(),
		Forward:   mgl64.Vec3{0, 0, 1},
		Loop:      true,
	}
}

// Frame is the state of a [Walker] after advancing its clock.
type Frame struct {
	Time     float64
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Speed    float64
	// PlaybackRate is the factor by which to scale the frame time when
	// advancing the entity's own animation.
	PlaybackRate float64
	// AnimationTime accumulates frame times scaled by PlaybackRate.
	AnimationTime float64
	// Orientation rotates Config.Forward onto the direction of travel. It
	// keeps its previous value while the path is stationary.
	Orientation mgl64.Quat
}

// Walker moves an entity along a spline with a fixed-timestep clock.
//
// A Walker is not safe for concurrent use. Multiple walkers can share a
// spline.
type Walker struct {
	path   *Spline
	cfg    Config
	clock  float64
	anim   float64
	orient mgl64.Quat
}

// NewWalker returns a walker positioned at the start of path.
func NewWalker(path *Spline, cfg Config) *Walker {
	w := &Walker{path: path, cfg: cfg}
	w.Reset()
	return w
}

// Reset moves the walker back to the start of its path.
func (w *Walker) Reset() {
	w.clock = w.path.MinTime()
	w.anim = 0
	w.orient = mgl64.QuatIdent()
}

// Time returns the walker's clock.
func (w *Walker) Time() float64 { return w.clock }

// Path returns the spline the walker follows.
func (w *Walker) Path() *Spline { return w.path }

// Advance moves the clock forward by dt and returns the resulting frame.
func (w *Walker) Advance(dt float64) Frame {
	w.clock += dt
	if w.clock > w.path.MaxTime() {
		if w.cfg.Loop {
			w.clock = w.path.MinTime()
		} else {
			w.clock = w.path.MaxTime()
		}
	}
	f := w.Frame()
	w.anim += dt * f.PlaybackRate
	f.AnimationTime = w.anim
	return f
}

// Frame returns the frame at the current clock without advancing it.
func (w *Walker) Frame() Frame {
	// The clock only wraps once it has passed MaxTime, so a frame at MaxTime
	// shows the last control point in both modes.
	smp := w.path.sample(w.clock)
	pos, vel := smp.Position, smp.Velocity

	speed := vel.Len()
	rate := 1.0
	if w.cfg.BaseSpeed > 0 {
		rate = speed / w.cfg.BaseSpeed
	}

	const epsilon = 1e-12
	if speed > epsilon && w.cfg.Forward.Len() > epsilon {
		w.orient = mgl64.QuatBetweenVectors(w.cfg.Forward.Normalize(), vel.Mul(1/speed))
	}

	return Frame{
		Time:          w.clock,
		Position:      pos,
		Velocity:      vel,
		Speed:         speed,
		PlaybackRate:  rate,
		AnimationTime: w.anim,
		Orientation:   w.orient,
	}
}
