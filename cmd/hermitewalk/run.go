package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"golang.org/x/time/rate"

	"honnef.co/go/hermite"
)

type options struct {
	path     string
	fps      float64
	duration time.Duration
	format   string
	realtime bool
	loop     bool
}

// frameWriter emits one record per walker frame.
type frameWriter interface {
	WriteFrame(n int, f hermite.Frame) error
	Flush() error
}

type textWriter struct {
	w io.Writer
}

func (tw textWriter) WriteFrame(n int, f hermite.Frame) error {
	p, v := f.Position, f.Velocity
	_, err := fmt.Fprintf(tw.w, "%6d t=%8.4f pos=(%8.4f, %8.4f, %8.4f) vel=(%8.4f, %8.4f, %8.4f) speed=%.4f playback=%.4f\n",
		n, f.Time, p[0], p[1], p[2], v[0], v[1], v[2], f.Speed, f.PlaybackRate)
	return err
}

func (textWriter) Flush() error { return nil }

type csvWriter struct {
	w      *csv.Writer
	header bool
}

func (cw *csvWriter) WriteFrame(n int, f hermite.Frame) error {
	if !cw.header {
		cw.header = true
		if err := cw.w.Write([]string{"frame", "t", "x", "y", "z", "vx", "vy", "vz", "speed", "playback", "anim"}); err != nil {
			return err
		}
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	p, v := f.Position, f.Velocity
	return cw.w.Write([]string{
		strconv.Itoa(n), ff(f.Time),
		ff(p[0]), ff(p[1]), ff(p[2]),
		ff(v[0]), ff(v[1]), ff(v[2]),
		ff(f.Speed), ff(f.PlaybackRate), ff(f.AnimationTime),
	})
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

func newFrameWriter(format string, w io.Writer) (frameWriter, error) {
	switch format {
	case "text":
		return textWriter{w}, nil
	case "csv":
		return &csvWriter{w: csv.NewWriter(w)}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// run walks the configured path and writes every frame to out, followed by a
// summary line in text mode.
func run(ctx context.Context, opts options, out io.Writer) error {
	path, ok := hermite.Preset(opts.path)
	if !ok {
		return fmt.Errorf("unknown path %q", opts.path)
	}
	if err := path.Validate(); err != nil {
		return fmt.Errorf("path %q: %w", opts.path, err)
	}
	if !(opts.fps > 0) || math.IsInf(opts.fps, 0) {
		return fmt.Errorf("invalid frame rate %g", opts.fps)
	}
	fw, err := newFrameWriter(opts.format, out)
	if err != nil {
		return err
	}

	simulated := opts.duration.Seconds()
	if simulated <= 0 {
		simulated = path.Duration()
	}
	dt := 1 / opts.fps
	frames := int(math.Round(simulated * opts.fps))
	logDebug("walking %s for %d frames of %gs", opts.path, frames, dt)

	var limiter *rate.Limiter
	if opts.realtime {
		limiter = rate.NewLimiter(rate.Limit(opts.fps), 1)
	}

	cfg := hermite.DefaultConfig()
	cfg.Loop = opts.loop
	w := hermite.NewWalker(path, cfg)
	var last hermite.Frame
	for n := 1; n <= frames; n++ {
		var err error
		if limiter != nil {
			err = limiter.Wait(ctx)
		} else {
			err = ctx.Err()
		}
		if err != nil {
			// Keep the frames written so far.
			if ferr := fw.Flush(); ferr != nil {
				return errors.Join(err, fmt.Errorf("writing frames: %w", ferr))
			}
			return err
		}
		last = w.Advance(dt)
		if err := fw.WriteFrame(n, last); err != nil {
			return fmt.Errorf("writing frame %d: %w", n, err)
		}
	}
	if err := fw.Flush(); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}

	if opts.format == "text" {
		length := path.Arclen(hermite.DefaultAccuracy)
		lap := time.Duration(path.Duration() * float64(time.Second))
		_, err := fmt.Fprintf(out, "%s: %s frames, path length %s, lap time %s, animation time %s\n",
			opts.path,
			humanize.Comma(int64(frames)),
			humanize.FtoaWithDigits(length, 3),
			durafmt.Parse(lap).LimitFirstN(2).String(),
			humanize.FtoaWithDigits(last.AnimationTime, 3))
		return err
	}
	return nil
}
