package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRunText(t *testing.T) {
	var buf bytes.Buffer
	opts := options{path: "straight", fps: 2, duration: 10 * time.Second, format: "text", loop: true}
	if err := run(context.Background(), opts, &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 21 {
		t.Fatalf("got %d lines, want 21", len(lines))
	}
	if !strings.HasPrefix(lines[0], "     1 t=  0.5000 pos=(  0.7500,") {
		t.Errorf("unexpected first frame %q", lines[0])
	}
	if !strings.HasPrefix(lines[19], "    20 t= 10.0000 pos=( 15.0000,") {
		t.Errorf("unexpected last frame %q", lines[19])
	}
	want := "straight: 20 frames, path length 15, lap time 10 seconds, animation time 9.644"
	if lines[20] != want {
		t.Errorf("got summary %q, want %q", lines[20], want)
	}
}

func TestRunCSV(t *testing.T) {
	var buf bytes.Buffer
	opts := options{path: "circle", fps: 10, format: "csv", loop: true}
	if err := run(context.Background(), opts, &buf); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Header plus one lap at 10 fps.
	if len(records) != 201 {
		t.Fatalf("got %d records, want 201", len(records))
	}
	diff(t, []string{"frame", "t", "x", "y", "z", "vx", "vy", "vz", "speed", "playback", "anim"}, records[0])
	if records[1][0] != "1" || records[200][0] != "200" {
		t.Errorf("unexpected frame numbers %q and %q", records[1][0], records[200][0])
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		opts options
	}{
		{"unknown path", options{path: "spiral", fps: 60, format: "text"}},
		{"zero fps", options{path: "circle", fps: 0, format: "text"}},
		{"negative fps", options{path: "circle", fps: -5, format: "text"}},
		{"unknown format", options{path: "circle", fps: 60, format: "json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := run(context.Background(), tt.opts, &buf); err == nil {
				t.Error("got no error")
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	opts := options{path: "circle", fps: 60, format: "text", realtime: true}
	if err := run(ctx, opts, &buf); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}

	opts.realtime = false
	if err := run(ctx, opts, &buf); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
}

// cancelAfter reports cancellation once Err has been called n times.
type cancelAfter struct {
	context.Context
	n int
}

func (c *cancelAfter) Err() error {
	if c.n == 0 {
		return context.Canceled
	}
	c.n--
	return nil
}

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestRunCancelledFlushes(t *testing.T) {
	opts := options{path: "circle", fps: 60, format: "csv"}

	var buf bytes.Buffer
	if err := run(&cancelAfter{Context: context.Background(), n: 3}, opts, &buf); !errors.Is(err, context.Canceled) {
		t.Fatalf("got error %v, want %v", err, context.Canceled)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Header plus the frames written before cancellation.
	if len(records) != 4 {
		t.Errorf("got %d records, want 4", len(records))
	}

	err = run(&cancelAfter{Context: context.Background(), n: 3}, opts, failingWriter{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want it to wrap %v", err, context.Canceled)
	}
	if !errors.Is(err, errBrokenPipe) {
		t.Errorf("got error %v, want it to wrap %v", err, errBrokenPipe)
	}
}
