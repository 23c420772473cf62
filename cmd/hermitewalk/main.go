// Command hermitewalk walks along one of the example paths with a fixed
// timestep and prints the walker's state for every frame.
//
// Usage:
//
//	hermitewalk [flags]
//
// The flags are:
//
//	-path name
//		the path to walk: circle, ease, figure-eight, or straight
//	-fps n
//		frames per second of simulated time (default 60)
//	-duration d
//		simulated time to run for, such as 45s (default: one pass of the path)
//	-format text|csv
//		output format (default text)
//	-realtime
//		pace frames to wall clock time
//	-noloop
//		stop at the end of the path instead of looping
//	-debug
//		verbose logging
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"honnef.co/go/hermite"
)

var (
	errorLogger = log.New(os.Stderr, "", log.LstdFlags)
	debugLogger = log.New(io.Discard, "debug: ", log.LstdFlags|log.Lmicroseconds)
)

func logError(format string, v ...interface{}) {
	errorLogger.Printf(format, v...)
}

func logDebug(format string, v ...interface{}) {
	debugLogger.Printf(format, v...)
}

func setDebugLogging(enabled bool) {
	if enabled {
		debugLogger.SetOutput(os.Stderr)
	} else {
		debugLogger.SetOutput(io.Discard)
	}
}

func main() {
	var opts options
	flag.StringVar(&opts.path, "path", "figure-eight", "path to walk: "+strings.Join(hermite.PresetNames(), ", "))
	flag.Float64Var(&opts.fps, "fps", 60, "frames per second of simulated time")
	flag.DurationVar(&opts.duration, "duration", 0, "simulated time to run for (default: one pass of the path)")
	flag.StringVar(&opts.format, "format", "text", "output format: text or csv")
	flag.BoolVar(&opts.realtime, "realtime", false, "pace frames to wall clock time")
	noLoop := flag.Bool("noloop", false, "stop at the end of the path instead of looping")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	setDebugLogging(*debug)
	opts.loop = !*noLoop

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			logDebug("interrupted")
			return
		}
		logError("%v", err)
		os.Exit(1)
	}
}
