//go:build dev

// Package trace provides runtime tracing for development builds.
// This is the dev version backed by runtime/trace.
//
// Usage:
//
//	go build -tags dev ./cmd/envcomplete
//	ENVCOMPLETE_TRACE=trace.out envcomplete complete --root ./app
//	go tool trace trace.out
package trace

import (
	"context"
	"fmt"
	"os"
	"runtime/trace"
	"sync"
	"sync/atomic"
)

var (
	traceMu     sync.Mutex
	traceFile   *os.File
	traceActive atomic.Bool
)

// Init starts tracing if ENVCOMPLETE_TRACE names an output file.
// Returns a cleanup function that should be deferred.
func Init() func() {
	tracePath := os.Getenv("ENVCOMPLETE_TRACE")
	if tracePath == "" {
		return func() {}
	}

	traceMu.Lock()
	defer traceMu.Unlock()

	f, err := os.Create(tracePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "envcomplete: failed to create trace file %s: %v\n", tracePath, err)
		return func() {}
	}

	if err := trace.Start(f); err != nil {
		fmt.Fprintf(os.Stderr, "envcomplete: failed to start trace: %v\n", err)
		_ = f.Close()
		return func() {}
	}

	traceFile = f
	traceActive.Store(true)

	return func() {
		traceMu.Lock()
		defer traceMu.Unlock()

		if traceActive.Swap(false) {
			trace.Stop()
		}
		if traceFile != nil {
			_ = traceFile.Close()
			traceFile = nil
		}
	}
}

// Region opens a trace region and returns the function that closes it
func Region(ctx context.Context, regionType string) func() {
	if !traceActive.Load() {
		return func() {}
	}
	return trace.StartRegion(ctx, regionType).End
}

// Log records a message in the trace
func Log(ctx context.Context, category, message string) {
	if traceActive.Load() {
		trace.Log(ctx, category, message)
	}
}

// WithRegion executes f within a trace region
func WithRegion(ctx context.Context, regionType string, f func()) {
	if traceActive.Load() {
		trace.WithRegion(ctx, regionType, f)
		return
	}
	f()
}
