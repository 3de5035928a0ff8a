//go:build !dev

// Package trace annotates completion requests for the Go execution tracer.
// Release builds compile every call down to nothing; build with -tags dev
// to record a trace.
package trace

import "context"

// Init does nothing without the dev tag
func Init() func() {
	return func() {}
}

// Region returns a no-op closer
func Region(context.Context, string) func() {
	return func() {}
}

// Log is a no-op
func Log(context.Context, string, string) {}

// WithRegion runs f
func WithRegion(_ context.Context, _ string, f func()) {
	f()
}
