// Package timing measures the phases of a completion request.
package timing

import (
	"fmt"
	"strings"
	"time"
)

type mark struct {
	label string
	phase time.Duration
}

// Timer records consecutive phases. Each Mark closes the phase that began at
// the previous Mark (or at creation).
type Timer struct {
	start time.Time
	last  time.Time
	marks []mark
	now   func() time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return newTimer(time.Now)
}

func newTimer(now func() time.Time) *Timer {
	t := now()
	return &Timer{start: t, last: t, now: now}
}

// Mark ends the current phase under label and returns its duration
func (t *Timer) Mark(label string) time.Duration {
	now := t.now()
	phase := now.Sub(t.last)
	t.last = now
	t.marks = append(t.marks, mark{label: label, phase: phase})
	return phase
}

// Elapsed returns total elapsed time since timer creation
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Summary returns a formatted summary of all phases
func (t *Timer) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "total=%s", ms(t.Elapsed()))
	for _, m := range t.marks {
		fmt.Fprintf(&b, " %s=%s", m.label, ms(m.phase))
	}
	return b.String()
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000.0)
}
