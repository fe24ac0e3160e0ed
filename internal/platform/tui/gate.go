package tui

import "time"

// intentGate enforces a minimum delay between accepted movement intents so
// terminal key repeat does not fire several moves per keystroke.
type intentGate struct {
	delay time.Duration
	now   func() time.Time
	last  time.Time
	armed bool
}

func newIntentGate(delay time.Duration) *intentGate {
	return &intentGate{delay: delay, now: time.Now}
}

// allow reports whether an intent may pass now, and records it if so.
// A zero delay lets everything through.
func (g *intentGate) allow() bool {
	if g.delay <= 0 {
		return true
	}
	t := g.now()
	if g.armed && t.Sub(g.last) < g.delay {
		return false
	}
	g.last = t
	g.armed = true
	return true
}

// reset forgets the last accepted intent.
func (g *intentGate) reset() {
	g.armed = false
}
