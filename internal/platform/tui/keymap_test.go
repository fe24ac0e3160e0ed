package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"k", runeKey('k'), core.ActionRotate, false},
		{"x", runeKey('x'), core.ActionRotate, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop, false},
		{"j", runeKey('j'), core.ActionSoftDrop, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionHardDrop, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.msg.String(), action, tc.expected)
			}
			if quit != tc.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.msg.String(), quit, tc.quit)
			}
		})
	}
}

func TestIsMovement(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionRotate, core.ActionSoftDrop, core.ActionHardDrop} {
		if !isMovement(a) {
			t.Errorf("%v should be a movement action", a)
		}
	}
	for _, a := range []core.Action{core.ActionNone, core.ActionPause, core.ActionRestart, core.ActionQuit} {
		if isMovement(a) {
			t.Errorf("%v should not be a movement action", a)
		}
	}
}

func TestHelpBindingsEnabled(t *testing.T) {
	keys := DefaultKeyMap()
	for _, b := range keys.ShortHelp() {
		if !b.Enabled() {
			t.Errorf("binding %q should be enabled", b.Help().Key)
		}
	}
	count := 0
	for _, col := range keys.FullHelp() {
		count += len(col)
	}
	if count != 9 {
		t.Errorf("FullHelp() lists %d bindings, expected 9", count)
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestIntentGate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	g := newIntentGate(100 * time.Millisecond)
	g.now = clock.now

	if !g.allow() {
		t.Fatal("first intent should pass")
	}

	clock.advance(50 * time.Millisecond)
	if g.allow() {
		t.Error("intent 50ms after the last accepted one should be dropped")
	}

	// Dropped intents don't extend the wait
	clock.advance(50 * time.Millisecond)
	if !g.allow() {
		t.Error("intent exactly at the delay should pass")
	}

	clock.advance(10 * time.Millisecond)
	if g.allow() {
		t.Error("intent 10ms later should be dropped")
	}

	g.reset()
	if !g.allow() {
		t.Error("intent right after reset should pass")
	}
}

func TestIntentGateDisabled(t *testing.T) {
	g := newIntentGate(0)
	g.now = func() time.Time { return time.Unix(0, 0) }

	for i := 0; i < 5; i++ {
		if !g.allow() {
			t.Errorf("intent %d should pass with zero delay", i)
		}
	}
}
