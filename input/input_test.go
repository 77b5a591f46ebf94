package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/muncher/player"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestDirectionLatches(t *testing.T) {
	h := NewHandler()

	if got := h.State(); got != (player.InputState{}) {
		t.Fatalf("fresh handler state = %+v, want empty", got)
	}

	h.HandleEvent(keyEvent(tcell.KeyLeft, 0))
	want := player.InputState{Left: true}
	if got := h.State(); got != want {
		t.Fatalf("state = %+v, want %+v", got, want)
	}

	// Latch holds with no further events
	if got := h.State(); got != want {
		t.Errorf("latch dropped: %+v", got)
	}

	// A new direction replaces, never combines
	h.HandleEvent(keyEvent(tcell.KeyRune, 'k'))
	if got := h.State(); got != (player.InputState{Up: true}) {
		t.Errorf("state after vi up = %+v", got)
	}
}

func TestActionDecoding(t *testing.T) {
	h := NewHandler()

	if got := h.HandleEvent(keyEvent(tcell.KeyEscape, 0)); got != ActionQuit {
		t.Errorf("escape = %v, want quit", got)
	}
	if got := h.HandleEvent(keyEvent(tcell.KeyRune, 'q')); got != ActionQuit {
		t.Errorf("q = %v, want quit", got)
	}
	if got := h.HandleEvent(keyEvent(tcell.KeyRune, ' ')); got != ActionPause {
		t.Errorf("space = %v, want pause", got)
	}
	if got := h.HandleEvent(keyEvent(tcell.KeyRune, 'd')); got != ActionNone {
		t.Errorf("steer key = %v, want none", got)
	}
}

func TestResetClearsLatch(t *testing.T) {
	h := NewHandler()
	h.HandleEvent(keyEvent(tcell.KeyRune, 'w'))
	h.Reset()
	if got := h.State(); got != (player.InputState{}) {
		t.Errorf("state after reset = %+v, want empty", got)
	}
}
