// Package input translates tcell key events into the per-tick
// directional state. Terminals deliver no key-release events, so the
// handler latches the most recent direction and holds it until another
// direction arrives.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/muncher/player"
	"github.com/lixenwraith/muncher/vmath"
)

// Action is a non-movement command decoded from a key event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
)

// Handler holds the latched movement direction.
type Handler struct {
	current vmath.Direction
}

func NewHandler() *Handler {
	return &Handler{}
}

// HandleEvent decodes one event, updating the latched direction as a
// side effect. Arrows, hjkl and wasd all steer.
func (h *Handler) HandleEvent(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		h.current = vmath.DirUp
		return ActionNone
	case tcell.KeyDown:
		h.current = vmath.DirDown
		return ActionNone
	case tcell.KeyLeft:
		h.current = vmath.DirLeft
		return ActionNone
	case tcell.KeyRight:
		h.current = vmath.DirRight
		return ActionNone
	}

	if key.Key() != tcell.KeyRune {
		return ActionNone
	}
	switch key.Rune() {
	case 'q', 'Q':
		return ActionQuit
	case 'p', 'P', ' ':
		return ActionPause
	case 'k', 'w':
		h.current = vmath.DirUp
	case 'j', 's':
		h.current = vmath.DirDown
	case 'h', 'a':
		h.current = vmath.DirLeft
	case 'l', 'd':
		h.current = vmath.DirRight
	}
	return ActionNone
}

// State returns the latched direction as the tick input.
func (h *Handler) State() player.InputState {
	switch h.current {
	case vmath.DirUp:
		return player.InputState{Up: true}
	case vmath.DirDown:
		return player.InputState{Down: true}
	case vmath.DirLeft:
		return player.InputState{Left: true}
	case vmath.DirRight:
		return player.InputState{Right: true}
	}
	return player.InputState{}
}

// Reset clears the latch, e.g. after a lost life.
func (h *Handler) Reset() {
	h.current = vmath.DirNone
}
