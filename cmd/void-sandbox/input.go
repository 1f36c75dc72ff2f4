package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-trader/gameplay"
	"github.com/lixenwraith/void-trader/parameter"
)

type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdReset
	cmdGrid
)

// hold keeps a direction active for a few frames after its key event
// Terminals report presses and repeats but never releases
type hold struct {
	dir  int
	left int
}

func (h *hold) press(dir int) {
	h.dir = dir
	h.left = parameter.ControlHoldFrames
}

func (h *hold) next() int {
	if h.left == 0 {
		return 0
	}
	h.left--
	return h.dir
}

// heldControls turns key events into per-frame pilot intents
type heldControls struct {
	thrust hold
	turn   hold
	strafe hold
	fire   hold
	deploy bool
}

// handleKey records an intent and returns any sandbox command the key maps to
func (h *heldControls) handleKey(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyTab:
		return cmdGrid
	case tcell.KeyUp:
		h.thrust.press(1)
	case tcell.KeyDown:
		h.thrust.press(-1)
	case tcell.KeyLeft:
		h.turn.press(1)
	case tcell.KeyRight:
		h.turn.press(-1)
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			h.thrust.press(1)
		case 's':
			h.thrust.press(-1)
		case 'a':
			h.turn.press(1)
		case 'd':
			h.turn.press(-1)
		case 'q':
			h.strafe.press(1)
		case 'e':
			h.strafe.press(-1)
		case ' ':
			h.fire.press(1)
		case 'g':
			h.deploy = true
		case 'r':
			return cmdReset
		}
	}
	return cmdNone
}

// apply writes this frame's intents and ages the holds
func (h *heldControls) apply(c *gameplay.Controls) {
	c.Thrust = h.thrust.next()
	c.Turn = h.turn.next()
	c.Strafe = h.strafe.next()
	c.Fire = h.fire.next() != 0
	if h.deploy {
		c.Deploy = true
		h.deploy = false
	}
}
