package input

import (
	"github.com/eiannone/keyboard"
	"github.com/gdamore/tcell/v2"
)

// runes shared by both terminal key sources
var runeActions = map[rune]Action{
	'q': ActionQuit,
	' ': ActionFire,
	'f': ActionFire,
	'p': ActionPause,
	'r': ActionRestart,
	'm': ActionMenu,
	'h': ActionLeft,
	'l': ActionRight,
	'k': ActionUp,
	'j': ActionDown,
	'1': ActionLane0,
	'2': ActionLane1,
	'3': ActionLane2,
}

// TranslateKey maps a raw terminal key to an action.
func TranslateKey(ev keyboard.KeyEvent) Action {
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return ActionQuit
	case keyboard.KeyEnter:
		return ActionConfirm
	case keyboard.KeySpace:
		return ActionFire
	case keyboard.KeyArrowLeft:
		return ActionLeft
	case keyboard.KeyArrowRight:
		return ActionRight
	case keyboard.KeyArrowUp:
		return ActionUp
	case keyboard.KeyArrowDown:
		return ActionDown
	}
	return runeActions[ev.Rune]
}

// TranslateTcell maps a tcell key event to an action.
func TranslateTcell(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyRune:
		return runeActions[ev.Rune()]
	}
	return ActionNone
}
