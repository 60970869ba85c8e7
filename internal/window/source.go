package window

import (
	"git.lost.host/meutraa/whipbeat/internal/geom"
	"git.lost.host/meutraa/whipbeat/internal/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = map[ebiten.Key]input.Action{
	ebiten.KeyEscape:     input.ActionQuit,
	ebiten.KeyQ:          input.ActionQuit,
	ebiten.KeyEnter:      input.ActionConfirm,
	ebiten.KeySpace:      input.ActionFire,
	ebiten.KeyF:          input.ActionFire,
	ebiten.KeyP:          input.ActionPause,
	ebiten.KeyR:          input.ActionRestart,
	ebiten.KeyM:          input.ActionMenu,
	ebiten.KeyArrowLeft:  input.ActionLeft,
	ebiten.KeyArrowRight: input.ActionRight,
	ebiten.KeyArrowUp:    input.ActionUp,
	ebiten.KeyArrowDown:  input.ActionDown,
	ebiten.KeyH:          input.ActionLeft,
	ebiten.KeyL:          input.ActionRight,
	ebiten.KeyK:          input.ActionUp,
	ebiten.KeyJ:          input.ActionDown,
	ebiten.KeyDigit1:     input.ActionLane0,
	ebiten.KeyDigit2:     input.ActionLane1,
	ebiten.KeyDigit3:     input.ActionLane2,
}

func translate(keys []ebiten.Key) []input.Action {
	var actions []input.Action
	for _, k := range keys {
		if a, ok := keyActions[k]; ok {
			actions = append(actions, a)
		}
	}
	return actions
}

// ebitenSource reads the live mouse, touch and keyboard state.
type ebitenSource struct{}

// Pointer follows the first touch while there is one, the mouse otherwise.
func (ebitenSource) Pointer() (geom.Vec, bool) {
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		return geom.Vec{X: float64(x), Y: float64(y)}, true
	}
	x, y := ebiten.CursorPosition()
	return geom.Vec{X: float64(x), Y: float64(y)}, true
}

func (ebitenSource) Presses() []geom.Vec {
	var presses []geom.Vec
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		presses = append(presses, geom.Vec{X: float64(x), Y: float64(y)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		presses = append(presses, geom.Vec{X: float64(x), Y: float64(y)})
	}
	return presses
}

func (ebitenSource) Actions() []input.Action {
	return translate(inpututil.AppendJustPressedKeys(nil))
}
