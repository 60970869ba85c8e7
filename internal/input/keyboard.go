package input

import (
	"fmt"

	"github.com/eiannone/keyboard"
)

// Keyboard reads keys from the controlling terminal in the background.
type Keyboard struct {
	keys <-chan keyboard.KeyEvent
}

func OpenKeyboard() (*Keyboard, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	return &Keyboard{keys: keys}, nil
}

func (k *Keyboard) Close() error {
	return keyboard.Close()
}

// Poll returns the actions for every key pressed since the last call
// without blocking.
func (k *Keyboard) Poll() ([]Action, error) {
	var actions []Action
	for len(k.keys) > 0 {
		ev := <-k.keys
		if nil != ev.Err {
			return actions, fmt.Errorf("unable to read keyboard: %w", ev.Err)
		}
		if a := TranslateKey(ev); a != ActionNone {
			actions = append(actions, a)
		}
	}
	return actions, nil
}
