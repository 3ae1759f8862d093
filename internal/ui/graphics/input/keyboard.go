package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardHandler collects the characters typed since the last frame.
type KeyboardHandler struct {
	buf []rune
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the typed characters in order. The slice is reused on
// the next call.
func (kh *KeyboardHandler) Update() []rune {
	kh.buf = ebiten.AppendInputChars(kh.buf[:0])
	return kh.buf
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
