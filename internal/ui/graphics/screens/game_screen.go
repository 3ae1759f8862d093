package screens

import (
	"fmt"
	"slices"

	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const FooterHeight = 50

const helpText = "Press 'hjkl' to move"

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	keyboard      *input.KeyboardHandler

	state    *domain.Snapshot
	errorMsg string
	message  string
}

func NewGameScreen(ctx types.ScreenContext, cellSize int) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(cellSize),
		keyboard:      input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) SetState(state *domain.Snapshot) {
	s.state = state
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	keys := s.keyboard.Update()
	if len(keys) > 0 {
		return types.UIEvent{
			Type:    types.UIEventKeys,
			Payload: types.KeysData{Keys: slices.Clone(keys)},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	fonts := types.GetFonts()

	if s.state == nil {
		msg := "Waiting for the first tick..."
		bounds := text.BoundString(fonts.Normal, msg)
		text.Draw(screen, msg, fonts.Normal, (w-bounds.Dx())/2, h/2, types.ColorTextDim)
		return
	}

	s.fieldRenderer.DrawGrid(screen, s.state.GridSize)
	s.fieldRenderer.DrawSnake(screen, s.state.Cells)
	if s.state.HasFood {
		s.fieldRenderer.DrawFood(screen, s.state.Food)
	}

	s.drawFooter(screen, w, h)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()
	top := h - FooterHeight

	bounds := text.BoundString(fonts.Normal, helpText)
	text.Draw(screen, helpText, fonts.Normal, (w-bounds.Dx())/2, top+20, types.ColorText)

	info := fmt.Sprintf("Tick #%d  |  Length: %d  |  Resets: %d",
		s.state.StateOrder,
		s.state.Length(),
		s.state.Resets)
	text.Draw(screen, info, fonts.Normal, 10, top+40, types.ColorTextDim)

	// Errors take the slot over game notices.
	switch {
	case s.errorMsg != "":
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, w-bounds.Dx()-10, top+40, types.ColorError)
	case s.message != "":
		bounds := text.BoundString(fonts.Normal, s.message)
		text.Draw(screen, s.message, fonts.Normal, w-bounds.Dx()-10, top+40, types.ColorSuccess)
	}
}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
}

func (s *GameScreen) SetMessage(msg string) {
	s.message = msg
}
