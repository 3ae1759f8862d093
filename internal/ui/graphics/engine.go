package graphics

import (
	"log"
	"sync"
	"time"

	"snake/internal/domain"
	"snake/internal/ui/graphics/screens"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	WindowTitle  = "Silly snake"
	ErrorTimeout = 2 * time.Second
)

type Engine struct {
	width  int
	height int

	screen types.Screen

	state     *domain.Snapshot
	errorMsg  string
	errorAt   time.Time
	message   string
	messageAt time.Time
	quitting  bool

	dataMu sync.RWMutex

	eventCh chan types.UIEvent
}

func NewEngine(config *domain.GameConfig) *Engine {
	types.InitFonts()

	side := int(config.GridSize * config.CellSize)
	e := &Engine{
		width:   side,
		height:  side + screens.FooterHeight,
		eventCh: make(chan types.UIEvent, 100),
	}
	e.screen = screens.NewGameScreen(e, int(config.CellSize))

	return e
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(WindowTitle)

	err := ebiten.RunGame(e)
	close(e.eventCh)
	return err
}

func (e *Engine) Update() error {
	e.dataMu.RLock()
	quitting := e.quitting
	e.dataMu.RUnlock()
	if quitting {
		return ebiten.Termination
	}

	e.handleEvent(e.screen.Update())

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	if updater, ok := e.screen.(GameStateUpdater); ok {
		e.dataMu.RLock()
		updater.SetState(e.state)
		e.dataMu.RUnlock()
	}

	if setter, ok := e.screen.(ErrorSetter); ok {
		e.dataMu.RLock()
		if time.Since(e.errorAt) < ErrorTimeout {
			setter.SetError(e.errorMsg)
		} else {
			setter.SetError("")
		}
		e.dataMu.RUnlock()
	}

	if setter, ok := e.screen.(MessageSetter); ok {
		e.dataMu.RLock()
		if time.Since(e.messageAt) < ErrorTimeout {
			setter.SetMessage(e.message)
		} else {
			setter.SetMessage("")
		}
		e.dataMu.RUnlock()
	}

	e.screen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

// SetState hands the engine the snapshot to draw from the next frame on.
func (e *Engine) SetState(state domain.Snapshot) {
	e.dataMu.Lock()
	e.state = &state
	e.dataMu.Unlock()
}

// SetError shows err in the footer for ErrorTimeout.
func (e *Engine) SetError(err string) {
	e.dataMu.Lock()
	e.errorMsg = err
	e.errorAt = time.Now()
	e.dataMu.Unlock()
}

// SetMessage shows a game notice in the footer for ErrorTimeout.
func (e *Engine) SetMessage(msg string) {
	e.dataMu.Lock()
	e.message = msg
	e.messageAt = time.Now()
	e.dataMu.Unlock()
}

// Quit makes the game loop return ebiten.Termination on its next update.
func (e *Engine) Quit() {
	e.dataMu.Lock()
	e.quitting = true
	e.dataMu.Unlock()
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventQuit:
		e.Quit()
		select {
		case e.eventCh <- event:
		default:
		}

	default:
		select {
		case e.eventCh <- event:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
}

type GameStateUpdater interface {
	SetState(state *domain.Snapshot)
}

type ErrorSetter interface {
	SetError(err string)
}

type MessageSetter interface {
	SetMessage(msg string)
}
