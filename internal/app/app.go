package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"snake/internal/domain"

	"golang.org/x/sync/errgroup"
)

type App struct {
	state    *domain.GameState
	interval time.Duration
	verbose  bool

	eventCh chan AppEvent
	inputCh chan InputEvent

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventStateUpdated AppEventType = iota
	AppEventReset
	AppEventAte
	AppEventError
)

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputKey InputEventType = iota
	InputQuit
)

type ErrorPayload struct {
	Message string
}

type Options struct {
	Config  *domain.GameConfig
	Spawner domain.FoodSpawner
	Verbose bool
}

func NewApp(opts Options) (*App, error) {
	if opts.Config == nil {
		opts.Config = domain.DefaultGameConfig()
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if opts.Spawner == nil {
		opts.Spawner = opts.Config.Spawner()
	}

	return &App{
		state:    domain.NewGameState(opts.Config, opts.Spawner),
		interval: opts.Config.TickInterval(),
		verbose:  opts.Verbose,
		eventCh:  make(chan AppEvent, 100),
		inputCh:  make(chan InputEvent, 100),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)
	a.group, a.ctx = errgroup.WithContext(a.ctx)

	a.group.Go(a.tickLoop)
	a.group.Go(a.inputLoop)

	log.Printf("App started, ticking every %v", a.interval)

	return nil
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.group == nil {
		return
	}
	if err := a.group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("App stopped with error: %v", err)
	}
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Input() chan<- InputEvent {
	return a.inputCh
}

func (a *App) GetState() domain.Snapshot {
	return a.state.Snapshot()
}

// SubmitKey stages the direction for key. It never touches the body;
// the next tick applies it.
func (a *App) SubmitKey(key rune) error {
	return a.state.SubmitDirection(key)
}

func (a *App) tickLoop() error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return a.ctx.Err()
		case <-ticker.C:
			a.doTick()
		}
	}
}

func (a *App) doTick() {
	result := a.state.Tick()

	if a.verbose {
		log.Printf("moved %v => %v", result.Head, result.Snapshot.Direction)
	}

	switch {
	case result.Reset:
		log.Printf("Snake ran into itself at tick %d, starting over", result.Order)
		a.emit(AppEvent{Type: AppEventReset, Payload: result.Snapshot})
	case result.Ate:
		a.emit(AppEvent{Type: AppEventAte, Payload: result.Snapshot})
	}

	a.emit(AppEvent{Type: AppEventStateUpdated, Payload: result.Snapshot})
}

func (a *App) inputLoop() error {
	for {
		select {
		case <-a.ctx.Done():
			return a.ctx.Err()

		case input := <-a.inputCh:
			a.handleInput(input)
		}
	}
}

func (a *App) handleInput(input InputEvent) {
	switch input.Type {
	case InputKey:
		key := input.Payload.(rune)
		if err := a.SubmitKey(key); err != nil {
			log.Printf("Ignoring key: %v", err)
			a.emit(AppEvent{
				Type:    AppEventError,
				Payload: ErrorPayload{Message: err.Error()},
			})
		}

	case InputQuit:
		a.cancel()
	}
}

func (a *App) emit(event AppEvent) {
	select {
	case a.eventCh <- event:
	case <-a.ctx.Done():
	}
}
