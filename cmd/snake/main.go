package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics"
	"snake/internal/ui/types"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	config, verbose := parseFlags(os.Args[1:])

	application, err := app.NewApp(app.Options{
		Config:  config,
		Verbose: verbose,
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	engine := graphics.NewEngine(config)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		engine.Quit()
	}()

	go handleAppEvents(application, engine)
	go handleUIEvents(application, engine)

	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}

	cancel()
	application.Stop()
}

func parseFlags(args []string) (*domain.GameConfig, bool) {
	config := domain.DefaultGameConfig()

	fs := flag.NewFlagSet("snake", flag.ExitOnError)
	grid := fs.Int("grid", int(config.GridSize), "number of cells per side")
	rate := fs.Int("rate", int(config.RefreshRate), "ticks per second")
	cell := fs.Int("cell", int(config.CellSize), "cell size in pixels")
	fs.BoolVar(&config.FixedFood, "fixed-food", false, "always drop food on the same cell")
	foodX := fs.Int("food-x", int(config.FoodX), "food column with -fixed-food")
	foodY := fs.Int("food-y", int(config.FoodY), "food row with -fixed-food")
	fs.Int64Var(&config.Seed, "seed", config.Seed, "random seed for food placement")
	verbose := fs.Bool("verbose", false, "log every move")
	fs.Parse(args)

	config.GridSize = int32(*grid)
	config.RefreshRate = int32(*rate)
	config.CellSize = int32(*cell)
	config.FoodX = int32(*foodX)
	config.FoodY = int32(*foodY)

	return config, *verbose
}

func handleAppEvents(application *app.App, engine *graphics.Engine) {
	for event := range application.Events() {
		switch event.Type {
		case app.AppEventStateUpdated:
			engine.SetState(event.Payload.(domain.Snapshot))

		case app.AppEventReset:
			engine.SetMessage("Ran into yourself, starting over")

		case app.AppEventAte:
			snapshot := event.Payload.(domain.Snapshot)
			engine.SetMessage(fmt.Sprintf("Yum! Length %d", snapshot.Length()))

		case app.AppEventError:
			if payload, ok := event.Payload.(app.ErrorPayload); ok {
				engine.SetError(payload.Message)
			}
		}
	}
}

func handleUIEvents(application *app.App, engine *graphics.Engine) {
	for event := range engine.Events() {
		switch event.Type {
		case types.UIEventKeys:
			data := event.Payload.(types.KeysData)
			for _, key := range data.Keys {
				application.Input() <- app.InputEvent{Type: app.InputKey, Payload: key}
			}

		case types.UIEventQuit:
			application.Input() <- app.InputEvent{Type: app.InputQuit}
		}
	}
}
