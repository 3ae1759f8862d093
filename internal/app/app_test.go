package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"snake/internal/domain"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return newTestAppWithFood(t, domain.Coord{X: 9, Y: 9})
}

func newTestAppWithFood(t *testing.T, food domain.Coord) *App {
	t.Helper()
	cfg := domain.DefaultGameConfig()
	cfg.RefreshRate = 60
	cfg.FixedFood = true
	cfg.FoodX, cfg.FoodY = food.X, food.Y

	a, err := NewApp(Options{Config: cfg})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	return a
}

func waitFor(t *testing.T, a *App, want AppEventType) AppEvent {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case event := <-a.Events():
			if event.Type == want {
				return event
			}
		case <-timeout:
			t.Fatalf("timed out waiting for event %d", want)
		}
	}
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := domain.DefaultGameConfig()
	cfg.GridSize = 1
	if _, err := NewApp(Options{Config: cfg}); err == nil {
		t.Error("NewApp() accepted an invalid config")
	}
}

func TestAppPublishesStateEveryTick(t *testing.T) {
	a := newTestApp(t)
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer a.Stop()

	first := waitFor(t, a, AppEventStateUpdated).Payload.(domain.Snapshot)
	second := waitFor(t, a, AppEventStateUpdated).Payload.(domain.Snapshot)
	if second.StateOrder != first.StateOrder+1 {
		t.Errorf("orders = %d, %d, want consecutive", first.StateOrder, second.StateOrder)
	}
	if second.Length() != 2 {
		t.Errorf("length = %d, want 2", second.Length())
	}
}

func TestAppSubmitKey(t *testing.T) {
	a := newTestApp(t)

	if err := a.SubmitKey('j'); err != nil {
		t.Fatalf("SubmitKey('j') error: %v", err)
	}
	if d := a.GetState().Direction; d != domain.DirectionDown {
		t.Errorf("direction = %v, want DOWN", d)
	}
	if err := a.SubmitKey('x'); !errors.Is(err, domain.ErrInvalidKey) {
		t.Errorf("SubmitKey('x') error = %v, want ErrInvalidKey", err)
	}
}

func TestAppReportsInvalidKey(t *testing.T) {
	a := newTestApp(t)
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer a.Stop()

	a.Input() <- InputEvent{Type: InputKey, Payload: 'x'}

	event := waitFor(t, a, AppEventError)
	if msg := event.Payload.(ErrorPayload).Message; msg == "" {
		t.Error("empty error message")
	}
}

func TestAppQuitStopsLoops(t *testing.T) {
	a := newTestApp(t)
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	a.Input() <- InputEvent{Type: InputQuit}

	done := make(chan struct{})
	go func() {
		a.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop() did not return after quit")
	}
}

func TestAppReportsMealAndReset(t *testing.T) {
	a := newTestAppWithFood(t, domain.Coord{X: 2, Y: 1})
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer a.Stop()

	ate := waitFor(t, a, AppEventAte).Payload.(domain.Snapshot)
	if ate.Length() != 3 || ate.Head() != (domain.Coord{X: 2, Y: 1}) {
		t.Fatalf("after meal: length %d, head %v, want 3 at (2, 1)", ate.Length(), ate.Head())
	}

	// Three segments heading right: turning left runs into the neck.
	if err := a.SubmitKey('h'); err != nil {
		t.Fatalf("SubmitKey('h') error: %v", err)
	}

	reset := waitFor(t, a, AppEventReset).Payload.(domain.Snapshot)
	if reset.Length() != 2 || reset.Resets != 1 {
		t.Errorf("after reset: length %d, resets %d, want 2, 1", reset.Length(), reset.Resets)
	}
}
