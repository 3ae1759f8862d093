package domain

import "sync"

// GameState is the whole session: one snake, one piece of food and the
// tick counter. Ticks and direction changes are serialized by mu; readers
// only ever see Snapshot copies.
type GameState struct {
	StateOrder int32
	Field      *Field
	Config     *GameConfig

	snake   *Snake
	food    Coord
	hasFood bool
	resets  int
	spawner FoodSpawner

	mu sync.RWMutex
}

// Snapshot is a read-only copy of the game for rendering.
type Snapshot struct {
	StateOrder int32
	GridSize   int32
	Cells      []Coord
	Food       Coord
	HasFood    bool
	Direction  Direction
	Resets     int
}

func (s Snapshot) Head() Coord {
	return s.Cells[len(s.Cells)-1]
}

func (s Snapshot) Length() int {
	return len(s.Cells)
}

func NewGameState(config *GameConfig, spawner FoodSpawner) *GameState {
	field := NewField(config.GridSize, config.GridSize)
	gs := &GameState{
		Field:   field,
		Config:  config.Copy(),
		snake:   NewSnake(field),
		spawner: spawner,
	}
	gs.respawnFoodUnlocked()
	return gs
}

// SubmitDirection stages a direction for the next tick. See
// Snake.SubmitDirection.
func (gs *GameState) SubmitDirection(key rune) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.snake.SubmitDirection(key)
}

func (gs *GameState) Snapshot() Snapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.snapshotUnlocked()
}

func (gs *GameState) Food() (Coord, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.food, gs.hasFood
}

func (gs *GameState) snapshotUnlocked() Snapshot {
	return Snapshot{
		StateOrder: gs.StateOrder,
		GridSize:   gs.Field.Width,
		Cells:      gs.snake.Cells(),
		Food:       gs.food,
		HasFood:    gs.hasFood,
		Direction:  gs.snake.Direction(),
		Resets:     gs.resets,
	}
}

func (gs *GameState) respawnFoodUnlocked() {
	gs.food, gs.hasFood = gs.spawner.Spawn(gs.Field, gs.snake.Occupies)
}
