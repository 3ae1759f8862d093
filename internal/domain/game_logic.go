package domain

type TickResult struct {
	Order    int32
	Reset    bool
	Ate      bool
	Head     Coord
	Snapshot Snapshot
}

// Tick applies one update step: move, reset on collision or grow on food,
// capture the redraw snapshot, then release the direction lock.
func (gs *GameState) Tick() *TickResult {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.StateOrder++
	result := &TickResult{Order: gs.StateOrder}

	tail, ok := gs.snake.Move()
	if !ok {
		gs.snake.Init()
		gs.resets++
		result.Reset = true
		if !gs.Config.FixedFood && (!gs.hasFood || gs.snake.Occupies(gs.food)) {
			gs.respawnFoodUnlocked()
		}
	} else if gs.hasFood && gs.snake.Eat(gs.food) && gs.snake.Grow(tail) {
		// Grow fails when the head took the vacated tail cell; the food
		// stays until the head reaches it with the cell free behind.
		result.Ate = true
		gs.respawnFoodUnlocked()
	}

	result.Head = gs.snake.Head()
	result.Snapshot = gs.snapshotUnlocked()

	gs.snake.ClearLock()

	return result
}
