package domain

import "math/rand"

// FoodSpawner picks the cell for the next piece of food. occupied reports
// whether a cell is covered by the snake.
type FoodSpawner interface {
	Spawn(field *Field, occupied func(Coord) bool) (Coord, bool)
}

// RandomSpawner places food uniformly at random over the free cells and
// reports false when the board is full.
type RandomSpawner struct {
	rng *rand.Rand
}

func NewRandomSpawner(seed int64) *RandomSpawner {
	return &RandomSpawner{rng: rand.New(rand.NewSource(seed))}
}

func (rs *RandomSpawner) Spawn(field *Field, occupied func(Coord) bool) (Coord, bool) {
	free := make([]Coord, 0, field.Area())
	for _, cell := range field.Cells() {
		if !occupied(cell) {
			free = append(free, cell)
		}
	}
	if len(free) == 0 {
		return Coord{}, false
	}
	return free[rs.rng.Intn(len(free))], true
}

// FixedSpawner always returns the same cell, whether or not the snake is
// on it.
type FixedSpawner struct {
	At Coord
}

func (fs FixedSpawner) Spawn(field *Field, _ func(Coord) bool) (Coord, bool) {
	return field.Normalize(fs.At), true
}
