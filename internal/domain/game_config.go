package domain

import (
	"fmt"
	"time"
)

type GameConfig struct {
	GridSize    int32
	RefreshRate int32
	CellSize    int32
	FixedFood   bool
	FoodX       int32
	FoodY       int32
	Seed        int64
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		GridSize:    10,
		RefreshRate: 10,
		CellSize:    50,
		FoodX:       4,
		FoodY:       4,
		Seed:        time.Now().UnixNano(),
	}
}

func (c *GameConfig) Validate() error {
	if c.GridSize < 4 || c.GridSize > 100 {
		return fmt.Errorf("grid size %d out of range [4, 100]", c.GridSize)
	}
	if c.RefreshRate < 1 || c.RefreshRate > 60 {
		return fmt.Errorf("refresh rate %d out of range [1, 60]", c.RefreshRate)
	}
	if c.CellSize < 10 || c.CellSize > 100 {
		return fmt.Errorf("cell size %d out of range [10, 100]", c.CellSize)
	}
	if c.FixedFood {
		if c.FoodX < 0 || c.FoodX >= c.GridSize || c.FoodY < 0 || c.FoodY >= c.GridSize {
			return fmt.Errorf("food cell (%d, %d) outside %dx%d grid", c.FoodX, c.FoodY, c.GridSize, c.GridSize)
		}
	}
	return nil
}

func (c *GameConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.RefreshRate)
}

// Spawner builds the food placement strategy the config asks for.
func (c *GameConfig) Spawner() FoodSpawner {
	if c.FixedFood {
		return FixedSpawner{At: Coord{X: c.FoodX, Y: c.FoodY}}
	}
	return NewRandomSpawner(c.Seed)
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}
