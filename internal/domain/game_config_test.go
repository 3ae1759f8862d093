package domain

import (
	"testing"
	"time"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.GridSize != 10 {
		t.Errorf("GridSize = %d, want 10", cfg.GridSize)
	}
	if got := cfg.TickInterval(); got != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 100ms", got)
	}
	if _, ok := cfg.Spawner().(*RandomSpawner); !ok {
		t.Errorf("Spawner() = %T, want *RandomSpawner", cfg.Spawner())
	}
}

func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*GameConfig)
	}{
		{"grid too small", func(c *GameConfig) { c.GridSize = 3 }},
		{"grid too large", func(c *GameConfig) { c.GridSize = 101 }},
		{"rate zero", func(c *GameConfig) { c.RefreshRate = 0 }},
		{"rate too high", func(c *GameConfig) { c.RefreshRate = 61 }},
		{"cell too small", func(c *GameConfig) { c.CellSize = 9 }},
		{"food off grid", func(c *GameConfig) { c.FixedFood = true; c.FoodX = 10 }},
		{"food negative", func(c *GameConfig) { c.FixedFood = true; c.FoodY = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted an invalid config")
			}
		})
	}
}

func TestGameConfigCopy(t *testing.T) {
	cfg := DefaultGameConfig()
	cp := cfg.Copy()
	cp.GridSize = 20
	if cfg.GridSize != 10 {
		t.Error("Copy() shares state with the original")
	}
}
