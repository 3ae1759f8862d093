package domain

import "testing"

func TestRandomSpawnerAvoidsSnake(t *testing.T) {
	field := NewField(10, 10)
	free := Coord{7, 3}
	occupied := func(c Coord) bool { return c != free }

	spawner := NewRandomSpawner(1)
	for i := 0; i < 50; i++ {
		got, ok := spawner.Spawn(field, occupied)
		if !ok {
			t.Fatal("Spawn() reported a full board")
		}
		if got != free {
			t.Fatalf("Spawn() = %v, want the only free cell %v", got, free)
		}
	}
}

func TestRandomSpawnerCoversFreeCells(t *testing.T) {
	field := NewField(4, 4)
	snake := map[Coord]bool{{0, 0}: true, {0, 1}: true}
	occupied := func(c Coord) bool { return snake[c] }

	spawner := NewRandomSpawner(42)
	seen := make(map[Coord]int)
	for i := 0; i < 2000; i++ {
		got, ok := spawner.Spawn(field, occupied)
		if !ok {
			t.Fatal("Spawn() reported a full board")
		}
		if snake[got] {
			t.Fatalf("Spawn() = %v, on the snake", got)
		}
		seen[got]++
	}
	if len(seen) != field.Area()-len(snake) {
		t.Errorf("Spawn() reached %d cells, want %d", len(seen), field.Area()-len(snake))
	}
}

func TestRandomSpawnerFullBoard(t *testing.T) {
	spawner := NewRandomSpawner(1)
	if _, ok := spawner.Spawn(NewField(4, 4), func(Coord) bool { return true }); ok {
		t.Error("Spawn() found a cell on a full board")
	}
}

func TestFixedSpawner(t *testing.T) {
	spawner := FixedSpawner{At: Coord{4, 4}}
	got, ok := spawner.Spawn(NewField(10, 10), func(Coord) bool { return true })
	if !ok || got != (Coord{4, 4}) {
		t.Errorf("Spawn() = %v, %v, want (4, 4), true", got, ok)
	}
}
