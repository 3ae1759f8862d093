package domain

// Field is a toroidal grid: stepping past an edge wraps to the opposite one.
type Field struct {
	Width  int32
	Height int32
}

func NewField(width, height int32) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) Normalize(c Coord) Coord {
	return Coord{X: wrap(c.X, f.Width), Y: wrap(c.Y, f.Height)}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

func (f *Field) Area() int {
	return int(f.Width) * int(f.Height)
}

// Cells lists every cell row by row.
func (f *Field) Cells() []Coord {
	cells := make([]Coord, 0, f.Area())
	for y := int32(0); y < f.Height; y++ {
		for x := int32(0); x < f.Width; x++ {
			cells = append(cells, Coord{X: x, Y: y})
		}
	}
	return cells
}

func wrap(v, size int32) int32 {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
