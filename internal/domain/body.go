package domain

// Body is the ordered sequence of snake cells, tail first and head last,
// backed by a ring buffer. The occupancy set always holds exactly the
// cells of the sequence; both are only changed through the methods below.
type Body struct {
	cells    []Coord
	front    int
	size     int
	occupied map[Coord]struct{}
}

func NewBody(capacity int) *Body {
	if capacity < 2 {
		capacity = 2
	}
	return &Body{
		cells:    make([]Coord, capacity),
		occupied: make(map[Coord]struct{}, capacity),
	}
}

func (b *Body) Len() int {
	return b.size
}

// At returns the i-th cell counted from the tail.
func (b *Body) At(i int) Coord {
	if i < 0 || i >= b.size {
		panic("domain: body index out of range")
	}
	return b.cells[(b.front+i)%len(b.cells)]
}

func (b *Body) Front() Coord {
	return b.At(0)
}

func (b *Body) Back() Coord {
	return b.At(b.size - 1)
}

func (b *Body) Contains(c Coord) bool {
	_, ok := b.occupied[c]
	return ok
}

// PushBack appends c as the new head. A cell already in the body is
// refused.
func (b *Body) PushBack(c Coord) bool {
	if b.Contains(c) {
		return false
	}
	b.grow()
	b.cells[(b.front+b.size)%len(b.cells)] = c
	b.size++
	b.occupied[c] = struct{}{}
	return true
}

func (b *Body) PushFront(c Coord) bool {
	if b.Contains(c) {
		return false
	}
	b.grow()
	b.front = (b.front - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.front] = c
	b.size++
	b.occupied[c] = struct{}{}
	return true
}

func (b *Body) PopFront() Coord {
	c := b.Front()
	b.cells[b.front] = Coord{}
	b.front = (b.front + 1) % len(b.cells)
	b.size--
	delete(b.occupied, c)
	return c
}

// Reset replaces the whole body with cells, tail first.
func (b *Body) Reset(cells ...Coord) {
	b.front = 0
	b.size = 0
	clear(b.occupied)
	for _, c := range cells {
		b.PushBack(c)
	}
}

// Slice copies the body out, tail first.
func (b *Body) Slice() []Coord {
	result := make([]Coord, b.size)
	for i := range result {
		result[i] = b.At(i)
	}
	return result
}

func (b *Body) grow() {
	if b.size < len(b.cells) {
		return
	}
	cells := make([]Coord, len(b.cells)*2)
	for i := 0; i < b.size; i++ {
		cells[i] = b.At(i)
	}
	b.cells = cells
	b.front = 0
}
