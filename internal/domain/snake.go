package domain

var (
	initialTail = Coord{X: 0, Y: 0}
	initialHead = Coord{X: 0, Y: 1}
)

// Snake owns the body and the direction staged for the next tick.
// At most one direction change is accepted between two ClearLock calls.
type Snake struct {
	field   *Field
	body    *Body
	pending Direction
	moved   bool
}

func NewSnake(field *Field) *Snake {
	s := &Snake{
		field:   field,
		body:    NewBody(field.Area()),
		pending: DirectionRight,
	}
	s.Init()
	return s
}

// Init restores the two-segment start position. The pending direction is
// kept.
func (s *Snake) Init() {
	s.body.Reset(initialTail, initialHead)
}

// Move advances the head one cell. The tail is removed before the
// collision check, so the head may enter the cell the tail just left.
// On collision ok is false and the body is left one segment short; the
// caller is expected to Init.
func (s *Snake) Move() (tail Coord, ok bool) {
	if s.body.Len() < 2 {
		s.Init()
	}

	head := s.body.Back()
	neck := s.body.At(s.body.Len() - 2)
	tail = s.body.PopFront()

	next := s.pending.MoveHead(s.field, head, neck)
	if s.body.Contains(next) {
		return Coord{}, false
	}

	s.body.PushBack(next)
	return tail, true
}

func (s *Snake) Eat(food Coord) bool {
	return s.Head().Equals(food)
}

// Grow puts a previously removed tail back behind the current tail. It
// reports false when the head has already moved into that cell.
func (s *Snake) Grow(tail Coord) bool {
	return s.body.PushFront(tail)
}

func (s *Snake) SetDirection(dir Direction) bool {
	if s.moved {
		return false
	}
	s.moved = true
	s.pending = dir
	return true
}

// SubmitDirection stages the direction bound to key. Unknown keys return
// an error wrapping ErrInvalidKey and leave the lock untouched; a valid
// key while locked is ignored.
func (s *Snake) SubmitDirection(key rune) error {
	dir, err := ParseKey(key)
	if err != nil {
		return err
	}
	s.SetDirection(dir)
	return nil
}

func (s *Snake) ClearLock() {
	s.moved = false
}

func (s *Snake) Locked() bool {
	return s.moved
}

func (s *Snake) Direction() Direction {
	return s.pending
}

func (s *Snake) Head() Coord {
	return s.body.Back()
}

func (s *Snake) Neck() Coord {
	return s.body.At(s.body.Len() - 2)
}

func (s *Snake) Tail() Coord {
	return s.body.Front()
}

func (s *Snake) Len() int {
	return s.body.Len()
}

func (s *Snake) Occupies(c Coord) bool {
	return s.body.Contains(c)
}

// Cells copies the body out, tail first.
func (s *Snake) Cells() []Coord {
	return s.body.Slice()
}
