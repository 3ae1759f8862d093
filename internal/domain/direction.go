package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidKey = errors.New("invalid key")

type Direction int32

const (
	DirectionUp    Direction = 1
	DirectionDown  Direction = 2
	DirectionLeft  Direction = 3
	DirectionRight Direction = 4
)

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionUp
}

func (d Direction) Delta() Coord {
	switch d {
	case DirectionUp:
		return Coord{0, -1}
	case DirectionDown:
		return Coord{0, 1}
	case DirectionLeft:
		return Coord{-1, 0}
	case DirectionRight:
		return Coord{1, 0}
	}
	return Coord{}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "UP"
	case DirectionDown:
		return "DOWN"
	case DirectionLeft:
		return "LEFT"
	case DirectionRight:
		return "RIGHT"
	}
	return fmt.Sprintf("Direction(%d)", int32(d))
}

// MoveHead returns the cell one step from head in direction d.
//
// Vertical moves refuse to turn back into the neck: when the wrapped
// candidate row equals the neck's row the opposite vertical step is taken
// instead. Horizontal moves carry no such check.
func (d Direction) MoveHead(field *Field, head, neck Coord) Coord {
	switch d {
	case DirectionUp, DirectionDown:
		candidate := field.Normalize(head.Add(d.Delta()))
		if candidate.Y == neck.Y {
			return field.Normalize(head.Add(d.Opposite().Delta()))
		}
		return candidate
	}
	return field.Normalize(head.Add(d.Delta()))
}

// ParseKey maps the vi movement keys onto directions.
func ParseKey(key rune) (Direction, error) {
	switch key {
	case 'k':
		return DirectionUp, nil
	case 'j':
		return DirectionDown, nil
	case 'h':
		return DirectionLeft, nil
	case 'l':
		return DirectionRight, nil
	}
	return 0, fmt.Errorf("%w %q: press either h, j, k or l", ErrInvalidKey, key)
}
