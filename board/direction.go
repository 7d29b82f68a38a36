package board

import "fmt"

// Position is a cell coordinate
// Row grows downward, Col grows rightward; origin is the top-left cell
type Position struct {
	Row int
	Col int
}

// Add returns p offset by the given deltas
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Direction is a unit cursor movement
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the row and column step for d, using screen orientation
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the direction that undoes d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}
