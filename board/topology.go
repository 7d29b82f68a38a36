package board

import (
	"errors"
	"fmt"
)

// MaxDimension caps grid width and height; the grid must fit a terminal
const MaxDimension = 256

// ErrGridTooLarge is returned when a dimension exceeds MaxDimension
var ErrGridTooLarge = errors.New("grid too large")

// Shape names the grid layouts accepted by configuration
type Shape string

const (
	ShapeSquare Shape = "square"
	ShapeFlat   Shape = "flat"
	ShapeRect   Shape = "rect"
)

// Topology describes grid dimensions and the coordinate-to-index mapping
// A flat grid is a single row: Height 1, so Index reduces to the column
type Topology struct {
	Width  int
	Height int
}

// Square returns an n×n topology
func Square(n int) Topology {
	return Topology{Width: n, Height: n}
}

// Flat returns a linear topology of length n
func Flat(n int) Topology {
	return Topology{Width: n, Height: 1}
}

// Rect returns a w×h topology
func Rect(w, h int) Topology {
	return Topology{Width: w, Height: h}
}

// Size returns the number of cells
func (t Topology) Size() int {
	return t.Width * t.Height
}

// IsFlat reports whether the grid has a single row
func (t Topology) IsFlat() bool {
	return t.Height == 1
}

// Contains reports whether p lies inside the grid
func (t Topology) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < t.Height && p.Col >= 0 && p.Col < t.Width
}

// Index maps a position to its cell offset, row-major
func (t Topology) Index(p Position) int {
	return p.Row*t.Width + p.Col
}

// Position maps a cell offset back to its coordinates
func (t Topology) Position(index int) Position {
	return Position{Row: index / t.Width, Col: index % t.Width}
}

// Validate rejects topologies without at least one cell or wider than MaxDimension
func (t Topology) Validate() error {
	if t.Width < 1 || t.Height < 1 {
		return fmt.Errorf("invalid topology %dx%d: dimensions must be positive", t.Width, t.Height)
	}
	if t.Width > MaxDimension || t.Height > MaxDimension {
		return fmt.Errorf("invalid topology %dx%d: %w (max %d per side)", t.Width, t.Height, ErrGridTooLarge, MaxDimension)
	}
	return nil
}

func (t Topology) String() string {
	if t.IsFlat() {
		return fmt.Sprintf("flat %d", t.Width)
	}
	return fmt.Sprintf("%dx%d", t.Width, t.Height)
}

// NewTopology builds a topology from a shape name and its dimensions
// size is used by square and flat, width and height by rect
func NewTopology(shape Shape, size, width, height int) (Topology, error) {
	var t Topology
	switch shape {
	case ShapeSquare:
		t = Square(size)
	case ShapeFlat:
		t = Flat(size)
	case ShapeRect:
		t = Rect(width, height)
	default:
		return Topology{}, fmt.Errorf("unknown grid shape %q (want square, flat or rect)", shape)
	}
	if err := t.Validate(); err != nil {
		return Topology{}, err
	}
	return t, nil
}
