// Package board holds the puzzle state machine: a fixed grid of lit/unlit
// cells, the token cursor, the toggle-on-move rule and the victory check.
//
// The engine has no terminal, input or rendering knowledge. Callers feed it
// directions and read back immutable snapshots.
package board

// Engine owns the grid and cursor
// Cursor is always inside the topology; cells length never changes
type Engine struct {
	topo   Topology
	cells  []bool
	cursor Position
	moves  int
}

// New creates an engine with every cell unlit, the cursor at the origin,
// and the origin toggled once (the token lights its starting cell)
// Panics if the topology has no cells
func New(topo Topology) *Engine {
	if err := topo.Validate(); err != nil {
		panic("board: " + err.Error())
	}

	e := &Engine{
		topo:  topo,
		cells: make([]bool, topo.Size()),
	}
	e.Toggle()
	return e
}

// Toggle inverts the cell under the cursor
func (e *Engine) Toggle() {
	i := e.topo.Index(e.cursor)
	e.cells[i] = !e.cells[i]
}

// Move steps the cursor one cell in d and toggles the destination
// Out-of-bounds moves leave cursor and grid untouched and return false
func (e *Engine) Move(d Direction) bool {
	dRow, dCol := d.Delta()
	if dRow == 0 && dCol == 0 {
		return false
	}

	next := e.cursor.Add(dRow, dCol)
	if !e.topo.Contains(next) {
		return false
	}

	e.cursor = next
	e.moves++
	e.Toggle()
	return true
}

// IsVictorious reports whether every cell holds the same value
func (e *Engine) IsVictorious() bool {
	first := e.cells[0]
	for _, c := range e.cells[1:] {
		if c != first {
			return false
		}
	}
	return true
}

// Cursor returns the token position
func (e *Engine) Cursor() Position {
	return e.cursor
}

// Current returns the value of the cell under the cursor
func (e *Engine) Current() bool {
	return e.cells[e.topo.Index(e.cursor)]
}

// Topology returns the grid layout chosen at construction
func (e *Engine) Topology() Topology {
	return e.topo
}

// Moves returns the number of accepted moves
func (e *Engine) Moves() int {
	return e.moves
}

// Lit returns the number of lit cells
func (e *Engine) Lit() int {
	n := 0
	for _, c := range e.cells {
		if c {
			n++
		}
	}
	return n
}

// Snapshot returns a detached copy of the current state
func (e *Engine) Snapshot() Snapshot {
	cells := make([]bool, len(e.cells))
	copy(cells, e.cells)
	return Snapshot{
		Topology: e.topo,
		Cells:    cells,
		Cursor:   e.cursor,
		Moves:    e.moves,
		Won:      e.IsVictorious(),
	}
}
