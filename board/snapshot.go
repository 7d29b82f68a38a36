package board

// Snapshot is a read-only view of the engine for renderers
// Cells is a private copy; mutating it has no effect on the engine
type Snapshot struct {
	Topology Topology
	Cells    []bool
	Cursor   Position
	Moves    int
	Won      bool
}

// At returns the value of the cell at row, col
// Out-of-range coordinates read as unlit
func (s Snapshot) At(row, col int) bool {
	p := Position{Row: row, Col: col}
	if !s.Topology.Contains(p) {
		return false
	}
	return s.Cells[s.Topology.Index(p)]
}

// Lit returns the number of lit cells
func (s Snapshot) Lit() int {
	n := 0
	for _, c := range s.Cells {
		if c {
			n++
		}
	}
	return n
}

// Rows returns the cells split into rows, each a fresh slice
func (s Snapshot) Rows() [][]bool {
	rows := make([][]bool, s.Topology.Height)
	for r := range rows {
		rows[r] = make([]bool, s.Topology.Width)
	}
	for i, c := range s.Cells {
		p := s.Topology.Position(i)
		rows[p.Row][p.Col] = c
	}
	return rows
}
