// Package render turns board snapshots into text or terminal cells.
// Renderers only read snapshots; they never hold a reference to the engine.
package render

import "github.com/lixenwraith/pbert/board"

// Status carries loop state that is not part of the board
type Status struct {
	Muted   bool
	Message string
}

// Renderer draws a snapshot
type Renderer interface {
	Render(s board.Snapshot, st Status)
}
