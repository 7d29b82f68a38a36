// Package game drives a board engine from a command source: it tracks the
// Playing → Won transition and runs the single-goroutine input loop.
package game

import (
	"github.com/lixenwraith/pbert/board"
	"github.com/lixenwraith/pbert/input"
)

// Phase is the logical game state
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseWon
)

func (p Phase) String() string {
	if p == PhaseWon {
		return "won"
	}
	return "playing"
}

// Outcome reports what a single command did
type Outcome struct {
	Command  input.Command
	Accepted bool // cursor moved and destination toggled
	Blocked  bool // move rejected at the grid edge
	Lit      bool // destination value after an accepted move
	Quit     bool
	Won      bool // session is in PhaseWon after the command
}

// Session owns one engine and its phase
// Won is terminal: later commands leave the board untouched
type Session struct {
	engine *board.Engine
	phase  Phase
}

// NewSession starts a game on topo
// A single-cell grid is won at construction
func NewSession(topo board.Topology) *Session {
	s := &Session{engine: board.New(topo)}
	s.checkVictory()
	return s
}

// Apply performs at most one transition for cmd
func (s *Session) Apply(cmd input.Command) Outcome {
	out := Outcome{Command: cmd}

	if cmd == input.CommandQuit {
		out.Quit = true
		out.Won = s.phase == PhaseWon
		return out
	}

	if s.phase == PhaseWon {
		out.Won = true
		return out
	}

	dir, ok := cmd.Direction()
	if !ok {
		return out
	}

	if s.engine.Move(dir) {
		out.Accepted = true
		out.Lit = s.engine.Current()
		s.checkVictory()
	} else {
		out.Blocked = true
	}

	out.Won = s.phase == PhaseWon
	return out
}

func (s *Session) checkVictory() {
	if s.phase == PhasePlaying && s.engine.IsVictorious() {
		s.phase = PhaseWon
	}
}

// Phase returns the current phase
func (s *Session) Phase() Phase {
	return s.phase
}

// Snapshot returns a read-only view of the board
func (s *Session) Snapshot() board.Snapshot {
	return s.engine.Snapshot()
}

// Moves returns the number of accepted moves
func (s *Session) Moves() int {
	return s.engine.Moves()
}
