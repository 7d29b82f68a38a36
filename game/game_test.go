package game

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/pbert/board"
	"github.com/lixenwraith/pbert/input"
	"github.com/lixenwraith/pbert/render"
)

// recordingRenderer keeps every frame it is asked to draw
type recordingRenderer struct {
	frames   []board.Snapshot
	statuses []render.Status
}

func (r *recordingRenderer) Render(s board.Snapshot, st render.Status) {
	r.frames = append(r.frames, s)
	r.statuses = append(r.statuses, st)
}

// recordingSounds counts cues
type recordingSounds struct {
	toggles  []bool
	blocked  int
	victory  int
	muted    bool
	muteHits int
}

func (s *recordingSounds) PlayToggle(lit bool) { s.toggles = append(s.toggles, lit) }
func (s *recordingSounds) PlayBlocked()        { s.blocked++ }
func (s *recordingSounds) PlayVictory()        { s.victory++ }
func (s *recordingSounds) ToggleMute() bool {
	s.muteHits++
	s.muted = !s.muted
	return s.muted
}

// blockingSource never yields a command
type blockingSource struct {
	ch chan input.Command
}

func (b blockingSource) Commands() <-chan input.Command { return b.ch }

func repeat(cmd input.Command, n int) []input.Command {
	cmds := make([]input.Command, n)
	for i := range cmds {
		cmds[i] = cmd
	}
	return cmds
}

func TestSessionStartsPlaying(t *testing.T) {
	s := NewSession(board.Square(4))
	if s.Phase() != PhasePlaying {
		t.Errorf("Expected playing, got %v", s.Phase())
	}
	if s.Snapshot().Lit() != 1 {
		t.Errorf("Expected origin lit at start, got %d lit cells", s.Snapshot().Lit())
	}
}

func TestSessionSingleCellStartsWon(t *testing.T) {
	s := NewSession(board.Flat(1))
	if s.Phase() != PhaseWon {
		t.Errorf("Expected single-cell session to start won, got %v", s.Phase())
	}
}

func TestSessionApply(t *testing.T) {
	s := NewSession(board.Square(4))

	tests := []struct {
		name string
		cmd  input.Command
		want Outcome
	}{
		{"blocked up", input.CommandMoveUp, Outcome{Command: input.CommandMoveUp, Blocked: true}},
		{"right lights", input.CommandMoveRight, Outcome{Command: input.CommandMoveRight, Accepted: true, Lit: true}},
		{"ignore", input.CommandIgnore, Outcome{Command: input.CommandIgnore}},
		{"left darkens origin", input.CommandMoveLeft, Outcome{Command: input.CommandMoveLeft, Accepted: true, Lit: false}},
		{"quit", input.CommandQuit, Outcome{Command: input.CommandQuit, Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, s.Apply(tt.cmd)); diff != "" {
				t.Errorf("Outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSessionWonIsTerminal(t *testing.T) {
	s := NewSession(board.Flat(2))

	out := s.Apply(input.CommandMoveRight)
	if !out.Won || s.Phase() != PhaseWon {
		t.Fatalf("Expected victory after lighting both cells, got %+v", out)
	}

	before := s.Snapshot()
	out = s.Apply(input.CommandMoveLeft)
	if out.Accepted || !out.Won {
		t.Errorf("Expected post-victory move ignored, got %+v", out)
	}
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("Board changed after victory:\n%s", diff)
	}
}

func TestLoopFlatSweepWins(t *testing.T) {
	// Extra commands after the 7th move must never reach the board
	cmds := append(repeat(input.CommandMoveRight, 7), input.CommandMoveLeft, input.CommandMoveLeft)
	r := &recordingRenderer{}
	snd := &recordingSounds{}

	loop := NewLoop(NewSession(board.Flat(8)), input.NewScriptSource(cmds...), r, snd)
	res := loop.Run(context.Background())

	if res.Reason != ReasonWon {
		t.Fatalf("Expected won, got %v", res.Reason)
	}
	if res.Moves != 7 {
		t.Errorf("Expected 7 moves, got %d", res.Moves)
	}
	if res.Snapshot.Cursor.Col != 7 || res.Snapshot.Lit() != 8 {
		t.Errorf("Expected cursor 7 and 8 lit cells, got cursor %v, %d lit", res.Snapshot.Cursor, res.Snapshot.Lit())
	}
	if len(r.frames) != 8 {
		t.Errorf("Expected initial frame plus 7 move frames, got %d", len(r.frames))
	}
	if !r.frames[len(r.frames)-1].Won {
		t.Error("Expected final frame to show victory")
	}
	if diff := cmp.Diff([]bool{true, true, true, true, true, true, true}, snd.toggles); diff != "" {
		t.Errorf("Toggle cues mismatch (-want +got):\n%s", diff)
	}
	if snd.victory != 1 {
		t.Errorf("Expected one victory cue, got %d", snd.victory)
	}
}

func TestLoopSquareScenario(t *testing.T) {
	r := &recordingRenderer{}
	src := input.NewScriptSource(input.CommandMoveRight, input.CommandMoveDown)

	res := NewLoop(NewSession(board.Square(4)), src, r, nil).Run(context.Background())

	if res.Reason != ReasonClosed {
		t.Fatalf("Expected closed source, got %v", res.Reason)
	}
	if res.Snapshot.Cursor != (board.Position{Row: 1, Col: 1}) {
		t.Errorf("Expected cursor at (1, 1), got %v", res.Snapshot.Cursor)
	}
	if res.Snapshot.Lit() != 3 || res.Snapshot.Won {
		t.Errorf("Expected 3 lit cells and no victory, got %d lit, won=%v", res.Snapshot.Lit(), res.Snapshot.Won)
	}
}

func TestLoopQuit(t *testing.T) {
	src := input.NewScriptSource(input.CommandMoveDown, input.CommandQuit, input.CommandMoveDown)
	res := NewLoop(NewSession(board.Square(3)), src, &recordingRenderer{}, nil).Run(context.Background())

	if res.Reason != ReasonQuit {
		t.Fatalf("Expected quit, got %v", res.Reason)
	}
	if res.Moves != 1 {
		t.Errorf("Expected commands after quit to be dropped, got %d moves", res.Moves)
	}
}

func TestLoopBlockedAndMuteCues(t *testing.T) {
	snd := &recordingSounds{}
	r := &recordingRenderer{}
	src := input.NewScriptSource(input.CommandMoveUp, input.CommandToggleMute, input.CommandRedraw)

	NewLoop(NewSession(board.Square(3)), src, r, snd).Run(context.Background())

	if snd.blocked != 1 {
		t.Errorf("Expected one blocked cue, got %d", snd.blocked)
	}
	if snd.muteHits != 1 {
		t.Errorf("Expected one mute toggle, got %d", snd.muteHits)
	}
	last := r.statuses[len(r.statuses)-1]
	if !last.Muted {
		t.Error("Expected status to report muted after toggle")
	}
	if r.statuses[2].Message != "sound off" {
		t.Errorf("Expected mute message on toggle frame, got %q", r.statuses[2].Message)
	}
	if last.Message != "" {
		t.Errorf("Expected message cleared on next command, got %q", last.Message)
	}
}

func TestLoopSingleCellWinsWithoutInput(t *testing.T) {
	r := &recordingRenderer{}
	snd := &recordingSounds{}
	src := blockingSource{ch: make(chan input.Command)}

	res := NewLoop(NewSession(board.Flat(1)), src, r, snd).Run(context.Background())

	if res.Reason != ReasonWon {
		t.Fatalf("Expected immediate victory, got %v", res.Reason)
	}
	if len(r.frames) != 1 || snd.victory != 1 {
		t.Errorf("Expected one frame and one victory cue, got %d frames, %d cues", len(r.frames), snd.victory)
	}
}

func TestLoopCancelWithinPollInterval(t *testing.T) {
	src := blockingSource{ch: make(chan input.Command)}
	loop := NewLoop(NewSession(board.Square(4)), src, &recordingRenderer{}, nil)
	loop.SetPollInterval(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan Result, 1)
	go func() { done <- loop.Run(ctx) }()

	cancel()

	select {
	case res := <-done:
		if res.Reason != ReasonCanceled {
			t.Errorf("Expected canceled, got %v", res.Reason)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Loop did not observe cancellation")
	}
}
