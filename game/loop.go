package game

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/pbert/board"
	"github.com/lixenwraith/pbert/input"
	"github.com/lixenwraith/pbert/render"
)

// DefaultPollInterval bounds how long the loop waits for input before re-checking cancellation
const DefaultPollInterval = time.Second

// Sounds receives feedback cues from the loop
type Sounds interface {
	PlayToggle(lit bool)
	PlayBlocked()
	PlayVictory()
	ToggleMute() bool
}

// Reason tells why the loop stopped
type Reason uint8

const (
	ReasonQuit     Reason = iota // quit command
	ReasonWon                    // board reached a uniform state
	ReasonClosed                 // source exhausted
	ReasonCanceled               // context canceled
)

func (r Reason) String() string {
	switch r {
	case ReasonQuit:
		return "quit"
	case ReasonWon:
		return "won"
	case ReasonClosed:
		return "closed"
	case ReasonCanceled:
		return "canceled"
	}
	return "unknown"
}

// Result summarizes a finished loop
type Result struct {
	Reason   Reason
	Moves    int
	Snapshot board.Snapshot
}

// Loop applies commands from a source to a session and renders after each one
// The session is owned by the goroutine calling Run; nothing else may touch it
type Loop struct {
	session      *Session
	source       input.Source
	renderer     render.Renderer
	sounds       Sounds
	pollInterval time.Duration

	muted   bool
	message string
}

// NewLoop wires a session to its collaborators
// sounds may be nil
func NewLoop(session *Session, source input.Source, renderer render.Renderer, sounds Sounds) *Loop {
	if sounds == nil {
		sounds = silent{}
	}
	return &Loop{
		session:      session,
		source:       source,
		renderer:     renderer,
		sounds:       sounds,
		pollInterval: DefaultPollInterval,
	}
}

// SetPollInterval changes the input wait bound; non-positive values are ignored
func (l *Loop) SetPollInterval(d time.Duration) {
	if d > 0 {
		l.pollInterval = d
	}
}

// SetMuted sets the initial mute indicator shown in the status line
func (l *Loop) SetMuted(muted bool) {
	l.muted = muted
}

// Run blocks until quit, victory, source exhaustion or cancellation
// Cancellation is observed within one poll interval
func (l *Loop) Run(ctx context.Context) Result {
	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	l.draw()
	if l.session.Phase() == PhaseWon {
		l.sounds.PlayVictory()
		return l.finish(ReasonWon)
	}

	cmds := l.source.Commands()
	for {
		if ctx.Err() != nil {
			return l.finish(ReasonCanceled)
		}

		select {
		case cmd, ok := <-cmds:
			if !ok {
				return l.finish(ReasonClosed)
			}
			if reason, done := l.handle(cmd); done {
				return l.finish(reason)
			}
		case <-ticker.C:
		}
	}
}

// handle applies one command and reports whether the loop must stop
func (l *Loop) handle(cmd input.Command) (Reason, bool) {
	l.message = ""

	switch cmd {
	case input.CommandRedraw:
		l.draw()
		return 0, false
	case input.CommandToggleMute:
		l.muted = l.sounds.ToggleMute()
		if l.muted {
			l.message = "sound off"
		} else {
			l.message = "sound on"
		}
		l.draw()
		return 0, false
	}

	out := l.session.Apply(cmd)
	switch {
	case out.Quit:
		log.Printf("quit after %d moves", l.session.Moves())
		return ReasonQuit, true
	case out.Accepted:
		l.sounds.PlayToggle(out.Lit)
	case out.Blocked:
		l.sounds.PlayBlocked()
	}

	l.draw()

	if out.Won {
		log.Printf("victory after %d moves", l.session.Moves())
		l.sounds.PlayVictory()
		return ReasonWon, true
	}
	return 0, false
}

func (l *Loop) draw() {
	l.renderer.Render(l.session.Snapshot(), render.Status{
		Muted:   l.muted,
		Message: l.message,
	})
}

func (l *Loop) finish(reason Reason) Result {
	return Result{
		Reason:   reason,
		Moves:    l.session.Moves(),
		Snapshot: l.session.Snapshot(),
	}
}

// silent discards every cue
type silent struct{}

func (silent) PlayToggle(bool)  {}
func (silent) PlayBlocked()     {}
func (silent) PlayVictory()     {}
func (silent) ToggleMute() bool { return false }
