package input

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Source produces the command stream consumed by the game loop
// The channel is closed when the source is exhausted
type Source interface {
	Commands() <-chan Command
}

// ScreenSource translates tcell screen events into commands
type ScreenSource struct {
	screen tcell.Screen
	keys   *KeyTable
	out    chan Command
	done   chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewScreenSource creates a source reading from screen through keys
func NewScreenSource(screen tcell.Screen, keys *KeyTable) *ScreenSource {
	return &ScreenSource{
		screen: screen,
		keys:   keys,
		out:    make(chan Command, 64),
		done:   make(chan struct{}),
	}
}

// Start launches the polling goroutine; it exits when the screen is finalized or Stop is called
// The goroutine is the only writer of the command channel and closes it on exit
func (s *ScreenSource) Start() {
	s.startOnce.Do(func() {
		go s.poll()
	})
}

// Stop unblocks a pending send; PollEvent itself returns only after screen.Fini
func (s *ScreenSource) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// Commands returns the command channel
func (s *ScreenSource) Commands() <-chan Command {
	return s.out
}

func (s *ScreenSource) poll() {
	defer close(s.out)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev.(type) {
		case *tcell.EventKey, *tcell.EventResize:
		default:
			continue
		}

		select {
		case s.out <- s.keys.Translate(ev):
		case <-s.done:
			return
		}
	}
}

// ScriptSource replays a fixed list of commands
type ScriptSource struct {
	out chan Command
}

// NewScriptSource creates a source that yields cmds in order, then closes
func NewScriptSource(cmds ...Command) *ScriptSource {
	out := make(chan Command, len(cmds))
	for _, c := range cmds {
		out <- c
	}
	close(out)
	return &ScriptSource{out: out}
}

// Commands returns the command channel
func (s *ScriptSource) Commands() <-chan Command {
	return s.out
}

// ParseScript decodes a move script such as "RRDD" or "r r d q"
// U/D/L/R move, Q quits; whitespace and commas are skipped
func ParseScript(script string) ([]Command, error) {
	var cmds []Command
	for i, r := range script {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		switch unicode.ToUpper(r) {
		case 'U':
			cmds = append(cmds, CommandMoveUp)
		case 'D':
			cmds = append(cmds, CommandMoveDown)
		case 'L':
			cmds = append(cmds, CommandMoveLeft)
		case 'R':
			cmds = append(cmds, CommandMoveRight)
		case 'Q':
			cmds = append(cmds, CommandQuit)
		default:
			return nil, fmt.Errorf("script position %d: unexpected %q (want U, D, L, R or Q)", i, r)
		}
	}
	return cmds, nil
}
