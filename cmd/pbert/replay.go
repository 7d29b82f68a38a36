package main

import (
	"context"
	"fmt"
	"io"

	"github.com/lixenwraith/pbert/board"
	"github.com/lixenwraith/pbert/game"
	"github.com/lixenwraith/pbert/input"
	"github.com/lixenwraith/pbert/render"
)

// replay runs a move script headlessly and writes the final board to w
func replay(w io.Writer, topo board.Topology, script string) (game.Result, error) {
	cmds, err := input.ParseScript(script)
	if err != nil {
		return game.Result{}, fmt.Errorf("replay: %w", err)
	}

	loop := game.NewLoop(game.NewSession(topo), input.NewScriptSource(cmds...), render.NewTextRenderer(io.Discard, false), nil)
	res := loop.Run(context.Background())

	render.NewTextRenderer(w, false).Render(res.Snapshot, render.Status{
		Message: fmt.Sprintf("moves: %d (%v)", res.Moves, res.Reason),
	})
	return res, nil
}
