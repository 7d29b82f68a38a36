package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pbert/audio"
	"github.com/lixenwraith/pbert/board"
	"github.com/lixenwraith/pbert/config"
	"github.com/lixenwraith/pbert/game"
	"github.com/lixenwraith/pbert/input"
	"github.com/lixenwraith/pbert/render"
)

// How long the victory banner stays up before the screen is released
const victoryHold = 1500 * time.Millisecond

var (
	configFlag = flag.String("config", "", "Path to an HCL config file")
	shapeFlag  = flag.String("shape", "", "Grid shape: square, flat or rect (overrides config; rect uses -width and -height)")
	sizeFlag   = flag.Int("size", 0, "Square side or flat length (overrides config)")
	widthFlag  = flag.Int("width", 0, "Rect width (overrides config)")
	heightFlag = flag.Int("height", 0, "Rect height (overrides config)")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/pbert.log")
	replayFlag = flag.String("replay", "", "Play a move script (U/D/L/R/Q letters) without a terminal and print the result")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	topo, err := cfg.Topology()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log.Printf("grid %v, audio %v, poll %v", topo, cfg.Audio, cfg.PollInterval)

	if *replayFlag != "" {
		res, err := replay(os.Stdout, topo, *replayFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if res.Reason != game.ReasonWon {
			return 2
		}
		return 0
	}

	return play(cfg, topo)
}

// gridOverrides holds grid settings given on the command line; zero values keep the config
type gridOverrides struct {
	shape  string
	size   int
	width  int
	height int
}

func (o gridOverrides) apply(cfg *config.Config) {
	if o.shape != "" {
		cfg.Shape = board.Shape(o.shape)
	}
	if o.size != 0 {
		cfg.Size = o.size
	}
	if o.width != 0 {
		cfg.Width = o.width
	}
	if o.height != 0 {
		cfg.Height = o.height
	}
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig() (*config.Config, error) {
	return loadConfigFrom(*configFlag, gridOverrides{
		shape:  *shapeFlag,
		size:   *sizeFlag,
		width:  *widthFlag,
		height: *heightFlag,
	})
}

func loadConfigFrom(path string, o gridOverrides) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	o.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// play runs the interactive game on the terminal
func play(cfg *config.Config, topo board.Topology) (exitCode int) {
	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	// Restore the terminal before reporting a crash, or the trace is unreadable
	defer func() {
		if r := recover(); r != nil {
			fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPBERT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			exitCode = 1
		}
	}()

	screen.HideCursor()

	var sounds game.Sounds
	if cfg.Audio {
		sm := audio.NewSoundManager()
		sm.SetMuted(*muteFlag)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
		}
		sounds = sm
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := input.NewScreenSource(screen, keys)
	source.Start()
	defer source.Stop()

	loop := game.NewLoop(game.NewSession(topo), source, render.NewScreenRenderer(screen), sounds)
	loop.SetPollInterval(cfg.PollInterval)
	loop.SetMuted(*muteFlag && cfg.Audio)

	res := loop.Run(ctx)
	log.Printf("loop finished: %v after %d moves", res.Reason, res.Moves)

	if res.Reason == game.ReasonWon {
		time.Sleep(victoryHold)
	}
	fini()

	if res.Reason == game.ReasonWon {
		fmt.Printf("VICTORY! Solved a %v grid in %d moves.\n", topo, res.Moves)
	} else {
		fmt.Printf("Gave up after %d moves with %d of %d cells lit.\n", res.Moves, res.Snapshot.Lit(), topo.Size())
	}
	return 0
}
