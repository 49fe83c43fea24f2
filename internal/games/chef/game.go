package chef

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/chef-grid/internal/config"
	"github.com/vovakirdan/chef-grid/internal/core"
	"github.com/vovakirdan/chef-grid/internal/registry"
)

// Game drives a Board from platform input. It translates one discrete,
// already-debounced directional action per tick into exactly one Move
// call, counts delivered sandwiches, and renders the board each frame.
type Game struct {
	cfg   config.ChefConfig
	rng   *rand.Rand
	board *Board

	tick       uint64
	rounds     int // Sandwiches delivered (the score)
	moves      int // Moves in the current round
	totalMoves int

	gameOver bool
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// Package-level config path, set by the CLI before the game is created.
var configPath string

// SetConfigPath sets the config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new sandwich chef game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chef", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chef"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sandwich Chef"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadChef(configPath)
	if err != nil {
		gameCfg = config.DefaultChefConfig()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.rounds = 0
	g.moves = 0
	g.totalMoves = 0
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	board, err := NewBoard(BoardConfig{Size: g.cfg.Board.Size}, g.rng)
	if err != nil {
		// LoadChef validates the board size, so this cannot happen
		panic(err)
	}
	g.board = board

	g.checkScreenSize()
}

// checkScreenSize flags the game as paused-for-resize when the terminal
// cannot fit the board plus HUD and border.
func (g *Game) checkScreenSize() {
	requiredW := g.board.Size()*2 + 3
	requiredH := g.board.Size() + hudHeight + 3
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the game by one tick, consuming at most one directional
// command. The platform clears the input frame after every Step, so each
// physical key press reaches the board exactly once.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(input); ok {
		res := g.board.Move(dir)
		if res.Changed() {
			g.moves++
			g.totalMoves++
		}
		if res.Won {
			g.rounds++
			g.moves = 0
			if g.cfg.Gameplay.TargetRounds > 0 && g.rounds >= g.cfg.Gameplay.TargetRounds {
				g.gameOver = true
			}
		}
	}

	return core.StepResult{State: g.State()}
}

// directionFor extracts a single directional command from the frame.
// When several arrows land in one frame, the first in Up, Down, Left,
// Right order wins; the rest are dropped rather than queued.
func directionFor(input core.InputFrame) (Direction, bool) {
	switch {
	case input.Has(core.ActionUp):
		return DirUp, true
	case input.Has(core.ActionDown):
		return DirDown, true
	case input.Has(core.ActionLeft):
		return DirLeft, true
	case input.Has(core.ActionRight):
		return DirRight, true
	default:
		return DirUp, false
	}
}

// Board exposes the underlying board for read-only platform queries.
func (g *Game) Board() *Board {
	return g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.rounds,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("Tick: %d, Rounds: %d, Moves: %d\nChef: %s, Carrying: %+v\n%s",
		g.tick, g.rounds, g.moves, g.board.ChefPosition(), g.board.Collected(), g.board)
}
