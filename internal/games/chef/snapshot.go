package chef

// GameStateType names the game's coarse phase for snapshots.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick            uint64
	Rounds          int
	Moves           int
	ChefX           int
	ChefY           int
	HasBread        bool
	HasJelly        bool
	HasPeanutButter bool
	Grid            string // One rune per cell, rows joined by newlines
	State           GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	pos := g.board.ChefPosition()
	carrying := g.board.Collected()

	return Snapshot{
		Tick:            g.tick,
		Rounds:          g.rounds,
		Moves:           g.moves,
		ChefX:           pos.X,
		ChefY:           pos.Y,
		HasBread:        carrying.Bread,
		HasJelly:        carrying.Jelly,
		HasPeanutButter: carrying.PeanutButter,
		Grid:            g.board.String(),
		State:           state,
	}
}
