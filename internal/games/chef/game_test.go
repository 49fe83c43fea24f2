package chef

import (
	"strings"
	"testing"

	"github.com/vovakirdan/chef-grid/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameResetDeterminism(t *testing.T) {
	a := newTestGame(1234)
	b := newTestGame(1234)

	if a.Snapshot().Grid != b.Snapshot().Grid {
		t.Errorf("same seed produced different boards:\n%s\n---\n%s",
			a.Snapshot().Grid, b.Snapshot().Grid)
	}

	// Identical input sequences stay in lockstep.
	moves := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for _, m := range moves {
		a.Step(frameWith(m))
		b.Step(frameWith(m))
	}
	if a.Snapshot() != b.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
}

func TestStepForwardsOneMovePerFrame(t *testing.T) {
	g := newTestGame(1)

	g.Step(frameWith(core.ActionLeft))
	if g.Board().ChefPosition() != (Point{1, 2}) {
		t.Fatalf("chef = %s, want (1,2)", g.Board().ChefPosition())
	}

	// An empty frame moves nothing; ticks do not repeat the last press.
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Board().ChefPosition() != (Point{1, 2}) {
		t.Errorf("chef drifted to %s on empty frames", g.Board().ChefPosition())
	}
}

func TestStepDropsExtraDirectionsInFrame(t *testing.T) {
	g := newTestGame(1)

	// Up and Left in one frame: only one command reaches the board.
	g.Step(frameWith(core.ActionUp, core.ActionLeft))
	if g.Board().ChefPosition() != (Point{2, 1}) {
		t.Errorf("chef = %s, want (2,1) from the single Up command", g.Board().ChefPosition())
	}
}

func TestPauseBlocksMovement(t *testing.T) {
	g := newTestGame(1)

	g.Step(frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game not paused")
	}

	g.Step(frameWith(core.ActionLeft))
	if g.Board().ChefPosition() != (Point{2, 2}) {
		t.Errorf("chef moved while paused: %s", g.Board().ChefPosition())
	}

	g.Step(frameWith(core.ActionPause))
	g.Step(frameWith(core.ActionLeft))
	if g.Board().ChefPosition() != (Point{1, 2}) {
		t.Errorf("chef = %s after unpause, want (1,2)", g.Board().ChefPosition())
	}
}

func TestRoundWinIncrementsScore(t *testing.T) {
	g := newTestGame(1)
	b := g.Board()

	// Rig a delivery: full sandwich, goal on the west counter.
	clearItems(b)
	b.set(Point{0, 2}, CellGoal)
	placeChef(b, Point{1, 2})
	b.collected = Collected{Bread: true, Jelly: true, PeanutButter: true}

	g.Step(frameWith(core.ActionLeft))

	if g.State().Score != 1 {
		t.Errorf("score = %d, want 1", g.State().Score)
	}
	if g.State().GameOver {
		t.Error("endless session ended after one round")
	}
	if b.ChefPosition() != b.Start() {
		t.Errorf("board not reset after win: chef at %s", b.ChefPosition())
	}
	if g.Snapshot().Moves != 0 {
		t.Errorf("per-round move counter = %d, want 0", g.Snapshot().Moves)
	}
}

func TestCampaignTargetEndsSession(t *testing.T) {
	g := newTestGame(1)
	g.cfg.Gameplay.TargetRounds = 1
	b := g.Board()

	clearItems(b)
	b.set(Point{0, 2}, CellGoal)
	placeChef(b, Point{1, 2})
	b.collected = Collected{Bread: true, Jelly: true, PeanutButter: true}

	g.Step(frameWith(core.ActionLeft))

	state := g.State()
	if !state.GameOver {
		t.Fatal("session should end at target rounds")
	}
	if state.Score != 1 {
		t.Errorf("score = %d, want 1", state.Score)
	}

	// Movement is ignored after the session ends.
	g.Step(frameWith(core.ActionLeft))
	if g.Board().ChefPosition() != g.Board().Start() {
		t.Error("chef moved after game over")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(1)
	g.gameOver = true
	g.rounds = 3

	g.Step(frameWith(core.ActionRestart))

	state := g.State()
	if state.GameOver {
		t.Error("restart did not clear game over")
	}
	if state.Score != 0 {
		t.Errorf("score after restart = %d, want 0", state.Score)
	}
	if g.Board().ChefPosition() != g.Board().Start() {
		t.Errorf("chef after restart = %s, want start", g.Board().ChefPosition())
	}
}

func TestRenderShowsBoard(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Sandwich Chef") {
		t.Error("HUD missing from render")
	}
	if !strings.Contains(out, "@") {
		t.Error("chef glyph missing from render")
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Error("board border missing from render")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 8, ScreenH: 5, TickRate: 60, Seed: 1})

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %v, want paused_small_window", g.Snapshot().State)
	}

	// Movement is suspended until the window grows.
	g.Step(frameWith(core.ActionLeft))
	if g.Board().ChefPosition() != g.Board().Start() {
		t.Error("chef moved while window too small")
	}
}

func TestSnapshotStates(t *testing.T) {
	g := newTestGame(1)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("initial state = %v, want playing", g.Snapshot().State)
	}

	g.Step(frameWith(core.ActionPause))
	if g.Snapshot().State != StatePaused {
		t.Errorf("state = %v, want paused", g.Snapshot().State)
	}

	g.Step(frameWith(core.ActionPause))
	g.gameOver = true
	if g.Snapshot().State != StateGameOver {
		t.Errorf("state = %v, want game_over", g.Snapshot().State)
	}
}
