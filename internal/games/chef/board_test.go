package chef

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestBoard(t *testing.T, seed int64) *Board {
	t.Helper()
	b, err := NewBoard(DefaultBoardConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	return b
}

// clearItems resets every counter cell back to out-of-play so a test can
// place items at known coordinates.
func clearItems(b *Board) {
	for _, p := range b.SpawnCandidates() {
		b.set(p, CellOutOfPlay)
	}
}

// placeChef teleports the chef to an interior cell.
func placeChef(b *Board, p Point) {
	b.set(b.chef, CellEmpty)
	b.chef = p
	b.set(p, CellChef)
}

// countCells tallies each cell code on the board.
func countCells(b *Board) map[Cell]int {
	counts := make(map[Cell]int)
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			c, _ := b.CellAt(x, y)
			counts[c]++
		}
	}
	return counts
}

func TestInitLayout(t *testing.T) {
	b := newTestBoard(t, 1)
	last := b.Size() - 1

	// The four true corners are empty decorative cells. This pins the
	// (x, y) convention: x is the column, y is the row.
	for _, p := range []Point{{0, 0}, {last, 0}, {0, last}, {last, last}} {
		c, err := b.CellAt(p.X, p.Y)
		if err != nil {
			t.Fatalf("CellAt(%s) failed: %v", p, err)
		}
		if c != CellEmpty {
			t.Errorf("corner %s = %v, want empty", p, c)
		}
	}

	// Every non-corner edge cell is either out-of-play or holds one of
	// the four spawned items.
	for _, p := range b.SpawnCandidates() {
		c, _ := b.CellAt(p.X, p.Y)
		switch c {
		case CellOutOfPlay, CellPeanutButter, CellJelly, CellBread, CellGoal:
		default:
			t.Errorf("counter cell %s = %v, want out-of-play or an item", p, c)
		}
	}

	// Chef starts at the center.
	if b.ChefPosition() != (Point{2, 2}) {
		t.Errorf("chef start = %s, want (2,2)", b.ChefPosition())
	}
	if c, _ := b.CellAt(2, 2); c != CellChef {
		t.Errorf("cell (2,2) = %v, want chef", c)
	}

	// Flags start clear.
	if b.Collected() != (Collected{}) {
		t.Errorf("collected flags not cleared: %+v", b.Collected())
	}
}

func TestInitSpawnInvariant(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b := newTestBoard(t, seed)
		counts := countCells(b)

		for _, item := range []Cell{CellPeanutButter, CellJelly, CellBread, CellGoal} {
			if counts[item] != 1 {
				t.Fatalf("seed %d: %d cells hold %v, want exactly 1", seed, counts[item], item)
			}
		}
		if counts[CellChef] != 1 {
			t.Fatalf("seed %d: %d chef cells, want exactly 1", seed, counts[CellChef])
		}
	}
}

func TestSpawnDeterminism(t *testing.T) {
	a := newTestBoard(t, 42)
	b := newTestBoard(t, 42)
	if a.String() != b.String() {
		t.Errorf("same seed produced different boards:\n%s\n---\n%s", a, b)
	}

	c := newTestBoard(t, 43)
	if a.String() == c.String() {
		t.Log("different seeds produced identical boards (possible but unlikely)")
	}
}

func TestMoveWithinInterior(t *testing.T) {
	b := newTestBoard(t, 1)

	res := b.Move(DirLeft)
	if !res.Moved || res.Item != CellEmpty || res.Won {
		t.Fatalf("Move(left) = %+v, want plain move", res)
	}
	if b.ChefPosition() != (Point{1, 2}) {
		t.Errorf("chef = %s, want (1,2)", b.ChefPosition())
	}
	if c, _ := b.CellAt(2, 2); c != CellEmpty {
		t.Errorf("vacated cell = %v, want empty", c)
	}
	if c, _ := b.CellAt(1, 2); c != CellChef {
		t.Errorf("target cell = %v, want chef", c)
	}
}

func TestMoveDirections(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{DirUp, Point{2, 1}},
		{DirDown, Point{2, 3}},
		{DirLeft, Point{1, 2}},
		{DirRight, Point{3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			b := newTestBoard(t, 1)
			b.Move(tt.dir)
			if b.ChefPosition() != tt.want {
				t.Errorf("chef after %s = %s, want %s", tt.dir, b.ChefPosition(), tt.want)
			}
		})
	}
}

func TestBoundaryMoveIsIdempotent(t *testing.T) {
	b := newTestBoard(t, 1)
	clearItems(b)
	placeChef(b, Point{1, 2})

	// The adjacent counter cell (0,2) is bare out-of-play: stepping into
	// the boundary changes nothing at all.
	before := b.String()
	res := b.Move(DirLeft)
	if res.Changed() {
		t.Errorf("boundary move against empty counter reported change: %+v", res)
	}
	if b.ChefPosition() != (Point{1, 2}) {
		t.Errorf("chef = %s, want (1,2)", b.ChefPosition())
	}
	if b.String() != before {
		t.Errorf("board mutated:\n%s\n---\n%s", before, b)
	}
}

func TestCollectIngredient(t *testing.T) {
	b := newTestBoard(t, 1)
	clearItems(b)
	b.set(Point{0, 2}, CellJelly)
	placeChef(b, Point{1, 2})

	res := b.Move(DirLeft)
	if !res.Changed() || res.Item != CellJelly {
		t.Fatalf("Move(left) = %+v, want jelly pickup", res)
	}
	if !b.Collected().Jelly {
		t.Error("jelly flag not set")
	}
	if c, _ := b.CellAt(0, 2); c != CellEmpty {
		t.Errorf("collected cell = %v, want empty", c)
	}
	if b.ChefPosition() != (Point{1, 2}) {
		t.Errorf("chef moved during pickup: %s", b.ChefPosition())
	}
}

func TestCollectSameIngredientTwice(t *testing.T) {
	b := newTestBoard(t, 1)
	clearItems(b)
	b.set(Point{0, 2}, CellBread)
	placeChef(b, Point{1, 2})

	if res := b.Move(DirLeft); res.Item != CellBread {
		t.Fatalf("first pickup = %+v, want bread", res)
	}

	// A second loaf appears on the counter: already carrying bread, the
	// chef ignores it.
	b.set(Point{0, 2}, CellBread)
	res := b.Move(DirLeft)
	if res.Changed() {
		t.Errorf("second pickup of same type reported change: %+v", res)
	}
	if c, _ := b.CellAt(0, 2); c != CellBread {
		t.Errorf("ignored cell = %v, want bread still present", c)
	}
}

// TestWestCounterPickup walks a rigged scenario: items on the west
// counter, chef at (2,2), two left presses.
func TestWestCounterPickup(t *testing.T) {
	b := newTestBoard(t, 1)
	clearItems(b)
	b.set(Point{0, 1}, CellPeanutButter)
	b.set(Point{0, 2}, CellJelly)
	b.set(Point{0, 3}, CellBread)
	b.set(Point{1, 0}, CellGoal)

	// First left: plain move into (1,2).
	res := b.Move(DirLeft)
	if !res.Moved || b.ChefPosition() != (Point{1, 2}) {
		t.Fatalf("first left: res=%+v chef=%s", res, b.ChefPosition())
	}

	// Second left would exit the interior: collects the jelly at (0,2)
	// and the chef stays put.
	res = b.Move(DirLeft)
	if res.Item != CellJelly {
		t.Fatalf("second left: res=%+v, want jelly pickup", res)
	}
	if !b.Collected().Jelly {
		t.Error("jelly flag not set")
	}
	if b.ChefPosition() != (Point{1, 2}) {
		t.Errorf("chef = %s, want (1,2)", b.ChefPosition())
	}
}

func TestGoalWithoutFullSandwich(t *testing.T) {
	b := newTestBoard(t, 1)
	clearItems(b)
	b.set(Point{0, 2}, CellGoal)
	placeChef(b, Point{1, 2})
	b.collected = Collected{Bread: true, Jelly: true} // Missing peanut butter

	before := b.String()
	res := b.Move(DirLeft)
	if res.Changed() {
		t.Errorf("goal without full sandwich reported change: %+v", res)
	}
	if b.String() != before {
		t.Error("board mutated on failed delivery")
	}
	if !b.Collected().Bread || !b.Collected().Jelly {
		t.Error("flags lost on failed delivery")
	}
}

func TestGoalDeliveryResetsBoard(t *testing.T) {
	b := newTestBoard(t, 1)
	clearItems(b)
	b.set(Point{0, 2}, CellGoal)
	placeChef(b, Point{1, 2})
	b.collected = Collected{Bread: true, Jelly: true, PeanutButter: true}

	res := b.Move(DirLeft)
	if !res.Won {
		t.Fatalf("delivery with full sandwich = %+v, want win", res)
	}

	// Full reset: chef back at start, flags cleared, fresh items spawned.
	if b.ChefPosition() != b.Start() {
		t.Errorf("chef after win = %s, want %s", b.ChefPosition(), b.Start())
	}
	if b.Collected() != (Collected{}) {
		t.Errorf("flags after win = %+v, want cleared", b.Collected())
	}
	counts := countCells(b)
	for _, item := range []Cell{CellPeanutButter, CellJelly, CellBread, CellGoal} {
		if counts[item] != 1 {
			t.Errorf("after win: %d cells hold %v, want exactly 1", counts[item], item)
		}
	}
}

// TestSingleChefInvariant drives a long random walk and verifies exactly
// one chef cell exists after every command.
func TestSingleChefInvariant(t *testing.T) {
	b := newTestBoard(t, 7)
	walk := rand.New(rand.NewSource(99))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for i := 0; i < 2000; i++ {
		b.Move(dirs[walk.Intn(len(dirs))])

		counts := countCells(b)
		if counts[CellChef] != 1 {
			t.Fatalf("step %d: %d chef cells\n%s", i, counts[CellChef], b)
		}
		pos := b.ChefPosition()
		if c, _ := b.CellAt(pos.X, pos.Y); c != CellChef {
			t.Fatalf("step %d: ChefPosition %s disagrees with grid", i, pos)
		}
		if !b.inInterior(pos) {
			t.Fatalf("step %d: chef outside interior at %s", i, pos)
		}
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	b := newTestBoard(t, 1)

	for _, p := range []Point{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {-3, 9}} {
		if _, err := b.CellAt(p.X, p.Y); !errors.Is(err, ErrCellOutOfBounds) {
			t.Errorf("CellAt(%s) error = %v, want ErrCellOutOfBounds", p, err)
		}
	}

	if _, err := b.CellAt(0, 0); err != nil {
		t.Errorf("CellAt(0,0) unexpected error: %v", err)
	}
}

func TestSpawnItemsInsufficientCandidates(t *testing.T) {
	b := newTestBoard(t, 1)

	err := b.spawnItems([]Point{{0, 1}, {0, 2}, {0, 3}})
	if !errors.Is(err, ErrInsufficientSpawnCells) {
		t.Errorf("spawnItems with 3 candidates: err = %v, want ErrInsufficientSpawnCells", err)
	}
}

func TestNewBoardRejectsBadSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, size := range []int{0, 3, 4, 6} {
		if _, err := NewBoard(BoardConfig{Size: size}, rng); err == nil {
			t.Errorf("NewBoard(size=%d) succeeded, want error", size)
		}
	}
}

func TestLargerBoard(t *testing.T) {
	b, err := NewBoard(BoardConfig{Size: 7}, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("NewBoard(size=7) failed: %v", err)
	}

	if b.Start() != (Point{3, 3}) {
		t.Errorf("start = %s, want (3,3)", b.Start())
	}
	if got := len(b.SpawnCandidates()); got != 20 {
		t.Errorf("candidate count = %d, want 20", got)
	}

	// Interior is [1,5] on both axes.
	for i := 0; i < 10; i++ {
		b.Move(DirRight)
	}
	if b.ChefPosition() != (Point{5, 3}) {
		t.Errorf("chef pinned at %s, want (5,3)", b.ChefPosition())
	}
}
