// Package chef implements the sandwich chef puzzle: the chef moves on the
// interior of a small grid, grabs peanut butter, jelly and bread from the
// surrounding counter, and delivers the finished sandwich to a goal square.
package chef

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	CellEmpty        Cell = iota // Unoccupied square (also the decorative corners)
	CellChef                     // The player
	CellJelly                    // Jelly jar on the counter
	CellPeanutButter             // Peanut butter jar on the counter
	CellBread                    // Loaf of bread on the counter
	CellGoal                     // Delivery square
	CellOutOfPlay                // Counter ring cell the chef cannot enter
)

// String returns a short name for the cell content.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellChef:
		return "chef"
	case CellJelly:
		return "jelly"
	case CellPeanutButter:
		return "peanut_butter"
	case CellBread:
		return "bread"
	case CellGoal:
		return "goal"
	case CellOutOfPlay:
		return "out_of_play"
	default:
		return "unknown"
	}
}

// Direction is a discrete movement command.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the coordinate offset for one step in this direction.
// X increases to the right, Y increases downward (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Point is a board coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Collected tracks which ingredients the chef is carrying this round.
type Collected struct {
	Bread        bool
	Jelly        bool
	PeanutButter bool
}

// All returns true when the full sandwich can be delivered.
func (c Collected) All() bool {
	return c.Bread && c.Jelly && c.PeanutButter
}

// Board errors.
var (
	// ErrInsufficientSpawnCells means the spawn candidate set cannot hold
	// one of each ingredient plus the goal. Indicates a config error and
	// aborts startup.
	ErrInsufficientSpawnCells = errors.New("chef: fewer spawn candidates than items")

	// ErrCellOutOfBounds means a caller passed a coordinate outside the
	// board to an accessor.
	ErrCellOutOfBounds = errors.New("chef: cell out of bounds")
)

// spawnOrder fixes the priority in which items are placed on the counter.
var spawnOrder = [...]Cell{CellPeanutButter, CellJelly, CellBread, CellGoal}

// BoardConfig parameterizes the board geometry.
type BoardConfig struct {
	// Size is the full board width/height in cells. Must be odd and >= 5
	// so the playable interior and a center start cell exist.
	Size int
}

// DefaultBoardConfig returns the classic 5x5 board.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{Size: 5}
}

// Board owns the grid contents, the chef position and the collected
// ingredient flags. It is a pure state machine: the platform drives it
// with discrete directional commands and reads it back each frame.
// Not safe for concurrent use; a single goroutine owns it.
type Board struct {
	size      int
	cells     []Cell // Row-major: index = y*size + x
	chef      Point
	collected Collected
	rng       *rand.Rand
}

// NewBoard creates and initializes a board. The RNG is injected so item
// placement is reproducible under a fixed seed.
func NewBoard(cfg BoardConfig, rng *rand.Rand) (*Board, error) {
	if cfg.Size < 5 || cfg.Size%2 == 0 {
		return nil, fmt.Errorf("chef: board size %d must be odd and at least 5", cfg.Size)
	}

	b := &Board{
		size:  cfg.Size,
		cells: make([]Cell, cfg.Size*cfg.Size),
		rng:   rng,
	}

	// The candidate set grows with the board, so this only trips on a
	// geometry bug, but the contract is checked up front regardless.
	if len(b.SpawnCandidates()) < len(spawnOrder) {
		return nil, ErrInsufficientSpawnCells
	}

	b.Init()
	return b, nil
}

// Size returns the board width/height in cells.
func (b *Board) Size() int {
	return b.size
}

// Start returns the chef's fixed start coordinate (the board center).
func (b *Board) Start() Point {
	c := b.size / 2
	return Point{X: c, Y: c}
}

// Init resets the board for a new round: empty grid, out-of-play counter
// ring, chef at the start square, cleared flags, and freshly spawned items.
func (b *Board) Init() {
	for i := range b.cells {
		b.cells[i] = CellEmpty
	}

	// Counter ring: every edge cell except the four corners. The corners
	// stay empty; they are decorative and unreachable.
	last := b.size - 1
	for i := 1; i < last; i++ {
		b.set(Point{X: i, Y: 0}, CellOutOfPlay)
		b.set(Point{X: i, Y: last}, CellOutOfPlay)
		b.set(Point{X: 0, Y: i}, CellOutOfPlay)
		b.set(Point{X: last, Y: i}, CellOutOfPlay)
	}

	b.chef = b.Start()
	b.set(b.chef, CellChef)
	b.collected = Collected{}

	if err := b.spawnItems(b.SpawnCandidates()); err != nil {
		// NewBoard verified the candidate set; reaching this is a bug.
		panic(err)
	}
}

// SpawnCandidates returns the counter cells eligible for item placement:
// the non-corner edge cells, top and bottom rows first, then the side
// columns. For the 5x5 board this is the classic 12-cell set.
func (b *Board) SpawnCandidates() []Point {
	last := b.size - 1
	candidates := make([]Point, 0, 4*(b.size-2))
	for i := 1; i < last; i++ {
		candidates = append(candidates,
			Point{X: i, Y: 0},
			Point{X: i, Y: last},
			Point{X: 0, Y: i},
			Point{X: last, Y: i},
		)
	}
	return candidates
}

// spawnItems places one of each item on distinct cells drawn uniformly
// without replacement from the candidate set, in spawnOrder priority.
func (b *Board) spawnItems(candidates []Point) error {
	if len(candidates) < len(spawnOrder) {
		return ErrInsufficientSpawnCells
	}

	pool := append([]Point(nil), candidates...)
	for _, item := range spawnOrder {
		i := b.rng.Intn(len(pool))
		b.set(pool[i], item)
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return nil
}

// MoveResult reports what a directional command did to the board.
type MoveResult struct {
	Moved bool // Chef stepped to a new interior cell
	Item  Cell // Ingredient collected this move, or CellEmpty
	Won   bool // Sandwich delivered; the board has been re-initialized
}

// Changed returns true if the command mutated any board state.
func (r MoveResult) Changed() bool {
	return r.Moved || r.Item != CellEmpty || r.Won
}

// Move applies one discrete directional command. A step that stays inside
// the playable interior moves the chef. A step that would leave the
// interior moves nothing; instead the adjacent counter cell is checked
// for an ingredient to pick up or a goal delivery.
func (b *Board) Move(d Direction) MoveResult {
	dx, dy := d.Delta()
	next := Point{X: b.chef.X + dx, Y: b.chef.Y + dy}

	if b.inInterior(next) {
		b.set(b.chef, CellEmpty)
		b.chef = next
		b.set(b.chef, CellChef)
		return MoveResult{Moved: true}
	}

	return b.tryCollectOrWin(next)
}

// tryCollectOrWin resolves a boundary interaction against the given
// counter cell. Delivering at the goal with a full sandwich wins the
// round and re-initializes the whole board (including the chef position
// and flags). Picking up a new ingredient sets its flag and empties the
// cell. Everything else is a no-op.
func (b *Board) tryCollectOrWin(target Point) MoveResult {
	switch b.at(target) {
	case CellGoal:
		if !b.collected.All() {
			return MoveResult{}
		}
		b.Init()
		return MoveResult{Won: true}

	case CellPeanutButter:
		if b.collected.PeanutButter {
			return MoveResult{}
		}
		b.collected.PeanutButter = true
		b.set(target, CellEmpty)
		return MoveResult{Item: CellPeanutButter}

	case CellJelly:
		if b.collected.Jelly {
			return MoveResult{}
		}
		b.collected.Jelly = true
		b.set(target, CellEmpty)
		return MoveResult{Item: CellJelly}

	case CellBread:
		if b.collected.Bread {
			return MoveResult{}
		}
		b.collected.Bread = true
		b.set(target, CellEmpty)
		return MoveResult{Item: CellBread}

	default:
		return MoveResult{}
	}
}

// CellAt returns the cell content at (x, y).
// Coordinates outside the board are rejected with ErrCellOutOfBounds.
func (b *Board) CellAt(x, y int) (Cell, error) {
	if !b.inBounds(Point{X: x, Y: y}) {
		return CellEmpty, fmt.Errorf("%w: (%d,%d)", ErrCellOutOfBounds, x, y)
	}
	return b.at(Point{X: x, Y: y}), nil
}

// ChefPosition returns the chef's current coordinate.
func (b *Board) ChefPosition() Point {
	return b.chef
}

// Collected returns the ingredient flags for the current round.
func (b *Board) Collected() Collected {
	return b.collected
}

func (b *Board) inBounds(p Point) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// inInterior reports whether p is a cell the chef may stand on.
func (b *Board) inInterior(p Point) bool {
	return p.X >= 1 && p.X <= b.size-2 && p.Y >= 1 && p.Y <= b.size-2
}

func (b *Board) at(p Point) Cell {
	return b.cells[p.Y*b.size+p.X]
}

func (b *Board) set(p Point, c Cell) {
	b.cells[p.Y*b.size+p.X] = c
}

// cellRunes encodes each cell as one rune for debug dumps and snapshots.
var cellRunes = map[Cell]rune{
	CellEmpty:        '.',
	CellChef:         'C',
	CellJelly:        'J',
	CellPeanutButter: 'P',
	CellBread:        'B',
	CellGoal:         'G',
	CellOutOfPlay:    '#',
}

// String renders the grid as one rune per cell, rows top to bottom.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < b.size; x++ {
			sb.WriteRune(cellRunes[b.at(Point{X: x, Y: y})])
		}
	}
	return sb.String()
}
