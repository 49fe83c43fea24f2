package chef

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/chef-grid/internal/core"
)

const hudHeight = 2 // Status line plus separator

// tile is the visual category for a cell: a rune and a color the TUI
// layer knows how to display. The board itself never stores visuals;
// this lookup is the whole mapping from cell code to asset.
type tile struct {
	r rune
	c core.Color
}

var cellTiles = map[Cell]tile{
	CellEmpty:        {' ', core.ColorDefault},
	CellChef:         {'@', core.ColorBrightWhite},
	CellJelly:        {'J', core.ColorMagenta},
	CellPeanutButter: {'P', core.ColorOrange},
	CellBread:        {'B', core.ColorYellow},
	CellGoal:         {'G', core.ColorBrightGreen},
	CellOutOfPlay:    {'░', core.ColorGray},
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Kitchen closed!", fmt.Sprintf("%d sandwiches - press R to restart", g.rounds))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	carrying := g.board.Collected()
	hud := fmt.Sprintf(" Sandwich Chef | Rounds: %d  Carrying: %s%s%s",
		g.rounds,
		mark("PB", carrying.PeanutButter),
		mark("J", carrying.Jelly),
		mark("B", carrying.Bread),
	)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// mark renders one ingredient slot as filled or empty.
func mark(label string, have bool) string {
	if have {
		return "[" + label + "]"
	}
	return "[" + strings.Repeat(" ", len(label)) + "]"
}

// renderBoard draws the bordered grid centered below the HUD.
// Cells are spaced two columns apart so the board reads roughly square.
func (g *Game) renderBoard(dst *core.Screen) {
	size := g.board.Size()
	boardW := size*2 + 1
	boardH := size + 2
	offsetX := (dst.Width() - boardW - 2) / 2
	offsetY := hudHeight + core.Max(0, (dst.Height()-hudHeight-boardH)/2)

	dst.DrawBox(core.NewRect(offsetX, offsetY, boardW+2, boardH))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cell, err := g.board.CellAt(x, y)
			if err != nil {
				continue
			}
			t, ok := cellTiles[cell]
			if !ok {
				t = cellTiles[CellEmpty]
			}
			dst.SetColored(offsetX+2+x*2, offsetY+1+y, t.r, t.c)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
