package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetra"
)

const (
	CellSize     = 28
	Margin       = 20
	SidebarWidth = 180
)

var kindColors = [tetra.KindCount]color.RGBA{
	tetra.I: {135, 206, 235, 255},
	tetra.J: {0, 121, 241, 255},
	tetra.L: {255, 161, 0, 255},
	tetra.O: {253, 249, 0, 255},
	tetra.S: {0, 228, 48, 255},
	tetra.T: {200, 122, 255, 255},
	tetra.Z: {230, 41, 55, 255},
}

var (
	backgroundColor = color.RGBA{24, 24, 28, 255}
	fieldColor      = color.RGBA{36, 36, 42, 255}
	borderColor     = color.RGBA{130, 130, 130, 255}
	outlineColor    = color.RGBA{0, 0, 0, 255}
	ghostColor      = color.RGBA{255, 255, 255, 60}
)

func colorOf(tag tetra.Tag) color.RGBA {
	if tag >= 0 && int(tag) < len(kindColors) {
		return kindColors[tag]
	}
	return borderColor
}

// fieldLayout maps grid coordinates to screen pixels. Grid Y grows upward,
// screen Y grows downward.
type fieldLayout struct {
	bounds  tetra.Rect
	cell    float32
	originX float32
	originY float32
}

func newFieldLayout(bounds tetra.Rect) fieldLayout {
	return fieldLayout{bounds: bounds, cell: CellSize, originX: Margin, originY: Margin}
}

func (l fieldLayout) cellPos(v tetra.Vec) (float32, float32) {
	col := v.X - l.bounds.Min.X
	row := l.bounds.Max.Y - 1 - v.Y
	return l.originX + float32(col)*l.cell, l.originY + float32(row)*l.cell
}

func (l fieldLayout) size() (float32, float32) {
	return float32(l.bounds.Width()) * l.cell, float32(l.bounds.Height()) * l.cell
}

// screenSize is the window size needed for a field of the given bounds.
func screenSize(bounds tetra.Rect) (int, int) {
	return Margin*3 + bounds.Width()*CellSize + SidebarWidth, Margin*2 + bounds.Height()*CellSize
}

func (l fieldLayout) drawCell(dst *ebiten.Image, v tetra.Vec, clr color.Color, outline bool) {
	if !l.bounds.Contains(v) {
		return
	}
	x, y := l.cellPos(v)
	vector.DrawFilledRect(dst, x, y, l.cell, l.cell, clr, false)
	if outline {
		vector.StrokeRect(dst, x, y, l.cell, l.cell, 1, outlineColor, false)
	}
}

func drawBoard(dst *ebiten.Image, board *tetra.Board) {
	dst.Fill(backgroundColor)

	l := newFieldLayout(board.Bounds())
	w, h := l.size()
	vector.DrawFilledRect(dst, l.originX, l.originY, w, h, fieldColor, false)
	vector.StrokeRect(dst, l.originX-2, l.originY-2, w+4, h+4, 2, borderColor, false)

	for _, c := range board.Occupied() {
		l.drawCell(dst, c.Pos, colorOf(c.Tag), true)
	}

	if ghost, ok := board.Ghost(); ok {
		for _, v := range ghost {
			l.drawCell(dst, v, ghostColor, false)
		}
	}

	if piece, ok := board.Active(); ok {
		clr := colorOf(piece.Kind().Tag())
		for _, v := range piece.Cells() {
			l.drawCell(dst, v, clr, true)
		}
	}

	drawSidebar(dst, board, l)
}

func drawSidebar(dst *ebiten.Image, board *tetra.Board, l fieldLayout) {
	w, h := l.size()
	x := int(l.originX+w) + Margin
	y := int(l.originY)

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("NEXT   %s", board.Next()), x, y)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("LINES  %d", board.Lines()), x, y+30)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("PIECES %d", board.Locked()), x, y+50)

	ebitenutil.DebugPrintAt(dst, "<- ->  move", x, y+100)
	ebitenutil.DebugPrintAt(dst, "down   soft drop", x, y+115)
	ebitenutil.DebugPrintAt(dst, "space  hard drop", x, y+130)
	ebitenutil.DebugPrintAt(dst, "up/x   rotate cw", x, y+145)
	ebitenutil.DebugPrintAt(dst, "z      rotate ccw", x, y+160)
	ebitenutil.DebugPrintAt(dst, "r      restart", x, y+175)

	if board.Over() {
		cy := int(l.originY + h/2)
		ebitenutil.DebugPrintAt(dst, "GAME OVER", int(l.originX)+20, cy-10)
		ebitenutil.DebugPrintAt(dst, "Press R to restart", int(l.originX)+20, cy+10)
	}
}
