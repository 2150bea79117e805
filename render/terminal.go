package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pdrpinto/astar-maze/maze"
)

// CellWidth is the number of terminal columns used per grid cell.
const CellWidth = 2

// Style returns the terminal style for a symbol: its palette color as
// background with a readable foreground.
func (p Palette) Style(s maze.Symbol) tcell.Style {
	c := p.Color(s)
	bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	fg := tcell.ColorBlack
	if int(c.R)+int(c.G)+int(c.B) < 3*0x60 {
		fg = tcell.ColorWhite
	}
	return tcell.StyleDefault.Background(bg).Foreground(fg)
}

// Draw paints cells onto screen with their top-left corner at (x, y). Each
// cell takes CellWidth columns: the symbol followed by padding. Cells that
// fall outside the screen are skipped. Draw does not call Show.
func Draw(screen tcell.Screen, cells [][]maze.Symbol, palette Palette, x, y int) {
	width, height := screen.Size()
	for r, row := range cells {
		sy := y + r
		if sy < 0 || sy >= height {
			continue
		}
		for c, s := range row {
			style := palette.Style(s)
			sx := x + c*CellWidth
			for i := 0; i < CellWidth; i++ {
				if sx+i < 0 || sx+i >= width {
					continue
				}
				ch := ' '
				if i == 0 {
					ch = rune(s)
				}
				screen.SetContent(sx+i, sy, ch, nil, style)
			}
		}
	}
}

// drawText writes s left to right starting at (x, y).
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// View shows cells with a status line underneath and blocks until the user
// presses q, Escape or Ctrl-C. The screen must already be initialized; the
// caller owns Fini.
func View(screen tcell.Screen, cells [][]maze.Symbol, palette Palette, status string) {
	draw := func() {
		screen.Clear()
		Draw(screen, cells, palette, 0, 0)
		drawText(screen, 0, len(cells)+1, status, tcell.StyleDefault)
		drawText(screen, 0, len(cells)+2, "q/Esc: quit", tcell.StyleDefault.Dim(true))
		screen.Show()
	}
	draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
			draw()
		}
	}
}
