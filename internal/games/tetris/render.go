package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

const (
	cellWidth    = 2  // Each board cell is two characters wide to look square
	sidebarGap   = 2  // Space between the well and the sidebar
	sidebarWidth = 14 // NEXT box and HUD lines
	previewCols  = 4
	previewRows  = 2
	hudLines     = 4
)

// layout holds the screen positions computed for one frame.
type layout struct {
	well    core.Rect // Outer box of the well, border included
	sidebar int       // X of the sidebar
	top     int       // Title row
}

// requiredSize returns the smallest screen that fits the well and sidebar.
func (g *Game) requiredSize() (w, h int) {
	w = g.cfg.Board.Width*cellWidth + 2 + sidebarGap + sidebarWidth
	sidebarH := previewRows + 2 + 1 + hudLines
	h = max(g.cfg.Board.Height+2, sidebarH) + 1 // Title row on top
	return w, h
}

func (g *Game) layout() layout {
	w, h := g.requiredSize()
	x := max((g.screenW-w)/2, 0)
	top := max((g.screenH-h)/2, 0)
	well := core.NewRect(x, top+1, g.cfg.Board.Width*cellWidth+2, g.cfg.Board.Height+2)
	return layout{
		well:    well,
		sidebar: well.Right() + sidebarGap,
		top:     top,
	}
}

// Render draws the well, the pieces, the sidebar and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.engine == nil {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()

	title := "TETRIS"
	dst.DrawTextColored(l.well.X+(l.well.W-len(title))/2, l.top, title, core.ColorCyan)
	dst.DrawBox(l.well, core.ColorGray)

	g.renderBoard(dst, l)
	g.renderSidebar(dst, l)

	switch {
	case g.engine.Over():
		g.renderOverlay(dst, l, core.ColorRed, "GAME OVER", "R: restart", "Q: quit")
	case g.paused:
		g.renderOverlay(dst, l, core.ColorYellow, "PAUSED", "P: resume")
	}
}

// renderBoard draws locked cells, the active piece and empty-cell dots.
func (g *Game) renderBoard(dst *core.Screen, l layout) {
	board := g.engine.Board()
	originX, originY := l.well.X+1, l.well.Y+1

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.At(x, y)
			if cell.Empty() {
				dst.SetColored(originX+x*cellWidth, originY+y, '·', core.ColorGray)
				continue
			}
			drawBlock(dst, originX+x*cellWidth, originY+y, cell.Color())
		}
	}

	if g.engine.Over() {
		return
	}
	active := g.engine.Active()
	for _, c := range active.Cells() {
		if c.Y < 0 {
			continue // Still entering from above the well
		}
		drawBlock(dst, originX+c.X*cellWidth, originY+c.Y, active.Color())
	}
}

// renderSidebar draws the next-piece preview and the score lines.
func (g *Game) renderSidebar(dst *core.Screen, l layout) {
	s := g.engine.State()
	x := l.sidebar
	y := l.well.Y

	preview := core.NewRect(x, y, previewCols*cellWidth+2, previewRows+2)
	dst.DrawBox(preview, core.ColorGray)
	dst.DrawText(x+2, y, "NEXT")
	for _, off := range Offsets(s.Next.Kind, 0) {
		drawBlock(dst, x+1+off.X*cellWidth, y+1+off.Y, s.Next.Color())
	}

	y = preview.Bottom() + 1
	dst.DrawText(x, y, fmt.Sprintf("Score: %d", s.Score))
	dst.DrawText(x, y+1, fmt.Sprintf("Lines: %d", s.Lines))
	dst.DrawText(x, y+2, fmt.Sprintf("Level: %d", s.Level))
	dst.DrawTextColored(x, y+3, "Speed: "+formatInterval(s.FallInterval), core.ColorGray)
}

// renderOverlay blanks rows in the middle of the well and prints lines there.
func (g *Game) renderOverlay(dst *core.Screen, l layout, color core.Color, lines ...string) {
	innerX := l.well.X + 1
	innerW := l.well.W - 2
	startY := l.well.Y + (l.well.H-len(lines))/2

	for i, line := range lines {
		y := startY + i
		dst.DrawRect(core.NewRect(innerX, y, innerW, 1), ' ', core.ColorDefault)
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColored(innerX+(innerW-len(line))/2, y, line, c)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.requiredSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetColored(x, y, '█', c)
	dst.SetColored(x+1, y, '█', c)
}

// formatInterval prints a fall interval as seconds with two decimals.
func formatInterval(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
