package mapcolor

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mapcolor/internal/coloring"
	"github.com/vovakirdan/mapcolor/internal/core"
)

const (
	cellWidth = 3 // screen columns per board cell
	hudTop    = 3 // rows above the board box
	hudBottom = 3 // rows below the board box
	minWidth  = 40
)

var screenColors = map[coloring.Color]core.Color{
	coloring.Red:     core.ColorRed,
	coloring.Green:   core.ColorGreen,
	coloring.Blue:    core.ColorBlue,
	coloring.Yellow:  core.ColorYellow,
	coloring.Purple:  core.ColorPurple,
	coloring.Orange:  core.ColorOrange,
	coloring.Cyan:    core.ColorCyan,
	coloring.Magenta: core.ColorMagenta,
}

// ScreenColor maps a region color to a terminal color.
func ScreenColor(c coloring.Color) core.Color {
	if sc, ok := screenColors[c]; ok {
		return sc
	}
	return core.ColorDefault
}

// minSize returns the smallest screen that fits the board and HUD.
func (g *Game) minSize() (int, int) {
	w := max(g.board.Width*cellWidth+2, minWidth)
	h := hudTop + g.board.Height + 2 + hudBottom
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boxW := g.board.Width*cellWidth + 2
	boxH := g.board.Height + 2
	boxX := (g.screenW - boxW) / 2
	if boxX < 0 {
		boxX = 0
	}

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(boxX, hudTop, boxW, boxH))
	g.renderBoard(dst, boxX+1, hudTop+1)
	g.renderFooter(dst, hudTop+boxH)

	if g.paused {
		g.renderPaused(dst, hudTop+boxH/2)
	}
}

// renderPaused draws a framed "PAUSED" panel centered on row y.
func (g *Game) renderPaused(dst *core.Screen, y int) {
	const text = " PAUSED "
	panel := core.NewRect((g.screenW-len(text)-2)/2, y-1, len(text)+2, 3)
	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel)
	dst.DrawTextCentered(y, text)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "Map Coloring: "+g.title)

	s := g.engine.Scores()
	score := fmt.Sprintf("You: %d   Computer: %d   Colored: %d/%d",
		s.Human, s.Computer, g.engine.ColoredCount(), g.board.RegionCount())
	dst.DrawTextCentered(1, score)
}

func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	for y := range g.board.Height {
		for x := range g.board.Width {
			g.renderCell(dst, core.C(x, y), ox+x*cellWidth, oy+y)
		}
	}
}

func (g *Game) renderCell(dst *core.Screen, c core.Coord, px, py int) {
	region, ok := g.board.RegionAt(c)
	if !ok {
		dst.SetColored(px+1, py, '~', core.ColorGray)
	} else {
		color, _ := g.engine.ColorOf(region)
		if color != coloring.NoColor {
			fill := '█'
			mid := fill
			if g.hasLast && region == g.lastComputer {
				mid = '▓'
			}
			sc := ScreenColor(color)
			dst.SetColored(px, py, fill, sc)
			dst.SetColored(px+1, py, mid, sc)
			dst.SetColored(px+2, py, fill, sc)
		} else {
			mark := '·'
			if l := g.board.Letter(region); l != 0 {
				mark = l
			}
			dst.SetColored(px+1, py, mark, core.ColorWhite)
		}
	}

	if c == g.cursor {
		dst.SetColored(px, py, '[', core.ColorBrightWhite)
		dst.SetColored(px+2, py, ']', core.ColorBrightWhite)
	}
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	var b strings.Builder
	x := 1
	dst.DrawText(x, y, "Color:")
	x += len("Color:") + 1
	for i, c := range g.palette {
		b.Reset()
		if i == g.selected {
			fmt.Fprintf(&b, "[%d %s]", i+1, c)
		} else {
			fmt.Fprintf(&b, " %d %s ", i+1, c)
		}
		dst.DrawTextColored(x, y, b.String(), ScreenColor(c))
		x += b.Len()
	}

	dst.DrawTextColored(1, y+1, g.status, g.statusColor())
	dst.DrawTextColored(1, y+2, g.detail, core.ColorGray)
}

func (g *Game) statusColor() core.Color {
	switch g.status {
	case StatusWrongMove, StatusComputerWins, StatusStuck:
		return core.ColorRed
	case StatusHumanWins:
		return core.ColorGreen
	case StatusDraw, StatusComputerTurn, StatusSolving:
		return core.ColorYellow
	default:
		return core.ColorBrightWhite
	}
}
