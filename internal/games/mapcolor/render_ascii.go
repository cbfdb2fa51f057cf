package mapcolor

import (
	"strings"

	"github.com/vovakirdan/mapcolor/internal/coloring"
	"github.com/vovakirdan/mapcolor/internal/core"
	"github.com/vovakirdan/mapcolor/internal/maps"
)

// RenderASCII draws the board one character per cell: the color initial
// of colored regions, '.' for blank regions and ' ' for water.
func RenderASCII(board *maps.Board, e *coloring.Engine[core.Coord]) string {
	var b strings.Builder
	for y := range board.Height {
		for x := range board.Width {
			r, ok := board.RegionAt(core.C(x, y))
			if !ok {
				b.WriteByte(' ')
				continue
			}
			c, _ := e.ColorOf(r)
			b.WriteRune(c.Char())
		}
		if y < board.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
