package render

import (
	"fmt"
	"inversi/game"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Text writes a banner with the seat label followed by the grid, one row per
// line, finalized stones in bold.
type Text struct {
	out *termenv.Output
}

func NewText(w io.Writer, options ...termenv.OutputOption) *Text {
	return &Text{out: termenv.NewOutput(w, options...)}
}

func (t *Text) Render(grid game.Grid, label string) {
	var sb strings.Builder
	banner := strings.Repeat("#", 8)
	fmt.Fprintf(&sb, "\n%s %s %s\n\n", banner, label, banner)
	for y := 0; y < game.Size; y++ {
		for x := 0; x < game.Size; x++ {
			sb.WriteString(t.stone(grid[x][y]))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(t.out, sb.String())
}

func (t *Text) stone(s game.Stone) string {
	style := t.out.String(s.String())
	if s.Seat() == game.SeatX {
		style = style.Foreground(t.out.Color("1"))
	} else {
		style = style.Foreground(t.out.Color("4"))
	}
	if s.IsFinalized() {
		style = style.Bold()
	}
	return style.String()
}
