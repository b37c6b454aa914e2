package console

import (
	"io"
	"strings"

	"github.com/jaminalder/noughts/internal/domain"
	"github.com/muesli/termenv"
)

// Renderer draws positions as a small ASCII grid, rank 3 on top.
// Pieces are colored when the output supports it.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer detects the color profile of w. With color false the
// output is always plain ASCII.
func NewRenderer(w io.Writer, color bool) *Renderer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) piece(p domain.Position, i int) string {
	side := p.PieceAt(i)
	sym := side.Symbol()
	switch side {
	case domain.Noughts:
		return r.out.String(sym).Foreground(r.out.Color("4")).Bold().String()
	case domain.Crosses:
		return r.out.String(sym).Foreground(r.out.Color("1")).Bold().String()
	default:
		return sym
	}
}

// Board renders p followed by the side to move, without a trailing newline.
func (r *Renderer) Board(p domain.Position) string {
	var b strings.Builder
	for rank := 2; rank >= 0; rank-- {
		b.WriteString(string(rune('1' + rank)))
		b.WriteString(" |")
		for file := 0; file < 3; file++ {
			if file > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(r.piece(p, rank*3+file))
		}
		b.WriteByte('\n')
	}
	b.WriteString("  +------\n")
	b.WriteString("   A B C\n")
	b.WriteString("Side to move: ")
	b.WriteString(p.ToMove.String())
	return b.String()
}
