package scene

import (
	"strings"

	"github.com/iburimskiy/celestial-scene/internal/layout"
)

// WrapText breaks s into lines of at most cols runes, on word boundaries where possible
func WrapText(s string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, w := range words {
			for len([]rune(w)) > cols {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				r := []rune(w)
				out = append(out, string(r[:cols]))
				w = string(r[cols:])
			}
			switch {
			case line == "":
				line = w
			case len([]rune(line))+1+len([]rune(w)) <= cols:
				line += " " + w
			default:
				out = append(out, line)
				line = w
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Line is one positioned line of a text block
type Line struct {
	Text string
	X, Y float64
}

// TextBlock lays lines out at (x, y) for a monospace cell of charW×lineH;
// centered blocks center every line on x
func TextBlock(a layout.Anchor, x, y float64, lines []string, charW, lineH float64) []Line {
	widest := 0
	for _, l := range lines {
		widest = max(widest, len([]rune(l)))
	}
	ox, oy := a.Origin(x, y, float64(widest)*charW, float64(len(lines))*lineH)
	out := make([]Line, len(lines))
	for i, l := range lines {
		lx := ox
		if a.X == "center" {
			lx = x - float64(len([]rune(l)))*charW/2
		}
		out[i] = Line{Text: l, X: lx, Y: oy + float64(i)*lineH}
	}
	return out
}
