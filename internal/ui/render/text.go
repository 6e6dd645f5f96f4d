package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText draws s starting at (x, y), clipped to maxWidth display cells.
// Returns the x position after the last drawn cell.
func (r *Renderer) drawText(x, y, maxWidth int, s string, style tcell.Style) int {
	if maxWidth <= 0 {
		return x
	}
	s = sanitizeText(s)
	limit := x + maxWidth
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// fillLine paints the rest of row y from x with the style's background.
func (r *Renderer) fillLine(x, y, width int, style tcell.Style) {
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// truncateToWidth trims s to at most width display cells, appending an
// ellipsis when anything was cut.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// sanitizeText strips control characters so file names and file content
// cannot inject terminal escape sequences.
func sanitizeText(s string) string {
	clean := true
	for _, ch := range s {
		if isControlRune(ch) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		switch {
		case ch == '\t':
			b.WriteString("    ")
		case isControlRune(ch):
			b.WriteRune('·')
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func isControlRune(ch rune) bool {
	return ch < 0x20 || ch == 0x7f || ch == 0x200E || ch == 0x200F ||
		(ch >= 0x202A && ch <= 0x202E) || (ch >= 0x2066 && ch <= 0x2069) ||
		ch == 0xFEFF
}
