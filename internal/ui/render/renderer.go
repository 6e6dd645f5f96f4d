package render

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Renderer draws the whole UI from a View snapshot.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  DefaultTheme(),
	}
}

// Highlight tokenizes preview text with this renderer's theme.
func (r *Renderer) Highlight(text, language string) []Line {
	return HighlightText(text, language, r.theme)
}

// Render draws the view and flushes the screen.
func (r *Renderer) Render(v *View) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	r.drawHeader(v, w)

	treeWidth := w
	if v.ShowPreview && w >= 40 {
		treeWidth = w / 2
		r.drawPreviewPane(v, treeWidth+1, w-treeWidth-1, h)
	}
	r.drawTreePane(v, treeWidth, h)

	r.drawInfoBar(v, w, h)
	r.screen.Show()
}

// drawHeader renders the path display, or the goto editor when active.
func (r *Renderer) drawHeader(v *View, w int) {
	if v.Editor.Active {
		r.drawEditor(v, w)
		return
	}

	style := tcell.StyleDefault.Foreground(r.theme.HeaderFg).Bold(true)
	path := v.Root
	if path == "" {
		path = string(filepath.Separator)
	}
	r.drawText(1, 0, w-2, truncateToWidth(path, w-2), style)
}

func (r *Renderer) drawEditor(v *View, w int) {
	prompt := "goto: "
	style := tcell.StyleDefault.Bold(true)
	if v.Editor.Valid {
		style = style.Foreground(r.theme.EditorValid)
	} else {
		style = style.Foreground(r.theme.EditorBad)
	}

	x := r.drawText(1, 0, w-2, prompt, tcell.StyleDefault)
	x = r.drawText(x, 0, w-x-1, v.Editor.Text, style)

	// Ghost text: the uncommitted remainder of the suggestion.
	if rest, ok := suggestionRemainder(v.Editor.Text, v.Editor.Suggestion); ok {
		ghost := tcell.StyleDefault.Foreground(r.theme.GhostFg).Dim(true)
		x = r.drawText(x, 0, w-x-1, rest, ghost)
	}
	r.screen.ShowCursor(x, 0)
}

// suggestionRemainder returns the part of suggestion not yet typed.
func suggestionRemainder(text, suggestion string) (string, bool) {
	if suggestion == "" || len(suggestion) <= len(text) {
		return "", false
	}
	if !strings.HasPrefix(strings.ToLower(suggestion), strings.ToLower(text)) {
		return "", false
	}
	return suggestion[len(text):], true
}

func (r *Renderer) drawTreePane(v *View, width, height int) {
	top, bottom := 1, height-1
	visible := bottom - top
	if visible <= 0 {
		return
	}

	scroll := ClampScroll(v, visible)
	for i := 0; i < visible; i++ {
		idx := scroll + i
		if idx >= len(v.Rows) {
			break
		}
		row := v.Rows[idx]
		y := top + i

		style := tcell.StyleDefault
		switch {
		case row.Entry.IsSymlink:
			style = style.Foreground(r.theme.SymlinkFg)
		case row.Entry.IsDir:
			style = style.Foreground(r.theme.DirectoryFg)
		case row.Entry.IsHidden():
			style = style.Foreground(r.theme.HiddenFg)
		}
		selected := idx == v.Cursor
		if selected {
			style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}

		marker := "  "
		if row.Entry.IsDir {
			if row.Expanded {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}
		label := strings.Repeat("  ", row.Depth) + marker + row.Entry.Name

		x := r.drawText(0, y, width, truncateToWidth(label, width), style)
		if selected {
			r.fillLine(x, y, width, style)
		}
	}
}

// ClampScroll keeps the cursor row inside the visible window. The
// application persists the result back into the view so scroll position
// is stable across renders.
func ClampScroll(v *View, visible int) int {
	if visible <= 0 {
		return 0
	}
	scroll := v.Scroll
	if v.Cursor < scroll {
		scroll = v.Cursor
	}
	if v.Cursor >= scroll+visible {
		scroll = v.Cursor - visible + 1
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}

func (r *Renderer) drawPreviewPane(v *View, x, width, height int) {
	top, bottom := 1, height-1
	if width <= 0 || bottom <= top {
		return
	}

	// Pane divider.
	for y := top; y < bottom; y++ {
		r.screen.SetContent(x-1, y, '│', nil, tcell.StyleDefault.Foreground(r.theme.HiddenFg))
	}

	switch v.Preview.State {
	case PreviewEmpty:
		return
	case PreviewLoading:
		r.drawText(x+1, top, width-1, "…", tcell.StyleDefault.Dim(true))
	case PreviewUnavailable:
		style := tcell.StyleDefault.Foreground(r.theme.NoticeFg).Bold(true)
		r.drawText(x+1, top, width-1, "preview not available", style)
	case PreviewText:
		for i, line := range v.Preview.Lines {
			y := top + i
			if y >= bottom {
				break
			}
			lx := x + 1
			for _, span := range line.Spans {
				if lx >= x+width {
					break
				}
				lx = r.drawText(lx, y, x+width-lx, span.Text, span.Style)
			}
		}
	}
}

func (r *Renderer) drawInfoBar(v *View, w, h int) {
	y := h - 1

	if v.Notice != "" {
		style := tcell.StyleDefault.Foreground(r.theme.NoticeFg).Bold(true)
		r.drawText(1, y, w-2, truncateToWidth(v.Notice, w-2), style)
		return
	}

	info := v.Info
	if !info.Present {
		return
	}
	if info.Failed {
		r.drawText(1, y, w-2, "failed to get file info", tcell.StyleDefault.Foreground(r.theme.NoticeFg))
		return
	}

	x := 1
	x = r.drawSegment(x, y, w, info.Mode, r.theme.InfoMode)
	x = r.drawSegment(x, y, w, info.Owner, r.theme.InfoOwner)
	x = r.drawSegment(x, y, w, info.Group, r.theme.InfoGroup)
	x = r.drawSegment(x, y, w, info.TimeLabel, r.theme.InfoTime)
	if !info.IsDir {
		r.drawSegment(x, y, w, info.SizeLabel, r.theme.InfoSize)
	}
}

func (r *Renderer) drawSegment(x, y, w int, text string, fg tcell.Color) int {
	if text == "" || x >= w-1 {
		return x
	}
	x = r.drawText(x, y, w-x-1, text, tcell.StyleDefault.Foreground(fg))
	return x + 1
}
