package render

import (
	"github.com/kk-code-lab/dirnav/internal/ui/tree"
)

// PreviewState says what the preview pane should show.
type PreviewState int

const (
	// PreviewEmpty: nothing highlighted yet.
	PreviewEmpty PreviewState = iota
	// PreviewLoading: a job is in flight for the highlighted entry.
	PreviewLoading
	// PreviewText: highlighted, decoded content in Lines.
	PreviewText
	// PreviewUnavailable: placeholder for binary/unreadable targets.
	PreviewUnavailable
)

// PreviewView is the preview pane's portion of the view.
type PreviewView struct {
	State    PreviewState
	Path     string
	Language string
	Lines    []Line
}

// InfoView is the info bar's portion of the view: pre-formatted stat
// metadata for the highlighted entry.
type InfoView struct {
	Present   bool
	Failed    bool
	Mode      string
	Owner     string
	Group     string
	TimeLabel string
	SizeLabel string
	IsDir     bool
}

// EditorView is the goto-path overlay.
type EditorView struct {
	Active     bool
	Text       string
	Suggestion string
	Valid      bool
}

// View is the full, render-ready UI state. The application loop owns and
// mutates it; the renderer only reads.
type View struct {
	Root        string
	Rows        []tree.Row
	Cursor      int
	Scroll      int
	ShowPreview bool
	Preview     PreviewView
	Info        InfoView
	Editor      EditorView
	Notice      string
	Width       int
	Height      int
}
