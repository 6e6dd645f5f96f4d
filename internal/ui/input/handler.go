// Package input converts tcell events into application commands. The
// handler is mode-aware: the goto editor captures almost every key while
// it is open.
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Command is the base interface for everything the handler emits.
type Command interface{}

// Tree navigation commands.
type (
	MoveUp   struct{}
	MoveDown struct{}
	// Activate expands/collapses the highlighted directory.
	Activate struct{}
	// Collapse closes the highlighted directory or jumps to its parent.
	Collapse struct{}
)

// Application commands.
type (
	Quit          struct{}
	Reload        struct{}
	OpenEditor    struct{}
	TogglePreview struct{}
	Resize        struct{ Width, Height int }
)

// Editor commands.
type (
	EditorRune      struct{ Rune rune }
	EditorBackspace struct{}
	EditorAccept    struct{}
	EditorSubmit    struct{}
	EditorCancel    struct{}
)

// Handler turns tcell events into Commands on dispatch.
type Handler struct {
	dispatch     func(Command)
	editorActive bool
}

// NewHandler creates a handler that emits through dispatch.
func NewHandler(dispatch func(Command)) *Handler {
	return &Handler{dispatch: dispatch}
}

// SetEditorActive switches the handler between tree and editor keymaps.
func (h *Handler) SetEditorActive(active bool) {
	h.editorActive = active
}

// ProcessEvent handles one tcell event. It returns false when the
// application should quit.
func (h *Handler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.processKey(ev)
	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.dispatch(Resize{Width: w, Height: hgt})
		return true
	default:
		return true
	}
}

func (h *Handler) processKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		h.dispatch(Quit{})
		return false
	}
	if h.editorActive {
		return h.processEditorKey(ev)
	}
	return h.processTreeKey(ev)
}

func (h *Handler) processTreeKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		h.dispatch(MoveUp{})
	case tcell.KeyDown:
		h.dispatch(MoveDown{})
	case tcell.KeyRight, tcell.KeyEnter:
		h.dispatch(Activate{})
	case tcell.KeyLeft:
		h.dispatch(Collapse{})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			h.dispatch(Quit{})
			return false
		case 'k':
			h.dispatch(MoveUp{})
		case 'j':
			h.dispatch(MoveDown{})
		case 'h':
			h.dispatch(Collapse{})
		case 'l':
			h.dispatch(Activate{})
		case 'r':
			h.dispatch(Reload{})
		case 'g':
			h.dispatch(OpenEditor{})
		case 'p':
			h.dispatch(TogglePreview{})
		}
	}
	return true
}

func (h *Handler) processEditorKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		h.dispatch(EditorCancel{})
	case tcell.KeyEnter:
		h.dispatch(EditorSubmit{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.dispatch(EditorBackspace{})
	case tcell.KeyTab, tcell.KeyRight:
		h.dispatch(EditorAccept{})
	case tcell.KeyRune:
		h.dispatch(EditorRune{Rune: ev.Rune()})
	}
	return true
}
