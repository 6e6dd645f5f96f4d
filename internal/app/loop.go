package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/dirnav/internal/fs"
	"github.com/kk-code-lab/dirnav/internal/nav"
	inputui "github.com/kk-code-lab/dirnav/internal/ui/input"
	renderui "github.com/kk-code-lab/dirnav/internal/ui/render"
	treeui "github.com/kk-code-lab/dirnav/internal/ui/tree"
)

// listingLoaded is posted by a listing worker; keyed by path so results
// can be applied in any completion order.
type listingLoaded struct {
	path    string
	entries []fs.Entry
	err     error
}

// suggestionReady is posted by a suggestion worker. gen guards against
// applying a suggestion computed for older editor text.
type suggestionReady struct {
	gen        uint64
	suggestion string
	ok         bool
}

// Run drives the interactive loop until quit.
func (app *Application) Run() {
	defer app.screen.Fini()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	app.startPendingLoads()
	app.render()

	for !app.shouldQuit {
		select {
		case ev := <-eventChan:
			if !app.input.ProcessEvent(ev) {
				app.shouldQuit = true
			}
		case ev := <-app.events:
			app.handleEvent(ev)
		}

		app.drainEvents()
		app.startPendingLoads()
		app.render()
	}
}

// drainEvents applies everything already queued so one render covers it.
func (app *Application) drainEvents() {
	for {
		select {
		case ev := <-app.events:
			app.handleEvent(ev)
		default:
			return
		}
	}
}

// startPendingLoads fetches listings for expanded-but-unloaded
// directories on worker goroutines, one in-flight fetch per path.
func (app *Application) startPendingLoads() {
	for _, path := range app.tree.PendingLoads() {
		if app.inflight[path] {
			continue
		}
		app.inflight[path] = true
		go func(path string) {
			entries, err := app.listings.List(path, treeui.ChildLimit)
			app.dispatch(listingLoaded{path: path, entries: entries, err: err})
		}(path)
	}
}

func (app *Application) render() {
	app.view.Root = app.ctrl.Root()
	app.view.Rows = app.tree.Rows()
	app.view.Cursor = app.tree.Cursor()
	app.view.ShowPreview = app.ctrl.PreviewVisible()
	app.view.Scroll = renderui.ClampScroll(&app.view, app.view.Height-2)
	app.renderer.Render(&app.view)
}

// handleEvent routes one queued event. Command and nav.Event are both
// bare interfaces, so routing goes by concrete type.
func (app *Application) handleEvent(ev any) {
	switch ev := ev.(type) {
	case nav.RootChanged, nav.NavigationRejected, nav.HighlightedInfo,
		nav.PreviewReady, nav.PreviewUnavailable, nav.TreeRefresh:
		app.handleNavEvent(ev)
	case listingLoaded:
		delete(app.inflight, ev.path)
		if ev.err != nil {
			// Unreadable directory: shown as empty, never fatal.
			app.tree.SetUnavailable(ev.path)
		} else {
			app.tree.SetChildren(ev.path, ev.entries)
		}
		app.highlightCurrent()
	case suggestionReady:
		if app.view.Editor.Active && ev.gen == app.suggestGen {
			if ev.ok {
				app.view.Editor.Suggestion = ev.suggestion
			} else {
				app.view.Editor.Suggestion = ""
			}
		}
	default:
		app.handleCommand(ev)
	}
}

func (app *Application) handleCommand(cmd inputui.Command) {
	app.view.Notice = ""

	switch cmd := cmd.(type) {
	case inputui.Quit:
		app.shouldQuit = true
	case inputui.Resize:
		app.view.Width = cmd.Width
		app.view.Height = cmd.Height
		app.screen.Sync()
	case inputui.MoveUp:
		if app.tree.MoveUp() {
			app.highlightCurrent()
		}
	case inputui.MoveDown:
		if app.tree.MoveDown() {
			app.highlightCurrent()
		}
	case inputui.Activate:
		app.tree.Toggle()
	case inputui.Collapse:
		if app.tree.Collapse() {
			app.highlightCurrent()
		}
	case inputui.Reload:
		app.requestReload()
	case inputui.TogglePreview:
		app.ctrl.TogglePreview()
	case inputui.OpenEditor:
		app.openEditor()
	case inputui.EditorRune:
		app.view.Editor.Text += string(cmd.Rune)
		app.updateEditor()
	case inputui.EditorBackspace:
		app.view.Editor.Text = trimLastRune(app.view.Editor.Text)
		app.updateEditor()
	case inputui.EditorAccept:
		app.acceptSuggestion()
	case inputui.EditorSubmit:
		target := app.view.Editor.Text
		app.closeEditor()
		app.ctrl.RequestNavigate(target)
	case inputui.EditorCancel:
		app.closeEditor()
	}
}

func (app *Application) handleNavEvent(ev nav.Event) {
	switch ev := ev.(type) {
	case nav.RootChanged:
		app.tree.SetRoot(ev.Path)
		app.view.Preview = renderui.PreviewView{}
		app.view.Info = renderui.InfoView{}
	case nav.NavigationRejected:
		app.view.Notice = fmt.Sprintf("%q is not a directory", ev.Path)
	case nav.HighlightedInfo:
		app.view.Info = formatInfo(ev)
	case nav.PreviewReady:
		if ev.Path != app.ctrl.Highlighted() {
			return
		}
		app.view.Preview = renderui.PreviewView{
			State:    renderui.PreviewText,
			Path:     ev.Path,
			Language: ev.Language,
			Lines:    app.renderer.Highlight(ev.Text, ev.Language),
		}
	case nav.PreviewUnavailable:
		if ev.Path != app.ctrl.Highlighted() {
			return
		}
		app.view.Preview = renderui.PreviewView{
			State: renderui.PreviewUnavailable,
			Path:  ev.Path,
		}
	case nav.TreeRefresh:
		app.tree.Refresh(ev.Path)
		app.view.Notice = fmt.Sprintf("reloaded %q", ev.Path)
	}
}

// highlightCurrent tells the controller about the row under the cursor,
// which refreshes the info bar and supersedes the running preview job.
func (app *Application) highlightCurrent() {
	row := app.tree.Current()
	if row == nil || row.Entry.FullPath == app.ctrl.Highlighted() {
		return
	}
	app.ctrl.Highlight(row.Entry.FullPath)
	app.view.Preview = renderui.PreviewView{
		State: renderui.PreviewLoading,
		Path:  row.Entry.FullPath,
	}
}

// requestReload targets the directory containing the highlighted entry,
// or the whole root when nothing is highlighted.
func (app *Application) requestReload() {
	target := ""
	if row := app.tree.Current(); row != nil {
		target = filepath.Dir(row.Entry.FullPath)
	}
	app.ctrl.Reload(target)
}

func (app *Application) openEditor() {
	text := app.ctrl.Root()
	if text != string(filepath.Separator) {
		text += string(filepath.Separator)
	}
	app.view.Editor = renderui.EditorView{Active: true, Text: text}
	app.input.SetEditorActive(true)
	app.updateEditor()
}

func (app *Application) closeEditor() {
	app.view.Editor = renderui.EditorView{}
	app.input.SetEditorActive(false)
	app.screen.HideCursor()
}

// updateEditor recomputes path validity synchronously (a metadata stat)
// and requests a fresh suggestion from a worker, invalidating any
// suggestion still in flight for older text.
func (app *Application) updateEditor() {
	text := app.view.Editor.Text
	app.view.Editor.Suggestion = ""

	expanded, err := fs.ExpandHome(text)
	app.view.Editor.Valid = err == nil && fs.IsDirectory(expanded)

	app.suggestGen++
	gen := app.suggestGen
	go func() {
		suggestion, ok := app.suggester.Suggest(text)
		app.dispatch(suggestionReady{gen: gen, suggestion: suggestion, ok: ok})
	}()
}

func (app *Application) acceptSuggestion() {
	ed := &app.view.Editor
	if ed.Suggestion != "" && len(ed.Suggestion) > len(ed.Text) {
		ed.Text = ed.Suggestion
		app.updateEditor()
	}
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func formatInfo(ev nav.HighlightedInfo) renderui.InfoView {
	if ev.Err != nil {
		return renderui.InfoView{Present: true, Failed: true}
	}
	return renderui.InfoView{
		Present:   true,
		Mode:      ev.Meta.Mode.String(),
		Owner:     ev.Meta.Owner,
		Group:     ev.Meta.Group,
		TimeLabel: nav.FormatModTime(ev.Meta.ModTime, time.Now()),
		SizeLabel: nav.FormatSize(ev.Meta.Size),
		IsDir:     ev.Meta.IsDir,
	}
}
