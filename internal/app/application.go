// Package app wires the navigation core to the terminal: one interactive
// loop multiplexing tcell input and asynchronous component events. The
// loop never blocks on the filesystem; directory listings and previews
// arrive as events from worker goroutines.
package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/dirnav/internal/listing"
	"github.com/kk-code-lab/dirnav/internal/nav"
	"github.com/kk-code-lab/dirnav/internal/suggest"
	inputui "github.com/kk-code-lab/dirnav/internal/ui/input"
	renderui "github.com/kk-code-lab/dirnav/internal/ui/render"
	treeui "github.com/kk-code-lab/dirnav/internal/ui/tree"
)

// Application is the running browser.
type Application struct {
	screen    tcell.Screen
	ctrl      *nav.Controller
	listings  *listing.Cache
	suggester *suggest.Engine
	tree      *treeui.Model
	renderer  *renderui.Renderer
	input     *inputui.Handler
	view      renderui.View

	// events carries nav events, listing results, suggestion results and
	// input commands. Worker goroutines post through dispatch.
	events chan any

	inflight   map[string]bool
	suggestGen uint64
	shouldQuit bool
}

// NewApplication initializes the terminal and the navigation core rooted
// at rootArg. An unusable root is a startup failure.
func NewApplication(rootArg string) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app := &Application{
		screen:   screen,
		listings: listing.New(listing.DefaultCapacity),
		events:   make(chan any, 16),
		inflight: make(map[string]bool),
	}

	ctrl, err := nav.New(rootArg, app.listings, func(ev nav.Event) { app.dispatch(ev) })
	if err != nil {
		screen.Fini()
		return nil, err
	}
	app.ctrl = ctrl
	app.suggester = suggest.New(app.listings)
	app.tree = treeui.New(ctrl.Root())
	app.renderer = renderui.NewRenderer(screen)
	app.input = inputui.NewHandler(func(cmd inputui.Command) { app.dispatch(cmd) })

	w, h := screen.Size()
	app.view = renderui.View{Root: ctrl.Root(), Width: w, Height: h}
	return app, nil
}

// dispatch posts an event without ever blocking the caller. The channel
// rarely fills; when it does, a goroutine takes the hit instead of the
// interactive loop or a worker.
func (app *Application) dispatch(ev any) {
	select {
	case app.events <- ev:
	default:
		go func() { app.events <- ev }()
	}
}

// Close releases the terminal.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}
