// Package nav owns the browser's navigation state: the current root, the
// highlighted entry, and preview visibility. The controller is the only
// writer of that state and is driven from the interactive loop; the leaf
// components it coordinates do their blocking work on goroutines and
// report back through events.
package nav

import (
	"fmt"

	"github.com/kk-code-lab/dirnav/internal/fs"
	"github.com/kk-code-lab/dirnav/internal/listing"
	"github.com/kk-code-lab/dirnav/internal/preview"
)

// Controller coordinates root changes, highlight changes, and reloads.
// All methods must be called from the interactive loop; emit must be safe
// to call from any goroutine and must not block.
type Controller struct {
	listings *listing.Cache
	previews *preview.Engine
	emit     func(Event)

	root        string
	highlighted string
	showPreview bool
}

// New resolves and validates the startup root and returns a controller
// rooted there. An invalid root is fatal: there is nothing to browse.
func New(rawRoot string, listings *listing.Cache, emit func(Event)) (*Controller, error) {
	root, err := fs.Resolve(rawRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", rawRoot, err)
	}
	if !fs.IsDirectory(root) {
		return nil, fmt.Errorf("root %q is not a directory", root)
	}

	c := &Controller{
		listings: listings,
		emit:     emit,
		root:     root,
	}
	c.previews = preview.New(c.onPreview)
	return c, nil
}

// Root returns the current root path.
func (c *Controller) Root() string {
	return c.root
}

// Highlighted returns the currently highlighted entry, or "".
func (c *Controller) Highlighted() string {
	return c.highlighted
}

// PreviewVisible reports whether the preview pane should be shown.
func (c *Controller) PreviewVisible() bool {
	return c.showPreview
}

// RequestNavigate validates candidate and, when it resolves to a
// directory, adopts it as the new root. A non-directory target emits
// NavigationRejected and leaves the root unchanged.
func (c *Controller) RequestNavigate(candidate string) {
	resolved, err := fs.Resolve(candidate)
	if err != nil || !fs.IsDirectory(resolved) {
		c.emit(NavigationRejected{Path: candidate, Reason: "not a directory"})
		return
	}
	c.root = resolved
	c.emit(RootChanged{Path: resolved})
}

// Highlight records the newly highlighted entry, reports its stat
// metadata, and starts a preview job that supersedes any outstanding one.
func (c *Controller) Highlight(path string) {
	c.highlighted = path

	meta, err := Stat(path)
	c.emit(HighlightedInfo{Path: path, Meta: meta, Err: err})

	c.previews.Preview(path)
}

// Reload invalidates cached listings for target, or for the whole current
// root when target is empty, then tells the tree view to re-fetch. The
// re-listing itself flows through the cache as usual.
func (c *Controller) Reload(target string) {
	if target == "" {
		c.listings.ReloadTree(c.root)
		c.emit(TreeRefresh{Path: c.root})
		return
	}
	c.listings.Reload(target)
	c.emit(TreeRefresh{Path: target})
}

// TogglePreview flips preview visibility and returns the new value.
// In-flight preview jobs are unaffected; a hidden pane simply does not
// display their results.
func (c *Controller) TogglePreview() bool {
	c.showPreview = !c.showPreview
	return c.showPreview
}

func (c *Controller) onPreview(res preview.Result) {
	switch res.Kind {
	case preview.KindText:
		c.emit(PreviewReady{Path: res.Path, Text: res.Text, Language: res.Language})
	default:
		c.emit(PreviewUnavailable{Path: res.Path})
	}
}
