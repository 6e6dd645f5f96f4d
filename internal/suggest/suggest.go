// Package suggest computes a single best autocompletion for a partially
// typed directory path.
package suggest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/dirnav/internal/fs"
	"github.com/kk-code-lab/dirnav/internal/listing"
)

// childLimit caps how many candidate children are considered per parent.
const childLimit = 100

// Engine suggests directory completions from cached listings.
type Engine struct {
	listings *listing.Cache
}

// New returns an engine backed by the shared listing cache.
func New(listings *listing.Cache) *Engine {
	return &Engine{listings: listings}
}

// Suggest returns the best completion for partial: a directory path with a
// trailing separator, or ok=false when nothing matches. A missing or
// unreadable parent is a normal no-suggestion outcome, never an error.
//
// Suggest may perform blocking I/O through the listing cache; interactive
// callers run it on a worker goroutine.
func (e *Engine) Suggest(partial string) (string, bool) {
	if partial == "" {
		return "", false
	}

	parent, prefix, err := splitPartial(partial)
	if err != nil {
		return "", false
	}

	children, err := e.listings.List(parent, childLimit)
	if err != nil {
		return "", false
	}

	best := ""
	for _, child := range children {
		if !child.IsDir {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(child.Name), prefix) {
			continue
		}
		// Shortest candidate wins; ties keep the first one seen in
		// filesystem iteration order.
		if best == "" || len(child.FullPath) < len(best) {
			best = child.FullPath
		}
	}
	if best == "" {
		return "", false
	}

	suggestion := best + string(filepath.Separator)
	if strings.Contains(partial, "~") {
		if home := resolvedHome(); home != "" && strings.HasPrefix(suggestion, home) {
			suggestion = strings.Replace(suggestion, home, "~", 1)
		}
	}
	return suggestion, true
}

func resolvedHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	if resolved, err := fs.Resolve(home); err == nil {
		return resolved
	}
	return home
}

// splitPartial resolves the directory whose children should be offered and
// the case-folded final segment used as the match prefix. When partial
// itself denotes an existing directory it becomes the parent; otherwise
// its containing directory does.
func splitPartial(partial string) (parent, prefix string, err error) {
	expanded, err := fs.ExpandHome(partial)
	if err != nil {
		return "", "", err
	}

	if partial == "~" || strings.HasSuffix(partial, string(filepath.Separator)) {
		// A trailing separator means the user finished a segment; every
		// child is a candidate. A bare home token works the same way:
		// matching the home directory's base name against its own
		// children would be nonsense.
		parent, err = fs.Resolve(expanded)
		return parent, "", err
	}

	prefix = strings.ToLower(filepath.Base(expanded))
	if fs.IsDirectory(expanded) {
		parent, err = fs.Resolve(expanded)
	} else {
		parent, err = fs.Resolve(filepath.Dir(expanded))
	}
	return parent, prefix, err
}
