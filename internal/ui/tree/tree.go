// Package tree maintains the expandable directory tree shown in the left
// pane. It is a pure view model: listings arrive from outside (fetched
// through the listing cache on worker goroutines) and are keyed by path,
// so results can be applied in any completion order.
package tree

import (
	"path/filepath"

	"github.com/kk-code-lab/dirnav/internal/fs"
)

// ChildLimit caps how many children are shown per directory node.
const ChildLimit = 100

// Row is one visible line of the tree.
type Row struct {
	Entry    fs.Entry
	Depth    int
	Expanded bool
}

// Model holds expansion and listing state for the current root.
type Model struct {
	root        string
	expanded    map[string]bool
	children    map[string][]fs.Entry
	unavailable map[string]bool
	rows        []Row
	cursor      int
}

// New returns an empty model rooted at root. The root's listing is
// pending until SetChildren delivers it.
func New(root string) *Model {
	m := &Model{}
	m.SetRoot(root)
	return m
}

// Root returns the current root path.
func (m *Model) Root() string {
	return m.root
}

// SetRoot points the model at a new root and discards all expansion and
// listing state.
func (m *Model) SetRoot(root string) {
	m.root = root
	m.expanded = map[string]bool{root: true}
	m.children = make(map[string][]fs.Entry)
	m.unavailable = make(map[string]bool)
	m.rows = nil
	m.cursor = 0
}

// PendingLoads returns the expanded directories whose listings have not
// arrived yet. The caller fetches each through the listing cache off the
// interactive loop and applies the results with SetChildren/SetUnavailable.
func (m *Model) PendingLoads() []string {
	var pending []string
	for path, on := range m.expanded {
		if !on {
			continue
		}
		if _, loaded := m.children[path]; loaded {
			continue
		}
		if m.unavailable[path] {
			continue
		}
		pending = append(pending, path)
	}
	return pending
}

// SetChildren applies a fetched listing. Listings for paths that are no
// longer expanded (stale completions) are kept; they are cheap and will be
// reused if the node is expanded again.
func (m *Model) SetChildren(path string, entries []fs.Entry) {
	m.unavailable[path] = false
	m.children[path] = entries
	m.rebuild()
}

// SetUnavailable marks a directory that could not be listed. It renders as
// empty rather than failing navigation.
func (m *Model) SetUnavailable(path string) {
	m.unavailable[path] = true
	m.rebuild()
}

// Refresh drops the stored listings for path and everything beneath it so
// pending loads fetch them again (through the already-invalidated cache).
func (m *Model) Refresh(path string) {
	for stored := range m.children {
		if stored == path || isBelow(stored, path) {
			delete(m.children, stored)
		}
	}
	for stored := range m.unavailable {
		if stored == path || isBelow(stored, path) {
			delete(m.unavailable, stored)
		}
	}
	m.rebuild()
}

// Rows returns the visible rows, top to bottom.
func (m *Model) Rows() []Row {
	return m.rows
}

// Cursor returns the index of the highlighted row.
func (m *Model) Cursor() int {
	return m.cursor
}

// Current returns the highlighted row, or nil when the tree is empty.
func (m *Model) Current() *Row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// MoveUp moves the highlight one row up and reports whether it moved.
func (m *Model) MoveUp() bool {
	if m.cursor <= 0 {
		return false
	}
	m.cursor--
	return true
}

// MoveDown moves the highlight one row down and reports whether it moved.
func (m *Model) MoveDown() bool {
	if m.cursor >= len(m.rows)-1 {
		return false
	}
	m.cursor++
	return true
}

// Toggle expands or collapses the highlighted directory. It reports
// whether the model changed; expanding an unloaded directory leaves a
// pending load behind.
func (m *Model) Toggle() bool {
	row := m.Current()
	if row == nil || !row.Entry.IsDir {
		return false
	}
	path := row.Entry.FullPath
	m.expanded[path] = !m.expanded[path]
	m.rebuild()
	return true
}

// Collapse closes the highlighted directory, or moves the highlight to the
// parent row when the highlight is not on an expanded directory.
func (m *Model) Collapse() bool {
	row := m.Current()
	if row == nil {
		return false
	}
	if row.Entry.IsDir && m.expanded[row.Entry.FullPath] {
		m.expanded[row.Entry.FullPath] = false
		m.rebuild()
		return true
	}
	return m.moveToParent(row)
}

func (m *Model) moveToParent(row *Row) bool {
	for i := m.cursor - 1; i >= 0; i-- {
		if m.rows[i].Depth < row.Depth {
			m.cursor = i
			return true
		}
	}
	return false
}

func (m *Model) rebuild() {
	current := ""
	if row := m.Current(); row != nil {
		current = row.Entry.FullPath
	}

	m.rows = m.rows[:0]
	m.appendRows(m.root, 0)

	if current != "" {
		for i, row := range m.rows {
			if row.Entry.FullPath == current {
				m.cursor = i
				return
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) appendRows(dir string, depth int) {
	for _, entry := range m.children[dir] {
		expanded := entry.IsDir && m.expanded[entry.FullPath]
		m.rows = append(m.rows, Row{Entry: entry, Depth: depth, Expanded: expanded})
		if expanded {
			m.appendRows(entry.FullPath, depth+1)
		}
	}
}

func isBelow(path, root string) bool {
	if len(path) <= len(root) {
		return false
	}
	if path[:len(root)] != root {
		return false
	}
	return root == string(filepath.Separator) || path[len(root)] == filepath.Separator
}
