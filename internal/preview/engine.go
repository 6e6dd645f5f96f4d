// Package preview builds size-bounded text previews of files on worker
// goroutines, with exclusive-execution semantics: each request supersedes
// the one before it, and a superseded job's result is never delivered.
package preview

import (
	"os"
	"sync"

	"github.com/kk-code-lab/dirnav/internal/fs"
)

// ReadCap bounds how much of a file is read for preview.
const ReadCap = 32 * 1024

// Kind classifies a preview outcome.
type Kind int

const (
	// KindText carries decoded content plus a language classification.
	KindText Kind = iota
	// KindNone means the path is not a regular file; nothing to preview.
	KindNone
	// KindUnavailable means the file could not be read or decoded as
	// text. Non-fatal; rendered as a placeholder.
	KindUnavailable
)

// Result is the outcome of one preview job.
type Result struct {
	Path     string
	Kind     Kind
	Text     string
	Language string
}

// ReadFunc reads up to limit leading bytes of path.
type ReadFunc func(path string, limit int64) ([]byte, error)

// Engine runs at most one live preview job. Starting a new job bumps the
// generation; completion handlers compare their captured generation against
// the current one before delivering, so a stale job can finish computing
// but can never reach the deliver callback.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	deliver    func(Result)
	read       ReadFunc
}

// New returns an engine that hands results to deliver from worker
// goroutines. deliver must not block; hand off to a channel with a
// goroutine fallback the way the application loop's dispatch does.
func New(deliver func(Result)) *Engine {
	return &Engine{
		deliver: deliver,
		read:    fs.ReadHead,
	}
}

// SetReader replaces the head reader. Intended for tests.
func (e *Engine) SetReader(read ReadFunc) {
	e.mu.Lock()
	e.read = read
	e.mu.Unlock()
}

// Preview starts an asynchronous preview of path, superseding any
// outstanding job. Safe to call from the interactive loop; all I/O happens
// on the worker goroutine.
func (e *Engine) Preview(path string) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	read := e.read
	e.mu.Unlock()

	go e.run(gen, path, read)
}

func (e *Engine) run(gen uint64, path string, read ReadFunc) {
	result, ok := e.build(gen, path, read)
	if !ok {
		return
	}

	e.mu.Lock()
	current := e.generation
	e.mu.Unlock()
	if gen != current {
		return
	}
	e.deliver(result)
}

func (e *Engine) superseded(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return gen != e.generation
}

// build computes a preview, aborting (ok=false) when the job has been
// superseded. Read and decode failures fold into KindUnavailable.
func (e *Engine) build(gen uint64, path string, read ReadFunc) (Result, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Result{Path: path, Kind: KindNone}, true
	}

	content, err := read(path, ReadCap)
	if err != nil {
		return Result{Path: path, Kind: KindUnavailable}, true
	}

	if e.superseded(gen) {
		return Result{}, false
	}

	text, ok := fs.DecodeText(path, content)
	if !ok {
		return Result{Path: path, Kind: KindUnavailable}, true
	}

	return Result{
		Path:     path,
		Kind:     KindText,
		Text:     text,
		Language: Classify(path, text),
	}, true
}
