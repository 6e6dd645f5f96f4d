package nav

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kk-code-lab/dirnav/internal/listing"
)

type eventSink struct {
	ch chan Event
}

func newEventSink() *eventSink {
	return &eventSink{ch: make(chan Event, 16)}
}

func (s *eventSink) emit(ev Event) {
	s.ch <- ev
}

func (s *eventSink) next(t *testing.T) Event {
	t.Helper()
	select {
	case ev := <-s.ch:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

// nextOf drains events until one of type T arrives.
func nextOf[T Event](t *testing.T, s *eventSink) T {
	t.Helper()
	for {
		ev := s.next(t)
		if typed, ok := ev.(T); ok {
			return typed
		}
	}
}

func newController(t *testing.T, root string) (*Controller, *eventSink) {
	t.Helper()
	sink := newEventSink()
	ctrl, err := New(root, listing.New(listing.DefaultCapacity), sink.emit)
	if err != nil {
		t.Fatalf("controller init failed: %v", err)
	}
	return ctrl, sink
}

func TestNewRejectsInvalidRoot(t *testing.T) {
	sink := newEventSink()
	if _, err := New(filepath.Join(t.TempDir(), "missing"), listing.New(1), sink.emit); err == nil {
		t.Fatal("expected startup error for missing root")
	}

	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := New(file, listing.New(1), sink.emit); err == nil {
		t.Fatal("expected startup error for non-directory root")
	}
}

func TestRequestNavigateAdoptsDirectory(t *testing.T) {
	root := t.TempDir()
	target := t.TempDir()
	ctrl, sink := newController(t, root)

	ctrl.RequestNavigate(target)

	ev := nextOf[RootChanged](t, sink)
	if ev.Path != ctrl.Root() {
		t.Fatalf("event path %q does not match root %q", ev.Path, ctrl.Root())
	}
	if ctrl.Root() == root {
		t.Fatal("root was not updated")
	}
}

func TestRequestNavigateRejectsRegularFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	ctrl, sink := newController(t, root)
	before := ctrl.Root()

	ctrl.RequestNavigate(file)

	ev := nextOf[NavigationRejected](t, sink)
	if ev.Path != file {
		t.Fatalf("unexpected rejected path %q", ev.Path)
	}
	if ev.Reason != "not a directory" {
		t.Fatalf("unexpected reason %q", ev.Reason)
	}
	if ctrl.Root() != before {
		t.Fatal("root changed on rejected navigation")
	}
}

func TestHighlightReportsInfoAndPreview(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "hello.txt")
	if err := os.WriteFile(file, []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	ctrl, sink := newController(t, root)

	ctrl.Highlight(file)

	info := nextOf[HighlightedInfo](t, sink)
	if info.Err != nil {
		t.Fatalf("unexpected stat error: %v", info.Err)
	}
	if info.Meta.Size != 6 {
		t.Fatalf("unexpected size %d", info.Meta.Size)
	}
	if ctrl.Highlighted() != file {
		t.Fatalf("highlighted not recorded, got %q", ctrl.Highlighted())
	}

	ready := nextOf[PreviewReady](t, sink)
	if ready.Path != file || ready.Text != "hello\n" {
		t.Fatalf("unexpected preview %+v", ready)
	}
}

func TestHighlightDirectoryPreviewUnavailable(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	ctrl, sink := newController(t, root)

	ctrl.Highlight(sub)

	ev := nextOf[PreviewUnavailable](t, sink)
	if ev.Path != sub {
		t.Fatalf("unexpected path %q", ev.Path)
	}
}

func TestReloadInvalidatesAndRefreshes(t *testing.T) {
	root := t.TempDir()
	sink := newEventSink()
	cache := listing.New(listing.DefaultCapacity)
	ctrl, err := New(root, cache, sink.emit)
	if err != nil {
		t.Fatalf("controller init failed: %v", err)
	}

	if _, err := cache.List(ctrl.Root(), 100); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected one cached key, got %d", cache.Len())
	}

	ctrl.Reload("")

	ev := nextOf[TreeRefresh](t, sink)
	if ev.Path != ctrl.Root() {
		t.Fatalf("expected refresh of root, got %q", ev.Path)
	}
	if cache.Len() != 0 {
		t.Fatalf("expected cache emptied, got %d keys", cache.Len())
	}
}

func TestTogglePreview(t *testing.T) {
	ctrl, _ := newController(t, t.TempDir())

	if ctrl.PreviewVisible() {
		t.Fatal("preview should start hidden")
	}
	if !ctrl.TogglePreview() || !ctrl.PreviewVisible() {
		t.Fatal("expected preview visible after toggle")
	}
	if ctrl.TogglePreview() || ctrl.PreviewVisible() {
		t.Fatal("expected preview hidden after second toggle")
	}
}
