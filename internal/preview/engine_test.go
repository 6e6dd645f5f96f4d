package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kk-code-lab/dirnav/internal/fs"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

func collect(t *testing.T, results <-chan Result) Result {
	t.Helper()
	select {
	case res := <-results:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for preview result")
		return Result{}
	}
}

func expectSilence(t *testing.T, results <-chan Result) {
	t.Helper()
	select {
	case res := <-results:
		t.Fatalf("unexpected delivery for %q", res.Path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestPreviewDeliversTextWithClassification(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")

	results := make(chan Result, 1)
	engine := New(func(res Result) { results <- res })
	engine.Preview(path)

	res := collect(t, results)
	if res.Kind != KindText {
		t.Fatalf("expected text preview, got kind %d", res.Kind)
	}
	if !strings.Contains(res.Text, "package main") {
		t.Fatalf("unexpected content %q", res.Text)
	}
	if res.Language != "Go" {
		t.Fatalf("expected Go classification, got %q", res.Language)
	}
}

func TestPreviewDirectoryHasNoPreview(t *testing.T) {
	results := make(chan Result, 1)
	engine := New(func(res Result) { results <- res })
	engine.Preview(t.TempDir())

	if res := collect(t, results); res.Kind != KindNone {
		t.Fatalf("expected no-preview for directory, got kind %d", res.Kind)
	}
}

func TestPreviewMissingFileHasNoPreview(t *testing.T) {
	results := make(chan Result, 1)
	engine := New(func(res Result) { results <- res })
	engine.Preview(filepath.Join(t.TempDir(), "gone"))

	if res := collect(t, results); res.Kind != KindNone {
		t.Fatalf("expected no-preview for missing path, got kind %d", res.Kind)
	}
}

func TestPreviewReadFailureIsUnavailable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "file.txt", "content")

	results := make(chan Result, 1)
	engine := New(func(res Result) { results <- res })
	engine.SetReader(func(string, int64) ([]byte, error) {
		return nil, os.ErrPermission
	})
	engine.Preview(path)

	if res := collect(t, results); res.Kind != KindUnavailable {
		t.Fatalf("expected unavailable on read failure, got kind %d", res.Kind)
	}
}

func TestPreviewBinaryContentIsUnavailable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "blob.dat", "\x00\x01\x02\x03")

	results := make(chan Result, 1)
	engine := New(func(res Result) { results <- res })
	engine.Preview(path)

	if res := collect(t, results); res.Kind != KindUnavailable {
		t.Fatalf("expected unavailable for binary content, got kind %d", res.Kind)
	}
}

func TestPreviewSupersededJobNeverDelivers(t *testing.T) {
	dir := t.TempDir()
	slow := writeFile(t, dir, "slow.txt", "slow content")
	fast := writeFile(t, dir, "fast.txt", "fast content")

	release := make(chan struct{})
	results := make(chan Result, 2)
	engine := New(func(res Result) { results <- res })
	engine.SetReader(func(path string, limit int64) ([]byte, error) {
		if path == slow {
			<-release
		}
		return fs.ReadHead(path, limit)
	})

	engine.Preview(slow)
	engine.Preview(fast)

	res := collect(t, results)
	if res.Path != fast {
		t.Fatalf("expected %q to be delivered, got %q", fast, res.Path)
	}

	// Let the superseded job finish computing; its result must be dropped.
	close(release)
	expectSilence(t, results)
}

func TestPreviewCapsReadSize(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.txt", strings.Repeat("x", ReadCap+4096))

	results := make(chan Result, 1)
	engine := New(func(res Result) { results <- res })
	engine.Preview(path)

	res := collect(t, results)
	if res.Kind != KindText {
		t.Fatalf("expected text preview, got kind %d", res.Kind)
	}
	if len(res.Text) != ReadCap {
		t.Fatalf("expected %d bytes, got %d", ReadCap, len(res.Text))
	}
}
