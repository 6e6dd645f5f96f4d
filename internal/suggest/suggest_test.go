package suggest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/kk-code-lab/dirnav/internal/fs"
	"github.com/kk-code-lab/dirnav/internal/listing"
)

// setHome points the home token at dir for the duration of the test.
func setHome(t *testing.T, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("HOME does not drive os.UserHomeDir on windows")
	}
	t.Setenv("HOME", dir)
}

func fakeCache(t *testing.T, children map[string][]fs.Entry) *listing.Cache {
	t.Helper()
	cache := listing.New(listing.DefaultCapacity)
	cache.SetReader(func(dir string, limit int) ([]fs.Entry, error) {
		entries, ok := children[dir]
		if !ok {
			return nil, os.ErrNotExist
		}
		if len(entries) > limit {
			entries = entries[:limit]
		}
		return entries, nil
	})
	return cache
}

func dirEntry(parent, name string) fs.Entry {
	return fs.Entry{Name: name, FullPath: filepath.Join(parent, name), IsDir: true}
}

func fileEntry(parent, name string) fs.Entry {
	return fs.Entry{Name: name, FullPath: filepath.Join(parent, name)}
}

func TestSuggestPrefersShortestMatch(t *testing.T) {
	cache := fakeCache(t, map[string][]fs.Entry{
		"/dir": {
			dirEntry("/dir", "abcx"),
			dirEntry("/dir", "abcde"),
			dirEntry("/dir", "ab"),
		},
	})
	engine := New(cache)

	got, ok := engine.Suggest("/dir/ab")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got != "/dir/ab/" {
		t.Fatalf("expected shortest match /dir/ab/, got %q", got)
	}
}

func TestSuggestTieBreaksOnIterationOrder(t *testing.T) {
	cache := fakeCache(t, map[string][]fs.Entry{
		"/dir": {
			dirEntry("/dir", "abc1"),
			dirEntry("/dir", "abc2"),
		},
	})
	engine := New(cache)

	got, ok := engine.Suggest("/dir/ab")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got != "/dir/abc1/" {
		t.Fatalf("expected first-seen candidate, got %q", got)
	}
}

func TestSuggestIsCaseInsensitive(t *testing.T) {
	cache := fakeCache(t, map[string][]fs.Entry{
		"/dir": {dirEntry("/dir", "Documents")},
	})
	engine := New(cache)

	got, ok := engine.Suggest("/dir/doc")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got != "/dir/Documents/" {
		t.Fatalf("expected case-insensitive match, got %q", got)
	}
}

func TestSuggestSkipsFiles(t *testing.T) {
	cache := fakeCache(t, map[string][]fs.Entry{
		"/dir": {
			fileEntry("/dir", "abfile"),
			dirEntry("/dir", "abdir"),
		},
	})
	engine := New(cache)

	got, ok := engine.Suggest("/dir/ab")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got != "/dir/abdir/" {
		t.Fatalf("expected directory candidate only, got %q", got)
	}
}

func TestSuggestNoMatchYieldsNothing(t *testing.T) {
	cache := fakeCache(t, map[string][]fs.Entry{
		"/dir": {dirEntry("/dir", "other")},
	})
	engine := New(cache)

	if got, ok := engine.Suggest("/dir/zz"); ok {
		t.Fatalf("expected no suggestion, got %q", got)
	}
}

func TestSuggestEmptyChildSetYieldsNothing(t *testing.T) {
	cache := fakeCache(t, map[string][]fs.Entry{
		"/dir": {},
	})
	engine := New(cache)

	if got, ok := engine.Suggest("/dir/ab"); ok {
		t.Fatalf("expected no suggestion, got %q", got)
	}
}

func TestSuggestMissingParentYieldsNothing(t *testing.T) {
	cache := fakeCache(t, map[string][]fs.Entry{})
	engine := New(cache)

	if got, ok := engine.Suggest("/nowhere/ab"); ok {
		t.Fatalf("expected no suggestion for missing parent, got %q", got)
	}
}

func TestSuggestTrailingSeparatorOffersAllChildren(t *testing.T) {
	cache := fakeCache(t, map[string][]fs.Entry{
		"/dir": {
			dirEntry("/dir", "longer-name"),
			dirEntry("/dir", "xy"),
		},
	})
	engine := New(cache)

	got, ok := engine.Suggest("/dir/")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got != "/dir/xy/" {
		t.Fatalf("expected shortest child, got %q", got)
	}
}

func TestSuggestRewritesHomeToken(t *testing.T) {
	home := t.TempDir()
	setHome(t, home)
	if err := os.Mkdir(filepath.Join(home, "previews"), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	engine := New(listing.New(listing.DefaultCapacity))

	got, ok := engine.Suggest("~/pre")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got != "~/previews/" {
		t.Fatalf("expected home-relative suggestion, got %q", got)
	}
}

func TestSuggestRewritesSymlinkedHome(t *testing.T) {
	real := t.TempDir()
	if err := os.Mkdir(filepath.Join(real, "projects"), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	link := filepath.Join(t.TempDir(), "homelink")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlink unsupported: %v", err)
	}
	setHome(t, link)
	engine := New(listing.New(listing.DefaultCapacity))

	// Candidates carry the resolved home path; the rewrite must still
	// collapse them back to the token the user typed.
	got, ok := engine.Suggest("~/pro")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got != "~/projects/" {
		t.Fatalf("expected home-relative suggestion, got %q", got)
	}
}

func TestSuggestBareHomeTokenOffersAllChildren(t *testing.T) {
	home := t.TempDir()
	setHome(t, home)
	for _, name := range []string{"aa", "longer"} {
		if err := os.Mkdir(filepath.Join(home, name), 0o755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
	}
	engine := New(listing.New(listing.DefaultCapacity))

	got, ok := engine.Suggest("~")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got != "~/aa/" {
		t.Fatalf("expected shortest home child, got %q", got)
	}
}

func TestSuggestRealDirectories(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"alpha", "alp"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
	}
	engine := New(listing.New(listing.DefaultCapacity))

	got, ok := engine.Suggest(filepath.Join(root, "al"))
	if !ok {
		t.Fatal("expected a suggestion")
	}
	resolved, err := fs.Resolve(filepath.Join(root, "alp"))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != resolved+string(filepath.Separator) {
		t.Fatalf("expected %q, got %q", resolved+string(filepath.Separator), got)
	}
}
