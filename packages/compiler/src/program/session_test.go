package program

import (
	"testing"
)

// countingHost wraps a MapHost and counts ParseFile calls
type countingHost struct {
	*MapHost
	parses int
}

func (h *countingHost) ParseFile(path string) (*SourceFile, error) {
	h.parses++
	return h.MapHost.ParseFile(path)
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`C:\src\app.js`, "C:/src/app.js"},
		{"/src/app.js", "/src/app.js"},
		{`\\share\mod.js`, "//share/mod.js"},
	}
	for _, tc := range cases {
		if got := NormalizePath(tc.in); got != tc.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSessionLoadFileCaches(t *testing.T) {
	host := &countingHost{MapHost: NewMapHost(map[string]*SourceFile{
		"/src/a.js": NewSourceFile("/src/a.js"),
	})}
	session := NewSession(host)

	first, err := session.LoadFile("/src/a.js")
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	second, err := session.LoadFile("/src/a.js")
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if first != second {
		t.Error("LoadFile() should return the cached file")
	}
	if host.parses != 1 {
		t.Errorf("ParseFile called %d times, want 1", host.parses)
	}
}

func TestSessionLoadFileNormalizesKeys(t *testing.T) {
	host := &countingHost{MapHost: NewMapHost(map[string]*SourceFile{
		"/src/a.js": NewSourceFile("/src/a.js"),
	})}
	session := NewSession(host)

	if _, err := session.LoadFile("/src/a.js"); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if _, err := session.LoadFile(`\src\a.js`); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if host.parses != 1 {
		t.Errorf("ParseFile called %d times, want 1: backslash paths must share cache keys", host.parses)
	}
}

func TestSessionInvalidate(t *testing.T) {
	host := &countingHost{MapHost: NewMapHost(map[string]*SourceFile{
		"/src/a.js": NewSourceFile("/src/a.js"),
	})}
	session := NewSession(host)

	if _, err := session.LoadFile("/src/a.js"); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	session.StoreResolution("/src/a.js", "Thing", ResolutionClass)

	session.Invalidate("/src/a.js")

	if _, ok := session.CachedResolution("/src/a.js", "Thing"); ok {
		t.Error("Invalidate() should evict resolution entries")
	}
	if _, err := session.LoadFile("/src/a.js"); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if host.parses != 2 {
		t.Errorf("ParseFile called %d times after invalidation, want 2", host.parses)
	}
}

func TestSessionResolutionCache(t *testing.T) {
	session := NewSession(NewMapHost(nil))

	if _, ok := session.CachedResolution("/src/a.js", "X"); ok {
		t.Error("CachedResolution() on empty cache should miss")
	}
	session.StoreResolution("/src/a.js", "X", ResolutionStringLiteral)
	res, ok := session.CachedResolution("/src/a.js", "X")
	if !ok || res != ResolutionStringLiteral {
		t.Errorf("CachedResolution() = %v, %v; want StringLiteral, true", res, ok)
	}

	session.InvalidateAll()
	if _, ok := session.CachedResolution("/src/a.js", "X"); ok {
		t.Error("InvalidateAll() should drop the resolution cache")
	}
}
