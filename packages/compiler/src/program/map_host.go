package program

import (
	"fmt"
	"path"
	"strings"
)

// MapHost is an in-memory Host backed by a fixed map of pre-built source
// files, keyed by absolute path. Module specifiers resolve relative to the
// importing file, with a `.js` extension added when missing. Used by tests
// and by hosts that parse eagerly up front.
type MapHost struct {
	Files map[string]*SourceFile
}

// NewMapHost creates a new MapHost
func NewMapHost(files map[string]*SourceFile) *MapHost {
	return &MapHost{Files: files}
}

// ParseFile implements Host
func (h *MapHost) ParseFile(filePath string) (*SourceFile, error) {
	if file, ok := h.Files[NormalizePath(filePath)]; ok {
		return file, nil
	}
	return nil, fmt.Errorf("file not found: %s", filePath)
}

// ResolveModuleSpecifier implements Host
func (h *MapHost) ResolveModuleSpecifier(fromFile, specifier string) (string, bool) {
	if !strings.HasPrefix(specifier, ".") && !strings.HasPrefix(specifier, "/") {
		// Bare specifiers (package imports) are not resolvable in-memory.
		return "", false
	}
	resolved := specifier
	if strings.HasPrefix(specifier, ".") {
		resolved = path.Join(path.Dir(NormalizePath(fromFile)), specifier)
	}
	if _, ok := h.Files[resolved]; ok {
		return resolved, true
	}
	if _, ok := h.Files[resolved+".js"]; ok {
		return resolved + ".js", true
	}
	return "", false
}
