package program

import (
	"strings"
	"sync"
)

// Host is the external parsing and module-resolution collaborator. ParseFile
// loads and parses one module into its symbol-table view;
// ResolveModuleSpecifier maps an import specifier, relative to the importing
// file, to an absolute path (bundler-style resolution).
type Host interface {
	ParseFile(path string) (*SourceFile, error)
	ResolveModuleSpecifier(fromFile, specifier string) (string, bool)
}

// TypeKind classifies what the optional type checker reports for an
// identifier.
type TypeKind int

const (
	TypeUnknown TypeKind = iota
	TypeClass
	TypeStringLiteralUnion
	TypeFunction
)

// TypeChecker is the optional type-checking collaborator. The classifier
// consults it only when binding resolution is inconclusive and type-assisted
// inference is enabled; failures are treated as inconclusive, never as
// errors.
type TypeChecker interface {
	TypeOfIdentifier(name string, file string) (TypeKind, error)
}

// Resolution is the outcome of one binding-resolver walk
type Resolution int

const (
	ResolutionUnknown Resolution = iota
	ResolutionClass
	ResolutionStringLiteral
)

// String returns a string representation of the resolution
func (r Resolution) String() string {
	switch r {
	case ResolutionClass:
		return "Class"
	case ResolutionStringLiteral:
		return "StringLiteral"
	default:
		return "Unknown"
	}
}

// Session owns the two process-wide caches of one build or watch session:
// parsed files and resolved classification outcomes. Both are keyed by
// normalized absolute path and protected by a mutex so parallel per-file
// compilations may share one session. The host must call Invalidate for a
// file whose content changed before recompiling anything that depends on
// it; stale entries are a correctness bug, not just a performance one.
type Session struct {
	host Host

	mu       sync.Mutex
	programs map[string]*SourceFile
	resolved map[string]map[string]Resolution
}

// NewSession creates a new Session around a host
func NewSession(host Host) *Session {
	return &Session{
		host:     host,
		programs: make(map[string]*SourceFile),
		resolved: make(map[string]map[string]Resolution),
	}
}

// Host returns the session's host collaborator
func (s *Session) Host() Host {
	return s.host
}

// NormalizePath normalizes a module path for cache keying: backslashes
// become forward slashes so Windows and POSIX hosts agree on keys.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// LoadFile returns the parsed view of a file, parsing through the host on
// first use and serving the ProgramCache afterwards.
func (s *Session) LoadFile(path string) (*SourceFile, error) {
	key := NormalizePath(path)

	s.mu.Lock()
	if file, ok := s.programs[key]; ok {
		s.mu.Unlock()
		return file, nil
	}
	s.mu.Unlock()

	// Parse outside the lock; a concurrent duplicate parse is wasteful but
	// harmless, and the first completed result wins.
	file, err := s.host.ParseFile(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.programs[key]; ok {
		return cached, nil
	}
	s.programs[key] = file
	return file, nil
}

// CachedResolution returns the memoized resolution outcome for a
// (file, identifier) pair.
func (s *Session) CachedResolution(path, name string) (Resolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if byName, ok := s.resolved[NormalizePath(path)]; ok {
		if res, ok := byName[name]; ok {
			return res, true
		}
	}
	return ResolutionUnknown, false
}

// StoreResolution memoizes a resolution outcome for a (file, identifier)
// pair.
func (s *Session) StoreResolution(path, name string, res Resolution) {
	key := NormalizePath(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	byName, ok := s.resolved[key]
	if !ok {
		byName = make(map[string]Resolution)
		s.resolved[key] = byName
	}
	byName[name] = res
}

// Invalidate evicts one file from both caches. Resolutions cached for files
// that import from this one are the host's responsibility: it must
// invalidate every dependent it is about to recompile, or use
// InvalidateAll.
func (s *Session) Invalidate(path string) {
	key := NormalizePath(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.programs, key)
	delete(s.resolved, key)
}

// InvalidateAll drops both caches entirely
func (s *Session) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.programs = make(map[string]*SourceFile)
	s.resolved = make(map[string]map[string]Resolution)
}
