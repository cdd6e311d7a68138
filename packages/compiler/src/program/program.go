package program

import (
	"github.com/arcmantle/lit-jsx/packages/compiler/src/ast"
)

// SourceFile is the symbol-table view of one parsed module: the bindings
// declared at each scope plus the file's import and export declarations.
// Produced by the external parser collaborator, consumed by the resolver.
type SourceFile struct {
	Path    string
	Scope   *Scope
	Imports []*ImportDecl
	Exports []*ExportDecl
}

// NewSourceFile creates a new SourceFile with an empty top-level scope
func NewSourceFile(path string) *SourceFile {
	return &SourceFile{
		Path:  path,
		Scope: NewScope(nil),
	}
}

// Scope is one link of a lexical scope chain
type Scope struct {
	parent   *Scope
	bindings map[string]Binding
}

// NewScope creates a new Scope with the given parent
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent:   parent,
		bindings: make(map[string]Binding),
	}
}

// Declare records a binding in this scope
func (s *Scope) Declare(name string, binding Binding) {
	s.bindings[name] = binding
}

// Lookup finds a binding by name, walking parent scopes
func (s *Scope) Lookup(name string) (Binding, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if binding, ok := scope.bindings[name]; ok {
			return binding, true
		}
	}
	return nil, false
}

// Binding is the closed set of declaration shapes the resolver understands.
// Anything else a host parser encounters should be surfaced as
// UnknownBinding.
type Binding interface {
	isBinding()
}

func (*ClassBinding) isBinding()   {}
func (*VarBinding) isBinding()     {}
func (*FuncBinding) isBinding()    {}
func (*ImportBinding) isBinding()  {}
func (*UnknownBinding) isBinding() {}

// ClassBinding represents a class declaration or class expression
type ClassBinding struct {
	Name string
}

// VarBinding represents a variable declarator with an initializer
type VarBinding struct {
	Name string
	Init ast.Expression
}

// FuncBinding represents a function declaration
type FuncBinding struct {
	Name string
}

// ImportKind distinguishes the three import specifier forms
type ImportKind int

const (
	ImportNamed ImportKind = iota
	ImportDefault
	ImportNamespace
)

// ImportBinding represents an imported symbol
type ImportBinding struct {
	LocalName    string
	ImportedName string
	Specifier    string
	Kind         ImportKind
}

// UnknownBinding represents a declaration shape the resolver gives up on
type UnknownBinding struct {
	Name string
}

// ImportDecl represents one import declaration
type ImportDecl struct {
	Specifier string
	Bindings  []*ImportBinding
}

// ExportDecl represents one export declaration. A re-export carries the
// source module in From; a wildcard re-export (`export * from`) has
// Wildcard set and no names.
type ExportDecl struct {
	// LocalName is the name as declared in the source module; ExportedName
	// is the alias it is exported under. They match unless renamed.
	LocalName    string
	ExportedName string
	From         string
	Wildcard     bool
}
