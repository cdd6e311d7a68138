// Package binding classifies JSX-style attributes into the closed set of
// binding kinds the template builders emit.
package binding

import (
	"github.com/arcmantle/lit-jsx/packages/compiler/src/ast"
)

// Kind is the closed set of attribute binding kinds. Exactly one kind is
// produced per attribute, except directives over array literals which
// expand to one Directive per element, and the static marker which
// contributes nothing.
type Kind interface {
	isBindingKind()
}

func (*PlainAttribute) isBindingKind()   {}
func (*Property) isBindingKind()         {}
func (*BooleanAttribute) isBindingKind() {}
func (*Event) isBindingKind()            {}
func (*Directive) isBindingKind()        {}
func (*Ref) isBindingKind()              {}
func (*ClassMap) isBindingKind()         {}
func (*StyleMap) isBindingKind()         {}
func (*Spread) isBindingKind()           {}
func (*StaticText) isBindingKind()       {}
func (*BooleanShorthand) isBindingKind() {}

// PlainAttribute represents a dynamically bound attribute, emitted as
// `name=`.
type PlainAttribute struct {
	Name string
	Expr ast.Expression
}

// Property represents a DOM property binding, emitted as `.name=`
type Property struct {
	Name string
	Expr ast.Expression
}

// BooleanAttribute represents a boolean attribute binding, emitted as
// `?name=`.
type BooleanAttribute struct {
	Name string
	Expr ast.Expression
}

// Event represents an event listener binding, emitted as `@name=`
type Event struct {
	Name string
	Expr ast.Expression
}

// Directive represents one element directive applied via a bare
// interpolation.
type Directive struct {
	Expr ast.Expression
}

// Ref represents an element reference binding
type Ref struct {
	Expr ast.Expression
}

// ClassMap represents a class-map binding
type ClassMap struct {
	Expr ast.Expression
}

// StyleMap represents a style-map binding
type StyleMap struct {
	Expr ast.Expression
}

// Spread represents a spread attribute
type Spread struct {
	Expr ast.Expression
}

// StaticText represents a literal attribute, emitted verbatim as
// `name="value"`.
type StaticText struct {
	Name  string
	Value string
}

// BooleanShorthand represents a bare attribute name with no value
type BooleanShorthand struct {
	Name string
}
