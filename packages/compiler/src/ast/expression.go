package ast

import (
	"github.com/arcmantle/lit-jsx/packages/compiler/src/util"
)

// Expression is the closed set of host-language expression shapes the
// compiler inspects. Anything the transformation never needs to look inside
// is carried as a RawExpr and reproduced verbatim on output.
type Expression interface {
	Node
	isExpression()
}

func (*Ident) isExpression()       {}
func (*StringLit) isExpression()   {}
func (*NumberLit) isExpression()   {}
func (*BoolLit) isExpression()     {}
func (*TemplateLit) isExpression() {}
func (*CallExpr) isExpression()    {}
func (*MemberExpr) isExpression()  {}
func (*ArrayLit) isExpression()    {}
func (*ObjectLit) isExpression()   {}
func (*ArrowFn) isExpression()     {}
func (*ClassExpr) isExpression()   {}
func (*JSXExpr) isExpression()     {}
func (*RawExpr) isExpression()     {}

// exprBase carries the span shared by all expression nodes
type exprBase struct {
	sourceSpan *util.ParseSourceSpan
}

// SourceSpan returns the source span
func (e *exprBase) SourceSpan() *util.ParseSourceSpan {
	return e.sourceSpan
}

// Ident represents an identifier reference
type Ident struct {
	exprBase
	Name string
}

// NewIdent creates a new Ident
func NewIdent(name string, sourceSpan *util.ParseSourceSpan) *Ident {
	return &Ident{exprBase{sourceSpan}, name}
}

// StringLit represents a string literal
type StringLit struct {
	exprBase
	Value string
}

// NewStringLit creates a new StringLit
func NewStringLit(value string, sourceSpan *util.ParseSourceSpan) *StringLit {
	return &StringLit{exprBase{sourceSpan}, value}
}

// NumberLit represents a numeric literal, carried as source text
type NumberLit struct {
	exprBase
	Text string
}

// NewNumberLit creates a new NumberLit
func NewNumberLit(text string, sourceSpan *util.ParseSourceSpan) *NumberLit {
	return &NumberLit{exprBase{sourceSpan}, text}
}

// BoolLit represents a boolean literal
type BoolLit struct {
	exprBase
	Value bool
}

// NewBoolLit creates a new BoolLit
func NewBoolLit(value bool, sourceSpan *util.ParseSourceSpan) *BoolLit {
	return &BoolLit{exprBase{sourceSpan}, value}
}

// TemplateLit represents a template literal. Quasis always has exactly one
// more entry than Exprs.
type TemplateLit struct {
	exprBase
	Quasis []string
	Exprs  []Expression
}

// NewTemplateLit creates a new TemplateLit
func NewTemplateLit(quasis []string, exprs []Expression, sourceSpan *util.ParseSourceSpan) *TemplateLit {
	return &TemplateLit{exprBase{sourceSpan}, quasis, exprs}
}

// IsStatic reports whether the template literal has zero interpolations
func (t *TemplateLit) IsStatic() bool {
	return len(t.Exprs) == 0
}

// StaticValue returns the literal text of a zero-interpolation template
func (t *TemplateLit) StaticValue() string {
	if len(t.Quasis) == 1 {
		return t.Quasis[0]
	}
	return ""
}

// CallExpr represents a call expression
type CallExpr struct {
	exprBase
	Callee Expression
	Args   []Expression
}

// NewCallExpr creates a new CallExpr
func NewCallExpr(callee Expression, args []Expression, sourceSpan *util.ParseSourceSpan) *CallExpr {
	return &CallExpr{exprBase{sourceSpan}, callee, args}
}

// MemberExpr represents a non-computed member access, i.e. `object.property`
type MemberExpr struct {
	exprBase
	Object   Expression
	Property string
}

// NewMemberExpr creates a new MemberExpr
func NewMemberExpr(object Expression, property string, sourceSpan *util.ParseSourceSpan) *MemberExpr {
	return &MemberExpr{exprBase{sourceSpan}, object, property}
}

// ArrayLit represents an array literal
type ArrayLit struct {
	exprBase
	Elements []Expression
}

// NewArrayLit creates a new ArrayLit
func NewArrayLit(elements []Expression, sourceSpan *util.ParseSourceSpan) *ArrayLit {
	return &ArrayLit{exprBase{sourceSpan}, elements}
}

// ObjectLit represents an object literal
type ObjectLit struct {
	exprBase
	Properties []*Property
}

// NewObjectLit creates a new ObjectLit
func NewObjectLit(properties []*Property, sourceSpan *util.ParseSourceSpan) *ObjectLit {
	return &ObjectLit{exprBase{sourceSpan}, properties}
}

// Property represents one entry of an object literal. Spread entries have an
// empty Key.
type Property struct {
	Key    string
	Value  Expression
	Spread bool
}

// NewProperty creates a new key/value Property
func NewProperty(key string, value Expression) *Property {
	return &Property{Key: key, Value: value}
}

// NewSpreadProperty creates a new spread Property
func NewSpreadProperty(value Expression) *Property {
	return &Property{Value: value, Spread: true}
}

// ArrowFn represents an arrow function. Only the body kind matters to the
// compiler: hoisted declarations can only be inserted into block bodies.
type ArrowFn struct {
	exprBase
	HasBlockBody bool
	Text         string
}

// NewArrowFn creates a new ArrowFn
func NewArrowFn(hasBlockBody bool, text string, sourceSpan *util.ParseSourceSpan) *ArrowFn {
	return &ArrowFn{exprBase{sourceSpan}, hasBlockBody, text}
}

// ClassExpr represents a class expression. Name is empty for anonymous
// classes.
type ClassExpr struct {
	exprBase
	Name string
}

// NewClassExpr creates a new ClassExpr
func NewClassExpr(name string, sourceSpan *util.ParseSourceSpan) *ClassExpr {
	return &ClassExpr{exprBase{sourceSpan}, name}
}

// JSXExpr represents an element tree used in expression position
type JSXExpr struct {
	exprBase
	Element *Element
}

// NewJSXExpr creates a new JSXExpr
func NewJSXExpr(element *Element, sourceSpan *util.ParseSourceSpan) *JSXExpr {
	return &JSXExpr{exprBase{sourceSpan}, element}
}

// RawExpr represents an opaque host expression reproduced verbatim
type RawExpr struct {
	exprBase
	Text string
}

// NewRawExpr creates a new RawExpr
func NewRawExpr(text string, sourceSpan *util.ParseSourceSpan) *RawExpr {
	return &RawExpr{exprBase{sourceSpan}, text}
}
