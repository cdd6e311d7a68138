package ast

import (
	"github.com/arcmantle/lit-jsx/packages/compiler/src/util"
)

// Node is implemented by every node of the source model
type Node interface {
	SourceSpan() *util.ParseSourceSpan
}

// Child is the closed set of nodes that may appear between an element's
// opening and closing tags: nested elements, text runs and expression
// containers.
type Child interface {
	Node
	isChild()
}

func (*Element) isChild()         {}
func (*Text) isChild()            {}
func (*ExpressionChild) isChild() {}

// Element represents one tag occurrence in the source
type Element struct {
	Name       string
	Attributes []*Attribute
	Children   []Child
	IsFragment bool
	sourceSpan *util.ParseSourceSpan
}

// NewElement creates a new Element
func NewElement(name string, attributes []*Attribute, children []Child, sourceSpan *util.ParseSourceSpan) *Element {
	return &Element{
		Name:       name,
		Attributes: attributes,
		Children:   children,
		sourceSpan: sourceSpan,
	}
}

// NewFragment creates a new fragment Element (no tag of its own)
func NewFragment(children []Child, sourceSpan *util.ParseSourceSpan) *Element {
	return &Element{
		IsFragment: true,
		Children:   children,
		sourceSpan: sourceSpan,
	}
}

// SourceSpan returns the source span
func (e *Element) SourceSpan() *util.ParseSourceSpan {
	return e.sourceSpan
}

// Text represents a run of literal text between tags
type Text struct {
	Value      string
	sourceSpan *util.ParseSourceSpan
}

// NewText creates a new Text node
func NewText(value string, sourceSpan *util.ParseSourceSpan) *Text {
	return &Text{
		Value:      value,
		sourceSpan: sourceSpan,
	}
}

// SourceSpan returns the source span
func (t *Text) SourceSpan() *util.ParseSourceSpan {
	return t.sourceSpan
}

// ExpressionChild represents an expression container child, i.e. `{expr}`
// between tags.
type ExpressionChild struct {
	Expr       Expression
	sourceSpan *util.ParseSourceSpan
}

// NewExpressionChild creates a new ExpressionChild node
func NewExpressionChild(expr Expression, sourceSpan *util.ParseSourceSpan) *ExpressionChild {
	return &ExpressionChild{
		Expr:       expr,
		sourceSpan: sourceSpan,
	}
}

// SourceSpan returns the source span
func (e *ExpressionChild) SourceSpan() *util.ParseSourceSpan {
	return e.sourceSpan
}

// Attribute represents one attribute of an element. A nil Value is the
// boolean shorthand form (a bare attribute name). Spread attributes have an
// empty Name and a *SpreadValue.
type Attribute struct {
	Name       string
	Value      AttributeValue
	sourceSpan *util.ParseSourceSpan
}

// NewAttribute creates a new Attribute
func NewAttribute(name string, value AttributeValue, sourceSpan *util.ParseSourceSpan) *Attribute {
	return &Attribute{
		Name:       name,
		Value:      value,
		sourceSpan: sourceSpan,
	}
}

// SourceSpan returns the source span
func (a *Attribute) SourceSpan() *util.ParseSourceSpan {
	return a.sourceSpan
}

// IsSpread reports whether the attribute is a spread attribute
func (a *Attribute) IsSpread() bool {
	_, ok := a.Value.(*SpreadValue)
	return ok
}

// AttributeValue is the closed set of attribute value shapes. A value that
// is neither an expression nor a spread must be a string literal; the model
// cannot represent numeric or boolean literal attribute values.
type AttributeValue interface {
	isAttributeValue()
}

func (*StringValue) isAttributeValue()      {}
func (*NonStringLiteral) isAttributeValue() {}
func (*ExpressionValue) isAttributeValue()  {}
func (*SpreadValue) isAttributeValue()      {}

// StringValue represents a string literal attribute value
type StringValue struct {
	Value string
}

// NonStringLiteral represents a numeric or boolean literal attribute value.
// The model carries it only so the binding mapper can reject it with a
// positional diagnostic; such values are unsupported.
type NonStringLiteral struct {
	Raw string
}

// ExpressionValue represents an expression container attribute value,
// i.e. `name={expr}`.
type ExpressionValue struct {
	Expr Expression
}

// SpreadValue represents a spread attribute, i.e. `{...expr}`
type SpreadValue struct {
	Expr Expression
}
