// Package template flattens element trees into the two emission forms the
// runtime consumes: the textual standard template and the indexed compiled
// template. Both strategies share attribute processing and must produce
// byte-identical literal text for identical static structure.
package template

import (
	"fmt"
	"strings"

	"github.com/arcmantle/lit-jsx/packages/compiler/src/ast"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/binding"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/classifier"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/program"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/schema"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/util"
)

// Strategy selects the emission form. StrategyCompiled is a preference: the
// gating rules may force a subtree back to StrategyStandard.
type Strategy int

const (
	StrategyStandard Strategy = iota
	StrategyCompiled
)

// Runtime symbols the emitted module must import. The builder reports the
// required set; the surrounding plugin performs the textual insertion.
const (
	SymbolHTML         = "html"
	SymbolHTMLStatic   = "htmlStatic"
	SymbolUnsafeStatic = "unsafeStatic"
	SymbolClassMap     = "classMap"
	SymbolStyleMap     = "styleMap"
	SymbolRef          = "ref"
	SymbolRest         = "rest"
	SymbolAttrPart     = "AttributePart"
	SymbolPropPart     = "PropertyPart"
	SymbolBoolPart     = "BooleanAttributePart"
	SymbolEventPart    = "EventPart"
)

// PartKind is the runtime part-type code stored in a compiled template's
// parts table. The numeric values are part of the wire format shared with
// the runtime.
type PartKind int

const (
	PartAttribute PartKind = 1
	PartChild     PartKind = 2
	PartProperty  PartKind = 3
	PartBoolean   PartKind = 4
	PartEvent     PartKind = 5
	PartElement   PartKind = 6
)

// String returns a string representation of the part kind
func (k PartKind) String() string {
	switch k {
	case PartAttribute:
		return "Attribute"
	case PartChild:
		return "Child"
	case PartProperty:
		return "Property"
	case PartBoolean:
		return "Boolean"
	case PartEvent:
		return "Event"
	case PartElement:
		return "Element"
	default:
		return fmt.Sprintf("PartKind(%d)", int(k))
	}
}

// Part is one entry of a compiled template's parts table: the kind and
// flattened-tree position of one dynamic binding, plus the bound name for
// attribute-shaped kinds and the runtime part constructor symbol. Parts are
// appended in document order by the same traversal that produces the
// literal text and are never mutated after creation.
type Part struct {
	Kind  PartKind
	Index int
	Name  string
	Ctor  string
}

// ImportSet is an ordered set of runtime symbol names
type ImportSet struct {
	names []string
	seen  map[string]bool
}

// NewImportSet creates a new empty ImportSet
func NewImportSet() *ImportSet {
	return &ImportSet{seen: make(map[string]bool)}
}

// Add records a required symbol, keeping first-seen order
func (s *ImportSet) Add(name string) {
	if !s.seen[name] {
		s.seen[name] = true
		s.names = append(s.names, name)
	}
}

// Has reports whether a symbol is in the set
func (s *ImportSet) Has(name string) bool {
	return s.seen[name]
}

// Names returns the symbols in first-seen order
func (s *ImportSet) Names() []string {
	return s.names
}

// Hoisted records one tag-handle declaration the host must insert into the
// nearest block scope, e.g. `const __$MyElement = unsafeStatic(MyElement.tagName)`.
type Hoisted struct {
	Name string
	Init ast.Expression
}

// FunctionInfo describes the function enclosing the element tree being
// built. Hoisted tag handles can only be inserted into block bodies.
type FunctionInfo struct {
	Name         string
	HasBlockBody bool
}

// BuildOptions parameterize one template build
type BuildOptions struct {
	Strategy          Strategy
	Scope             *program.Scope
	File              *program.SourceFile
	EnclosingFunction *FunctionInfo
}

// Result is the outcome of building one element tree. Segments and Values
// interleave: Segments always has one more entry than Values, except for a
// bare component-call result which has no segments and exactly one value.
// For the compiled strategy Segments holds the single flat literal text and
// Parts and Values run parallel in document order.
type Result struct {
	Strategy         Strategy
	IsStaticTemplate bool
	Segments         []string
	Values           []ast.Expression
	Parts            []*Part
	Imports          *ImportSet
	Hoisted          []*Hoisted
}

// IsBareValue reports whether the result is a plain expression (a direct
// function-component call) rather than a template.
func (r *Result) IsBareValue() bool {
	return len(r.Segments) == 0
}

// Builder builds templates from element trees
type Builder struct {
	classifier *classifier.Classifier
}

// NewBuilder creates a new Builder
func NewBuilder(c *classifier.Classifier) *Builder {
	return &Builder{classifier: c}
}

// Build flattens one element tree into a Result using the preferred
// strategy, falling back to the standard strategy where the compiled gating
// rules require it. A dynamic root builds to a bare component call.
func (b *Builder) Build(el *ast.Element, opts BuildOptions) (*Result, *util.ParseError) {
	state := &buildState{
		builder: b,
		opts:    opts,
		imports: NewImportSet(),
		seen:    make(map[string]bool),
	}

	var result *Result
	if !el.IsFragment && b.classify(el, opts) == classifier.ClassificationDynamic {
		call, err := state.componentCall(el)
		if err != nil {
			return nil, err
		}
		result = &Result{
			Strategy: StrategyStandard,
			Values:   []ast.Expression{call},
		}
	} else {
		strategy := opts.Strategy
		if strategy == StrategyCompiled && !b.compiledAllowed(el, opts) {
			strategy = StrategyStandard
		}
		var err *util.ParseError
		if strategy == StrategyCompiled {
			result, err = state.buildCompiled(el)
		} else {
			result, err = state.buildStandard(el)
		}
		if err != nil {
			return nil, err
		}
	}

	result.Imports = state.imports
	result.Hoisted = state.hoisted
	if len(state.hoisted) > 0 && opts.EnclosingFunction != nil && !opts.EnclosingFunction.HasBlockBody {
		return nil, util.NewParseError(el.SourceSpan(), fmt.Sprintf(
			"cannot hoist tag handles into %q: function body is not a block", opts.EnclosingFunction.Name))
	}
	return result, nil
}

func (b *Builder) classify(el *ast.Element, opts BuildOptions) classifier.Classification {
	return b.classifier.Classify(el, opts.Scope, opts.File)
}

// isCustomStatic reports whether an element is a static element requiring
// tag-handle indirection, i.e. classified static without being built-in
// markup.
func (b *Builder) isCustomStatic(el *ast.Element, opts BuildOptions) bool {
	if el.IsFragment || schema.IsBuiltinTag(el.Name) {
		return false
	}
	return b.classify(el, opts) == classifier.ClassificationStatic
}

// compiledAllowed computes the gating rule for one subtree, an OR of two
// independent predicates: the subtree must contain no static element
// (custom-element contagion stops only at function-component boundaries)
// and no expression child that is not statically exactly one element or
// fragment.
func (b *Builder) compiledAllowed(el *ast.Element, opts BuildOptions) bool {
	if b.isCustomStatic(el, opts) {
		return false
	}
	for _, child := range el.Children {
		switch c := child.(type) {
		case *ast.Text:
			// always compilable
		case *ast.Element:
			if !b.elementCompilable(c, opts) {
				return false
			}
		case *ast.ExpressionChild:
			jsx, ok := c.Expr.(*ast.JSXExpr)
			if !ok {
				return false
			}
			if !b.elementCompilable(jsx.Element, opts) {
				return false
			}
		}
	}
	return true
}

func (b *Builder) elementCompilable(el *ast.Element, opts BuildOptions) bool {
	if !el.IsFragment && b.classify(el, opts) == classifier.ClassificationDynamic {
		// Function-component boundary: the callee's subtree is evaluated
		// independently.
		return true
	}
	return b.compiledAllowed(el, opts)
}

// buildState carries the collectors shared by both strategies during one
// build: the required runtime symbols and the hoisted tag handles, deduped
// by handle name.
type buildState struct {
	builder *Builder
	opts    BuildOptions
	imports *ImportSet
	hoisted []*Hoisted
	seen    map[string]bool
}

func (s *buildState) classify(el *ast.Element) classifier.Classification {
	return s.builder.classify(el, s.opts)
}

// tagHandle synthesizes the indirection for one static element tag and
// records its hoisted declaration. Proven class bindings go through the
// `.tagName` accessor; everything else interpolates the tag expression
// directly.
func (s *buildState) tagHandle(el *ast.Element) ast.Expression {
	s.imports.Add(SymbolUnsafeStatic)

	handleName := "__$" + strings.ReplaceAll(el.Name, ".", "_")
	if !s.seen[handleName] {
		s.seen[handleName] = true

		tagExpr := tagExpression(el.Name)
		useAccessor := false
		if !strings.Contains(el.Name, ".") && s.opts.Scope != nil && s.opts.File != nil {
			useAccessor = s.builder.classifier.Resolver().ResolveClass(el.Name, s.opts.Scope, s.opts.File)
		} else if strings.Contains(el.Name, ".") {
			// Member tags cannot be string bindings; assume the class shape.
			useAccessor = true
		}
		if useAccessor {
			tagExpr = ast.NewMemberExpr(tagExpr, "tagName", nil)
		}
		s.hoisted = append(s.hoisted, &Hoisted{
			Name: handleName,
			Init: ast.NewCallExpr(ast.NewIdent(SymbolUnsafeStatic, nil), []ast.Expression{tagExpr}, nil),
		})
	}
	return ast.NewIdent(handleName, nil)
}

func tagExpression(name string) ast.Expression {
	parts := strings.Split(name, ".")
	var expr ast.Expression = ast.NewIdent(parts[0], nil)
	for _, part := range parts[1:] {
		expr = ast.NewMemberExpr(expr, part, nil)
	}
	return expr
}

// componentCall synthesizes the direct call for a dynamic element:
// `Tag({props})`. Attributes collapse to plain key/value pairs, spreads to
// object spreads, children to a `children` property. The callee's own
// returned tree is not this builder's concern; each element child is built
// independently (the function-component boundary resets strategy
// evaluation).
func (s *buildState) componentCall(el *ast.Element) (ast.Expression, *util.ParseError) {
	var props []*ast.Property
	for _, attr := range el.Attributes {
		if attr.Name == classifier.StaticMarkerAttr && !attr.IsSpread() {
			continue
		}
		switch value := attr.Value.(type) {
		case nil:
			props = append(props, ast.NewProperty(attr.Name, ast.NewBoolLit(true, nil)))
		case *ast.StringValue:
			props = append(props, ast.NewProperty(attr.Name, ast.NewStringLit(value.Value, nil)))
		case *ast.NonStringLiteral:
			return nil, util.NewParseError(attr.SourceSpan(), fmt.Sprintf(
				"attribute %q has a non-string literal value %q; only string literals and expressions are supported",
				attr.Name, value.Raw))
		case *ast.ExpressionValue:
			expr, err := s.valueExpression(value.Expr)
			if err != nil {
				return nil, err
			}
			props = append(props, ast.NewProperty(attr.Name, expr))
		case *ast.SpreadValue:
			props = append(props, ast.NewSpreadProperty(value.Expr))
		}
	}

	var children []ast.Expression
	for _, child := range el.Children {
		switch c := child.(type) {
		case *ast.Text:
			children = append(children, ast.NewStringLit(c.Value, nil))
		case *ast.Element:
			expr, err := s.subTemplate(c)
			if err != nil {
				return nil, err
			}
			children = append(children, expr)
		case *ast.ExpressionChild:
			expr, err := s.valueExpression(c.Expr)
			if err != nil {
				return nil, err
			}
			children = append(children, expr)
		}
	}
	switch len(children) {
	case 0:
	case 1:
		props = append(props, ast.NewProperty("children", children[0]))
	default:
		props = append(props, ast.NewProperty("children", ast.NewArrayLit(children, nil)))
	}

	callee := tagExpression(el.Name)
	args := []ast.Expression{ast.NewObjectLit(props, nil)}
	return ast.NewCallExpr(callee, args, el.SourceSpan()), nil
}

// subTemplate builds a nested element tree independently and re-enters it
// as an expression, merging the nested build's imports and hoisted handles.
func (s *buildState) subTemplate(el *ast.Element) (ast.Expression, *util.ParseError) {
	result, err := s.builder.Build(el, s.opts)
	if err != nil {
		return nil, err
	}
	for _, name := range result.Imports.Names() {
		s.imports.Add(name)
	}
	for _, h := range result.Hoisted {
		if !s.seen[h.Name] {
			s.seen[h.Name] = true
			s.hoisted = append(s.hoisted, h)
		}
	}
	return ast.NewRawExpr(Render(result), el.SourceSpan()), nil
}

// valueExpression resolves JSX used in expression position into built
// templates; everything else passes through untouched.
func (s *buildState) valueExpression(expr ast.Expression) (ast.Expression, *util.ParseError) {
	if jsx, ok := expr.(*ast.JSXExpr); ok {
		return s.subTemplate(jsx.Element)
	}
	return expr, nil
}

// wrapKindExpr wraps element-level binding kinds in their runtime helper
// calls and records the required imports.
func (s *buildState) wrapKindExpr(kind binding.Kind) ast.Expression {
	switch k := kind.(type) {
	case *binding.ClassMap:
		s.imports.Add(SymbolClassMap)
		return ast.NewCallExpr(ast.NewIdent(SymbolClassMap, nil), []ast.Expression{k.Expr}, nil)
	case *binding.StyleMap:
		s.imports.Add(SymbolStyleMap)
		return ast.NewCallExpr(ast.NewIdent(SymbolStyleMap, nil), []ast.Expression{k.Expr}, nil)
	case *binding.Ref:
		s.imports.Add(SymbolRef)
		return ast.NewCallExpr(ast.NewIdent(SymbolRef, nil), []ast.Expression{k.Expr}, nil)
	case *binding.Spread:
		s.imports.Add(SymbolRest)
		return ast.NewCallExpr(ast.NewIdent(SymbolRest, nil), []ast.Expression{k.Expr}, nil)
	case *binding.Directive:
		return k.Expr
	default:
		return nil
	}
}
