package template

import (
	"fmt"
	"strings"

	"github.com/arcmantle/lit-jsx/packages/compiler/src/ast"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/binding"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/classifier"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/schema"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/util"
)

// ChildMarker is the non-binding placeholder token standing in for one
// child interpolation point in a compiled template's literal text. The
// runtime's re-parse sees it as one node.
const ChildMarker = "<?>"

// compiledWriter accumulates the indexed emission: one flat literal text,
// plus parts and values appended in document order. Literal text and part
// indices are derived from this single traversal; computing them separately
// and hoping they agree is exactly the corruption the round-trip test
// guards against.
type compiledWriter struct {
	state  *buildState
	sb     strings.Builder
	values []ast.Expression
	parts  []*Part

	// index is the next node position of the depth-first output walk:
	// every element, every marker and every maximal text run takes one.
	index    int
	prevText bool
}

func (s *buildState) buildCompiled(root *ast.Element) (*Result, *util.ParseError) {
	w := &compiledWriter{state: s}
	if err := w.emitNode(root, ""); err != nil {
		return nil, err
	}
	return &Result{
		Strategy: StrategyCompiled,
		Segments: []string{w.sb.String()},
		Values:   w.values,
		Parts:    w.parts,
	}, nil
}

func (w *compiledWriter) text(text string) {
	if text == "" {
		return
	}
	w.sb.WriteString(text)
	if !w.prevText {
		w.index++
		w.prevText = true
	}
}

// childValue emits one child interpolation point: a marker node in the
// literal text and a Child part addressing it.
func (w *compiledWriter) childValue(expr ast.Expression) {
	w.sb.WriteString(ChildMarker)
	w.parts = append(w.parts, &Part{Kind: PartChild, Index: w.index})
	w.values = append(w.values, expr)
	w.index++
	w.prevText = false
}

func (w *compiledWriter) emitNode(el *ast.Element, parentTag string) *util.ParseError {
	if el.IsFragment {
		return w.emitChildren(el, parentTag)
	}

	if w.state.classify(el) == classifier.ClassificationDynamic {
		call, err := w.state.componentCall(el)
		if err != nil {
			return err
		}
		w.childValue(call)
		return nil
	}

	// The gate guarantees only built-in tags reach this point.
	if parentTag != "" {
		if err := schema.CheckNesting(parentTag, el.Name, el.SourceSpan()); err != nil {
			return err
		}
	}

	nodeIndex := w.index
	w.index++
	w.prevText = false

	w.sb.WriteString("<" + el.Name)
	if err := w.emitAttributes(el, nodeIndex); err != nil {
		return err
	}
	w.sb.WriteString(">")

	def := schema.GetTagDefinition(el.Name)
	if def.IsVoid() {
		if len(el.Children) > 0 {
			return util.NewParseError(el.SourceSpan(), fmt.Sprintf(
				"void element <%s> cannot have children", el.Name))
		}
		return nil
	}

	if err := w.emitChildren(el, el.Name); err != nil {
		return err
	}
	w.sb.WriteString("</" + el.Name + ">")
	w.prevText = false
	return nil
}

// emitAttributes records dynamic attribute bindings out-of-band: they do
// not appear in the literal text at all, only as parts addressing the
// owning element's node index.
func (w *compiledWriter) emitAttributes(el *ast.Element, nodeIndex int) *util.ParseError {
	for _, attr := range el.Attributes {
		kinds, err := binding.MapAttribute(attr)
		if err != nil {
			return err
		}
		for _, kind := range kinds {
			w.emitBinding(kind, nodeIndex)
		}
	}
	return nil
}

func (w *compiledWriter) emitBinding(kind binding.Kind, nodeIndex int) {
	switch k := kind.(type) {
	case *binding.StaticText:
		w.sb.WriteString(fmt.Sprintf(` %s="%s"`, k.Name, escapeAttrValue(k.Value)))
	case *binding.BooleanShorthand:
		w.sb.WriteString(" " + k.Name)
	case *binding.PlainAttribute:
		w.attributePart(PartAttribute, nodeIndex, k.Name, SymbolAttrPart, k.Expr)
	case *binding.Property:
		w.attributePart(PartProperty, nodeIndex, k.Name, SymbolPropPart, k.Expr)
	case *binding.BooleanAttribute:
		w.attributePart(PartBoolean, nodeIndex, k.Name, SymbolBoolPart, k.Expr)
	case *binding.Event:
		w.attributePart(PartEvent, nodeIndex, k.Name, SymbolEventPart, k.Expr)
	default:
		w.parts = append(w.parts, &Part{Kind: PartElement, Index: nodeIndex})
		w.values = append(w.values, w.state.wrapKindExpr(kind))
	}
}

func (w *compiledWriter) attributePart(kind PartKind, nodeIndex int, name, ctor string, expr ast.Expression) {
	w.state.imports.Add(ctor)
	w.parts = append(w.parts, &Part{Kind: kind, Index: nodeIndex, Name: name, Ctor: ctor})
	w.values = append(w.values, expr)
}

func (w *compiledWriter) emitChildren(el *ast.Element, parentTag string) *util.ParseError {
	for _, child := range el.Children {
		switch c := child.(type) {
		case *ast.Text:
			w.text(c.Value)
		case *ast.Element:
			if err := w.emitNode(c, parentTag); err != nil {
				return err
			}
		case *ast.ExpressionChild:
			jsx, ok := c.Expr.(*ast.JSXExpr)
			if !ok {
				// The gate rejects arbitrary expression children before the
				// compiled writer runs.
				return util.NewParseError(c.SourceSpan(), "expression child is not compilable")
			}
			expr, err := w.state.subTemplate(jsx.Element)
			if err != nil {
				return err
			}
			w.childValue(expr)
		}
	}
	return nil
}
