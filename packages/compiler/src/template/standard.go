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

// standardWriter accumulates the textual emission: literal text with one
// segment boundary per dynamic value. A static element anywhere in the
// template flips the whole template to static-template emission, since the
// runtime cannot parse a dynamic tag name out of static literal text.
type standardWriter struct {
	state    *buildState
	sb       strings.Builder
	segments []string
	values   []ast.Expression
	isStatic bool
}

func (s *buildState) buildStandard(root *ast.Element) (*Result, *util.ParseError) {
	w := &standardWriter{state: s}
	if err := w.emitNode(root, ""); err != nil {
		return nil, err
	}
	w.segments = append(w.segments, w.sb.String())

	if w.isStatic {
		s.imports.Add(SymbolHTMLStatic)
	} else {
		s.imports.Add(SymbolHTML)
	}
	return &Result{
		Strategy:         StrategyStandard,
		IsStaticTemplate: w.isStatic,
		Segments:         w.segments,
		Values:           w.values,
	}, nil
}

func (w *standardWriter) text(text string) {
	w.sb.WriteString(text)
}

func (w *standardWriter) value(expr ast.Expression) {
	w.segments = append(w.segments, w.sb.String())
	w.sb.Reset()
	w.values = append(w.values, expr)
}

func (w *standardWriter) emitNode(el *ast.Element, parentTag string) *util.ParseError {
	if el.IsFragment {
		return w.emitChildren(el, parentTag)
	}

	if w.state.classify(el) == classifier.ClassificationDynamic {
		call, err := w.state.componentCall(el)
		if err != nil {
			return err
		}
		w.value(call)
		return nil
	}

	if parentTag != "" {
		if err := schema.CheckNesting(parentTag, el.Name, el.SourceSpan()); err != nil {
			return err
		}
	}

	if schema.IsBuiltinTag(el.Name) {
		return w.emitBuiltin(el)
	}
	return w.emitStaticTag(el)
}

func (w *standardWriter) emitBuiltin(el *ast.Element) *util.ParseError {
	def := schema.GetTagDefinition(el.Name)
	w.text("<" + el.Name)
	if err := w.emitAttributes(el); err != nil {
		return err
	}
	w.text(">")

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
	w.text("</" + el.Name + ">")
	return nil
}

// emitStaticTag emits a custom-element/static tag: the tag markers
// themselves are interpolated through a hoisted tag handle, so the runtime
// receives the real tag name at template-instantiation time.
func (w *standardWriter) emitStaticTag(el *ast.Element) *util.ParseError {
	w.isStatic = true
	handle := w.state.tagHandle(el)

	w.text("<")
	w.value(handle)
	if err := w.emitAttributes(el); err != nil {
		return err
	}
	w.text(">")
	if err := w.emitChildren(el, el.Name); err != nil {
		return err
	}
	w.text("</")
	w.value(handle)
	w.text(">")
	return nil
}

func (w *standardWriter) emitAttributes(el *ast.Element) *util.ParseError {
	for _, attr := range el.Attributes {
		kinds, err := binding.MapAttribute(attr)
		if err != nil {
			return err
		}
		for _, kind := range kinds {
			w.emitBinding(kind)
		}
	}
	return nil
}

// emitBinding writes one binding in attribute position. The syntax mirrors
// the binding kind: plain attributes bind as `name=`, properties as
// `.name=`, booleans as `?name=`, events as `@name=`; element-level kinds
// are bare interpolations.
func (w *standardWriter) emitBinding(kind binding.Kind) {
	switch k := kind.(type) {
	case *binding.StaticText:
		w.text(fmt.Sprintf(` %s="%s"`, k.Name, escapeAttrValue(k.Value)))
	case *binding.BooleanShorthand:
		w.text(" " + k.Name)
	case *binding.PlainAttribute:
		w.text(" " + k.Name + "=")
		w.value(k.Expr)
	case *binding.Property:
		w.text(" ." + k.Name + "=")
		w.value(k.Expr)
	case *binding.BooleanAttribute:
		w.text(" ?" + k.Name + "=")
		w.value(k.Expr)
	case *binding.Event:
		w.text(" @" + k.Name + "=")
		w.value(k.Expr)
	default:
		w.text(" ")
		w.value(w.state.wrapKindExpr(kind))
	}
}

func (w *standardWriter) emitChildren(el *ast.Element, parentTag string) *util.ParseError {
	for _, child := range el.Children {
		switch c := child.(type) {
		case *ast.Text:
			w.text(c.Value)
		case *ast.Element:
			if err := w.emitNode(c, parentTag); err != nil {
				return err
			}
		case *ast.ExpressionChild:
			// JSX in expression position builds its own template; other
			// expressions interpolate as-is at the child's position.
			if jsx, ok := c.Expr.(*ast.JSXExpr); ok {
				expr, err := w.state.subTemplate(jsx.Element)
				if err != nil {
					return err
				}
				w.value(expr)
				continue
			}
			w.value(c.Expr)
		}
	}
	return nil
}

func escapeAttrValue(value string) string {
	return strings.ReplaceAll(value, `"`, "&quot;")
}
