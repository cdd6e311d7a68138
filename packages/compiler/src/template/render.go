package template

import (
	"fmt"
	"strings"

	"github.com/arcmantle/lit-jsx/packages/compiler/src/ast"
)

// Render prints a build result as host-language source text: a tagged
// template for the standard strategy, a compiled-template object for the
// compiled strategy, and the plain call expression for a bare
// component-call result.
func Render(r *Result) string {
	if r.IsBareValue() {
		return ast.ExprString(r.Values[0])
	}
	if r.Strategy == StrategyCompiled {
		return renderCompiled(r)
	}

	tag := SymbolHTML
	if r.IsStaticTemplate {
		tag = SymbolHTMLStatic
	}
	return tag + ast.ExprString(ast.NewTemplateLit(r.Segments, r.Values, nil))
}

func renderCompiled(r *Result) string {
	var sb strings.Builder
	sb.WriteString("({ _$litType$: { h: ")
	sb.WriteString(ast.ExprString(ast.NewTemplateLit([]string{r.Segments[0]}, nil, nil)))
	sb.WriteString(", parts: [")
	for i, part := range r.Parts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(renderPart(part))
	}
	sb.WriteString("] }, values: [")
	for i, value := range r.Values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ast.ExprString(value))
	}
	sb.WriteString("] })")
	return sb.String()
}

func renderPart(part *Part) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{ type: %d, index: %d", int(part.Kind), part.Index)
	if part.Name != "" {
		fmt.Fprintf(&sb, ", name: %s", ast.QuoteString(part.Name))
	}
	if part.Ctor != "" {
		fmt.Fprintf(&sb, ", ctor: %s", part.Ctor)
	}
	sb.WriteString(" }")
	return sb.String()
}

// RenderHoisted prints one hoisted tag-handle declaration
func RenderHoisted(h *Hoisted) string {
	return fmt.Sprintf("const %s = %s;", h.Name, ast.ExprString(h.Init))
}
