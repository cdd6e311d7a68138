package ast

import (
	"fmt"
	"strings"
)

// ExprString prints an expression as deterministic host-language source
// text. Synthesized nodes (function-component calls, tag-handle accessors,
// props objects) round-trip through this printer; RawExpr text is
// reproduced verbatim.
func ExprString(expr Expression) string {
	var sb strings.Builder
	printExpr(&sb, expr)
	return sb.String()
}

func printExpr(sb *strings.Builder, expr Expression) {
	switch e := expr.(type) {
	case *Ident:
		sb.WriteString(e.Name)
	case *StringLit:
		sb.WriteString(QuoteString(e.Value))
	case *NumberLit:
		sb.WriteString(e.Text)
	case *BoolLit:
		if e.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case *TemplateLit:
		sb.WriteByte('`')
		for i, quasi := range e.Quasis {
			sb.WriteString(escapeTemplateText(quasi))
			if i < len(e.Exprs) {
				sb.WriteString("${")
				printExpr(sb, e.Exprs[i])
				sb.WriteByte('}')
			}
		}
		sb.WriteByte('`')
	case *CallExpr:
		printExpr(sb, e.Callee)
		sb.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			printExpr(sb, arg)
		}
		sb.WriteByte(')')
	case *MemberExpr:
		printExpr(sb, e.Object)
		sb.WriteByte('.')
		sb.WriteString(e.Property)
	case *ArrayLit:
		sb.WriteByte('[')
		for i, el := range e.Elements {
			if i > 0 {
				sb.WriteString(", ")
			}
			printExpr(sb, el)
		}
		sb.WriteByte(']')
	case *ObjectLit:
		if len(e.Properties) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		for i, prop := range e.Properties {
			if i > 0 {
				sb.WriteString(", ")
			}
			if prop.Spread {
				sb.WriteString("...")
				printExpr(sb, prop.Value)
				continue
			}
			sb.WriteString(objectKey(prop.Key))
			sb.WriteString(": ")
			printExpr(sb, prop.Value)
		}
		sb.WriteString(" }")
	case *ArrowFn:
		sb.WriteString(e.Text)
	case *ClassExpr:
		if e.Name != "" {
			sb.WriteString("class " + e.Name + " {}")
		} else {
			sb.WriteString("class {}")
		}
	case *JSXExpr:
		// JSXExpr values are replaced by built templates before printing;
		// reaching one here means a builder skipped a child.
		panic(fmt.Sprintf("ExprString: unbuilt JSX expression <%s>", e.Element.Name))
	case *RawExpr:
		sb.WriteString(e.Text)
	default:
		panic(fmt.Sprintf("ExprString: unknown expression type %T", expr))
	}
}

// QuoteString renders a double-quoted host string literal
func QuoteString(value string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func escapeTemplateText(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, "`", "\\`")
	return strings.ReplaceAll(text, "${", "\\${")
}

func isIdentName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
		if !alpha && (i == 0 || r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func objectKey(key string) string {
	if isIdentName(key) {
		return key
	}
	return QuoteString(key)
}
