package binding

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arcmantle/lit-jsx/packages/compiler/src/ast"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/classifier"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/util"
)

// Reserved attribute names and call namespaces recognized by the mapper.
const (
	// EventPrefix starts event attributes: `onClick` binds the `click`
	// event.
	EventPrefix = "on"
	// BindNamespace is the call namespace marking property and boolean
	// bindings: `as.prop(expr)` and `as.bool(expr)`.
	BindNamespace = "as"
	// PropertyCall and BooleanCall are the member names on BindNamespace.
	PropertyCall = "prop"
	BooleanCall  = "bool"
	// ClassListAttr and StyleListAttr bind class and style maps.
	ClassListAttr = "classList"
	StyleListAttr = "styleList"
	// RefAttr binds an element reference.
	RefAttr = "ref"
	// DirectiveAttr applies element directives.
	DirectiveAttr = "directive"
)

// MapAttribute classifies one attribute into binding kinds. The checks run
// in a fixed precedence order, first match wins: spread, static marker,
// literal value, boolean shorthand, then the expression-valued kinds from
// most to least specific. Most attributes map to exactly one kind; the
// static marker maps to none and a directive over an array literal maps to
// one Directive per element.
func MapAttribute(attr *ast.Attribute) ([]Kind, *util.ParseError) {
	if attr.IsSpread() {
		spread := attr.Value.(*ast.SpreadValue)
		return []Kind{&Spread{Expr: spread.Expr}}, nil
	}

	if attr.Name == classifier.StaticMarkerAttr {
		// Consumed by the classifier only; contributes no runtime value.
		return nil, nil
	}

	switch value := attr.Value.(type) {
	case nil:
		return []Kind{&BooleanShorthand{Name: attr.Name}}, nil
	case *ast.StringValue:
		return []Kind{&StaticText{Name: attr.Name, Value: value.Value}}, nil
	case *ast.NonStringLiteral:
		return nil, util.NewParseError(attr.SourceSpan(), fmt.Sprintf(
			"attribute %q has a non-string literal value %q; only string literals and expressions are supported",
			attr.Name, value.Raw))
	case *ast.ExpressionValue:
		return mapExpressionAttribute(attr, value.Expr)
	default:
		return nil, util.NewParseError(attr.SourceSpan(), fmt.Sprintf(
			"attribute %q matches no known binding kind", attr.Name))
	}
}

func mapExpressionAttribute(attr *ast.Attribute, expr ast.Expression) ([]Kind, *util.ParseError) {
	if eventName, ok := eventNameOf(attr.Name); ok {
		return []Kind{&Event{Name: eventName, Expr: expr}}, nil
	}

	// `as.prop(x)` / `as.bool(x)` wrappers, checked before the name-based
	// kinds because the wrapper overrides whatever the attribute is named.
	if member, inner, ok := bindCall(expr); ok {
		switch member {
		case PropertyCall:
			return []Kind{&Property{Name: attr.Name, Expr: inner}}, nil
		case BooleanCall:
			return []Kind{&BooleanAttribute{Name: attr.Name, Expr: inner}}, nil
		}
	}

	switch attr.Name {
	case ClassListAttr:
		return []Kind{&ClassMap{Expr: expr}}, nil
	case StyleListAttr:
		return []Kind{&StyleMap{Expr: expr}}, nil
	case RefAttr:
		return []Kind{&Ref{Expr: expr}}, nil
	case DirectiveAttr:
		return mapDirective(attr, expr)
	}

	// Ergonomic sugar: `class`/`style` with an object literal behave as the
	// corresponding map binding.
	if obj, ok := expr.(*ast.ObjectLit); ok {
		switch attr.Name {
		case "class":
			return []Kind{&ClassMap{Expr: obj}}, nil
		case "style":
			return []Kind{&StyleMap{Expr: obj}}, nil
		}
	}

	return []Kind{&PlainAttribute{Name: attr.Name, Expr: expr}}, nil
}

func mapDirective(attr *ast.Attribute, expr ast.Expression) ([]Kind, *util.ParseError) {
	switch e := expr.(type) {
	case *ast.ArrayLit:
		kinds := make([]Kind, 0, len(e.Elements))
		for _, element := range e.Elements {
			kinds = append(kinds, &Directive{Expr: element})
		}
		return kinds, nil
	case *ast.CallExpr:
		return []Kind{&Directive{Expr: e}}, nil
	default:
		return nil, util.NewParseError(attr.SourceSpan(), fmt.Sprintf(
			"directive attribute %q must be a directive call or an array of directive calls", attr.Name))
	}
}

// eventNameOf maps an `onEventName` attribute to its DOM event name: the
// prefix is stripped and the first letter lowercased, so `onClick` binds
// `click` and `onMyEvent` binds `myEvent`.
func eventNameOf(attrName string) (string, bool) {
	if !strings.HasPrefix(attrName, EventPrefix) || len(attrName) <= len(EventPrefix) {
		return "", false
	}
	rest := attrName[len(EventPrefix):]
	first := rune(rest[0])
	if !unicode.IsUpper(first) {
		return "", false
	}
	return string(unicode.ToLower(first)) + rest[1:], true
}

// bindCall recognizes a single-argument call of the shape
// `as.member(expr)`.
func bindCall(expr ast.Expression) (member string, inner ast.Expression, ok bool) {
	call, isCall := expr.(*ast.CallExpr)
	if !isCall || len(call.Args) != 1 {
		return "", nil, false
	}
	memberExpr, isMember := call.Callee.(*ast.MemberExpr)
	if !isMember {
		return "", nil, false
	}
	object, isIdent := memberExpr.Object.(*ast.Ident)
	if !isIdent || object.Name != BindNamespace {
		return "", nil, false
	}
	return memberExpr.Property, call.Args[0], true
}
