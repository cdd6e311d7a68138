package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExprString(t *testing.T) {
	cases := []struct {
		name string
		expr Expression
		want string
	}{
		{
			"identifier",
			NewIdent("handler", nil),
			"handler",
		},
		{
			"string literal",
			NewStringLit(`say "hi"`, nil),
			`"say \"hi\""`,
		},
		{
			"member chain",
			NewMemberExpr(NewMemberExpr(NewIdent("a", nil), "b", nil), "c", nil),
			"a.b.c",
		},
		{
			"call with args",
			NewCallExpr(NewIdent("f", nil), []Expression{NewIdent("x", nil), NewNumberLit("2", nil)}, nil),
			"f(x, 2)",
		},
		{
			"array",
			NewArrayLit([]Expression{NewIdent("a", nil), NewIdent("b", nil)}, nil),
			"[a, b]",
		},
		{
			"empty object",
			NewObjectLit(nil, nil),
			"{}",
		},
		{
			"object with spread and quoted key",
			NewObjectLit([]*Property{
				NewProperty("id", NewStringLit("x", nil)),
				NewProperty("data-id", NewIdent("v", nil)),
				NewSpreadProperty(NewIdent("rest", nil)),
			}, nil),
			`{ id: "x", "data-id": v, ...rest }`,
		},
		{
			"template literal escapes",
			NewTemplateLit([]string{"a`b${c", ""}, []Expression{NewIdent("v", nil)}, nil),
			"`a\\`b\\${c${v}`",
		},
		{
			"raw expression verbatim",
			NewRawExpr("a ? b : c", nil),
			"a ? b : c",
		},
		{
			"boolean",
			NewBoolLit(true, nil),
			"true",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ExprString(tc.expr)); diff != "" {
				t.Errorf("ExprString() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTemplateLitStatic(t *testing.T) {
	static := NewTemplateLit([]string{"my-tag"}, nil, nil)
	if !static.IsStatic() || static.StaticValue() != "my-tag" {
		t.Errorf("static template literal not recognized: %v %q", static.IsStatic(), static.StaticValue())
	}
	dynamic := NewTemplateLit([]string{"a", "b"}, []Expression{NewIdent("x", nil)}, nil)
	if dynamic.IsStatic() {
		t.Error("template literal with interpolations should not be static")
	}
}
