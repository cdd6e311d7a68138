package template

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arcmantle/lit-jsx/packages/compiler/src/ast"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/classifier"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/program"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/resolver"
)

// newBuilder builds a single-file setup; declare populates the file's
// top-level scope.
func newBuilder(declare func(*program.SourceFile)) (*Builder, BuildOptions) {
	file := program.NewSourceFile("/src/app.jsx")
	if declare != nil {
		declare(file)
	}
	session := program.NewSession(program.NewMapHost(map[string]*program.SourceFile{
		file.Path: file,
	}))
	cls := classifier.NewClassifier(resolver.NewResolver(session), nil, classifier.DefaultOptions())
	return NewBuilder(cls), BuildOptions{Scope: file.Scope, File: file}
}

func el(name string, attrs []*ast.Attribute, children ...ast.Child) *ast.Element {
	return ast.NewElement(name, attrs, children, nil)
}

func text(value string) *ast.Text {
	return ast.NewText(value, nil)
}

func exprChild(expr ast.Expression) *ast.ExpressionChild {
	return ast.NewExpressionChild(expr, nil)
}

func jsxChild(element *ast.Element) *ast.ExpressionChild {
	return ast.NewExpressionChild(ast.NewJSXExpr(element, nil), nil)
}

func strAttr(name, value string) *ast.Attribute {
	return ast.NewAttribute(name, &ast.StringValue{Value: value}, nil)
}

func exprAttr(name string, expr ast.Expression) *ast.Attribute {
	return ast.NewAttribute(name, &ast.ExpressionValue{Expr: expr}, nil)
}

func boolWrap(expr ast.Expression) ast.Expression {
	callee := ast.NewMemberExpr(ast.NewIdent("as", nil), "bool", nil)
	return ast.NewCallExpr(callee, []ast.Expression{expr}, nil)
}

func propWrap(expr ast.Expression) ast.Expression {
	callee := ast.NewMemberExpr(ast.NewIdent("as", nil), "prop", nil)
	return ast.NewCallExpr(callee, []ast.Expression{expr}, nil)
}

func TestBuildStandard(t *testing.T) {
	declare := func(file *program.SourceFile) {
		file.Scope.Declare("MyElement", &program.ClassBinding{Name: "MyElement"})
		file.Scope.Declare("ButtonTag", &program.VarBinding{
			Name: "ButtonTag", Init: ast.NewStringLit("custom-button", nil),
		})
	}

	cases := []struct {
		name string
		el   *ast.Element
		want string
	}{
		{
			"fully static markup",
			el("div", []*ast.Attribute{strAttr("id", "main")}, text("hi")),
			"html`<div id=\"main\">hi</div>`",
		},
		{
			"boolean attribute binding",
			el("button", []*ast.Attribute{exprAttr("disabled", boolWrap(ast.NewIdent("isDisabled", nil)))}, text("Ok")),
			"html`<button ?disabled=${isDisabled}>Ok</button>`",
		},
		{
			"property and event bindings",
			el("input", []*ast.Attribute{
				exprAttr("value", propWrap(ast.NewIdent("value", nil))),
				exprAttr("onInput", ast.NewIdent("handle", nil)),
			}),
			"html`<input .value=${value} @input=${handle}>`",
		},
		{
			"attribute value escaping",
			el("div", []*ast.Attribute{strAttr("title", `say "hi"`)}),
			"html`<div title=\"say &quot;hi&quot;\"></div>`",
		},
		{
			"expression child interpolates in place",
			el("div", nil, text("count: "), exprChild(ast.NewIdent("count", nil))),
			"html`<div>count: ${count}</div>`",
		},
		{
			"fragment root",
			ast.NewFragment([]ast.Child{text("total "), exprChild(ast.NewIdent("count", nil))}, nil),
			"html`total ${count}`",
		},
		{
			"nested template child",
			el("div", nil, jsxChild(el("span", nil, text("hi")))),
			"html`<div>${html`<span>hi</span>`}</div>`",
		},
		{
			"dynamic component root becomes a call",
			el("Comp", []*ast.Attribute{strAttr("id", "main")}, text("text")),
			`Comp({ id: "main", children: "text" })`,
		},
		{
			"dynamic component with expression props and children",
			el("Comp", []*ast.Attribute{
				exprAttr("value", ast.NewIdent("v", nil)),
				ast.NewAttribute("", &ast.SpreadValue{Expr: ast.NewIdent("rest", nil)}, nil),
			}, text("a"), exprChild(ast.NewIdent("b", nil))),
			`Comp({ value: v, ...rest, children: ["a", b] })`,
		},
		{
			"dynamic component child inside markup",
			el("div", nil, el("Comp", nil)),
			"html`<div>${Comp({})}</div>`",
		},
		{
			"member tag is a dynamic call",
			el("Ns.Comp", nil),
			"Ns.Comp({})",
		},
		{
			"custom element through its tag handle",
			el("MyElement", []*ast.Attribute{strAttr("id", "x")}),
			"htmlStatic`<${__$MyElement} id=\"x\"></${__$MyElement}>`",
		},
		{
			"string-literal tag through its tag handle",
			el("ButtonTag", nil, text("go")),
			"htmlStatic`<${__$ButtonTag}>go</${__$ButtonTag}>`",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			builder, opts := newBuilder(declare)
			result, err := builder.Build(tc.el, opts)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if diff := cmp.Diff(tc.want, Render(result)); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildStandardSegments(t *testing.T) {
	builder, opts := newBuilder(nil)
	tree := el("button", []*ast.Attribute{
		exprAttr("disabled", boolWrap(ast.NewIdent("isDisabled", nil))),
	}, text("Ok"))

	result, err := builder.Build(tree, opts)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	wantSegments := []string{"<button ?disabled=", ">Ok</button>"}
	if diff := cmp.Diff(wantSegments, result.Segments); diff != "" {
		t.Errorf("Segments mismatch (-want +got):\n%s", diff)
	}
	if len(result.Values) != 1 {
		t.Fatalf("got %d values, want 1", len(result.Values))
	}
	if diff := cmp.Diff([]string{SymbolHTML}, result.Imports.Names()); diff != "" {
		t.Errorf("Imports mismatch (-want +got):\n%s", diff)
	}
	if !result.Imports.Has(SymbolHTML) {
		t.Errorf("Imports should contain %s", SymbolHTML)
	}
	if result.Imports.Has(SymbolHTMLStatic) {
		t.Errorf("Imports should not contain %s", SymbolHTMLStatic)
	}
}

func TestBuildStaticTagHandles(t *testing.T) {
	declare := func(file *program.SourceFile) {
		file.Scope.Declare("MyElement", &program.ClassBinding{Name: "MyElement"})
		file.Scope.Declare("ButtonTag", &program.VarBinding{
			Name: "ButtonTag", Init: ast.NewStringLit("custom-button", nil),
		})
	}

	t.Run("class tag uses the tagName accessor", func(t *testing.T) {
		builder, opts := newBuilder(declare)
		result, err := builder.Build(el("MyElement", nil), opts)
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		if !result.IsStaticTemplate {
			t.Error("result should be a static template")
		}
		if len(result.Hoisted) != 1 {
			t.Fatalf("got %d hoisted handles, want 1", len(result.Hoisted))
		}
		want := "const __$MyElement = unsafeStatic(MyElement.tagName);"
		if diff := cmp.Diff(want, RenderHoisted(result.Hoisted[0])); diff != "" {
			t.Errorf("RenderHoisted() mismatch (-want +got):\n%s", diff)
		}
		wantImports := []string{SymbolUnsafeStatic, SymbolHTMLStatic}
		if diff := cmp.Diff(wantImports, result.Imports.Names()); diff != "" {
			t.Errorf("Imports mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("string-literal tag interpolates directly", func(t *testing.T) {
		builder, opts := newBuilder(declare)
		result, err := builder.Build(el("ButtonTag", nil), opts)
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		want := "const __$ButtonTag = unsafeStatic(ButtonTag);"
		if diff := cmp.Diff(want, RenderHoisted(result.Hoisted[0])); diff != "" {
			t.Errorf("RenderHoisted() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("marker-forced tag without a binding", func(t *testing.T) {
		builder, opts := newBuilder(nil)
		tree := el("Widget", []*ast.Attribute{ast.NewAttribute(classifier.StaticMarkerAttr, nil, nil)})
		result, err := builder.Build(tree, opts)
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		want := "const __$Widget = unsafeStatic(Widget);"
		if diff := cmp.Diff(want, RenderHoisted(result.Hoisted[0])); diff != "" {
			t.Errorf("RenderHoisted() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("repeated tags share one handle", func(t *testing.T) {
		builder, opts := newBuilder(declare)
		tree := el("div", nil, el("MyElement", nil), el("MyElement", nil))
		result, err := builder.Build(tree, opts)
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		if len(result.Hoisted) != 1 {
			t.Errorf("got %d hoisted handles, want 1", len(result.Hoisted))
		}
	})
}

func TestBuildHoistNeedsBlockBody(t *testing.T) {
	declare := func(file *program.SourceFile) {
		file.Scope.Declare("MyElement", &program.ClassBinding{Name: "MyElement"})
	}
	builder, opts := newBuilder(declare)
	opts.EnclosingFunction = &FunctionInfo{Name: "Card", HasBlockBody: false}

	if _, err := builder.Build(el("MyElement", nil), opts); err == nil {
		t.Fatal("Build() should fail when tag handles cannot be hoisted")
	}
}

func TestBuildStandardErrors(t *testing.T) {
	cases := []struct {
		name string
		el   *ast.Element
	}{
		{"invalid nesting", el("p", nil, el("div", nil))},
		{"void element with children", el("br", nil, text("x"))},
		{"non-string literal attribute", el("div", []*ast.Attribute{
			ast.NewAttribute("count", &ast.NonStringLiteral{Raw: "42"}, nil),
		})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			builder, opts := newBuilder(nil)
			if _, err := builder.Build(tc.el, opts); err == nil {
				t.Fatal("Build() should fail")
			}
		})
	}
}

func TestBuildStandardElementLevelBindings(t *testing.T) {
	builder, opts := newBuilder(nil)
	tree := el("div", []*ast.Attribute{
		exprAttr("classList", ast.NewIdent("classes", nil)),
		exprAttr("ref", ast.NewIdent("node", nil)),
	})

	result, err := builder.Build(tree, opts)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := "html`<div ${classMap(classes)} ${ref(node)}></div>`"
	if diff := cmp.Diff(want, Render(result)); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
	wantImports := []string{SymbolClassMap, SymbolRef, SymbolHTML}
	if diff := cmp.Diff(wantImports, result.Imports.Names()); diff != "" {
		t.Errorf("Imports mismatch (-want +got):\n%s", diff)
	}
}
