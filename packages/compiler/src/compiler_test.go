package compiler

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arcmantle/lit-jsx/packages/compiler/src/ast"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/classifier"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/program"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/template"
)

func testHost() program.Host {
	app := program.NewSourceFile("/src/app.jsx")
	app.Scope.Declare("Button", &program.ImportBinding{
		LocalName:    "Button",
		ImportedName: "Button",
		Specifier:    "./button.js",
		Kind:         program.ImportNamed,
	})

	button := program.NewSourceFile("/src/button.js")
	button.Scope.Declare("Button", &program.ClassBinding{Name: "Button"})

	return program.NewMapHost(map[string]*program.SourceFile{
		"/src/app.jsx":   app,
		"/src/button.js": button,
	})
}

func TestCompilerEndToEnd(t *testing.T) {
	c := New(testHost(), Options{Classifier: classifier.DefaultOptions()})
	app, err := c.Session().LoadFile("/src/app.jsx")
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	button := ast.NewElement("Button", nil, []ast.Child{ast.NewText("hi", nil)}, nil)
	if got := c.Classify(button, app.Scope, app); got != classifier.ClassificationStatic {
		t.Fatalf("Classify(Button) = %v, want Static: it resolves to a class across files", got)
	}

	tree := ast.NewElement("div", nil, []ast.Child{button}, nil)
	result, perr := c.BuildTemplate(tree, template.BuildOptions{Scope: app.Scope, File: app})
	if perr != nil {
		t.Fatalf("BuildTemplate() error: %v", perr)
	}

	want := "htmlStatic`<div><${__$Button}>hi</${__$Button}></div>`"
	if diff := cmp.Diff(want, template.Render(result)); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
	if len(result.Hoisted) != 1 {
		t.Fatalf("got %d hoisted handles, want 1", len(result.Hoisted))
	}
	wantHoisted := "const __$Button = unsafeStatic(Button.tagName);"
	if diff := cmp.Diff(wantHoisted, template.RenderHoisted(result.Hoisted[0])); diff != "" {
		t.Errorf("RenderHoisted() mismatch (-want +got):\n%s", diff)
	}
}

func TestCompilerCompiledStrategy(t *testing.T) {
	c := New(testHost(), Options{Classifier: classifier.DefaultOptions()})
	app, err := c.Session().LoadFile("/src/app.jsx")
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	tree := ast.NewElement("section", nil, []ast.Child{
		ast.NewElement("p", nil, []ast.Child{ast.NewText("x", nil)}, nil),
	}, nil)
	result, perr := c.BuildTemplate(tree, template.BuildOptions{
		Strategy: template.StrategyCompiled,
		Scope:    app.Scope,
		File:     app,
	})
	if perr != nil {
		t.Fatalf("BuildTemplate() error: %v", perr)
	}

	want := "({ _$litType$: { h: `<section><p>x</p></section>`, parts: [] }, values: [] })"
	if diff := cmp.Diff(want, template.Render(result)); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestCompilerCompiledFallsBackOnStaticElement(t *testing.T) {
	c := New(testHost(), Options{Classifier: classifier.DefaultOptions()})
	app, err := c.Session().LoadFile("/src/app.jsx")
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	tree := ast.NewElement("div", nil, []ast.Child{
		ast.NewElement("Button", nil, nil, nil),
	}, nil)
	result, perr := c.BuildTemplate(tree, template.BuildOptions{
		Strategy: template.StrategyCompiled,
		Scope:    app.Scope,
		File:     app,
	})
	if perr != nil {
		t.Fatalf("BuildTemplate() error: %v", perr)
	}
	if result.Strategy != template.StrategyStandard {
		t.Errorf("Strategy = %v, want Standard: a custom element gates the subtree", result.Strategy)
	}
	if !result.IsStaticTemplate {
		t.Error("fallback result should be a static template")
	}
}
