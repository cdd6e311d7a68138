// Package compiler is the entry point the surrounding plugin drives: it
// owns one compilation session and wires the classifier, the binding
// resolver and the template builders together.
package compiler

import (
	"github.com/arcmantle/lit-jsx/packages/compiler/src/ast"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/classifier"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/program"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/resolver"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/template"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/util"
)

// Options configure one Compiler
type Options struct {
	// Classifier options; zero value disables binding resolution, use
	// classifier.DefaultOptions() for the usual setup.
	Classifier classifier.Options
	// TypeChecker is the optional type-checking collaborator; may be nil.
	TypeChecker program.TypeChecker
}

// Compiler transforms element trees into runtime template expressions. One
// Compiler per build or watch session; per-file compilations may run in
// parallel against it, sharing the session caches.
type Compiler struct {
	session    *program.Session
	classifier *classifier.Classifier
	builder    *template.Builder
}

// New creates a new Compiler around a host collaborator
func New(host program.Host, options Options) *Compiler {
	session := program.NewSession(host)
	res := resolver.NewResolver(session)
	cls := classifier.NewClassifier(res, options.TypeChecker, options.Classifier)
	return &Compiler{
		session:    session,
		classifier: cls,
		builder:    template.NewBuilder(cls),
	}
}

// Session returns the compiler's session, for cache invalidation on file
// change.
func (c *Compiler) Session() *program.Session {
	return c.session
}

// Classify classifies one element occurrence
func (c *Compiler) Classify(el *ast.Element, scope *program.Scope, file *program.SourceFile) classifier.Classification {
	return c.classifier.Classify(el, scope, file)
}

// BuildTemplate flattens one element tree into its output representation
func (c *Compiler) BuildTemplate(el *ast.Element, opts template.BuildOptions) (*template.Result, *util.ParseError) {
	return c.builder.Build(el, opts)
}
