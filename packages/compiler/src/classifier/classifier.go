// Package classifier decides, per element occurrence, whether a tag renders
// as a static element (custom element or string tag, addressed through the
// tag-handle indirection) or as a dynamic function component (a direct
// call).
package classifier

import (
	"strings"

	"github.com/arcmantle/lit-jsx/packages/compiler/src/ast"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/program"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/resolver"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/schema"
)

// StaticMarkerAttr is the reserved boolean attribute that forces an element
// to be treated as static. Explicit author intent always wins over
// inference.
const StaticMarkerAttr = "static"

// Classification is the outcome of classifying one element occurrence
type Classification int

const (
	ClassificationDynamic Classification = iota
	ClassificationStatic
)

// String returns a string representation of the classification
func (c Classification) String() string {
	if c == ClassificationStatic {
		return "Static"
	}
	return "Dynamic"
}

// Options control which classification rules beyond the syntactic ones are
// consulted.
type Options struct {
	// ResolveBindings enables the cross-file binding resolver (rule 3).
	ResolveBindings bool
	// UseTypeInference enables the optional type-checking fallback (rule 4),
	// consulted only when the resolver is inconclusive.
	UseTypeInference bool
}

// DefaultOptions returns the default classification options
func DefaultOptions() Options {
	return Options{ResolveBindings: true}
}

// Classifier classifies tag occurrences. The type checker is an optional
// capability; when absent, rule 4 simply never fires.
type Classifier struct {
	resolver *resolver.Resolver
	checker  program.TypeChecker
	options  Options
}

// NewClassifier creates a new Classifier. checker may be nil.
func NewClassifier(res *resolver.Resolver, checker program.TypeChecker, options Options) *Classifier {
	return &Classifier{
		resolver: res,
		checker:  checker,
		options:  options,
	}
}

// Classify returns the classification of one element occurrence. The rules
// run in a fixed order, cheapest first, and the first applicable rule wins:
// built-in markup tag, explicit static marker, binding resolution, type
// inference, then the Dynamic default. Classification never fails: an
// unresolvable identifier is Dynamic, not an error.
func (c *Classifier) Classify(el *ast.Element, scope *program.Scope, file *program.SourceFile) Classification {
	if el.IsFragment {
		return ClassificationDynamic
	}
	if schema.IsBuiltinTag(el.Name) {
		return ClassificationStatic
	}
	if HasStaticMarker(el) {
		return ClassificationStatic
	}

	// Member-expression tags (`Ns.Comp`) have no single binding to resolve.
	if strings.Contains(el.Name, ".") {
		return ClassificationDynamic
	}

	if c.options.ResolveBindings && scope != nil && file != nil {
		switch c.resolver.Resolve(el.Name, scope, file) {
		case program.ResolutionClass, program.ResolutionStringLiteral:
			return ClassificationStatic
		}
	}

	if c.options.UseTypeInference && c.checker != nil && file != nil {
		kind, err := c.checker.TypeOfIdentifier(el.Name, file.Path)
		if err == nil {
			switch kind {
			case program.TypeClass, program.TypeStringLiteralUnion:
				return ClassificationStatic
			case program.TypeFunction:
				return ClassificationDynamic
			}
		}
		// A failing collaborator is inconclusive, never fatal.
	}

	return ClassificationDynamic
}

// Resolver returns the classifier's resolver, shared with the template
// builders for the tag-handle accessor decision.
func (c *Classifier) Resolver() *resolver.Resolver {
	return c.resolver
}

// HasStaticMarker reports whether the element carries the reserved static
// marker attribute in its boolean shorthand form. Spread attributes never
// match, even when spelled with the marker name.
func HasStaticMarker(el *ast.Element) bool {
	for _, attr := range el.Attributes {
		if attr.IsSpread() {
			continue
		}
		if attr.Name == StaticMarkerAttr && attr.Value == nil {
			return true
		}
	}
	return false
}
