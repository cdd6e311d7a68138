// Package resolver implements import discovery: the cross-file graph walk
// that determines what kind of value a tag identifier ultimately refers to.
// The walk is sound but deliberately incomplete: it follows variable
// aliases, imports and re-export chains, and gives up (Unknown) on function
// call indirection, namespace objects and over-long re-export chains.
package resolver

import (
	"github.com/arcmantle/lit-jsx/packages/compiler/src/ast"
	"github.com/arcmantle/lit-jsx/packages/compiler/src/program"
)

// MaxResolveHops bounds cross-file traversal so import and re-export cycles
// terminate. Exceeding the bound resolves to Unknown, never an error.
const MaxResolveHops = 10

// Resolver walks binding chains across the module graph
type Resolver struct {
	session *program.Session
}

// NewResolver creates a new Resolver sharing the given session's caches
func NewResolver(session *program.Session) *Resolver {
	return &Resolver{session: session}
}

// Resolve reduces an identifier to Class, StringLiteral or Unknown, starting
// from its usage scope. This is the class-or-string-literal question asked
// by the tag classifier.
func (r *Resolver) Resolve(name string, scope *program.Scope, file *program.SourceFile) program.Resolution {
	w := &walk{resolver: r, visiting: make(map[visitKey]bool)}
	res, _ := w.resolveInScope(name, scope, file, 0)
	return res
}

// ResolveClass answers the narrower class-only question: whether the
// identifier must be addressed through its `.tagName` accessor rather than
// interpolated directly.
func (r *Resolver) ResolveClass(name string, scope *program.Scope, file *program.SourceFile) bool {
	return r.Resolve(name, scope, file) == program.ResolutionClass
}

type visitKey struct {
	path string
	name string
}

// walk carries the state of one resolution: the hop-bounded cross-file
// traversal plus an in-progress set guarding same-file alias cycles
// (`const A = B; const B = A`), which the hop counter alone cannot catch.
type walk struct {
	resolver *Resolver
	visiting map[visitKey]bool
}

func (w *walk) session() *program.Session {
	return w.resolver.session
}

// resolveInScope resolves a name against a lexical scope chain. The clipped
// result reports whether the walk hit the hop bound; depth-clipped Unknowns
// are not memoized, since a walk starting closer to the declaration may
// still succeed.
func (w *walk) resolveInScope(name string, scope *program.Scope, file *program.SourceFile, depth int) (program.Resolution, bool) {
	if cached, ok := w.session().CachedResolution(file.Path, name); ok {
		return cached, false
	}
	key := visitKey{program.NormalizePath(file.Path), name}
	if w.visiting[key] {
		// A binding cycle can never prove staticness.
		return program.ResolutionUnknown, false
	}
	w.visiting[key] = true
	defer delete(w.visiting, key)

	binding, ok := scope.Lookup(name)
	if !ok {
		// Undeclared identifier (e.g. a global): not an error, just unknown.
		w.session().StoreResolution(file.Path, name, program.ResolutionUnknown)
		return program.ResolutionUnknown, false
	}

	res, clipped := w.resolveBinding(binding, scope, file, depth)
	if !clipped {
		w.session().StoreResolution(file.Path, name, res)
	}
	return res, clipped
}

func (w *walk) resolveBinding(binding program.Binding, scope *program.Scope, file *program.SourceFile, depth int) (program.Resolution, bool) {
	switch b := binding.(type) {
	case *program.ClassBinding:
		return program.ResolutionClass, false
	case *program.FuncBinding:
		return program.ResolutionUnknown, false
	case *program.VarBinding:
		return w.resolveInitializer(b.Init, scope, file, depth)
	case *program.ImportBinding:
		return w.resolveImport(b, file, depth)
	case *program.UnknownBinding:
		return program.ResolutionUnknown, false
	default:
		return program.ResolutionUnknown, false
	}
}

func (w *walk) resolveInitializer(init ast.Expression, scope *program.Scope, file *program.SourceFile, depth int) (program.Resolution, bool) {
	switch e := init.(type) {
	case *ast.ClassExpr:
		return program.ResolutionClass, false
	case *ast.StringLit:
		return program.ResolutionStringLiteral, false
	case *ast.TemplateLit:
		if e.IsStatic() {
			return program.ResolutionStringLiteral, false
		}
		return program.ResolutionUnknown, false
	case *ast.Ident:
		// Alias chain: `const A = B` resolves B in the same scope.
		return w.resolveInScope(e.Name, scope, file, depth)
	case *ast.CallExpr:
		// Soundness boundary: the resolver never evaluates function return
		// values.
		return program.ResolutionUnknown, false
	default:
		return program.ResolutionUnknown, false
	}
}

func (w *walk) resolveImport(imp *program.ImportBinding, fromFile *program.SourceFile, depth int) (program.Resolution, bool) {
	if depth >= MaxResolveHops {
		return program.ResolutionUnknown, true
	}
	if imp.Kind == program.ImportNamespace {
		// A namespace object is never a class or a string literal.
		return program.ResolutionUnknown, false
	}

	targetPath, ok := w.session().Host().ResolveModuleSpecifier(fromFile.Path, imp.Specifier)
	if !ok {
		return program.ResolutionUnknown, false
	}
	target, err := w.session().LoadFile(targetPath)
	if err != nil {
		return program.ResolutionUnknown, false
	}

	name := imp.ImportedName
	if imp.Kind == program.ImportDefault {
		name = "default"
	}
	return w.resolveInModule(name, target, depth+1)
}

// resolveInModule resolves an exported name inside a target module: first
// against its top-level scope, then through its export declarations.
func (w *walk) resolveInModule(name string, file *program.SourceFile, depth int) (program.Resolution, bool) {
	if cached, ok := w.session().CachedResolution(file.Path, name); ok {
		return cached, false
	}
	key := visitKey{program.NormalizePath(file.Path), name}
	if w.visiting[key] {
		return program.ResolutionUnknown, false
	}
	w.visiting[key] = true
	defer delete(w.visiting, key)

	if binding, ok := file.Scope.Lookup(name); ok {
		res, clipped := w.resolveBinding(binding, file.Scope, file, depth)
		if !clipped {
			w.session().StoreResolution(file.Path, name, res)
		}
		return res, clipped
	}

	// The name may be an alias of a local declaration, e.g.
	// `export { local as default }` with no `default` binding in scope.
	for _, export := range file.Exports {
		if export.Wildcard || export.From != "" || export.ExportedName != name {
			continue
		}
		if binding, ok := file.Scope.Lookup(export.LocalName); ok {
			res, clipped := w.resolveBinding(binding, file.Scope, file, depth)
			if !clipped {
				w.session().StoreResolution(file.Path, name, res)
			}
			return res, clipped
		}
	}

	res, clipped := w.resolveReexports(name, file, depth)
	if !clipped {
		w.session().StoreResolution(file.Path, name, res)
	}
	return res, clipped
}

// resolveReexports follows `export ... from` declarations: a named
// re-export of the exact name (following the local name, not the exported
// alias), or any wildcard re-export.
func (w *walk) resolveReexports(name string, file *program.SourceFile, depth int) (program.Resolution, bool) {
	if depth >= MaxResolveHops {
		return program.ResolutionUnknown, true
	}

	clippedAny := false
	for _, export := range file.Exports {
		if export.From == "" {
			continue
		}
		lookFor := ""
		if export.Wildcard {
			lookFor = name
		} else if export.ExportedName == name {
			lookFor = export.LocalName
		} else {
			continue
		}

		targetPath, ok := w.session().Host().ResolveModuleSpecifier(file.Path, export.From)
		if !ok {
			continue
		}
		target, err := w.session().LoadFile(targetPath)
		if err != nil {
			continue
		}
		res, clipped := w.resolveInModule(lookFor, target, depth+1)
		if res != program.ResolutionUnknown {
			return res, false
		}
		clippedAny = clippedAny || clipped
	}
	return program.ResolutionUnknown, clippedAny
}
