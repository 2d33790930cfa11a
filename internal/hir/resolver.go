package hir

// Resolver answers name lookups against a chain of scopes: innermost body
// bindings, then the module's item scope, then the process-wide builtin
// scope. Resolvers are cheap, immutable values built per query.
type Resolver struct {
	db     DefDB
	module ModuleID
	body   *Body            // nil outside function bodies
	locals map[Name]PatID   // body bindings, last binding of a name wins
}

// NewModuleResolver creates a resolver for a module's top level.
func NewModuleResolver(db DefDB, module ModuleID) *Resolver {
	return &Resolver{db: db, module: module}
}

// NewBodyResolver creates a resolver for positions inside a function body.
// Parameter bindings and let bindings are visible; a name bound more than
// once resolves to its latest binding.
func NewBodyResolver(db DefDB, fn FunctionID, body *Body) *Resolver {
	r := &Resolver{db: db, module: fn.File.Module(), body: body}
	r.locals = make(map[Name]PatID)
	for _, pat := range body.Params {
		r.bind(pat)
	}
	r.collectBindings(body.Root)
	return r
}

func (r *Resolver) collectBindings(expr ExprID) {
	e := r.body.Expr(expr)
	if e.Kind != ExprBlock {
		return
	}
	for _, stmt := range e.Statements {
		if stmt.Kind == StmtLet {
			r.bind(stmt.Pat)
		}
	}
}

func (r *Resolver) bind(pat PatID) {
	p := r.body.Pat(pat)
	if p.Kind == PatBind {
		r.locals[p.Name] = pat
	}
}

// Module returns the module this resolver is anchored to.
func (r *Resolver) Module() ModuleID { return r.module }

// ValueResKind tags value-namespace resolution results.
type ValueResKind uint8

const (
	ValueResNone ValueResKind = iota
	ValueResLocalBinding
	ValueResItem
)

// ValueResolution is the result of resolving a path in the value namespace.
type ValueResolution struct {
	Kind ValueResKind
	Pat  PatID     // ValueResLocalBinding
	Item NamedItem // ValueResItem
}

// ResolveValuePath resolves a path through the value namespace: local
// bindings first, then module items, then nothing (builtins populate only
// the type namespace). An empty result is valid and silent.
func (r *Resolver) ResolveValuePath(path Path) ValueResolution {
	name, ok := path.AsName()
	if !ok {
		return ValueResolution{}
	}
	if r.locals != nil {
		if pat, ok := r.locals[name]; ok {
			return ValueResolution{Kind: ValueResLocalBinding, Pat: pat}
		}
	}
	perNs := r.db.ModuleScope(r.module).Get(name)
	if perNs.Values != nil {
		return ValueResolution{Kind: ValueResItem, Item: *perNs.Values}
	}
	return ValueResolution{}
}

// ResolveTypePath resolves a path through the type namespace: the module's
// scope first, falling back to the builtin primitive scope.
func (r *Resolver) ResolveTypePath(path Path) (NamedItem, bool) {
	name, ok := path.AsName()
	if !ok {
		return NamedItem{}, false
	}
	perNs := r.db.ModuleScope(r.module).Get(name)
	if perNs.Types == nil {
		perNs = perNs.Or(BuiltinScope()[name])
	}
	if perNs.Types != nil {
		return *perNs.Types, true
	}
	return NamedItem{}, false
}

// ResolveName answers a combined dual-namespace lookup, with builtin
// fallback in the type namespace.
func (r *Resolver) ResolveName(name Name) PerNs[NamedItem] {
	perNs := r.db.ModuleScope(r.module).Get(name)
	if perNs.Types == nil {
		perNs = perNs.Or(BuiltinScope()[name])
	}
	return perNs
}
