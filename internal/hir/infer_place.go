package hir

// IsMutablePlace reports whether expr denotes an assignable, mutable memory
// location.
//
// A field projection is a mutable place iff its base is: mutability flows
// from the receiver, not from per-field annotations. A bare path is a
// mutable place iff it resolves, through value-namespace resolution, to a
// local binding declared mutable. Every other form is never a place.
func IsMutablePlace(resolver *Resolver, body *Body, expr ExprID) bool {
	switch e := body.Expr(expr); e.Kind {
	case ExprField:
		return IsMutablePlace(resolver, body, e.Base)
	case ExprPath:
		return isMutablePath(resolver, body, e.Path)
	default:
		return false
	}
}

func isMutablePath(resolver *Resolver, body *Body, path Path) bool {
	res := resolver.ResolveValuePath(path)
	if res.Kind != ValueResLocalBinding {
		return false
	}
	pat := body.Pat(res.Pat)
	return pat.Kind == PatBind && pat.Mode == BindingMutable
}

// InferenceResult is the per-function output of the inference layer that
// later stages consume. Only the place-expression portion is computed here;
// constraint solving lives outside this core.
type InferenceResult struct {
	// MutablePlaces records, for every assignment target in the body,
	// whether it was a mutable place.
	MutablePlaces map[ExprID]bool
}

// InferBody runs the body checks for fn. It walks every expression once and
// evaluates the place check for each assignment target.
func InferBody(db DefDB, fn FunctionID) *InferenceResult {
	body := db.Body(fn)
	resolver := NewBodyResolver(db, fn, body)

	result := &InferenceResult{MutablePlaces: make(map[ExprID]bool)}
	body.Exprs.Each(func(id ExprID, e *Expr) {
		if e.IsAssignment() {
			result.MutablePlaces[e.Lhs] = IsMutablePlace(resolver, body, e.Lhs)
		}
	})
	return result
}
