package hir

import (
	"fmt"

	"github.com/mica-lang/mica/internal/diagnostics"
	"github.com/mica-lang/mica/internal/token"
)

// ValidateFile runs every validator over one file's items and returns the
// merged diagnostics: duplicate definitions from the item tree, unresolved
// type references from the per-item data, and immutable-assignment problems
// from function bodies. Diagnostics accumulate; nothing aborts the pass.
func ValidateFile(db DefDB, file FileID) []*diagnostics.Diagnostic {
	tree := db.ItemTree(file)
	var out []*diagnostics.Diagnostic

	for _, diag := range tree.Diagnostics {
		out = append(out, lowerTreeDiagnostic(db, file, diag))
	}

	resolver := NewModuleResolver(db, file.Module())
	for _, item := range tree.TopLevel {
		switch item.Kind {
		case ItemKindFunction:
			fn := FunctionID{File: file, Local: LocalFunctionID(item.Raw)}
			data := db.FunctionData(fn)
			out = append(out, validateTypeRefs(resolver, data.TypeRefMap(), data.TypeRefSourceMap())...)
			out = append(out, validateBody(db, fn)...)
		case ItemKindStruct:
			s := StructID{File: file, Local: LocalStructID(item.Raw)}
			data := db.StructData(s)
			out = append(out, validateTypeRefs(resolver, data.TypeRefMap(), data.TypeRefSourceMap())...)
		case ItemKindTypeAlias:
			a := TypeAliasID{File: file, Local: LocalTypeAliasID(item.Raw)}
			data := db.TypeAliasData(a)
			out = append(out, validateTypeRefs(resolver, data.TypeRefMap(), data.TypeRefSourceMap())...)
		case ItemKindConst:
			c := ConstID{File: file, Local: LocalConstID(item.Raw)}
			data := db.ConstData(c)
			out = append(out, validateTypeRefs(resolver, data.TypeRefMap(), data.TypeRefSourceMap())...)
		}
	}
	return out
}

func lowerTreeDiagnostic(db DefDB, file FileID, diag ItemTreeDiagnostic) *diagnostics.Diagnostic {
	tree := db.ItemTree(file)
	tok := ItemSource(db, file, tree.ItemAstID(diag.Second)).Value.GetToken()
	return diagnostics.NewError(
		diagnostics.ErrS001,
		tok,
		fmt.Sprintf("the name `%s` is defined multiple times", diag.Name),
	)
}

// validateTypeRefs reports every path type ref that resolves to nothing in
// the type namespace. Tuple and fn-pointer refs are checked recursively
// through their own entries in the map, so a single pass over the map
// covers nested positions.
func validateTypeRefs(resolver *Resolver, refs *TypeRefMap, src *TypeRefSourceMap) []*diagnostics.Diagnostic {
	var out []*diagnostics.Diagnostic
	refs.Each(func(id LocalTypeRefID, ref *TypeRef) {
		out = append(out, validateTypeRef(resolver, src, id, *ref)...)
	})
	return out
}

func validateTypeRef(resolver *Resolver, src *TypeRefSourceMap, id LocalTypeRefID, ref TypeRef) []*diagnostics.Diagnostic {
	var out []*diagnostics.Diagnostic
	switch ref.Kind {
	case TypeRefPath:
		if _, ok := resolver.ResolveTypePath(ref.Path); !ok {
			out = append(out, diagnostics.NewError(
				diagnostics.ErrS002,
				typeRefToken(src, id),
				fmt.Sprintf("type `%s` does not exist", pathString(ref.Path)),
			))
		}
	case TypeRefTuple, TypeRefFn:
		// Nested refs were lowered inline rather than as separate map
		// entries, so recurse structurally and reuse the outer token.
		for _, el := range ref.Elements {
			out = append(out, validateTypeRef(resolver, src, id, el)...)
		}
		if ref.Kind == TypeRefFn && ref.Ret != nil {
			out = append(out, validateTypeRef(resolver, src, id, *ref.Ret)...)
		}
	}
	return out
}

// validateBody reports assignments whose target is not a mutable place.
func validateBody(db DefDB, fn FunctionID) []*diagnostics.Diagnostic {
	body := db.Body(fn)
	srcMap := db.BodySourceMap(fn)
	infer := db.Infer(fn)

	var out []*diagnostics.Diagnostic
	body.Exprs.Each(func(id ExprID, e *Expr) {
		if !e.IsAssignment() {
			return
		}
		if mutable, ok := infer.MutablePlaces[e.Lhs]; ok && !mutable {
			tok := token.Token{}
			if node, ok := srcMap.ExprNode(e.Lhs); ok {
				tok = node.GetToken()
			}
			out = append(out, diagnostics.NewError(
				diagnostics.ErrS003,
				tok,
				"cannot assign: expression is not a mutable place",
			))
		}
	})
	return out
}

func typeRefToken(src *TypeRefSourceMap, id LocalTypeRefID) token.Token {
	if node, ok := src.Node(id); ok {
		return node.GetToken()
	}
	return token.Token{}
}

func pathString(p Path) string {
	out := ""
	for i, seg := range p.Segments {
		if i > 0 {
			out += "."
		}
		out += seg
	}
	return out
}
