package hir

// LowerModuleScope builds one module's ItemScope from its file's item tree.
//
// Definitions are added in declaration order. Name resolutions follow the
// duplicate-definition policy: the first declaration of a name is the
// canonical entry, later duplicates stay in the tree (and in Declarations)
// but do not replace the resolution.
func LowerModuleScope(db DefDB, module ModuleID) *ItemScope {
	tree := db.ItemTree(module.File())
	scope := NewItemScope()
	resolver := NewModuleResolver(db, module)

	resolved := make(map[Name]bool, len(tree.TopLevel))
	for _, item := range tree.TopLevel {
		def := definitionID(module.File(), item)
		scope.AddDefinition(def)

		name := tree.ItemName(item)
		if resolved[name] {
			continue // first-declared wins
		}
		resolved[name] = true

		vis := itemRawVisibility(tree, item).Resolve(resolver)
		scope.AddResolution(name, PerNsFromDefinition(def, vis, itemHasConstructor(tree, item)))
	}
	return scope
}

func definitionID(file FileID, item ModItem) ItemDefinitionID {
	switch item.Kind {
	case ItemKindFunction:
		return FunctionDefID(FunctionID{File: file, Local: LocalFunctionID(item.Raw)})
	case ItemKindStruct:
		return StructDefID(StructID{File: file, Local: LocalStructID(item.Raw)})
	case ItemKindTypeAlias:
		return TypeAliasDefID(TypeAliasID{File: file, Local: LocalTypeAliasID(item.Raw)})
	case ItemKindConst:
		return ConstDefID(ConstID{File: file, Local: LocalConstID(item.Raw)})
	default:
		panic("hir: unknown item kind")
	}
}

func itemRawVisibility(tree *ItemTree, item ModItem) RawVisibility {
	switch item.Kind {
	case ItemKindFunction:
		return tree.Visibility(tree.Function(LocalFunctionID(item.Raw)).Visibility)
	case ItemKindStruct:
		return tree.Visibility(tree.Struct(LocalStructID(item.Raw)).Visibility)
	case ItemKindTypeAlias:
		return tree.Visibility(tree.TypeAlias(LocalTypeAliasID(item.Raw)).Visibility)
	case ItemKindConst:
		return tree.Visibility(tree.Const(LocalConstID(item.Raw)).Visibility)
	default:
		panic("hir: unknown item kind")
	}
}

// itemHasConstructor reports whether the item's name also denotes a callable
// or constant value. Tuple and unit structs construct with call or bare-name
// syntax; record structs construct with literal syntax and contribute no
// value-namespace entry.
func itemHasConstructor(tree *ItemTree, item ModItem) bool {
	if item.Kind != ItemKindStruct {
		return false
	}
	return tree.Struct(LocalStructID(item.Raw)).Kind != StructKindRecord
}
