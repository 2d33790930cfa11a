package hir

import (
	"github.com/mica-lang/mica/internal/arena"
	"github.com/mica-lang/mica/internal/ast"
)

// lowerContext converts one file's syntax tree to an ItemTree in a single
// top-to-bottom pass. The builder never fails: malformed items are dropped or
// degrade to sentinel type refs, and the result is always a well-formed tree.
type lowerContext struct {
	file        FileID
	idMap       *ast.IDMap
	data        ItemTreeData
	diagnostics []ItemTreeDiagnostic
}

// LowerItemTree builds the item tree for one file.
func LowerItemTree(file FileID, syntax *ast.File, idMap *ast.IDMap) *ItemTree {
	ctx := &lowerContext{file: file, idMap: idMap}
	return ctx.lowerFileItems(syntax)
}

func (c *lowerContext) lowerFileItems(syntax *ast.File) *ItemTree {
	var topLevel []ModItem
	for _, item := range syntax.Items {
		if mod, ok := c.lowerItem(item); ok {
			topLevel = append(topLevel, mod)
		}
	}

	// Duplicate check: one scan keyed by declared name. The first
	// declaration stays canonical, every later one is flagged, none are
	// removed from the tree.
	first := make(map[Name]ModItem, len(topLevel))
	for _, item := range topLevel {
		name := c.itemName(item)
		if prev, ok := first[name]; ok {
			c.diagnostics = append(c.diagnostics, ItemTreeDiagnostic{
				Kind:   DiagDuplicateDefinition,
				Name:   name,
				First:  prev,
				Second: item,
			})
		} else {
			first[name] = item
		}
	}

	return &ItemTree{
		File:        c.file,
		TopLevel:    topLevel,
		Data:        c.data,
		Diagnostics: c.diagnostics,
	}
}

func (c *lowerContext) lowerItem(item ast.Item) (ModItem, bool) {
	switch node := item.(type) {
	case *ast.FunctionDef:
		if id, ok := c.lowerFunction(node); ok {
			return FunctionModItem(id), true
		}
	case *ast.StructDef:
		if id, ok := c.lowerStruct(node); ok {
			return StructModItem(id), true
		}
	case *ast.TypeAliasDef:
		if id, ok := c.lowerTypeAlias(node); ok {
			return TypeAliasModItem(id), true
		}
	case *ast.ConstDef:
		if id, ok := c.lowerConst(node); ok {
			return ConstModItem(id), true
		}
	}
	return ModItem{}, false
}

func (c *lowerContext) lowerFunction(node *ast.FunctionDef) (LocalFunctionID, bool) {
	// A nameless declaration cannot enter the namespace; the parser already
	// recorded the syntax error.
	if node.Name == nil {
		return 0, false
	}

	params := make([]TypeRef, 0, len(node.Params))
	for _, param := range node.Params {
		params = append(params, c.lowerTypeRefOpt(param.Ascribed))
	}

	retType := EmptyTypeRef()
	if node.RetType != nil {
		retType = TypeRefFromAST(node.RetType)
	}

	id := c.data.Functions.Alloc(Function{
		Name:       Name(node.Name.Value),
		Visibility: c.lowerVisibility(node.Vis),
		IsExtern:   node.IsExtern,
		Params:     params,
		RetType:    retType,
		AstID:      c.astID(node),
	})
	return id, true
}

func (c *lowerContext) lowerStruct(node *ast.StructDef) (LocalStructID, bool) {
	if node.Name == nil {
		return 0, false
	}

	var kind StructDefKind
	var fields Fields
	switch node.Kind {
	case ast.StructRecord:
		kind = StructKindRecord
		fields = Fields{Kind: FieldsRecord, Range: c.lowerRecordFields(node.RecordFields)}
	case ast.StructTuple:
		kind = StructKindTuple
		fields = Fields{Kind: FieldsTuple, Range: c.lowerTupleFields(node.TupleFields)}
	case ast.StructUnit:
		kind = StructKindUnit
		fields = Fields{Kind: FieldsUnit}
	}

	memory := MemoryKindGC
	if node.Memory == ast.MemoryValue {
		memory = MemoryKindValue
	}

	id := c.data.Structs.Alloc(Struct{
		Name:       Name(node.Name.Value),
		Visibility: c.lowerVisibility(node.Vis),
		Kind:       kind,
		Memory:     memory,
		Fields:     fields,
		AstID:      c.astID(node),
	})
	return id, true
}

// lowerRecordFields lowers named fields into the shared field arena,
// capturing the contiguous [start, end) range.
func (c *lowerContext) lowerRecordFields(fields []*ast.RecordFieldDef) arena.IdxRange[Field] {
	start := c.data.Fields.NextIdx()
	for _, field := range fields {
		if field.Name == nil {
			continue
		}
		c.data.Fields.Alloc(Field{
			Name:    Name(field.Name.Value),
			TypeRef: c.lowerTypeRefOpt(field.Ascribed),
		})
	}
	end := c.data.Fields.NextIdx()
	return arena.NewIdxRange(start, end)
}

// lowerTupleFields lowers positional fields, synthesizing their names.
func (c *lowerContext) lowerTupleFields(fields []*ast.TupleFieldDef) arena.IdxRange[Field] {
	start := c.data.Fields.NextIdx()
	for i, field := range fields {
		c.data.Fields.Alloc(Field{
			Name:    TupleFieldName(i),
			TypeRef: c.lowerTypeRefOpt(field.TypeRef),
		})
	}
	end := c.data.Fields.NextIdx()
	return arena.NewIdxRange(start, end)
}

func (c *lowerContext) lowerTypeAlias(node *ast.TypeAliasDef) (LocalTypeAliasID, bool) {
	if node.Name == nil {
		return 0, false
	}
	id := c.data.TypeAliases.Alloc(TypeAlias{
		Name:       Name(node.Name.Value),
		Visibility: c.lowerVisibility(node.Vis),
		TypeRef:    c.lowerTypeRefOpt(node.TypeRef),
		AstID:      c.astID(node),
	})
	return id, true
}

func (c *lowerContext) lowerConst(node *ast.ConstDef) (LocalConstID, bool) {
	if node.Name == nil {
		return 0, false
	}
	id := c.data.Consts.Alloc(Const{
		Name:       Name(node.Name.Value),
		Visibility: c.lowerVisibility(node.Vis),
		TypeRef:    c.lowerTypeRefOpt(node.Ascribed),
		AstID:      c.astID(node),
	})
	return id, true
}

func (c *lowerContext) lowerTypeRefOpt(node ast.Type) TypeRef {
	if node == nil {
		return ErrorTypeRef()
	}
	return TypeRefFromAST(node)
}

func (c *lowerContext) lowerVisibility(marker *ast.VisibilityMarker) LocalVisibilityID {
	return c.data.Visibilities.Alloc(RawVisibilityFromAST(marker))
}

func (c *lowerContext) astID(item ast.Item) ast.ItemID {
	id, ok := c.idMap.ID(item)
	if !ok {
		// Every lowered item came out of the same file walk that built the
		// id map; a miss means the builder and the source layer diverged.
		panic("hir: item missing from syntax id map")
	}
	return id
}

func (c *lowerContext) itemName(item ModItem) Name {
	switch item.Kind {
	case ItemKindFunction:
		return c.data.Functions.Get(LocalFunctionID(item.Raw)).Name
	case ItemKindStruct:
		return c.data.Structs.Get(LocalStructID(item.Raw)).Name
	case ItemKindTypeAlias:
		return c.data.TypeAliases.Get(LocalTypeAliasID(item.Raw)).Name
	case ItemKindConst:
		return c.data.Consts.Get(LocalConstID(item.Raw)).Name
	default:
		return MissingName
	}
}
