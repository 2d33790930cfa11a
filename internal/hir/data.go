package hir

// Per-item data records. Each is lowered on demand from the item's syntax
// node with a fresh TypeRefBuilder, so consumers get local type-ref
// identities plus a source map for diagnostics, while the item tree itself
// stays small.

// FunctionData is the lowered signature of one function.
type FunctionData struct {
	Name       Name
	Visibility RawVisibility
	IsExtern   bool
	Params     []LocalTypeRefID
	RetType    LocalTypeRefID

	typeRefs   *TypeRefMap
	typeRefSrc *TypeRefSourceMap
}

func (d *FunctionData) TypeRefMap() *TypeRefMap             { return d.typeRefs }
func (d *FunctionData) TypeRefSourceMap() *TypeRefSourceMap { return d.typeRefSrc }

// LowerFunctionData lowers the signature of fn from its source node.
func LowerFunctionData(db DefDB, fn FunctionID) *FunctionData {
	tree := db.ItemTree(fn.File)
	item := tree.Function(fn.Local)
	node := FunctionSource(db, fn).Value

	builder := NewTypeRefBuilder()
	params := make([]LocalTypeRefID, 0, len(node.Params))
	for _, param := range node.Params {
		params = append(params, builder.Alloc(param.Ascribed))
	}
	ret := builder.AllocEmpty()
	if node.RetType != nil {
		ret = builder.Alloc(node.RetType)
	}
	refs, src := builder.Finish()

	return &FunctionData{
		Name:       item.Name,
		Visibility: tree.Visibility(item.Visibility),
		IsExtern:   item.IsExtern,
		Params:     params,
		RetType:    ret,
		typeRefs:   refs,
		typeRefSrc: src,
	}
}

// StructFieldData is one lowered field of a struct.
type StructFieldData struct {
	ID      StructFieldID
	Name    Name
	TypeRef LocalTypeRefID
}

// StructData is the lowered shape of one struct.
type StructData struct {
	Name       Name
	Visibility RawVisibility
	Kind       StructDefKind
	Memory     StructMemoryKind
	Fields     []StructFieldData

	typeRefs   *TypeRefMap
	typeRefSrc *TypeRefSourceMap
}

func (d *StructData) TypeRefMap() *TypeRefMap             { return d.typeRefs }
func (d *StructData) TypeRefSourceMap() *TypeRefSourceMap { return d.typeRefSrc }

// Field returns the lowered field with the given name.
func (d *StructData) Field(name Name) (StructFieldData, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return StructFieldData{}, false
}

// LowerStructData lowers the shape of s from its source node.
func LowerStructData(db DefDB, s StructID) *StructData {
	tree := db.ItemTree(s.File)
	item := tree.Struct(s.Local)
	node := StructSource(db, s).Value

	builder := NewTypeRefBuilder()
	fields := make([]StructFieldData, 0, item.Fields.Range.Len())

	switch item.Fields.Kind {
	case FieldsRecord:
		local := item.Fields.Range.Start
		for _, fieldNode := range node.RecordFields {
			if fieldNode.Name == nil {
				continue
			}
			fields = append(fields, StructFieldData{
				ID:      StructFieldID{Parent: s, Local: local},
				Name:    Name(fieldNode.Name.Value),
				TypeRef: builder.Alloc(fieldNode.Ascribed),
			})
			local++
		}
	case FieldsTuple:
		local := item.Fields.Range.Start
		for i, fieldNode := range node.TupleFields {
			fields = append(fields, StructFieldData{
				ID:      StructFieldID{Parent: s, Local: local},
				Name:    TupleFieldName(i),
				TypeRef: builder.Alloc(fieldNode.TypeRef),
			})
			local++
		}
	}

	refs, src := builder.Finish()
	return &StructData{
		Name:       item.Name,
		Visibility: tree.Visibility(item.Visibility),
		Kind:       item.Kind,
		Memory:     item.Memory,
		Fields:     fields,
		typeRefs:   refs,
		typeRefSrc: src,
	}
}

// TypeAliasData is the lowered right-hand side of one type alias.
type TypeAliasData struct {
	Name       Name
	Visibility RawVisibility
	TypeRef    LocalTypeRefID

	typeRefs   *TypeRefMap
	typeRefSrc *TypeRefSourceMap
}

func (d *TypeAliasData) TypeRefMap() *TypeRefMap             { return d.typeRefs }
func (d *TypeAliasData) TypeRefSourceMap() *TypeRefSourceMap { return d.typeRefSrc }

// LowerTypeAliasData lowers alias a from its source node.
func LowerTypeAliasData(db DefDB, a TypeAliasID) *TypeAliasData {
	tree := db.ItemTree(a.File)
	item := tree.TypeAlias(a.Local)
	node := TypeAliasSource(db, a).Value

	builder := NewTypeRefBuilder()
	ref := builder.Alloc(node.TypeRef)
	refs, src := builder.Finish()

	return &TypeAliasData{
		Name:       item.Name,
		Visibility: tree.Visibility(item.Visibility),
		TypeRef:    ref,
		typeRefs:   refs,
		typeRefSrc: src,
	}
}

// ConstData is the lowered ascription of one constant.
type ConstData struct {
	Name       Name
	Visibility RawVisibility
	TypeRef    LocalTypeRefID

	typeRefs   *TypeRefMap
	typeRefSrc *TypeRefSourceMap
}

func (d *ConstData) TypeRefMap() *TypeRefMap             { return d.typeRefs }
func (d *ConstData) TypeRefSourceMap() *TypeRefSourceMap { return d.typeRefSrc }

// LowerConstData lowers constant c from its source node.
func LowerConstData(db DefDB, c ConstID) *ConstData {
	tree := db.ItemTree(c.File)
	item := tree.Const(c.Local)
	node := ConstSource(db, c).Value

	builder := NewTypeRefBuilder()
	ref := builder.Alloc(node.Ascribed)
	refs, src := builder.Finish()

	return &ConstData{
		Name:       item.Name,
		Visibility: tree.Visibility(item.Visibility),
		TypeRef:    ref,
		typeRefs:   refs,
		typeRefSrc: src,
	}
}
