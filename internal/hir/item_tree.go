package hir

import (
	"github.com/mica-lang/mica/internal/arena"
	"github.com/mica-lang/mica/internal/ast"
)

// ItemKind tags the variants of ModItem.
type ItemKind uint8

const (
	ItemKindFunction ItemKind = iota
	ItemKindStruct
	ItemKindTypeAlias
	ItemKindConst
)

// ModItem references one top-level item of an item tree. It is a tagged
// union over the four item kinds, comparable and usable as a map key.
type ModItem struct {
	Kind ItemKind
	Raw  uint32 // index into the kind-specific arena
}

func FunctionModItem(id LocalFunctionID) ModItem {
	return ModItem{Kind: ItemKindFunction, Raw: id.Raw()}
}

func StructModItem(id LocalStructID) ModItem {
	return ModItem{Kind: ItemKindStruct, Raw: id.Raw()}
}

func TypeAliasModItem(id LocalTypeAliasID) ModItem {
	return ModItem{Kind: ItemKindTypeAlias, Raw: id.Raw()}
}

func ConstModItem(id LocalConstID) ModItem {
	return ModItem{Kind: ItemKindConst, Raw: id.Raw()}
}

// Function is the item-tree record of a function declaration.
type Function struct {
	Name       Name
	Visibility LocalVisibilityID
	IsExtern   bool
	Params     []TypeRef
	RetType    TypeRef // Empty when no `->` clause is present
	AstID      ast.ItemID
}

// StructDefKind mirrors the syntactic struct flavor.
type StructDefKind uint8

const (
	StructKindRecord StructDefKind = iota
	StructKindTuple
	StructKindUnit
)

// StructMemoryKind is the lowered memory specifier of a struct.
type StructMemoryKind uint8

const (
	MemoryKindGC StructMemoryKind = iota
	MemoryKindValue
)

// Struct is the item-tree record of a struct declaration.
type Struct struct {
	Name       Name
	Visibility LocalVisibilityID
	Kind       StructDefKind
	Memory     StructMemoryKind
	Fields     Fields
	AstID      ast.ItemID
}

// TypeAlias is the item-tree record of a type alias declaration.
type TypeAlias struct {
	Name       Name
	Visibility LocalVisibilityID
	TypeRef    TypeRef // Error when the right-hand side is missing
	AstID      ast.ItemID
}

// Const is the item-tree record of a constant declaration.
type Const struct {
	Name       Name
	Visibility LocalVisibilityID
	TypeRef    TypeRef // Error when the ascription is missing
	AstID      ast.ItemID
}

// Field is one lowered struct field: a name plus a lowered type reference.
// Tuple fields carry synthesized positional names.
type Field struct {
	Name    Name
	TypeRef TypeRef
}

// FieldsKind tags the variants of Fields.
type FieldsKind uint8

const (
	FieldsRecord FieldsKind = iota
	FieldsTuple
	FieldsUnit
)

// Fields describes the fields of one struct: named, positional, or none.
// Record and Tuple carry a contiguous range into the shared field arena;
// ranges of sibling structs never overlap because field allocation during
// lowering is sequential.
type Fields struct {
	Kind  FieldsKind
	Range arena.IdxRange[Field] // empty for FieldsUnit
}

// ItemTreeData aggregates one arena per item kind.
type ItemTreeData struct {
	Functions    arena.Arena[Function]
	Structs      arena.Arena[Struct]
	TypeAliases  arena.Arena[TypeAlias]
	Consts       arena.Arena[Const]
	Fields       arena.Arena[Field]
	Visibilities arena.Arena[RawVisibility]
}

// ItemTree is the flat, arena-backed table of one file's top-level
// declarations plus the diagnostics produced while building it. It is
// immutable after construction and cached by the query layer.
type ItemTree struct {
	File        FileID
	TopLevel    []ModItem
	Data        ItemTreeData
	Diagnostics []ItemTreeDiagnostic
}

// Function returns the record for a local function id.
func (t *ItemTree) Function(id LocalFunctionID) *Function { return t.Data.Functions.Get(id) }

// Struct returns the record for a local struct id.
func (t *ItemTree) Struct(id LocalStructID) *Struct { return t.Data.Structs.Get(id) }

// TypeAlias returns the record for a local type alias id.
func (t *ItemTree) TypeAlias(id LocalTypeAliasID) *TypeAlias { return t.Data.TypeAliases.Get(id) }

// Const returns the record for a local constant id.
func (t *ItemTree) Const(id LocalConstID) *Const { return t.Data.Consts.Get(id) }

// Field returns the record for a local field id.
func (t *ItemTree) Field(id LocalFieldID) *Field { return t.Data.Fields.Get(id) }

// Visibility returns the raw visibility for a local visibility id.
func (t *ItemTree) Visibility(id LocalVisibilityID) RawVisibility {
	return *t.Data.Visibilities.Get(id)
}

// ItemName returns the declared name of any top-level item.
func (t *ItemTree) ItemName(item ModItem) Name {
	switch item.Kind {
	case ItemKindFunction:
		return t.Function(LocalFunctionID(item.Raw)).Name
	case ItemKindStruct:
		return t.Struct(LocalStructID(item.Raw)).Name
	case ItemKindTypeAlias:
		return t.TypeAlias(LocalTypeAliasID(item.Raw)).Name
	case ItemKindConst:
		return t.Const(LocalConstID(item.Raw)).Name
	default:
		return MissingName
	}
}

// ItemAstID returns the reproducible syntax identifier of any top-level item.
func (t *ItemTree) ItemAstID(item ModItem) ast.ItemID {
	switch item.Kind {
	case ItemKindFunction:
		return t.Function(LocalFunctionID(item.Raw)).AstID
	case ItemKindStruct:
		return t.Struct(LocalStructID(item.Raw)).AstID
	case ItemKindTypeAlias:
		return t.TypeAlias(LocalTypeAliasID(item.Raw)).AstID
	case ItemKindConst:
		return t.Const(LocalConstID(item.Raw)).AstID
	default:
		panic("hir: unknown item kind")
	}
}

// ItemTreeDiagnosticKind tags tree-level diagnostics.
type ItemTreeDiagnosticKind uint8

const (
	// DiagDuplicateDefinition reports a top-level name declared more than
	// once. The first declaration stays canonical; none are removed.
	DiagDuplicateDefinition ItemTreeDiagnosticKind = iota
)

// ItemTreeDiagnostic is one problem detected while building the tree.
type ItemTreeDiagnostic struct {
	Kind   ItemTreeDiagnosticKind
	Name   Name
	First  ModItem
	Second ModItem
}
