package hir

import (
	"fmt"

	"github.com/mica-lang/mica/internal/arena"
)

// FileID identifies one source file within a workspace.
type FileID uint32

// ModuleID identifies one module. Each file forms its own module; nesting is
// expressed through the resolver's module graph.
type ModuleID uint32

// File returns the file backing this module.
func (m ModuleID) File() FileID { return FileID(m) }

// Module returns the module formed by this file.
func (f FileID) Module() ModuleID { return ModuleID(f) }

// Local (file-relative) identities into the item tree's arenas.
type (
	LocalFunctionID   = arena.Idx[Function]
	LocalStructID     = arena.Idx[Struct]
	LocalTypeAliasID  = arena.Idx[TypeAlias]
	LocalConstID      = arena.Idx[Const]
	LocalFieldID      = arena.Idx[Field]
	LocalVisibilityID = arena.Idx[RawVisibility]
)

// FunctionID is the global identity of a function: the owning file plus the
// local index into that file's item tree.
type FunctionID struct {
	File  FileID
	Local LocalFunctionID
}

// StructID is the global identity of a struct.
type StructID struct {
	File  FileID
	Local LocalStructID
}

// TypeAliasID is the global identity of a type alias.
type TypeAliasID struct {
	File  FileID
	Local LocalTypeAliasID
}

// ConstID is the global identity of a constant.
type ConstID struct {
	File  FileID
	Local LocalConstID
}

// StructFieldID is the global identity of one struct field.
type StructFieldID struct {
	Parent StructID
	Local  LocalFieldID
}

// DefKind tags the variants of ItemDefinitionID.
type DefKind uint8

const (
	DefFunction DefKind = iota
	DefStruct
	DefTypeAlias
	DefConst
	DefPrimitive
	DefModule
)

func (k DefKind) String() string {
	switch k {
	case DefFunction:
		return "function"
	case DefStruct:
		return "struct"
	case DefTypeAlias:
		return "type alias"
	case DefConst:
		return "constant"
	case DefPrimitive:
		return "primitive type"
	case DefModule:
		return "module"
	default:
		return "unknown"
	}
}

// ItemDefinitionID is the tagged union of everything a name can resolve to.
// It is comparable and usable as a map key.
type ItemDefinitionID struct {
	Kind DefKind
	File FileID // owning file; zero for primitives
	Raw  uint32 // local arena index, primitive kind, or module number
}

func FunctionDefID(id FunctionID) ItemDefinitionID {
	return ItemDefinitionID{Kind: DefFunction, File: id.File, Raw: id.Local.Raw()}
}

func StructDefID(id StructID) ItemDefinitionID {
	return ItemDefinitionID{Kind: DefStruct, File: id.File, Raw: id.Local.Raw()}
}

func TypeAliasDefID(id TypeAliasID) ItemDefinitionID {
	return ItemDefinitionID{Kind: DefTypeAlias, File: id.File, Raw: id.Local.Raw()}
}

func ConstDefID(id ConstID) ItemDefinitionID {
	return ItemDefinitionID{Kind: DefConst, File: id.File, Raw: id.Local.Raw()}
}

func PrimitiveDefID(p PrimitiveType) ItemDefinitionID {
	return ItemDefinitionID{Kind: DefPrimitive, Raw: uint32(p)}
}

func ModuleDefID(m ModuleID) ItemDefinitionID {
	return ItemDefinitionID{Kind: DefModule, File: FileID(m), Raw: uint32(m)}
}

// AsFunction returns the FunctionID variant. Panics on kind mismatch; callers
// are expected to have checked Kind.
func (id ItemDefinitionID) AsFunction() FunctionID {
	if id.Kind != DefFunction {
		panic(fmt.Sprintf("hir: %s is not a function", id.Kind))
	}
	return FunctionID{File: id.File, Local: LocalFunctionID(id.Raw)}
}

// AsStruct returns the StructID variant. Panics on kind mismatch.
func (id ItemDefinitionID) AsStruct() StructID {
	if id.Kind != DefStruct {
		panic(fmt.Sprintf("hir: %s is not a struct", id.Kind))
	}
	return StructID{File: id.File, Local: LocalStructID(id.Raw)}
}

// AsTypeAlias returns the TypeAliasID variant. Panics on kind mismatch.
func (id ItemDefinitionID) AsTypeAlias() TypeAliasID {
	if id.Kind != DefTypeAlias {
		panic(fmt.Sprintf("hir: %s is not a type alias", id.Kind))
	}
	return TypeAliasID{File: id.File, Local: LocalTypeAliasID(id.Raw)}
}

// AsConst returns the ConstID variant. Panics on kind mismatch.
func (id ItemDefinitionID) AsConst() ConstID {
	if id.Kind != DefConst {
		panic(fmt.Sprintf("hir: %s is not a constant", id.Kind))
	}
	return ConstID{File: id.File, Local: LocalConstID(id.Raw)}
}

// AsPrimitive returns the PrimitiveType variant. Panics on kind mismatch.
func (id ItemDefinitionID) AsPrimitive() PrimitiveType {
	if id.Kind != DefPrimitive {
		panic(fmt.Sprintf("hir: %s is not a primitive type", id.Kind))
	}
	return PrimitiveType(id.Raw)
}
