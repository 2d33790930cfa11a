package hir

import (
	"fmt"

	"github.com/mica-lang/mica/internal/ast"
)

// InFile pairs a value with the file it came from. It is always the result
// of an on-demand mapping query, never stored inside semantic entities.
type InFile[T any] struct {
	File  FileID
	Value T
}

// ItemSource re-derives the syntax node of a lowered item by replaying the
// file's deterministic id walk. The semantic side holds only the ast.ItemID;
// the node itself is recomputed through the query layer's cache.
func ItemSource(db DefDB, file FileID, id ast.ItemID) InFile[ast.Item] {
	node := db.ASTIDMap(file).Node(id)
	if node == nil {
		panic(fmt.Sprintf("hir: no syntax node for item id %d in file %d", id, file))
	}
	return InFile[ast.Item]{File: file, Value: node}
}

// FunctionSource returns the declaration node of fn.
func FunctionSource(db DefDB, fn FunctionID) InFile[*ast.FunctionDef] {
	tree := db.ItemTree(fn.File)
	src := ItemSource(db, fn.File, tree.Function(fn.Local).AstID)
	node, ok := src.Value.(*ast.FunctionDef)
	if !ok {
		panic("hir: function item mapped to non-function syntax node")
	}
	return InFile[*ast.FunctionDef]{File: src.File, Value: node}
}

// StructSource returns the declaration node of s.
func StructSource(db DefDB, s StructID) InFile[*ast.StructDef] {
	tree := db.ItemTree(s.File)
	src := ItemSource(db, s.File, tree.Struct(s.Local).AstID)
	node, ok := src.Value.(*ast.StructDef)
	if !ok {
		panic("hir: struct item mapped to non-struct syntax node")
	}
	return InFile[*ast.StructDef]{File: src.File, Value: node}
}

// TypeAliasSource returns the declaration node of a.
func TypeAliasSource(db DefDB, a TypeAliasID) InFile[*ast.TypeAliasDef] {
	tree := db.ItemTree(a.File)
	src := ItemSource(db, a.File, tree.TypeAlias(a.Local).AstID)
	node, ok := src.Value.(*ast.TypeAliasDef)
	if !ok {
		panic("hir: type alias item mapped to non-alias syntax node")
	}
	return InFile[*ast.TypeAliasDef]{File: src.File, Value: node}
}

// ConstSource returns the declaration node of c.
func ConstSource(db DefDB, c ConstID) InFile[*ast.ConstDef] {
	tree := db.ItemTree(c.File)
	src := ItemSource(db, c.File, tree.Const(c.Local).AstID)
	node, ok := src.Value.(*ast.ConstDef)
	if !ok {
		panic("hir: constant item mapped to non-constant syntax node")
	}
	return InFile[*ast.ConstDef]{File: src.File, Value: node}
}

// StructFieldSource locates the syntax node of one struct field by zipping
// the lowered field order against the live syntax field list. Lowering order
// and source order agree by construction; a mismatch is an internal
// consistency bug and panics rather than producing a diagnostic.
func StructFieldSource(db DefDB, field StructFieldID) InFile[ast.Node] {
	tree := db.ItemTree(field.Parent.File)
	strukt := tree.Struct(field.Parent.Local)
	src := StructSource(db, field.Parent)

	if !strukt.Fields.Range.Contains(field.Local) {
		panic("hir: field id outside its struct's field range")
	}
	offset := int(field.Local - strukt.Fields.Range.Start)
	lowered := tree.Field(field.Local)

	switch strukt.Fields.Kind {
	case FieldsRecord:
		// Zip in order, skipping nameless syntax fields exactly as the
		// builder did.
		i := 0
		for _, node := range src.Value.RecordFields {
			if node.Name == nil {
				continue
			}
			if i == offset {
				if Name(node.Name.Value) != lowered.Name {
					panic(fmt.Sprintf("hir: lowered field %q does not match syntax field %q", lowered.Name, node.Name.Value))
				}
				return InFile[ast.Node]{File: src.File, Value: node}
			}
			i++
		}
		panic(fmt.Sprintf("hir: record field %q has no matching syntax node", lowered.Name))
	case FieldsTuple:
		nodes := src.Value.TupleFields
		if offset >= len(nodes) {
			panic(fmt.Sprintf("hir: tuple field %d out of range of %d syntax fields", offset, len(nodes)))
		}
		return InFile[ast.Node]{File: src.File, Value: nodes[offset]}
	default:
		panic("hir: unit struct has no fields")
	}
}
