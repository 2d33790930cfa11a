package hir

import (
	"github.com/mica-lang/mica/internal/arena"
	"github.com/mica-lang/mica/internal/ast"
)

// TypeRefKind tags the structural forms a lowered type expression can take.
type TypeRefKind uint8

const (
	TypeRefPath  TypeRefKind = iota // a named type, e.g. `i32`
	TypeRefTuple                    // `(i32, bool)`; empty means unit
	TypeRefNever                    // `!`
	TypeRefFn                       // `fn(i32) -> bool`
	TypeRefEmpty                    // absent type position, e.g. omitted return type
	TypeRefError                    // unparseable or missing required type
)

// TypeRef is the structurally lowered form of a type expression. The two
// sentinels Empty and Error let lowering degrade instead of failing.
type TypeRef struct {
	Kind     TypeRefKind
	Path     Path      // TypeRefPath
	Elements []TypeRef // TypeRefTuple elements or TypeRefFn parameters
	Ret      *TypeRef  // TypeRefFn return type
}

func PathTypeRef(path Path) TypeRef { return TypeRef{Kind: TypeRefPath, Path: path} }
func EmptyTypeRef() TypeRef         { return TypeRef{Kind: TypeRefEmpty} }
func ErrorTypeRef() TypeRef         { return TypeRef{Kind: TypeRefError} }

// TypeRefFromAST lowers a syntactic type expression. A nil node lowers to the
// Error sentinel.
func TypeRefFromAST(node ast.Type) TypeRef {
	switch n := node.(type) {
	case nil:
		return ErrorTypeRef()
	case *ast.PathType:
		if len(n.Segments) == 0 {
			return ErrorTypeRef()
		}
		return PathTypeRef(Path{Segments: n.Segments})
	case *ast.TupleType:
		elements := make([]TypeRef, 0, len(n.Elements))
		for _, el := range n.Elements {
			elements = append(elements, TypeRefFromAST(el))
		}
		return TypeRef{Kind: TypeRefTuple, Elements: elements}
	case *ast.NeverType:
		return TypeRef{Kind: TypeRefNever}
	case *ast.FnPointerType:
		params := make([]TypeRef, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, TypeRefFromAST(p))
		}
		ret := EmptyTypeRef()
		if n.Ret != nil {
			ret = TypeRefFromAST(n.Ret)
		}
		return TypeRef{Kind: TypeRefFn, Elements: params, Ret: &ret}
	default:
		return ErrorTypeRef()
	}
}

// Equal reports structural equality of two type refs.
func (t TypeRef) Equal(other TypeRef) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TypeRefPath:
		if len(t.Path.Segments) != len(other.Path.Segments) {
			return false
		}
		for i, s := range t.Path.Segments {
			if other.Path.Segments[i] != s {
				return false
			}
		}
		return true
	case TypeRefTuple, TypeRefFn:
		if len(t.Elements) != len(other.Elements) {
			return false
		}
		for i, el := range t.Elements {
			if !el.Equal(other.Elements[i]) {
				return false
			}
		}
		if t.Kind == TypeRefFn {
			if (t.Ret == nil) != (other.Ret == nil) {
				return false
			}
			if t.Ret != nil && !t.Ret.Equal(*other.Ret) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// LocalTypeRefID identifies one type ref within a TypeRefMap.
type LocalTypeRefID = arena.Idx[TypeRef]

// TypeRefMap associates local type-ref identities with their structural form.
// It deliberately carries no syntax nodes: consumers can query type data
// without forcing a load of the syntax tree.
type TypeRefMap struct {
	refs arena.Arena[TypeRef]
}

// Get returns the structural form for id.
func (m *TypeRefMap) Get(id LocalTypeRefID) *TypeRef { return m.refs.Get(id) }

// Len returns the number of lowered type refs.
func (m *TypeRefMap) Len() int { return m.refs.Len() }

// Each calls f for every lowered type ref in allocation order.
func (m *TypeRefMap) Each(f func(LocalTypeRefID, *TypeRef)) { m.refs.Each(f) }

// TypeRefSourceMap associates the same identities with their originating
// syntax nodes. Kept separate from TypeRefMap so the semantic side stays
// independent of a live syntax tree.
type TypeRefSourceMap struct {
	nodes map[LocalTypeRefID]ast.Type
	ids   map[ast.Type]LocalTypeRefID
}

// Node returns the syntax node that produced id.
func (m *TypeRefSourceMap) Node(id LocalTypeRefID) (ast.Type, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// ID returns the type-ref identity lowered from node.
func (m *TypeRefSourceMap) ID(node ast.Type) (LocalTypeRefID, bool) {
	id, ok := m.ids[node]
	return id, ok
}

// TypeRefBuilder lowers syntactic type expressions, recording both the
// structural form and the source correlation.
type TypeRefBuilder struct {
	refs  arena.Arena[TypeRef]
	nodes map[LocalTypeRefID]ast.Type
	ids   map[ast.Type]LocalTypeRefID
}

func NewTypeRefBuilder() *TypeRefBuilder {
	return &TypeRefBuilder{
		nodes: make(map[LocalTypeRefID]ast.Type),
		ids:   make(map[ast.Type]LocalTypeRefID),
	}
}

// Alloc lowers node and returns its local identity. A nil node allocates the
// Error sentinel without source correlation.
func (b *TypeRefBuilder) Alloc(node ast.Type) LocalTypeRefID {
	id := b.refs.Alloc(TypeRefFromAST(node))
	if node != nil {
		b.nodes[id] = node
		b.ids[node] = id
	}
	return id
}

// AllocEmpty allocates the Empty sentinel for an absent type position.
func (b *TypeRefBuilder) AllocEmpty() LocalTypeRefID {
	return b.refs.Alloc(EmptyTypeRef())
}

// Finish returns the accumulated maps. The builder must not be reused.
func (b *TypeRefBuilder) Finish() (*TypeRefMap, *TypeRefSourceMap) {
	return &TypeRefMap{refs: b.refs}, &TypeRefSourceMap{nodes: b.nodes, ids: b.ids}
}
