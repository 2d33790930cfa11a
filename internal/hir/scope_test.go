package hir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mica-lang/mica/internal/hir"
)

func TestModuleScopeNamespaceClassification(t *testing.T) {
	d, file := newTestDB(t, `
fn compute() {}
struct Record { a: i32 }
struct Pair(i32, i32);
struct Marker;
type Meters = f64;
const MAX: i32 = 255;
`)
	scope := d.ModuleScope(file.Module())

	// Functions live in the value namespace only.
	fn := scope.Get("compute")
	assert.Nil(t, fn.Types)
	require.NotNil(t, fn.Values)
	assert.Equal(t, hir.DefFunction, fn.Values.ID.Kind)

	// Record structs have no constructor: type namespace only.
	record := scope.Get("Record")
	require.NotNil(t, record.Types)
	assert.Nil(t, record.Values)

	// Tuple and unit structs carry a constructor: both namespaces, same
	// identity.
	pair := scope.Get("Pair")
	require.NotNil(t, pair.Types)
	require.NotNil(t, pair.Values)
	assert.Equal(t, pair.Types.ID, pair.Values.ID)

	marker := scope.Get("Marker")
	require.NotNil(t, marker.Types)
	require.NotNil(t, marker.Values)

	// Aliases and constants are type-namespace entries.
	alias := scope.Get("Meters")
	require.NotNil(t, alias.Types)
	assert.Nil(t, alias.Values)

	c := scope.Get("MAX")
	require.NotNil(t, c.Types)
	assert.Equal(t, hir.DefConst, c.Types.ID.Kind)
}

func TestModuleScopeUnknownNameIsSilent(t *testing.T) {
	d, file := newTestDB(t, `fn f() {}`)
	scope := d.ModuleScope(file.Module())

	res := scope.Get("nothing")
	assert.True(t, res.IsNone())
}

func TestModuleScopeFirstDeclarationWins(t *testing.T) {
	d, file := newTestDB(t, `
struct Foo { a: i32 }
fn Foo() {}
`)
	scope := d.ModuleScope(file.Module())

	// The struct declared first stays the canonical resolution; the
	// duplicate function does not claim the value namespace.
	res := scope.Get("Foo")
	require.NotNil(t, res.Types)
	assert.Equal(t, hir.DefStruct, res.Types.ID.Kind)
	assert.Nil(t, res.Values)

	// Both items still appear in declaration order.
	defs := scope.Declarations()
	require.Len(t, defs, 2)
	assert.Equal(t, hir.DefStruct, defs[0].Kind)
	assert.Equal(t, hir.DefFunction, defs[1].Kind)
}

func TestModuleScopeVisibility(t *testing.T) {
	d, file := newTestDB(t, `
pub struct Open { a: i32 }
struct Closed { a: i32 }
`)
	scope := d.ModuleScope(file.Module())

	open := scope.Get("Open")
	require.NotNil(t, open.Types)
	assert.True(t, open.Types.Vis.IsPublic())

	closed := scope.Get("Closed")
	require.NotNil(t, closed.Types)
	assert.False(t, closed.Types.Vis.IsPublic())
}

func TestItemScopeResolutionLastWriterWins(t *testing.T) {
	scope := hir.NewItemScope()

	a := hir.NamedItem{ID: hir.FunctionDefID(hir.FunctionID{File: 0, Local: 0})}
	b := hir.NamedItem{ID: hir.FunctionDefID(hir.FunctionID{File: 0, Local: 1})}

	scope.AddResolution("f", hir.ValuesPerNs(a))
	scope.AddResolution("f", hir.ValuesPerNs(b))

	res := scope.Get("f")
	require.NotNil(t, res.Values)
	assert.Equal(t, b.ID, res.Values.ID)
}

func TestBuiltinScopeCoversPrimitives(t *testing.T) {
	scope := hir.BuiltinScope()

	for _, prim := range hir.AllPrimitives() {
		res, ok := scope[prim.Name()]
		require.True(t, ok, "primitive %s missing", prim.Name())
		require.NotNil(t, res.Types)
		assert.Equal(t, hir.DefPrimitive, res.Types.ID.Kind)
		assert.Equal(t, prim, res.Types.ID.AsPrimitive())
		assert.True(t, res.Types.Vis.IsPublic())
		assert.Nil(t, res.Values)
	}

	// Repeated calls return the same shared table.
	again := hir.BuiltinScope()
	assert.Equal(t, len(scope), len(again))
}

func TestResolverTypePathBuiltinFallback(t *testing.T) {
	d, file := newTestDB(t, `struct i32 { v: i64 }`)
	resolver := hir.NewModuleResolver(d, file.Module())

	// A module definition shadows the builtin of the same name.
	item, ok := resolver.ResolveTypePath(hir.PathFromName("i32"))
	require.True(t, ok)
	assert.Equal(t, hir.DefStruct, item.ID.Kind)

	// Unshadowed primitives fall through to the builtin scope.
	item, ok = resolver.ResolveTypePath(hir.PathFromName("f64"))
	require.True(t, ok)
	assert.Equal(t, hir.DefPrimitive, item.ID.Kind)

	_, ok = resolver.ResolveTypePath(hir.PathFromName("Missing"))
	assert.False(t, ok)
}

func TestResolverMultiSegmentPathsUnresolved(t *testing.T) {
	d, file := newTestDB(t, `struct Point { x: f64 }`)
	resolver := hir.NewModuleResolver(d, file.Module())

	_, ok := resolver.ResolveTypePath(hir.Path{Segments: []string{"geometry", "Point"}})
	assert.False(t, ok)

	res := resolver.ResolveValuePath(hir.Path{Segments: []string{"geometry", "ORIGIN"}})
	assert.Equal(t, hir.ValueResNone, res.Kind)
}

func TestVisibilityFromModuleGraph(t *testing.T) {
	graph := hir.NewModuleGraph()
	root := hir.ModuleID(0)
	child := hir.ModuleID(1)
	grandchild := hir.ModuleID(2)
	stranger := hir.ModuleID(9)
	graph.SetParent(child, root)
	graph.SetParent(grandchild, child)

	pub := hir.PublicVisibility()
	assert.True(t, pub.IsVisibleFrom(graph, stranger))

	rootOnly := hir.ModuleVisibility(root)
	assert.True(t, rootOnly.IsVisibleFrom(graph, root))
	assert.True(t, rootOnly.IsVisibleFrom(graph, child))
	assert.True(t, rootOnly.IsVisibleFrom(graph, grandchild))
	assert.False(t, rootOnly.IsVisibleFrom(graph, stranger))

	childOnly := hir.ModuleVisibility(child)
	assert.False(t, childOnly.IsVisibleFrom(graph, root))
	assert.True(t, childOnly.IsVisibleFrom(graph, grandchild))
}

func TestPerNsOrFillsEmptySlots(t *testing.T) {
	a := hir.NamedItem{ID: hir.PrimitiveDefID(hir.PrimBool)}
	b := hir.NamedItem{ID: hir.PrimitiveDefID(hir.PrimF64)}

	merged := hir.TypesPerNs(a).Or(hir.BothPerNs(b, b))
	require.NotNil(t, merged.Types)
	require.NotNil(t, merged.Values)
	assert.Equal(t, a.ID, merged.Types.ID)
	assert.Equal(t, b.ID, merged.Values.ID)

	assert.True(t, hir.NonePerNs[hir.NamedItem]().IsNone())
}
