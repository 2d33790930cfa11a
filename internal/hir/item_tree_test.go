package hir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mica-lang/mica/internal/db"
	"github.com/mica-lang/mica/internal/hir"
)

// newTestDB registers source as file 0 of a fresh workspace.
func newTestDB(t *testing.T, source string) (*db.DB, hir.FileID) {
	t.Helper()
	d := db.New()
	file := hir.FileID(0)
	d.SetFileText(file, "test.mica", source)
	return d, file
}

func TestItemTreeLowersAllItemKinds(t *testing.T) {
	d, file := newTestDB(t, `
fn main() {}
struct Point { x: f64, y: f64 }
type Meters = f64;
const MAX: i32 = 255;
`)
	tree := d.ItemTree(file)

	require.Len(t, tree.TopLevel, 4)
	assert.Equal(t, hir.ItemKindFunction, tree.TopLevel[0].Kind)
	assert.Equal(t, hir.ItemKindStruct, tree.TopLevel[1].Kind)
	assert.Equal(t, hir.ItemKindTypeAlias, tree.TopLevel[2].Kind)
	assert.Equal(t, hir.ItemKindConst, tree.TopLevel[3].Kind)

	assert.Equal(t, hir.Name("main"), tree.ItemName(tree.TopLevel[0]))
	assert.Equal(t, hir.Name("Point"), tree.ItemName(tree.TopLevel[1]))
	assert.Equal(t, hir.Name("Meters"), tree.ItemName(tree.TopLevel[2]))
	assert.Equal(t, hir.Name("MAX"), tree.ItemName(tree.TopLevel[3]))
	assert.Empty(t, tree.Diagnostics)
}

func TestItemTreeDuplicateDefinition(t *testing.T) {
	d, file := newTestDB(t, `
struct Foo { a: i32 }
struct Foo { b: i32 }
`)
	tree := d.ItemTree(file)

	// Both declarations stay in the tree.
	require.Len(t, tree.TopLevel, 2)

	require.Len(t, tree.Diagnostics, 1)
	diag := tree.Diagnostics[0]
	assert.Equal(t, hir.DiagDuplicateDefinition, diag.Kind)
	assert.Equal(t, hir.Name("Foo"), diag.Name)
	assert.Equal(t, tree.TopLevel[0], diag.First)
	assert.Equal(t, tree.TopLevel[1], diag.Second)
}

func TestItemTreeDuplicatesAcrossKinds(t *testing.T) {
	d, file := newTestDB(t, `
fn thing() {}
struct thing;
const thing: i32 = 1;
`)
	tree := d.ItemTree(file)

	require.Len(t, tree.TopLevel, 3)
	// N declarations of one name produce N-1 diagnostics, each pairing the
	// first declaration with one duplicate.
	require.Len(t, tree.Diagnostics, 2)
	for _, diag := range tree.Diagnostics {
		assert.Equal(t, hir.Name("thing"), diag.Name)
		assert.Equal(t, tree.TopLevel[0], diag.First)
	}
	assert.Equal(t, tree.TopLevel[1], tree.Diagnostics[0].Second)
	assert.Equal(t, tree.TopLevel[2], tree.Diagnostics[1].Second)
}

func TestItemTreeFieldRanges(t *testing.T) {
	d, file := newTestDB(t, `
struct A { x: i32, y: i32, z: i32 }
struct B { w: f64 }
`)
	tree := d.ItemTree(file)

	a := tree.Struct(hir.LocalStructID(0))
	b := tree.Struct(hir.LocalStructID(1))

	assert.Equal(t, hir.FieldsRecord, a.Fields.Kind)
	assert.Equal(t, 3, a.Fields.Range.Len())
	assert.Equal(t, 1, b.Fields.Range.Len())

	// Sibling ranges are contiguous and disjoint.
	assert.Equal(t, a.Fields.Range.End, b.Fields.Range.Start)
	assert.False(t, a.Fields.Range.Contains(b.Fields.Range.Start))

	names := []hir.Name{}
	a.Fields.Range.Each(func(id hir.LocalFieldID) {
		names = append(names, tree.Field(id).Name)
	})
	assert.Equal(t, []hir.Name{"x", "y", "z"}, names)
}

func TestItemTreeTupleStructFieldNames(t *testing.T) {
	d, file := newTestDB(t, `struct Pair(i32, f64);`)
	tree := d.ItemTree(file)

	s := tree.Struct(hir.LocalStructID(0))
	assert.Equal(t, hir.StructKindTuple, s.Kind)
	require.Equal(t, 2, s.Fields.Range.Len())

	first := tree.Field(s.Fields.Range.Start)
	second := tree.Field(s.Fields.Range.Start + 1)
	assert.Equal(t, hir.Name("0"), first.Name)
	assert.Equal(t, hir.Name("1"), second.Name)
	assert.Equal(t, hir.TypeRefPath, first.TypeRef.Kind)
	assert.Equal(t, []string{"i32"}, first.TypeRef.Path.Segments)
	assert.Equal(t, []string{"f64"}, second.TypeRef.Path.Segments)
}

func TestItemTreeUnitStruct(t *testing.T) {
	d, file := newTestDB(t, `struct Marker;`)
	tree := d.ItemTree(file)

	s := tree.Struct(hir.LocalStructID(0))
	assert.Equal(t, hir.StructKindUnit, s.Kind)
	assert.Equal(t, hir.FieldsUnit, s.Fields.Kind)
	assert.Equal(t, 0, s.Fields.Range.Len())
}

func TestItemTreeMemorySpecifier(t *testing.T) {
	d, file := newTestDB(t, `
struct Boxed { a: i32 }
struct(value) Inline { a: i32 }
`)
	tree := d.ItemTree(file)

	assert.Equal(t, hir.MemoryKindGC, tree.Struct(hir.LocalStructID(0)).Memory)
	assert.Equal(t, hir.MemoryKindValue, tree.Struct(hir.LocalStructID(1)).Memory)
}

func TestItemTreeFunctionSignature(t *testing.T) {
	d, file := newTestDB(t, `
pub fn dist(a: Point, b: Point) -> f64 {}
extern fn log(x: f64);
fn noop() {}
`)
	tree := d.ItemTree(file)

	dist := tree.Function(hir.LocalFunctionID(0))
	assert.Equal(t, hir.RawVisibilityPublic, tree.Visibility(dist.Visibility))
	require.Len(t, dist.Params, 2)
	assert.Equal(t, []string{"Point"}, dist.Params[0].Path.Segments)
	assert.Equal(t, []string{"f64"}, dist.RetType.Path.Segments)

	extern := tree.Function(hir.LocalFunctionID(1))
	assert.True(t, extern.IsExtern)
	assert.Equal(t, hir.RawVisibilityModule, tree.Visibility(extern.Visibility))

	noop := tree.Function(hir.LocalFunctionID(2))
	assert.Equal(t, hir.TypeRefEmpty, noop.RetType.Kind)
}

func TestItemTreeNamelessItemsDropped(t *testing.T) {
	d, file := newTestDB(t, `
fn (a: i32) {}
fn ok() {}
`)
	tree := d.ItemTree(file)

	// The nameless declaration is dropped from the tree; parsing already
	// reported it.
	require.Len(t, tree.TopLevel, 1)
	assert.Equal(t, hir.Name("ok"), tree.ItemName(tree.TopLevel[0]))
	assert.NotEmpty(t, d.ParseDiagnostics(file))
}

func TestItemTreeRebuildIsDeterministic(t *testing.T) {
	source := `
fn main() { let x = 1; }
struct Point { x: f64, y: f64 }
struct Pair(i32, i32);
type Meters = f64;
const MAX: i32 = 255;
`
	d1, f1 := newTestDB(t, source)
	d2, f2 := newTestDB(t, source)

	t1 := d1.ItemTree(f1)
	t2 := d2.ItemTree(f2)

	assert.Equal(t, t1.TopLevel, t2.TopLevel)
	assert.Equal(t, t1.Data, t2.Data)
	assert.Equal(t, t1.Diagnostics, t2.Diagnostics)
}
