package hir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mica-lang/mica/internal/db"
	"github.com/mica-lang/mica/internal/hir"
)

// inferFirstFn runs inference over the first function of source and returns
// the mutability verdict for each assignment target, in no particular order.
func inferFirstFn(t *testing.T, source string) (*db.DB, hir.FunctionID, *hir.InferenceResult) {
	t.Helper()
	d, file := newTestDB(t, source)
	tree := d.ItemTree(file)
	require.NotEmpty(t, tree.TopLevel)
	require.Equal(t, hir.ItemKindFunction, tree.TopLevel[0].Kind)
	fn := hir.FunctionID{File: file, Local: hir.LocalFunctionID(tree.TopLevel[0].Raw)}
	return d, fn, d.Infer(fn)
}

func singleVerdict(t *testing.T, result *hir.InferenceResult) bool {
	t.Helper()
	require.Len(t, result.MutablePlaces, 1)
	for _, mutable := range result.MutablePlaces {
		return mutable
	}
	return false
}

func TestMutableLetBindingIsMutablePlace(t *testing.T) {
	_, _, result := inferFirstFn(t, `fn f() {
    let mut x = 0;
    x = 1;
}`)
	assert.True(t, singleVerdict(t, result))
}

func TestImmutableLetBindingIsNotMutablePlace(t *testing.T) {
	_, _, result := inferFirstFn(t, `fn f() {
    let x = 0;
    x = 1;
}`)
	assert.False(t, singleVerdict(t, result))
}

func TestMutableParamIsMutablePlace(t *testing.T) {
	_, _, result := inferFirstFn(t, `fn f(mut x: i32) {
    x = 1;
}`)
	assert.True(t, singleVerdict(t, result))
}

func TestImmutableParamIsNotMutablePlace(t *testing.T) {
	_, _, result := inferFirstFn(t, `fn f(x: i32) {
    x = 1;
}`)
	assert.False(t, singleVerdict(t, result))
}

func TestFieldMutabilityFlowsFromBase(t *testing.T) {
	_, _, result := inferFirstFn(t, `fn f(mut p: Point) {
    p.x = 1;
}`)
	assert.True(t, singleVerdict(t, result))
}

func TestNestedFieldChainDelegatesToRoot(t *testing.T) {
	_, _, mutable := inferFirstFn(t, `fn f(mut outer: Wrapper) {
    outer.inner.value = 1;
}`)
	assert.True(t, singleVerdict(t, mutable))

	_, _, immutable := inferFirstFn(t, `fn f(outer: Wrapper) {
    outer.inner.value = 1;
}`)
	assert.False(t, singleVerdict(t, immutable))
}

func TestCallResultIsNeverAPlace(t *testing.T) {
	_, _, result := inferFirstFn(t, `fn f() {
    g() = 1;
}`)
	assert.False(t, singleVerdict(t, result))
}

func TestFieldOfCallResultIsNeverAPlace(t *testing.T) {
	_, _, result := inferFirstFn(t, `fn f() {
    g().x = 1;
}`)
	assert.False(t, singleVerdict(t, result))
}

func TestLiteralIsNeverAPlace(t *testing.T) {
	_, _, result := inferFirstFn(t, `fn f() {
    5 = 1;
}`)
	assert.False(t, singleVerdict(t, result))
}

func TestModuleItemTargetIsNotAPlace(t *testing.T) {
	// MAX resolves to a module-level constant, not a local binding.
	_, _, result := inferFirstFn(t, `fn f() {
    MAX = 1;
}
const MAX: i32 = 255;`)
	assert.False(t, singleVerdict(t, result))
}

func TestLaterBindingShadowsEarlier(t *testing.T) {
	_, _, result := inferFirstFn(t, `fn f() {
    let x = 0;
    let mut x = 0;
    x = 1;
}`)
	assert.True(t, singleVerdict(t, result))
}

func TestNonAssignmentBinaryIsNotRecorded(t *testing.T) {
	_, _, result := inferFirstFn(t, `fn f(x: i32) {
    let y = x + 1;
}`)
	assert.Empty(t, result.MutablePlaces)
}

func TestExternFunctionHasEmptyBody(t *testing.T) {
	d, file := newTestDB(t, `extern fn log(x: f64);`)
	fn := hir.FunctionID{File: file, Local: 0}

	body := d.Body(fn)
	root := body.Expr(body.Root)
	assert.Equal(t, hir.ExprBlock, root.Kind)
	assert.Empty(t, root.Statements)
	require.Len(t, body.Params, 1)

	result := d.Infer(fn)
	assert.Empty(t, result.MutablePlaces)
}
