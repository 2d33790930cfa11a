package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mica-lang/mica/internal/cache"
	"github.com/mica-lang/mica/internal/diagnostics"
	"github.com/mica-lang/mica/internal/token"
)

func openStore(t *testing.T) *cache.Store {
	t.Helper()
	s, err := cache.Open(filepath.Join(t.TempDir(), "check.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLookupMissesOnUnknownPath(t *testing.T) {
	s := openStore(t)

	_, hit, err := s.Lookup("src/main.mica", cache.HashText("fn main() {}"))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRecordThenLookup(t *testing.T) {
	s := openStore(t)
	hash := cache.HashText("fn f(x: i32) { x = 1; }")

	diag := diagnostics.NewError(diagnostics.ErrS003, token.Token{Line: 1, Column: 20}, "cannot assign: expression is not a mutable place")
	require.NoError(t, s.Record("src/main.mica", hash, []*diagnostics.Diagnostic{diag}))

	got, hit, err := s.Lookup("src/main.mica", hash)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, got, 1)
	assert.Equal(t, diagnostics.ErrS003, got[0].Code)
	assert.Equal(t, diagnostics.SeverityError, got[0].Severity)
	assert.Equal(t, 1, got[0].Token.Line)
	assert.Equal(t, 20, got[0].Token.Column)
	assert.Equal(t, "src/main.mica", got[0].File)
}

func TestLookupMissesOnChangedHash(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.Record("a.mica", cache.HashText("v1"), nil))

	_, hit, err := s.Lookup("a.mica", cache.HashText("v2"))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRecordOverwritesPriorEntry(t *testing.T) {
	s := openStore(t)

	diag := diagnostics.NewError(diagnostics.ErrS002, token.Token{Line: 3}, "type `Gone` does not exist")
	require.NoError(t, s.Record("a.mica", cache.HashText("v1"), []*diagnostics.Diagnostic{diag}))
	require.NoError(t, s.Record("a.mica", cache.HashText("v2"), nil))

	got, hit, err := s.Lookup("a.mica", cache.HashText("v2"))
	require.NoError(t, err)
	require.True(t, hit)
	assert.Empty(t, got)
}

func TestCleanFileRoundTripsEmptyDiagnostics(t *testing.T) {
	s := openStore(t)
	hash := cache.HashText("fn main() {}")

	require.NoError(t, s.Record("clean.mica", hash, nil))

	got, hit, err := s.Lookup("clean.mica", hash)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, got)
}

func TestSessionsAreFresh(t *testing.T) {
	a := openStore(t)
	b := openStore(t)
	assert.NotEmpty(t, a.Session())
	assert.NotEqual(t, a.Session(), b.Session())
}

func TestHashTextIsStable(t *testing.T) {
	assert.Equal(t, cache.HashText("abc"), cache.HashText("abc"))
	assert.NotEqual(t, cache.HashText("abc"), cache.HashText("abd"))
	assert.Len(t, cache.HashText(""), 64)
}
