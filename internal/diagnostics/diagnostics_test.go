package diagnostics_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mica-lang/mica/internal/diagnostics"
	"github.com/mica-lang/mica/internal/token"
)

func TestDiagnosticError(t *testing.T) {
	d := diagnostics.NewError(diagnostics.ErrS001, token.Token{Line: 3, Column: 8}, "the name `Foo` is defined multiple times")

	assert.Equal(t, diagnostics.SeverityError, d.Severity)
	assert.Equal(t, "3:8: S001: the name `Foo` is defined multiple times", d.Error())

	withFile := d.WithFile("src/main.mica")
	assert.Equal(t, "src/main.mica:3:8: S001: the name `Foo` is defined multiple times", withFile.Error())
	// The original is untouched.
	assert.Empty(t, d.File)
}

func TestHasErrors(t *testing.T) {
	warn := diagnostics.NewWarning(diagnostics.ErrP001, token.Token{}, "suspicious")
	err := diagnostics.NewError(diagnostics.ErrS002, token.Token{}, "type `Gone` does not exist")

	assert.False(t, diagnostics.HasErrors(nil))
	assert.False(t, diagnostics.HasErrors([]*diagnostics.Diagnostic{warn}))
	assert.True(t, diagnostics.HasErrors([]*diagnostics.Diagnostic{warn, err}))
}

func TestRendererPlain(t *testing.T) {
	var buf bytes.Buffer
	r := diagnostics.NewRenderer(&buf)

	d := diagnostics.NewError(diagnostics.ErrS003, token.Token{Line: 2, Column: 5}, "cannot assign: expression is not a mutable place").
		WithFile("main.mica")
	r.Render(d)

	assert.Equal(t, "error[S003] cannot assign: expression is not a mutable place (main.mica:2:5)\n", buf.String())
}

func TestRendererWarningLabel(t *testing.T) {
	var buf bytes.Buffer
	r := diagnostics.NewRenderer(&buf)

	r.Render(diagnostics.NewWarning(diagnostics.ErrP001, token.Token{Line: 1, Column: 1}, "odd"))
	assert.Contains(t, buf.String(), "warning[P001]")
}

func TestRendererColorOverride(t *testing.T) {
	var buf bytes.Buffer
	r := diagnostics.NewRenderer(&buf)
	r.SetColor(true)

	r.Render(diagnostics.NewError(diagnostics.ErrS002, token.Token{Line: 1, Column: 1}, "type `Gone` does not exist"))
	assert.Contains(t, buf.String(), "\033[31;1m")

	buf.Reset()
	r.SetColor(false)
	r.Render(diagnostics.NewError(diagnostics.ErrS002, token.Token{Line: 1, Column: 1}, "type `Gone` does not exist"))
	assert.NotContains(t, buf.String(), "\033[")
}

func TestRenderAll(t *testing.T) {
	var buf bytes.Buffer
	r := diagnostics.NewRenderer(&buf)

	r.RenderAll([]*diagnostics.Diagnostic{
		diagnostics.NewError(diagnostics.ErrS001, token.Token{Line: 1, Column: 1}, "one"),
		diagnostics.NewError(diagnostics.ErrS002, token.Token{Line: 2, Column: 1}, "two"),
	})
	require.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
