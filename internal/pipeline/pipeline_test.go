package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mica-lang/mica/internal/db"
	"github.com/mica-lang/mica/internal/diagnostics"
	"github.com/mica-lang/mica/internal/hir"
	"github.com/mica-lang/mica/internal/pipeline"
)

func runCheck(t *testing.T, source string) *pipeline.Context {
	t.Helper()
	ctx := &pipeline.Context{
		DB:         db.New(),
		FileID:     hir.FileID(0),
		FilePath:   "test.mica",
		SourceCode: source,
	}
	return pipeline.CheckPipeline().Run(ctx)
}

func TestCheckPipelineCleanFile(t *testing.T) {
	ctx := runCheck(t, `
struct Point { x: f64, y: f64 }
pub fn origin() -> Point {}
`)

	require.NotNil(t, ctx.Syntax)
	require.NotNil(t, ctx.ItemTree)
	require.NotNil(t, ctx.ModuleScope)
	assert.Len(t, ctx.ItemTree.TopLevel, 2)
	assert.NotNil(t, ctx.ModuleScope.Get("Point").Types)
	assert.Empty(t, ctx.Diagnostics)
}

func TestCheckPipelineCollectsDiagnostics(t *testing.T) {
	ctx := runCheck(t, `fn f(x: Missing) { x = 1; }`)

	codes := make([]string, 0, len(ctx.Diagnostics))
	for _, d := range ctx.Diagnostics {
		codes = append(codes, d.Code)
	}
	assert.Contains(t, codes, diagnostics.ErrS002)
	assert.Contains(t, codes, diagnostics.ErrS003)
	assert.True(t, diagnostics.HasErrors(ctx.Diagnostics))

	for _, d := range ctx.Diagnostics {
		assert.Equal(t, "test.mica", d.File)
	}
}

func TestCheckPipelineContinuesPastParseErrors(t *testing.T) {
	ctx := runCheck(t, `
fn broken( {
struct Ok { a: i32 }
`)

	// Later stages still run and produce their results.
	require.NotNil(t, ctx.ItemTree)
	require.NotNil(t, ctx.ModuleScope)
	assert.NotNil(t, ctx.ModuleScope.Get("Ok").Types)
	assert.True(t, diagnostics.HasErrors(ctx.Diagnostics))
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var order []string
	p := pipeline.New(
		stageFunc(func(ctx *pipeline.Context) *pipeline.Context {
			order = append(order, "first")
			return ctx
		}),
		stageFunc(func(ctx *pipeline.Context) *pipeline.Context {
			order = append(order, "second")
			return ctx
		}),
	)
	p.Run(&pipeline.Context{})
	assert.Equal(t, []string{"first", "second"}, order)
}

type stageFunc func(*pipeline.Context) *pipeline.Context

func (f stageFunc) Process(ctx *pipeline.Context) *pipeline.Context { return f(ctx) }
