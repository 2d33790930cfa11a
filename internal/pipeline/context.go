package pipeline

import (
	"github.com/mica-lang/mica/internal/ast"
	"github.com/mica-lang/mica/internal/db"
	"github.com/mica-lang/mica/internal/diagnostics"
	"github.com/mica-lang/mica/internal/hir"
)

// Context carries one file's state through the pipeline stages.
type Context struct {
	DB     *db.DB
	FileID hir.FileID

	FilePath   string
	SourceCode string

	// Populated by stages.
	Syntax      *ast.File
	ItemTree    *hir.ItemTree
	ModuleScope *hir.ItemScope
	Diagnostics []*diagnostics.Diagnostic
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}
