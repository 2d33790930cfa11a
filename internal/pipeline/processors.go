package pipeline

// ParseProcessor registers the source text with the query database and
// parses it.
type ParseProcessor struct{}

func (pp *ParseProcessor) Process(ctx *Context) *Context {
	ctx.DB.SetFileText(ctx.FileID, ctx.FilePath, ctx.SourceCode)
	ctx.Syntax = ctx.DB.Parse(ctx.FileID)
	return ctx
}

// ItemTreeProcessor lowers the syntax tree into the file's item tree.
type ItemTreeProcessor struct{}

func (ip *ItemTreeProcessor) Process(ctx *Context) *Context {
	if ctx.Syntax == nil {
		return ctx
	}
	ctx.ItemTree = ctx.DB.ItemTree(ctx.FileID)
	return ctx
}

// ScopeProcessor builds the module scope from the item tree.
type ScopeProcessor struct{}

func (sp *ScopeProcessor) Process(ctx *Context) *Context {
	if ctx.ItemTree == nil {
		return ctx
	}
	ctx.ModuleScope = ctx.DB.ModuleScope(ctx.FileID.Module())
	return ctx
}

// ValidateProcessor collects every diagnostic for the file: parser errors
// plus semantic validation.
type ValidateProcessor struct{}

func (vp *ValidateProcessor) Process(ctx *Context) *Context {
	ctx.Diagnostics = append(ctx.Diagnostics, ctx.DB.Diagnostics(ctx.FileID)...)
	return ctx
}

// CheckPipeline is the standard stage sequence for `mica check`.
func CheckPipeline() *Pipeline {
	return New(
		&ParseProcessor{},
		&ItemTreeProcessor{},
		&ScopeProcessor{},
		&ValidateProcessor{},
	)
}
