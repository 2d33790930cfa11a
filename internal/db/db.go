// Package db is the incremental query engine behind the hir package. Every
// derived fact is a deterministic, memoized pure function keyed by (query,
// file, revision): re-invocation with unchanged inputs is a cache hit, and
// editing one file never invalidates results derived from another.
package db

import (
	"fmt"
	"sync"

	"github.com/mica-lang/mica/internal/ast"
	"github.com/mica-lang/mica/internal/diagnostics"
	"github.com/mica-lang/mica/internal/hir"
	"github.com/mica-lang/mica/internal/lexer"
	"github.com/mica-lang/mica/internal/parser"
)

// Revision counts edits to one file. Bumped by SetFileText.
type Revision uint64

type fileEntry struct {
	path     string
	text     string
	revision Revision
}

// fileKey keys per-file query caches on (file, revision).
type fileKey struct {
	file hir.FileID
	rev  Revision
}

type fnKey struct {
	fn  hir.FunctionID
	rev Revision
}

type structKey struct {
	s   hir.StructID
	rev Revision
}

type aliasKey struct {
	a   hir.TypeAliasID
	rev Revision
}

type constKey struct {
	c   hir.ConstID
	rev Revision
}

type parseResult struct {
	file  *ast.File
	idMap *ast.IDMap
	diags []*diagnostics.Diagnostic
}

type bodyResult struct {
	body *hir.Body
	src  *hir.BodySourceMap
}

// DB holds the workspace's file texts and the memoization tables of every
// query. Safe for concurrent use: independent queries may be evaluated from
// multiple goroutines.
type DB struct {
	mu    sync.RWMutex
	files map[hir.FileID]*fileEntry
	graph *hir.ModuleGraph

	parses   map[fileKey]*parseResult
	trees    map[fileKey]*hir.ItemTree
	scopes   map[fileKey]*hir.ItemScope
	fnData   map[fnKey]*hir.FunctionData
	stData   map[structKey]*hir.StructData
	taData   map[aliasKey]*hir.TypeAliasData
	ctData   map[constKey]*hir.ConstData
	bodies   map[fnKey]*bodyResult
	inferRes map[fnKey]*hir.InferenceResult
	fileDiag map[fileKey][]*diagnostics.Diagnostic
}

func New() *DB {
	return &DB{
		files:    make(map[hir.FileID]*fileEntry),
		graph:    hir.NewModuleGraph(),
		parses:   make(map[fileKey]*parseResult),
		trees:    make(map[fileKey]*hir.ItemTree),
		scopes:   make(map[fileKey]*hir.ItemScope),
		fnData:   make(map[fnKey]*hir.FunctionData),
		stData:   make(map[structKey]*hir.StructData),
		taData:   make(map[aliasKey]*hir.TypeAliasData),
		ctData:   make(map[constKey]*hir.ConstData),
		bodies:   make(map[fnKey]*bodyResult),
		inferRes: make(map[fnKey]*hir.InferenceResult),
		fileDiag: make(map[fileKey][]*diagnostics.Diagnostic),
	}
}

// SetFileText registers or updates a file's content, bumping its revision.
// Cached results for earlier revisions simply stop being reachable.
func (d *DB) SetFileText(file hir.FileID, path, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if entry, ok := d.files[file]; ok {
		entry.path = path
		entry.text = text
		entry.revision++
		return
	}
	d.files[file] = &fileEntry{path: path, text: text}
}

// FileText returns the current text of file.
func (d *DB) FileText(file hir.FileID) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mustFile(file).text
}

// FilePath returns the registered path of file.
func (d *DB) FilePath(file hir.FileID) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mustFile(file).path
}

// FileRevision returns the current revision of file.
func (d *DB) FileRevision(file hir.FileID) Revision {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mustFile(file).revision
}

func (d *DB) mustFile(file hir.FileID) *fileEntry {
	entry, ok := d.files[file]
	if !ok {
		panic(fmt.Sprintf("db: unknown file %d", file))
	}
	return entry
}

func (d *DB) fileKey(file hir.FileID) fileKey {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return fileKey{file: file, rev: d.mustFile(file).revision}
}

// ModuleGraph returns the module nesting relation.
func (d *DB) ModuleGraph() *hir.ModuleGraph { return d.graph }

// SetModuleParent records module nesting for visibility checks.
func (d *DB) SetModuleParent(child, parent hir.ModuleID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.graph.SetParent(child, parent)
}

func (d *DB) parseQuery(file hir.FileID) *parseResult {
	key := d.fileKey(file)

	d.mu.RLock()
	cached, ok := d.parses[key]
	d.mu.RUnlock()
	if ok {
		return cached
	}

	entry := func() fileEntry {
		d.mu.RLock()
		defer d.mu.RUnlock()
		return *d.mustFile(file)
	}()

	p := parser.New(lexer.New(entry.text))
	parsed := p.ParseFile(entry.path)
	result := &parseResult{
		file:  parsed,
		idMap: ast.NewIDMap(parsed),
		diags: p.Errors(),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	// Another goroutine may have raced us here; keep the first published
	// result so identical queries return identical pointers.
	if prior, ok := d.parses[key]; ok {
		return prior
	}
	d.parses[key] = result
	return result
}

// Parse returns the file's syntax tree.
func (d *DB) Parse(file hir.FileID) *ast.File { return d.parseQuery(file).file }

// ASTIDMap returns the reproducible item-id map for the file.
func (d *DB) ASTIDMap(file hir.FileID) *ast.IDMap { return d.parseQuery(file).idMap }

// ParseDiagnostics returns the lexer/parser diagnostics for the file.
func (d *DB) ParseDiagnostics(file hir.FileID) []*diagnostics.Diagnostic {
	return d.parseQuery(file).diags
}

// ItemTree returns the lowered item tree for the file.
func (d *DB) ItemTree(file hir.FileID) *hir.ItemTree {
	key := d.fileKey(file)

	d.mu.RLock()
	cached, ok := d.trees[key]
	d.mu.RUnlock()
	if ok {
		return cached
	}

	parsed := d.parseQuery(file)
	tree := hir.LowerItemTree(file, parsed.file, parsed.idMap)

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.trees[key]; ok {
		return prior
	}
	d.trees[key] = tree
	return tree
}

// ModuleScope returns the resolved item scope of a module.
func (d *DB) ModuleScope(module hir.ModuleID) *hir.ItemScope {
	key := d.fileKey(module.File())

	d.mu.RLock()
	cached, ok := d.scopes[key]
	d.mu.RUnlock()
	if ok {
		return cached
	}

	scope := hir.LowerModuleScope(d, module)

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.scopes[key]; ok {
		return prior
	}
	d.scopes[key] = scope
	return scope
}

// FunctionData returns the lowered signature of a function.
func (d *DB) FunctionData(fn hir.FunctionID) *hir.FunctionData {
	key := fnKey{fn: fn, rev: d.fileKey(fn.File).rev}

	d.mu.RLock()
	cached, ok := d.fnData[key]
	d.mu.RUnlock()
	if ok {
		return cached
	}

	data := hir.LowerFunctionData(d, fn)

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.fnData[key]; ok {
		return prior
	}
	d.fnData[key] = data
	return data
}

// StructData returns the lowered shape of a struct.
func (d *DB) StructData(s hir.StructID) *hir.StructData {
	key := structKey{s: s, rev: d.fileKey(s.File).rev}

	d.mu.RLock()
	cached, ok := d.stData[key]
	d.mu.RUnlock()
	if ok {
		return cached
	}

	data := hir.LowerStructData(d, s)

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.stData[key]; ok {
		return prior
	}
	d.stData[key] = data
	return data
}

// TypeAliasData returns the lowered right-hand side of a type alias.
func (d *DB) TypeAliasData(a hir.TypeAliasID) *hir.TypeAliasData {
	key := aliasKey{a: a, rev: d.fileKey(a.File).rev}

	d.mu.RLock()
	cached, ok := d.taData[key]
	d.mu.RUnlock()
	if ok {
		return cached
	}

	data := hir.LowerTypeAliasData(d, a)

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.taData[key]; ok {
		return prior
	}
	d.taData[key] = data
	return data
}

// ConstData returns the lowered ascription of a constant.
func (d *DB) ConstData(c hir.ConstID) *hir.ConstData {
	key := constKey{c: c, rev: d.fileKey(c.File).rev}

	d.mu.RLock()
	cached, ok := d.ctData[key]
	d.mu.RUnlock()
	if ok {
		return cached
	}

	data := hir.LowerConstData(d, c)

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.ctData[key]; ok {
		return prior
	}
	d.ctData[key] = data
	return data
}

func (d *DB) bodyQuery(fn hir.FunctionID) *bodyResult {
	key := fnKey{fn: fn, rev: d.fileKey(fn.File).rev}

	d.mu.RLock()
	cached, ok := d.bodies[key]
	d.mu.RUnlock()
	if ok {
		return cached
	}

	body, src := hir.LowerBody(d, fn)
	result := &bodyResult{body: body, src: src}

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.bodies[key]; ok {
		return prior
	}
	d.bodies[key] = result
	return result
}

// Body returns the lowered expression body of a function.
func (d *DB) Body(fn hir.FunctionID) *hir.Body { return d.bodyQuery(fn).body }

// BodySourceMap returns the body's expression-to-syntax correlation.
func (d *DB) BodySourceMap(fn hir.FunctionID) *hir.BodySourceMap { return d.bodyQuery(fn).src }

// Infer returns the inference result for a function body.
func (d *DB) Infer(fn hir.FunctionID) *hir.InferenceResult {
	key := fnKey{fn: fn, rev: d.fileKey(fn.File).rev}

	d.mu.RLock()
	cached, ok := d.inferRes[key]
	d.mu.RUnlock()
	if ok {
		return cached
	}

	result := hir.InferBody(d, fn)

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.inferRes[key]; ok {
		return prior
	}
	d.inferRes[key] = result
	return result
}

// Diagnostics returns all diagnostics for one file: parser diagnostics plus
// everything the semantic validators report, attributed to the file's path.
func (d *DB) Diagnostics(file hir.FileID) []*diagnostics.Diagnostic {
	key := d.fileKey(file)

	d.mu.RLock()
	cached, ok := d.fileDiag[key]
	d.mu.RUnlock()
	if ok {
		return cached
	}

	path := d.FilePath(file)
	var out []*diagnostics.Diagnostic
	for _, diag := range d.ParseDiagnostics(file) {
		out = append(out, diag.WithFile(path))
	}
	for _, diag := range hir.ValidateFile(d, file) {
		out = append(out, diag.WithFile(path))
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.fileDiag[key]; ok {
		return prior
	}
	d.fileDiag[key] = out
	return out
}

var _ hir.DefDB = (*DB)(nil)
