// Package hir turns syntax trees into a name-resolved, partially type-checked
// program model consumed by later compiler stages. All cross-references
// between semantic entities are dense arena indices, and every derived fact
// is produced by a pure query over (file, revision) so the surrounding engine
// can memoize and parallelize evaluation.
package hir

import "strconv"

// Name is the name of a declared or referenced entity.
type Name string

// MissingName marks entities whose declared name was absent from the source.
const MissingName Name = "[missing name]"

// TupleFieldName returns the synthesized positional name of a tuple field.
func TupleFieldName(index int) Name {
	return Name(strconv.Itoa(index))
}

// IsMissing reports whether the name is the missing-name sentinel.
func (n Name) IsMissing() bool { return n == MissingName }

func (n Name) String() string { return string(n) }

// Path is a (possibly dotted) reference to a named entity.
type Path struct {
	Segments []string
}

// PathFromName creates a single-segment path.
func PathFromName(name Name) Path {
	return Path{Segments: []string{string(name)}}
}

// AsName returns the path's single segment as a Name. Multi-segment paths
// return false; resolving them requires module-graph resolution, which sits
// above this layer.
func (p Path) AsName() (Name, bool) {
	if len(p.Segments) != 1 {
		return "", false
	}
	return Name(p.Segments[0]), true
}
