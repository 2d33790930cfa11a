package hir

import "github.com/mica-lang/mica/internal/ast"

// RawVisibility is the unresolved, syntactic form of a visibility marker.
type RawVisibility uint8

const (
	// RawVisibilityModule is the default: visible from the declaring module
	// and its descendants.
	RawVisibilityModule RawVisibility = iota
	// RawVisibilityPublic is an explicit `pub` marker.
	RawVisibilityPublic
)

// RawVisibilityFromAST lowers a syntactic marker. A nil marker means
// module-private.
func RawVisibilityFromAST(marker *ast.VisibilityMarker) RawVisibility {
	if marker != nil {
		return RawVisibilityPublic
	}
	return RawVisibilityModule
}

// visKind tags the variants of Visibility.
type visKind uint8

const (
	visPublic visKind = iota
	visModule
)

// Visibility is the resolved, comparable form of a visibility marker.
// Resolving requires a resolver context because module-relative visibility
// must be anchored to a concrete module.
type Visibility struct {
	kind   visKind
	module ModuleID // anchor for visModule
}

// PublicVisibility is visible from everywhere.
func PublicVisibility() Visibility { return Visibility{kind: visPublic} }

// ModuleVisibility is visible from module and its descendants.
func ModuleVisibility(module ModuleID) Visibility {
	return Visibility{kind: visModule, module: module}
}

// IsPublic reports whether the visibility is unrestricted.
func (v Visibility) IsPublic() bool { return v.kind == visPublic }

// Resolve anchors a raw visibility against the resolver's module context.
// Pure: the result depends only on the inputs.
func (raw RawVisibility) Resolve(resolver *Resolver) Visibility {
	switch raw {
	case RawVisibilityPublic:
		return PublicVisibility()
	default:
		return ModuleVisibility(resolver.Module())
	}
}

// IsVisibleFrom reports whether an entity with this visibility can be seen
// from viewer. Public is always visible; module visibility admits the
// declaring module and its descendants.
func (v Visibility) IsVisibleFrom(graph *ModuleGraph, viewer ModuleID) bool {
	if v.kind == visPublic {
		return true
	}
	for m := viewer; ; {
		if m == v.module {
			return true
		}
		parent, ok := graph.Parent(m)
		if !ok {
			return false
		}
		m = parent
	}
}

// ModuleGraph records the parent relation between modules. A module with no
// recorded parent is a root.
type ModuleGraph struct {
	parents map[ModuleID]ModuleID
}

func NewModuleGraph() *ModuleGraph {
	return &ModuleGraph{parents: make(map[ModuleID]ModuleID)}
}

// SetParent records that child is nested directly under parent.
func (g *ModuleGraph) SetParent(child, parent ModuleID) {
	g.parents[child] = parent
}

// Parent returns the module directly enclosing m.
func (g *ModuleGraph) Parent(m ModuleID) (ModuleID, bool) {
	p, ok := g.parents[m]
	return p, ok
}
