package hir

import "sync"

// ItemScope holds all items visible from a module: which name they are
// reachable under, in which namespace, and with what visibility. It is
// mutated only during scope construction and read-only afterwards.
type ItemScope struct {
	types  map[Name]NamedItem
	values map[Name]NamedItem
	defs   []ItemDefinitionID
}

func NewItemScope() *ItemScope {
	return &ItemScope{
		types:  make(map[Name]NamedItem),
		values: make(map[Name]NamedItem),
	}
}

// Declarations returns the items defined directly in this scope, in
// declaration order. This is the only iteration order downstream consumers
// may rely on.
func (s *ItemScope) Declarations() []ItemDefinitionID {
	out := make([]ItemDefinitionID, len(s.defs))
	copy(out, s.defs)
	return out
}

// AddDefinition appends def to the scope's declaration list.
func (s *ItemScope) AddDefinition(def ItemDefinitionID) {
	s.defs = append(s.defs, def)
}

// AddResolution merges a named resolution into the namespace maps. For a
// given (name, namespace) pair the last writer wins; earlier entries are
// overwritten silently. This models shadowing within one scope and is a
// deliberate policy, not a conflict.
func (s *ItemScope) AddResolution(name Name, def PerNs[NamedItem]) {
	if def.Types != nil {
		s.types[name] = *def.Types
	}
	if def.Values != nil {
		s.values[name] = *def.Values
	}
}

// Get answers a name lookup in both namespaces. An empty PerNs is a valid,
// silent result.
func (s *ItemScope) Get(name Name) PerNs[NamedItem] {
	var out PerNs[NamedItem]
	if item, ok := s.types[name]; ok {
		out.Types = &item
	}
	if item, ok := s.values[name]; ok {
		out.Values = &item
	}
	return out
}

// builtinScope lazily builds the process-wide primitive-type table exactly
// once. The published map is immutable; concurrent first access observes
// either nothing or the fully constructed value.
var builtinScope = sync.OnceValue(func() map[Name]PerNs[NamedItem] {
	scope := make(map[Name]PerNs[NamedItem])
	for _, prim := range AllPrimitives() {
		scope[prim.Name()] = TypesPerNs(NamedItem{
			ID:  PrimitiveDefID(prim),
			Vis: PublicVisibility(),
		})
	}
	return scope
})

// BuiltinScope returns the shared primitive-type scope used as the outermost
// fallback by every module. Callers must not mutate the returned map.
func BuiltinScope() map[Name]PerNs[NamedItem] {
	return builtinScope()
}
