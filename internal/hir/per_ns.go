package hir

// PerNs holds at most one resolution per namespace for a single name. One
// name can simultaneously denote a type-namespace entity and a
// value-namespace entity (a struct plus its constructor); either, both, or
// neither slot may be populated.
type PerNs[T any] struct {
	Types  *T
	Values *T
}

// NonePerNs is the empty resolution. It is a valid, silent result: reporting
// "undefined name" is the consumer's responsibility.
func NonePerNs[T any]() PerNs[T] { return PerNs[T]{} }

// TypesPerNs populates only the type namespace.
func TypesPerNs[T any](v T) PerNs[T] { return PerNs[T]{Types: &v} }

// ValuesPerNs populates only the value namespace.
func ValuesPerNs[T any](v T) PerNs[T] { return PerNs[T]{Values: &v} }

// BothPerNs populates both namespaces.
func BothPerNs[T any](types, values T) PerNs[T] {
	return PerNs[T]{Types: &types, Values: &values}
}

// IsNone reports whether neither namespace is populated.
func (p PerNs[T]) IsNone() bool { return p.Types == nil && p.Values == nil }

// Or returns p with empty slots filled from other.
func (p PerNs[T]) Or(other PerNs[T]) PerNs[T] {
	if p.Types == nil {
		p.Types = other.Types
	}
	if p.Values == nil {
		p.Values = other.Values
	}
	return p
}

// NamedItem is what a name resolves to in one namespace: an item identity
// plus the visibility under which it is accessible.
type NamedItem struct {
	ID  ItemDefinitionID
	Vis Visibility
}

// PerNsFromDefinition classifies a definition into its namespaces. The table
// is fixed: functions live in the value namespace; structs live in the type
// namespace, and additionally in the value namespace (same identity) when
// they have a constructor; everything else is type-namespace only.
func PerNsFromDefinition(def ItemDefinitionID, vis Visibility, hasConstructor bool) PerNs[NamedItem] {
	item := NamedItem{ID: def, Vis: vis}
	switch def.Kind {
	case DefFunction:
		return ValuesPerNs(item)
	case DefStruct:
		if hasConstructor {
			return BothPerNs(item, item)
		}
		return TypesPerNs(item)
	case DefTypeAlias, DefConst, DefPrimitive, DefModule:
		return TypesPerNs(item)
	default:
		return NonePerNs[NamedItem]()
	}
}
