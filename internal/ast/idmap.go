package ast

// ItemID is a dense, file-local identifier for a top-level item node.
// IDs are assigned by a deterministic walk of the file in declaration order,
// so re-parsing unchanged source yields the same ID for the same item.
type ItemID uint32

// IDMap assigns every top-level item of one file a reproducible ItemID.
// Semantic entities keep the ItemID (never the node) and re-derive the node
// through a fresh IDMap on demand.
type IDMap struct {
	items []Item
	ids   map[Item]ItemID
}

// NewIDMap walks file's items in declaration order and assigns IDs.
func NewIDMap(file *File) *IDMap {
	m := &IDMap{ids: make(map[Item]ItemID, len(file.Items))}
	for _, item := range file.Items {
		m.ids[item] = ItemID(len(m.items))
		m.items = append(m.items, item)
	}
	return m
}

// ID returns the identifier assigned to item.
func (m *IDMap) ID(item Item) (ItemID, bool) {
	id, ok := m.ids[item]
	return id, ok
}

// Node returns the item node for id, or nil if id is out of range.
func (m *IDMap) Node(id ItemID) Item {
	if int(id) >= len(m.items) {
		return nil
	}
	return m.items[id]
}

// Len returns the number of items mapped.
func (m *IDMap) Len() int { return len(m.items) }
