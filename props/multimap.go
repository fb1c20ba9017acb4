package props

import "propindex/internal/naming"

// multimap is an insertion-ordered, case-insensitive multi-valued map from
// names to operations. Each key keeps the spelling it was first inserted with.
type multimap struct {
	names []string
	lists map[string][]Operation
}

// emptyMultimap is shared by every index bucket that ended up empty. Reads
// from its nil map are safe.
var emptyMultimap = &multimap{}

func newMultimap() *multimap {
	return &multimap{lists: make(map[string][]Operation)}
}

func (m *multimap) put(name string, op Operation) {
	key := naming.Key(name)
	if _, ok := m.lists[key]; !ok {
		m.names = append(m.names, name)
	}

	m.lists[key] = append(m.lists[key], op)
}

func (m *multimap) get(name string) []Operation {
	return m.lists[naming.Key(name)]
}

func (m *multimap) len() int {
	return len(m.names)
}

// seal swaps an empty map for the shared instance.
func (m *multimap) seal() *multimap {
	if m.len() == 0 {
		return emptyMultimap
	}

	return m
}
