package kvio

import "github.com/gnames/objgraph/internal/ent/kv"

type memory struct {
	ids map[uint64]struct{}
}

// NewMemory returns a set of identities kept in a map.
func NewMemory() kv.Set {
	return &memory{ids: make(map[uint64]struct{})}
}

func (m *memory) Open() error {
	if m.ids == nil {
		m.ids = make(map[uint64]struct{})
	}
	return nil
}

func (m *memory) Close() error {
	return nil
}

func (m *memory) Add(id uint64) (bool, error) {
	if _, ok := m.ids[id]; ok {
		return false, nil
	}
	m.ids[id] = struct{}{}
	return true, nil
}

func (m *memory) Len() int {
	return len(m.ids)
}
