package store

import (
	"sync"

	"github.com/smartshop-app/smartshop/internal/model"
)

// Memory is an in-memory list store used in tests and as a non-durable
// fallback. It satisfies the same Load/Save contract as ListStore.
type Memory struct {
	mu    sync.Mutex
	items []model.ShoppingItem
	saves int
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load() ([]model.ShoppingItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.ShoppingItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *Memory) Save(items []model.ShoppingItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make([]model.ShoppingItem, len(items))
	copy(m.items, items)
	m.saves++
	return nil
}

// SaveCount returns how many times Save has been called.
func (m *Memory) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
