package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/smartshop-app/smartshop/internal/model"
)

// listKey is the single key under which the full item list is persisted.
const listKey = "shopping_list"

// ListStore persists the shopping list as one JSON array in the lists table.
type ListStore struct {
	db *sql.DB
}

func NewListStore(db *sql.DB) *ListStore {
	return &ListStore{db: db}
}

// Load reads the persisted item list. A missing row means a fresh install
// and yields an empty list; corrupt stored JSON is reported as an error so
// the caller can decide to degrade.
func (s *ListStore) Load() ([]model.ShoppingItem, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM lists WHERE key = ?`, listKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load list: %w", err)
	}

	var items []model.ShoppingItem
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, fmt.Errorf("decode stored list: %w", err)
	}
	return items, nil
}

// Save overwrites the persisted list with the given items.
func (s *ListStore) Save(items []model.ShoppingItem) error {
	if items == nil {
		items = []model.ShoppingItem{}
	}
	value, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode list: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO lists (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		listKey, string(value), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save list: %w", err)
	}
	return nil
}
