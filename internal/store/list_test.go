package store

import (
	"reflect"
	"testing"

	"github.com/smartshop-app/smartshop/internal/database"
	"github.com/smartshop-app/smartshop/internal/model"
)

func setupListStore(t *testing.T) *ListStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewListStore(db)
}

func TestLoadFreshDatabase(t *testing.T) {
	s := setupListStore(t)

	items, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty list on fresh db, got %d items", len(items))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := setupListStore(t)

	items := []model.ShoppingItem{
		{ID: "a1", Name: "Milk", Price: 4.50, Quantity: 2, Category: model.CategoryDairy, Checked: false},
		{ID: "b2", Name: "Bread", Price: 3.25, Quantity: 1, Category: model.CategoryBakery, Checked: true},
		{ID: "c3", Name: "Soap", Price: 0, Quantity: 1, Category: model.CategoryHygieneBeauty, Checked: false},
	}
	if err := s.Save(items); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, items)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := setupListStore(t)

	first := []model.ShoppingItem{{ID: "a", Name: "Milk", Quantity: 1, Category: model.CategoryDairy}}
	if err := s.Save(first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := s.Save(nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected cleared list, got %+v", got)
	}
}

func TestLoadCorruptValue(t *testing.T) {
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(
		`INSERT INTO lists (key, value) VALUES ('shopping_list', 'not json{')`,
	); err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	s := NewListStore(db)
	if _, err := s.Load(); err == nil {
		t.Fatal("expected error for corrupt stored list")
	}
}
