package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smartshop-app/smartshop/internal/database"
	"github.com/smartshop-app/smartshop/internal/model"
)

type stubAssistant struct{}

func (stubAssistant) SuggestForgotten(context.Context, []string) ([]model.AISuggestion, error) {
	return nil, nil
}

func (stubAssistant) CategorizeItems(context.Context, []model.ItemRef) ([]model.Categorization, error) {
	return nil, nil
}

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(New(db, stubAssistant{}, logger).Router())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthEndpoint(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestItemLifecycleOverHTTP(t *testing.T) {
	srv := setupTestServer(t)
	client := srv.Client()

	resp, err := client.Post(srv.URL+"/api/items", "application/json",
		strings.NewReader(`{"name": "Milk", "category": "Dairy & Breakfast"}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created model.ShoppingItem
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()

	req, _ := http.NewRequest("PATCH", srv.URL+"/api/items/"+created.ID,
		strings.NewReader(`{"price": "4.50", "checked": true}`))
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	var updated model.ShoppingItem
	json.NewDecoder(resp.Body).Decode(&updated)
	resp.Body.Close()
	if updated.Price != 4.50 || !updated.Checked {
		t.Errorf("updated = %+v", updated)
	}

	resp, err = client.Get(srv.URL + "/api/summary")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	var sum struct {
		TotalCost         float64 `json:"total_cost"`
		CompletionPercent float64 `json:"completion_percent"`
	}
	json.NewDecoder(resp.Body).Decode(&sum)
	resp.Body.Close()
	if sum.TotalCost != 4.50 || sum.CompletionPercent != 100 {
		t.Errorf("summary = %+v", sum)
	}

	req, _ = http.NewRequest("DELETE", srv.URL+"/api/items/"+created.ID, nil)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", resp.StatusCode)
	}

	resp, err = client.Get(srv.URL + "/api/items")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defer resp.Body.Close()
	var items []model.ShoppingItem
	json.NewDecoder(resp.Body).Decode(&items)
	if len(items) != 0 {
		t.Errorf("items after delete = %+v", items)
	}
}

func TestUnknownMethodRejected(t *testing.T) {
	srv := setupTestServer(t)

	req, _ := http.NewRequest("PUT", srv.URL+"/api/items", strings.NewReader(`{}`))
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}
