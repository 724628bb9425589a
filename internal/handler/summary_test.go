package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartshop-app/smartshop/internal/model"
)

func TestSummaryGet(t *testing.T) {
	_, _, h, svc, _ := setupHandlers(t)

	milk, _ := svc.Add("Milk", model.CategoryDairy)
	price := 4.50
	qty := 2
	svc.Update(milk.ID, model.ItemUpdate{Price: &price, Quantity: &qty})
	svc.Toggle(milk.ID)
	svc.Add("Bread", model.CategoryBakery)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest("GET", "/api/summary", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		TotalCost         float64 `json:"total_cost"`
		ItemCount         int     `json:"item_count"`
		CompletionPercent float64 `json:"completion_percent"`
		Groups            []struct {
			Category string `json:"category"`
		} `json:"groups"`
		Spend []struct {
			Category string  `json:"category"`
			Total    float64 `json:"total"`
		} `json:"spend"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode summary: %v", err)
	}

	if resp.TotalCost != 9.00 {
		t.Errorf("total_cost = %v, want 9.00", resp.TotalCost)
	}
	if resp.ItemCount != 3 {
		t.Errorf("item_count = %d, want 3", resp.ItemCount)
	}
	if resp.CompletionPercent != 50 {
		t.Errorf("completion_percent = %v, want 50", resp.CompletionPercent)
	}
	if len(resp.Groups) != 2 || resp.Groups[0].Category != string(model.CategoryDairy) {
		t.Errorf("groups = %+v", resp.Groups)
	}
	if len(resp.Spend) != 1 || resp.Spend[0].Total != 9.00 {
		t.Errorf("spend = %+v", resp.Spend)
	}
}

func TestSummaryGetEmptyList(t *testing.T) {
	_, _, h, _, _ := setupHandlers(t)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest("GET", "/api/summary", nil))

	var resp map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if string(resp["groups"]) != "[]" {
		t.Errorf("groups = %s, want []", resp["groups"])
	}
	if string(resp["spend"]) != "[]" {
		t.Errorf("spend = %s, want []", resp["spend"])
	}
	if string(resp["completion_percent"]) != "0" {
		t.Errorf("completion_percent = %s, want 0", resp["completion_percent"])
	}
}
