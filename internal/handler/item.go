package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/smartshop-app/smartshop/internal/ai"
	"github.com/smartshop-app/smartshop/internal/categorize"
	"github.com/smartshop-app/smartshop/internal/list"
	"github.com/smartshop-app/smartshop/internal/model"
	ws "github.com/smartshop-app/smartshop/internal/websocket"
)

type ItemHandler struct {
	svc    *list.Service
	hub    *ws.Hub
	logger *slog.Logger
}

func NewItemHandler(svc *list.Service, hub *ws.Hub, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, hub: hub, logger: logger}
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Items()
	if items == nil {
		items = []model.ShoppingItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

type createItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	category := model.Category(req.Category)
	if req.Category == "" {
		// No category given: guess one from the name so the list stays
		// organized even without an AI credential.
		category = categorize.Guess(req.Name)
	}

	item, err := h.svc.Add(req.Name, category)
	if errors.Is(err, list.ErrNameRequired) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if err != nil {
		h.logger.Error("create item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create item"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("item", "created", item.ID, nil))
	writeJSON(w, http.StatusCreated, item)
}

type updateItemRequest struct {
	Name     *string    `json:"name"`
	Price    *flexFloat `json:"price"`
	Quantity *int       `json:"quantity"`
	Category *string    `json:"category"`
	Checked  *bool      `json:"checked"`
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	upd := model.ItemUpdate{
		Name:     req.Name,
		Quantity: req.Quantity,
		Checked:  req.Checked,
	}
	if req.Price != nil {
		price := float64(*req.Price)
		upd.Price = &price
	}
	if req.Category != nil {
		cat := model.Category(*req.Category)
		upd.Category = &cat
	}

	item := h.svc.Update(id, upd)
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("item", "updated", item.ID, nil))
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	item := h.svc.Toggle(id)
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("item", "toggled", item.ID, map[string]any{"checked": item.Checked}))
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if !h.svc.Remove(id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("item", "removed", id, nil))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.svc.Clear()
	h.hub.Broadcast(ws.NewMessage("list", "cleared", "", nil))
	w.WriteHeader(http.StatusNoContent)
}

// Categorize reclassifies every item through the AI assistant.
func (h *ItemHandler) Categorize(w http.ResponseWriter, r *http.Request) {
	changed, err := h.svc.AutoCategorize(r.Context())
	if errors.Is(err, ai.ErrInvalidCredential) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "AI credential missing or rejected"})
		return
	}
	if err != nil {
		h.logger.Error("auto-categorize", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to categorize items"})
		return
	}

	if changed > 0 {
		h.hub.Broadcast(ws.NewMessage("list", "categorized", "", map[string]any{"changed": changed}))
	}
	writeJSON(w, http.StatusOK, map[string]int{"changed": changed})
}
