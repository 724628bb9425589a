package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/smartshop-app/smartshop/internal/ai"
	"github.com/smartshop-app/smartshop/internal/list"
	"github.com/smartshop-app/smartshop/internal/model"
	ws "github.com/smartshop-app/smartshop/internal/websocket"
)

type SuggestionHandler struct {
	svc    *list.Service
	hub    *ws.Hub
	logger *slog.Logger
}

func NewSuggestionHandler(svc *list.Service, hub *ws.Hub, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{svc: svc, hub: hub, logger: logger}
}

func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	suggestions := h.svc.Suggestions()
	if suggestions == nil {
		suggestions = []model.AISuggestion{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}

// Refresh asks the assistant what might be missing from the list and
// replaces the suggestion set with the answer.
func (h *SuggestionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.svc.FetchSuggestions(r.Context())
	if errors.Is(err, ai.ErrInvalidCredential) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "AI credential missing or rejected"})
		return
	}
	if err != nil {
		h.logger.Error("fetch suggestions", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch suggestions"})
		return
	}

	if suggestions == nil {
		suggestions = []model.AISuggestion{}
	}
	h.hub.Broadcast(ws.NewMessage("suggestions", "refreshed", "", map[string]any{"count": len(suggestions)}))
	writeJSON(w, http.StatusOK, suggestions)
}

type acceptSuggestionRequest struct {
	Name string `json:"name"`
}

// Accept promotes a suggestion to a real list item.
func (h *SuggestionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req acceptSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	item := h.svc.AcceptSuggestion(req.Name)
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "suggestion not found"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("item", "created", item.ID, nil))
	writeJSON(w, http.StatusCreated, item)
}
