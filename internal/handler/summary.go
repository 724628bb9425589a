package handler

import (
	"net/http"

	"github.com/smartshop-app/smartshop/internal/list"
	"github.com/smartshop-app/smartshop/internal/summary"
)

type SummaryHandler struct {
	svc *list.Service
}

func NewSummaryHandler(svc *list.Service) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

type summaryResponse struct {
	TotalCost         float64                 `json:"total_cost"`
	ItemCount         int                     `json:"item_count"`
	CompletionPercent float64                 `json:"completion_percent"`
	Groups            []summary.Group         `json:"groups"`
	Spend             []summary.CategorySpend `json:"spend"`
}

// Get returns every derived view in one response: total cost, unit count,
// completion percentage, category groups, and the chart breakdown.
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Items()

	resp := summaryResponse{
		TotalCost:         summary.TotalCost(items),
		ItemCount:         summary.ItemCount(items),
		CompletionPercent: summary.CompletionPercent(items),
		Groups:            summary.GroupByCategory(items),
		Spend:             summary.SpendByCategory(items),
	}
	if resp.Groups == nil {
		resp.Groups = []summary.Group{}
	}
	if resp.Spend == nil {
		resp.Spend = []summary.CategorySpend{}
	}
	writeJSON(w, http.StatusOK, resp)
}
