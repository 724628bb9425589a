package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/smartshop-app/smartshop/internal/handler"
	"github.com/smartshop-app/smartshop/internal/list"
	"github.com/smartshop-app/smartshop/internal/middleware"
	"github.com/smartshop-app/smartshop/internal/store"
	ws "github.com/smartshop-app/smartshop/internal/websocket"
)

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	svc         *list.Service
	itemH       *handler.ItemHandler
	suggestionH *handler.SuggestionHandler
	summaryH    *handler.SummaryHandler
	logger      *slog.Logger
}

func New(db *sql.DB, assistant list.Assistant, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	listStore := store.NewListStore(db)
	svc := list.NewService(listStore, assistant, logger.With("component", "list"))

	return &Server{
		db:          db,
		hub:         hub,
		svc:         svc,
		itemH:       handler.NewItemHandler(svc, hub, logger.With("component", "item")),
		suggestionH: handler.NewSuggestionHandler(svc, hub, logger.With("component", "suggestion")),
		summaryH:    handler.NewSummaryHandler(svc),
		logger:      logger,
	}
}

// Service exposes the list controller, mainly for tests.
func (s *Server) Service() *list.Service {
	return s.svc
}

func (s *Server) Router() http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /api/items", s.itemH.List)
	api.HandleFunc("POST /api/items", s.itemH.Create)
	api.HandleFunc("PATCH /api/items/{id}", s.itemH.Update)
	api.HandleFunc("POST /api/items/{id}/toggle", s.itemH.Toggle)
	api.HandleFunc("DELETE /api/items/{id}", s.itemH.Delete)
	api.HandleFunc("DELETE /api/items", s.itemH.Clear)
	api.HandleFunc("POST /api/items/categorize", s.itemH.Categorize)

	api.HandleFunc("GET /api/suggestions", s.suggestionH.List)
	api.HandleFunc("POST /api/suggestions/refresh", s.suggestionH.Refresh)
	api.HandleFunc("POST /api/suggestions/accept", s.suggestionH.Accept)

	api.HandleFunc("GET /api/summary", s.summaryH.Get)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /ws", ws.Handler(s.hub, s.logger.With("component", "websocket")))
	mux.Handle("/api/", middleware.RequestLogger(s.logger.With("component", "http"))(api))

	return mux
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
