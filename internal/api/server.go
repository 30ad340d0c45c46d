package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"kirieshka/internal/accounts"
	"kirieshka/internal/catalog"
	"kirieshka/internal/email"
	"kirieshka/internal/sessions"
)

// Server composes the stateless JSON handlers under /api.
type Server struct {
	handler    http.Handler
	dispatcher *email.Dispatcher
}

func NewServer(
	catalogHandler *catalog.JSONHandler,
	accountsHandler *accounts.JSONHandler,
	registry *sessions.Registry,
	dispatcher *email.Dispatcher,
) *Server {
	s := &Server{dispatcher: dispatcher}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.health).Methods("GET")
	catalog.SetupCatalogRoutes(api, catalogHandler)
	accounts.SetupAccountRoutes(api, accountsHandler)

	handler := registry.Middleware(r)
	handler = RequestLogger(handler)
	s.handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(handler)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.handler)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":          "OK",
		"message":         "API is working",
		"emailConfigured": s.dispatcher.Configured(),
	})
}
