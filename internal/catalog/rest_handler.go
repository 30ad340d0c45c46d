package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type JSONHandler struct {
	store *Store
}

func NewJSONHandler(store *Store) *JSONHandler {
	return &JSONHandler{store: store}
}

func (h *JSONHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.store.Categories())
}

func (h *JSONHandler) Games(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")
	writeJSON(w, h.store.Games(category, search))
}

func (h *JSONHandler) Search(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.store.Search(r.URL.Query().Get("q"), SearchLimit))
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// SetupCatalogRoutes registers the read-only catalog endpoints.
func SetupCatalogRoutes(r *mux.Router, h *JSONHandler) {
	r.HandleFunc("/categories", h.Categories).Methods("GET")
	r.HandleFunc("/games", h.Games).Methods("GET")
	r.HandleFunc("/games/search", h.Search).Methods("GET")
}
