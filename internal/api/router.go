// Package api wires the HTTP surface of the item service.
package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/trovehq/trove/internal/api/recovery"
	"github.com/trovehq/trove/internal/auth"
	"github.com/trovehq/trove/internal/services"
	"github.com/trovehq/trove/internal/store"
)

// NewRouter builds the full routing table. Every /items route sits behind the
// API-key gate; health does not, so probes work without the secret.
func NewRouter(kv store.KV, apiKey string, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	svc := services.NewItemService(kv, log)
	items := NewItemHandler(svc)

	gate := auth.NewGate(apiKey)
	protected := router.PathPrefix("/items").Subrouter()
	protected.Use(gate.Middleware)

	protected.HandleFunc("/capture", items.CaptureItem).Methods("POST")
	protected.HandleFunc("", items.ListItems).Methods("GET")
	protected.HandleFunc("", items.CreateItem).Methods("POST")
	protected.HandleFunc("/{id}", items.GetItem).Methods("GET")
	protected.HandleFunc("/{id}", items.UpdateItem).Methods("PUT", "PATCH")
	protected.HandleFunc("/{id}", items.DeleteItem).Methods("DELETE")

	health := NewHealthHandler(kv)
	router.HandleFunc("/api/health", health.CheckHealth).Methods("GET")

	return router
}
