// Package server exposes a provider's static model catalog over HTTP. It is
// read-only and performs no outbound calls.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/victorarias/modelweave/catalog"
	"github.com/victorarias/modelweave/providers"
)

// ModelList is the body of the list endpoint.
type ModelList struct {
	Object string                    `json:"object"`
	Data   []catalog.ModelDescriptor `json:"data"`
}

// Health is the body of the health endpoint.
type Health struct {
	Status string `json:"status"`
	Models int    `json:"models"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Server serves catalog descriptors for one provider.
type Server struct {
	provider providers.Provider
	log      zerolog.Logger
}

// New constructs a Server for provider.
func New(provider providers.Provider, log zerolog.Logger) *Server {
	return &Server{provider: provider, log: log}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.requestLogger)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/v1/models", s.handleListModels).Methods(http.MethodGet)
	router.HandleFunc("/v1/models/{id}", s.handleGetModel).Methods(http.MethodGet)
	return router
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		s.log.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Health{
		Status: "ok",
		Models: len(s.provider.ListModels()),
	})
}

func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ModelList{
		Object: "list",
		Data:   s.provider.ListModels(),
	})
}

// handleGetModel serves one descriptor. The catalog itself resolves any
// identifier to defaults; the HTTP surface narrows that to catalog members
// so clients get a 404 for typos instead of a fabricated record.
func (s *Server) handleGetModel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, model := range s.provider.ListModels() {
		if model.ID == id {
			writeJSON(w, http.StatusOK, model)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, errorBody{Error: "model not found: " + id})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
