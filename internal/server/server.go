// Package server wires the GraphQL schema, authentication, and health checks
// into an HTTP handler.
package server

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/rs/zerolog"

	"github.com/tidemark/catalog-api/internal/auth"
	"github.com/tidemark/catalog-api/internal/di"
)

//go:embed graphiql.html
var graphiqlHTML string

type Handler struct {
	db            *sql.DB
	authenticator *auth.Authenticator
	schema        *graphql.Schema
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewHandler(container di.Container) *Handler {
	return &Handler{
		db:            di.MustGet[*sql.DB](container),
		authenticator: di.MustGet[*auth.Authenticator](container),
		schema:        di.MustGet[*graphql.Schema](container),
	}
}

// loggingMiddleware logs details about each request and response
func loggingMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Inject logger into request context
			ctx := logger.WithContext(r.Context())
			r = r.WithContext(ctx)

			// Create a custom response writer to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			zerolog.Ctx(ctx).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Msg("Incoming request")

			next.ServeHTTP(rw, r)

			duration := time.Since(start)

			zerolog.Ctx(ctx).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status_code", rw.statusCode).
				Dur("duration", duration).
				Msg("Request completed")
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// handleGraphQL serves the GraphQL API
func (h *Handler) handleGraphQL() http.Handler {
	return &relay.Handler{Schema: h.schema}
}

// handleGraphiQL serves the GraphiQL interface
func (h *Handler) handleGraphiQL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(graphiqlHTML))
}

// handleHealth reports liveness, including database reachability.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (h *Handler) jsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// errorResponse writes an error JSON response
func (h *Handler) errorResponse(w http.ResponseWriter, statusCode int, message string) {
	h.jsonResponse(w, statusCode, ErrorResponse{Error: message})
}

// Router configures all HTTP routes
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.handleHealth)

	// GraphQL endpoints. Bearer tokens are resolved up front so resolvers
	// see the requestor; anonymous requests still reach the schema and are
	// scoped by the resolvers themselves.
	withRequestor := h.authenticator.Middleware()
	mux.Handle("GET /graphql", http.HandlerFunc(h.handleGraphiQL))
	mux.Handle("POST /graphql", withRequestor(h.handleGraphQL()))

	return mux
}

// New assembles the full HTTP handler with the logging middleware applied.
func New(container di.Container) http.Handler {
	logger := di.MustGet[zerolog.Logger](container)
	handler := NewHandler(container)
	return loggingMiddleware(logger)(handler.Router())
}
