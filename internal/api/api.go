// Package api implements the catalog REST API. Movie and show reads are
// public; everything under /api/admin requires the x-api-key header.
package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/odelu/catalog/internal/store"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Server is the catalog API server.
type Server struct {
	store  *store.Store
	apiKey string
}

// New creates a new API server. apiKey guards the admin routes.
func New(db *sql.DB, apiKey string) *Server {
	return &Server{
		store:  store.NewStore(db),
		apiKey: apiKey,
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Public catalog reads
	mux.HandleFunc("GET /api/movies", s.listMovies)
	mux.HandleFunc("GET /api/movies/{id}", s.getMovie)
	mux.HandleFunc("GET /api/shows", s.listShows)
	mux.HandleFunc("GET /api/shows/{id}", s.getShow)

	// Movies
	mux.HandleFunc("GET /api/admin/movies", s.requireKey(s.listMovies))
	mux.HandleFunc("GET /api/admin/movies/{id}", s.requireKey(s.getMovie))
	mux.HandleFunc("POST /api/admin/movies", s.requireKey(s.addMovie))
	mux.HandleFunc("PUT /api/admin/movies/{id}", s.requireKey(s.updateMovie))
	mux.HandleFunc("DELETE /api/admin/movies/{id}", s.requireKey(s.deleteMovie))

	// Shows
	mux.HandleFunc("GET /api/admin/shows", s.requireKey(s.listShows))
	mux.HandleFunc("GET /api/admin/shows/{id}", s.requireKey(s.getShow))
	mux.HandleFunc("POST /api/admin/shows", s.requireKey(s.addShow))
	mux.HandleFunc("PUT /api/admin/shows/{id}", s.requireKey(s.updateShow))
	mux.HandleFunc("DELETE /api/admin/shows/{id}", s.requireKey(s.deleteShow))

	// Seasons (created under their show)
	mux.HandleFunc("POST /api/admin/shows/{id}/seasons", s.requireKey(s.addSeason))
	mux.HandleFunc("GET /api/admin/seasons", s.requireKey(s.listSeasons))
	mux.HandleFunc("GET /api/admin/seasons/{id}", s.requireKey(s.getSeason))
	mux.HandleFunc("PUT /api/admin/seasons/{id}", s.requireKey(s.updateSeason))
	mux.HandleFunc("DELETE /api/admin/seasons/{id}", s.requireKey(s.deleteSeason))

	// Episodes (created under their season)
	mux.HandleFunc("POST /api/admin/seasons/{id}/episodes", s.requireKey(s.addEpisode))
	mux.HandleFunc("GET /api/admin/episodes", s.requireKey(s.listEpisodes))
	mux.HandleFunc("GET /api/admin/episodes/{id}", s.requireKey(s.getEpisode))
	mux.HandleFunc("PUT /api/admin/episodes/{id}", s.requireKey(s.updateEpisode))
	mux.HandleFunc("DELETE /api/admin/episodes/{id}", s.requireKey(s.deleteEpisode))

	// Users
	mux.HandleFunc("GET /api/admin/users", s.requireKey(s.listUsers))
	mux.HandleFunc("GET /api/admin/users/{id}", s.requireKey(s.getUser))
	mux.HandleFunc("POST /api/admin/users", s.requireKey(s.addUser))
	mux.HandleFunc("PUT /api/admin/users/{id}", s.requireKey(s.updateUser))
	mux.HandleFunc("DELETE /api/admin/users/{id}", s.requireKey(s.deleteUser))
}

// pagination echoes the resolved page window on every list response.
type pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type listResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination pagination `json:"pagination"`
}

type itemResponse[T any] struct {
	Data T `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{Message: message})
}

func writeItem[T any](w http.ResponseWriter, code int, item T) {
	writeJSON(w, code, itemResponse[T]{Data: item})
}

func writeList[T any](w http.ResponseWriter, items []T, page, limit, total int) {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	writeJSON(w, http.StatusOK, listResponse[T]{
		Data: items,
		Pagination: pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// storeError writes the appropriate status for a store failure.
func storeError(w http.ResponseWriter, entity string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, store.ErrDuplicate):
		writeError(w, http.StatusConflict, entity+" already exists")
	case errors.Is(err, store.ErrConstraint):
		writeError(w, http.StatusBadRequest, "invalid "+entity)
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// listFilter resolves page/limit/search query parameters into a store
// filter plus the echoed page window.
func listFilter(r *http.Request) (store.ListFilter, int, int) {
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(r, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return store.ListFilter{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, page, limit
}

// queryID extracts an optional int64 from query string.
func queryID(r *http.Request, name string) (*int64, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, val)
	}
	return &id, nil
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
