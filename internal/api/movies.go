package api

import (
	"net/http"

	"github.com/odelu/catalog/internal/catalog"
)

func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	filter, page, limit := listFilter(r)
	movies, total, err := s.store.ListMovies(filter)
	if err != nil {
		storeError(w, "movie", err)
		return
	}
	writeList(w, movies, page, limit, total)
}

func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := s.store.GetMovie(id)
	if err != nil {
		storeError(w, "movie", err)
		return
	}
	writeItem(w, http.StatusOK, m)
}

func (s *Server) addMovie(w http.ResponseWriter, r *http.Request) {
	var m catalog.Movie
	if err := decodeBody(r, &m); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m.ID = 0
	if errs := catalog.ValidateMovie(&m); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs.Error())
		return
	}
	if err := s.store.AddMovie(&m); err != nil {
		storeError(w, "movie", err)
		return
	}
	writeItem(w, http.StatusCreated, &m)
}

func (s *Server) updateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var m catalog.Movie
	if err := decodeBody(r, &m); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m.ID = id
	if errs := catalog.ValidateMovie(&m); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs.Error())
		return
	}
	if err := s.store.UpdateMovie(&m); err != nil {
		storeError(w, "movie", err)
		return
	}
	writeItem(w, http.StatusOK, &m)
}

func (s *Server) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteMovie(id); err != nil {
		storeError(w, "movie", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "movie deleted"})
}
