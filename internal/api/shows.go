package api

import (
	"net/http"

	"github.com/odelu/catalog/internal/catalog"
)

func (s *Server) listShows(w http.ResponseWriter, r *http.Request) {
	filter, page, limit := listFilter(r)
	shows, total, err := s.store.ListShows(filter)
	if err != nil {
		storeError(w, "show", err)
		return
	}
	writeList(w, shows, page, limit, total)
}

func (s *Server) getShow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sh, err := s.store.GetShow(id)
	if err != nil {
		storeError(w, "show", err)
		return
	}
	writeItem(w, http.StatusOK, sh)
}

func (s *Server) addShow(w http.ResponseWriter, r *http.Request) {
	var sh catalog.Show
	if err := decodeBody(r, &sh); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sh.ID = 0
	if errs := catalog.ValidateShow(&sh); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs.Error())
		return
	}
	if err := s.store.AddShow(&sh); err != nil {
		storeError(w, "show", err)
		return
	}
	writeItem(w, http.StatusCreated, &sh)
}

func (s *Server) updateShow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var sh catalog.Show
	if err := decodeBody(r, &sh); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sh.ID = id
	if errs := catalog.ValidateShow(&sh); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs.Error())
		return
	}
	if err := s.store.UpdateShow(&sh); err != nil {
		storeError(w, "show", err)
		return
	}
	writeItem(w, http.StatusOK, &sh)
}

func (s *Server) deleteShow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteShow(id); err != nil {
		storeError(w, "show", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "show deleted"})
}
