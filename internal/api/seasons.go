package api

import (
	"net/http"

	"github.com/odelu/catalog/internal/catalog"
	"github.com/odelu/catalog/internal/store"
)

func (s *Server) listSeasons(w http.ResponseWriter, r *http.Request) {
	base, page, limit := listFilter(r)
	showID, err := queryID(r, "showId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	seasons, total, err := s.store.ListSeasons(store.SeasonFilter{ListFilter: base, ShowID: showID})
	if err != nil {
		storeError(w, "season", err)
		return
	}
	writeList(w, seasons, page, limit, total)
}

func (s *Server) getSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	se, err := s.store.GetSeason(id)
	if err != nil {
		storeError(w, "season", err)
		return
	}
	writeItem(w, http.StatusOK, se)
}

func (s *Server) addSeason(w http.ResponseWriter, r *http.Request) {
	showID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := s.store.GetShow(showID); err != nil {
		storeError(w, "show", err)
		return
	}
	var se catalog.Season
	if err := decodeBody(r, &se); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	se.ID = 0
	se.ShowID = showID
	if errs := catalog.ValidateSeason(&se); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs.Error())
		return
	}
	if err := s.store.AddSeason(&se); err != nil {
		storeError(w, "season", err)
		return
	}
	writeItem(w, http.StatusCreated, &se)
}

func (s *Server) updateSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	existing, err := s.store.GetSeason(id)
	if err != nil {
		storeError(w, "season", err)
		return
	}
	var se catalog.Season
	if err := decodeBody(r, &se); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// The parent show is immutable; whatever the payload says, keep it.
	se.ID = id
	se.ShowID = existing.ShowID
	if errs := catalog.ValidateSeason(&se); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs.Error())
		return
	}
	if err := s.store.UpdateSeason(&se); err != nil {
		storeError(w, "season", err)
		return
	}
	writeItem(w, http.StatusOK, &se)
}

func (s *Server) deleteSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteSeason(id); err != nil {
		storeError(w, "season", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "season deleted"})
}
