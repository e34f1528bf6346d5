package api

import (
	"net/http"

	"github.com/odelu/catalog/internal/catalog"
	"github.com/odelu/catalog/internal/store"
)

func (s *Server) listEpisodes(w http.ResponseWriter, r *http.Request) {
	base, page, limit := listFilter(r)
	seasonID, err := queryID(r, "seasonId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	episodes, total, err := s.store.ListEpisodes(store.EpisodeFilter{ListFilter: base, SeasonID: seasonID})
	if err != nil {
		storeError(w, "episode", err)
		return
	}
	writeList(w, episodes, page, limit, total)
}

func (s *Server) getEpisode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ep, err := s.store.GetEpisode(id)
	if err != nil {
		storeError(w, "episode", err)
		return
	}
	writeItem(w, http.StatusOK, ep)
}

func (s *Server) addEpisode(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := s.store.GetSeason(seasonID); err != nil {
		storeError(w, "season", err)
		return
	}
	var ep catalog.Episode
	if err := decodeBody(r, &ep); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ep.ID = 0
	ep.SeasonID = seasonID
	if errs := catalog.ValidateEpisode(&ep); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs.Error())
		return
	}
	if err := s.store.AddEpisode(&ep); err != nil {
		storeError(w, "episode", err)
		return
	}
	writeItem(w, http.StatusCreated, &ep)
}

func (s *Server) updateEpisode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	existing, err := s.store.GetEpisode(id)
	if err != nil {
		storeError(w, "episode", err)
		return
	}
	var ep catalog.Episode
	if err := decodeBody(r, &ep); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// The parent season is immutable; whatever the payload says, keep it.
	ep.ID = id
	ep.SeasonID = existing.SeasonID
	if errs := catalog.ValidateEpisode(&ep); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs.Error())
		return
	}
	if err := s.store.UpdateEpisode(&ep); err != nil {
		storeError(w, "episode", err)
		return
	}
	writeItem(w, http.StatusOK, &ep)
}

func (s *Server) deleteEpisode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteEpisode(id); err != nil {
		storeError(w, "episode", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "episode deleted"})
}
