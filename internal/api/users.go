package api

import (
	"net/http"

	"github.com/odelu/catalog/internal/catalog"
)

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	filter, page, limit := listFilter(r)
	users, total, err := s.store.ListUsers(filter)
	if err != nil {
		storeError(w, "user", err)
		return
	}
	writeList(w, users, page, limit, total)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := s.store.GetUser(id)
	if err != nil {
		storeError(w, "user", err)
		return
	}
	writeItem(w, http.StatusOK, u)
}

func (s *Server) addUser(w http.ResponseWriter, r *http.Request) {
	var u catalog.User
	if err := decodeBody(r, &u); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u.ID = 0
	errs := catalog.ValidateUser(&u)
	if u.Password == "" {
		errs["password"] = "password is required"
	}
	if len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs.Error())
		return
	}
	if err := s.store.AddUser(&u); err != nil {
		storeError(w, "user", err)
		return
	}
	u.Password = ""
	writeItem(w, http.StatusCreated, &u)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var u catalog.User
	if err := decodeBody(r, &u); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u.ID = id
	if errs := catalog.ValidateUser(&u); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs.Error())
		return
	}
	if err := s.store.UpdateUser(&u); err != nil {
		storeError(w, "user", err)
		return
	}
	// Re-read so the response carries created_at and never the password.
	updated, err := s.store.GetUser(id)
	if err != nil {
		storeError(w, "user", err)
		return
	}
	writeItem(w, http.StatusOK, updated)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteUser(id); err != nil {
		storeError(w, "user", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}
