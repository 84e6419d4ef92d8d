package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maverick1978/3dlabmod1/internal/application/class"
	"github.com/maverick1978/3dlabmod1/internal/domain"
)

// ClassHandler handles class and class-assignment endpoints.
type ClassHandler struct {
	svc class.Service
}

func NewClassHandler(svc class.Service) *ClassHandler { return &ClassHandler{svc: svc} }

func (h *ClassHandler) List(w http.ResponseWriter, r *http.Request) {
	classes, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, classes)
}

// ListRoster returns one row per (class, assigned student) pair, the shape
// the assignment screens consume.
func (h *ClassHandler) ListRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.svc.ListRoster(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

func (h *ClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.ClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	created, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ClassHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	var req domain.ClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	updated, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ClassHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Clase eliminada con éxito."})
}

func (h *ClassHandler) AssignStudent(w http.ResponseWriter, r *http.Request) {
	var req domain.AssignStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	a, err := h.svc.AssignStudent(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *ClassHandler) ReassignStudent(w http.ResponseWriter, r *http.Request) {
	var req domain.ReassignStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	if err := h.svc.ReassignStudent(r.Context(), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Estudiante reasignado con éxito."})
}

func (h *ClassHandler) RemoveStudent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "assignmentID"))
	if err != nil {
		httpError(w, err)
		return
	}
	if err := h.svc.RemoveStudent(r.Context(), id); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Asignación eliminada con éxito."})
}

func (h *ClassHandler) Students(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	students, err := h.svc.Students(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}
