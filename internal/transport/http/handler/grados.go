package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maverick1978/3dlabmod1/internal/application/grado"
	"github.com/maverick1978/3dlabmod1/internal/domain"
)

// GradoHandler handles grade-level endpoints.
type GradoHandler struct {
	svc grado.Service
}

func NewGradoHandler(svc grado.Service) *GradoHandler { return &GradoHandler{svc: svc} }

// List includes the live student count per grade.
func (h *GradoHandler) List(w http.ResponseWriter, r *http.Request) {
	grados, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grados)
}

func (h *GradoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.GradoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	g, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (h *GradoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Grado eliminado con éxito."})
}
