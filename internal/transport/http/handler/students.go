package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maverick1978/3dlabmod1/internal/application/student"
	"github.com/maverick1978/3dlabmod1/internal/domain"
	s3infra "github.com/maverick1978/3dlabmod1/internal/infrastructure/s3"
)

// maxPhotoSize caps multipart photo uploads at 5 MiB.
const maxPhotoSize = 5 << 20

// StudentHandler handles student endpoints.
type StudentHandler struct {
	svc student.Service
}

func NewStudentHandler(svc student.Service) *StudentHandler { return &StudentHandler{svc: svc} }

func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	students, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	st, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *StudentHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	history, err := h.svc.History(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *StudentHandler) Unassigned(w http.ResponseWriter, r *http.Request) {
	students, err := h.svc.Unassigned(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *StudentHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	var req domain.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	rec, err := h.svc.Recommend(r.Context(), id, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// Photo streams the stored photo back to the client.
func (h *StudentHandler) Photo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	rc, contentType, err := h.svc.Photo(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	defer rc.Close()
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}

// UploadPhoto accepts a multipart form with a "photo" field and stores it in
// the object store.
func (h *StudentHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "falta el archivo 'photo'")
		return
	}
	defer file.Close()

	st, err := h.svc.UploadPhoto(r.Context(), id, header.Filename, file,
		s3infra.ContentTypeForFilename(header.Filename))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
