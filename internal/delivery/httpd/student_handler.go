package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studentapp/backend/internal/models"
)

func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	response, err := h.studentService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    response,
	})
}

func (h *Handler) GetAllStudents(w http.ResponseWriter, r *http.Request) {
	classGrade, ok := classGradeQueryParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "validation_error", "class_grade must be between 1 and 12")
		return
	}

	students, err := h.studentService.List(r.Context(), classGrade)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, students)
}

func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.studentService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "student deleted",
	})
}

func (h *Handler) GetStudentProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	profile, err := h.studentService.Profile(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, profile)
}
