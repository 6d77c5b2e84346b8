package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studentapp/backend/internal/models"
)

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	assignment, err := h.assignmentService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    assignment,
	})
}

func (h *Handler) GetAllAssignments(w http.ResponseWriter, r *http.Request) {
	classGrade, ok := classGradeQueryParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "validation_error", "class_grade must be between 1 and 12")
		return
	}

	assignments, err := h.assignmentService.List(r.Context(), classGrade)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, assignments)
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.assignmentService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "assignment deleted",
	})
}
