package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studentapp/backend/internal/models"
)

func (h *Handler) CreateQuery(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	query, err := h.queryService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    query,
	})
}

func (h *Handler) GetAllQueries(w http.ResponseWriter, r *http.Request) {
	classGrade, ok := classGradeQueryParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "validation_error", "class_grade must be between 1 and 12")
		return
	}

	queries, err := h.queryService.List(r.Context(), classGrade)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, queries)
}

func (h *Handler) DeleteQuery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.queryService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "query deleted",
	})
}
