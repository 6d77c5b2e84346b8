package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/studentapp/backend/internal/models"
)

func (h *Handler) AddVideo(w http.ResponseWriter, r *http.Request) {
	var req models.AddVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	group, err := h.lectureService.AddVideo(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    group,
	})
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	if err := h.lectureService.DeleteVideo(r.Context(), &req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "video deleted",
	})
}

func (h *Handler) DeleteChapter(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	if err := h.lectureService.DeleteChapter(r.Context(), &req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "chapter deleted",
	})
}

func (h *Handler) GetLectures(w http.ResponseWriter, r *http.Request) {
	grade, ok := models.ParseClassGrade(r.URL.Query().Get("class_grade"))
	if !ok {
		writeError(w, http.StatusBadRequest, "validation_error", "class_grade is required and must be between 1 and 12")
		return
	}

	var subject, chapter *string
	if value := r.URL.Query().Get("subject"); value != "" {
		subject = &value
	}
	if value := r.URL.Query().Get("chapter"); value != "" {
		chapter = &value
	}

	listing, err := h.lectureService.ListByClass(r.Context(), grade, subject, chapter)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, listing)
}

func (h *Handler) GetLectureSubjects(w http.ResponseWriter, r *http.Request) {
	grade, ok := models.ParseClassGrade(r.URL.Query().Get("class_grade"))
	if !ok {
		writeError(w, http.StatusBadRequest, "validation_error", "class_grade is required and must be between 1 and 12")
		return
	}

	subjects, err := h.lectureService.ListSubjects(r.Context(), grade)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, subjects)
}
