package httpd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studentapp/backend/internal/models"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger files spill to temp storage.
const maxMultipartMemory = 32 << 20

func (h *Handler) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "failed to parse form data")
		return
	}

	req := &models.SubmitAssignmentRequest{
		StudentName:     r.FormValue("student_name"),
		ClassGrade:      r.FormValue("class_grade"),
		AssignmentTitle: r.FormValue("assignment_title"),
		DueDate:         r.FormValue("due_date"),
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		content, readErr := io.ReadAll(file)
		if readErr != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", "failed to read file")
			return
		}

		req.Filename = header.Filename
		req.ContentType = header.Header.Get("Content-Type")
		req.FileSize = header.Size
		req.FileContent = content
	}

	response, err := h.submissionService.Submit(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    response,
	})
}

func (h *Handler) GetAllSubmissions(w http.ResponseWriter, r *http.Request) {
	classGrade, ok := classGradeQueryParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "validation_error", "class_grade must be between 1 and 12")
		return
	}

	submissions, err := h.submissionService.List(r.Context(), classGrade)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, submissions)
}

func (h *Handler) UpdateSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateSubmissionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	if err := h.submissionService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "submission status updated",
	})
}

func (h *Handler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.submissionService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "submission deleted",
	})
}
