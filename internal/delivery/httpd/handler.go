package httpd

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/studentapp/backend/internal/models"
	"github.com/studentapp/backend/internal/service"
)

type Handler struct {
	adminService      service.AdminService
	studentService    service.StudentService
	assignmentService service.AssignmentService
	submissionService service.SubmissionService
	lectureService    service.LectureService
	scheduleService   service.ScheduleService
	queryService      service.QueryService
	logger            zerolog.Logger
}

func NewHandler(
	adminService service.AdminService,
	studentService service.StudentService,
	assignmentService service.AssignmentService,
	submissionService service.SubmissionService,
	lectureService service.LectureService,
	scheduleService service.ScheduleService,
	queryService service.QueryService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		adminService:      adminService,
		studentService:    studentService,
		assignmentService: assignmentService,
		submissionService: submissionService,
		lectureService:    lectureService,
		scheduleService:   scheduleService,
		queryService:      queryService,
		logger:            logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	router.Route("/api/v1", func(api chi.Router) {
		api.Post("/admin/login", h.AdminLogin)

		api.Route("/students", func(r chi.Router) {
			r.Post("/", h.CreateStudent)
			r.Get("/", h.GetAllStudents)
			r.Delete("/{id}", h.DeleteStudent)
			r.Post("/login", h.StudentLogin)
			r.Get("/{id}", h.GetStudentProfile)
		})

		api.Route("/assignments", func(r chi.Router) {
			r.Post("/", h.CreateAssignment)
			r.Get("/", h.GetAllAssignments)
			r.Delete("/{id}", h.DeleteAssignment)
		})

		api.Route("/submissions", func(r chi.Router) {
			r.Post("/", h.SubmitAssignment)
			r.Get("/", h.GetAllSubmissions)
			r.Patch("/{id}/status", h.UpdateSubmissionStatus)
			r.Delete("/{id}", h.DeleteSubmission)
		})

		api.Route("/lectures", func(r chi.Router) {
			r.Get("/", h.GetLectures)
			r.Get("/subjects", h.GetLectureSubjects)
			r.Post("/videos", h.AddVideo)
			r.Delete("/videos", h.DeleteVideo)
			r.Delete("/chapters", h.DeleteChapter)
		})

		api.Route("/schedules", func(r chi.Router) {
			r.Post("/", h.CreateSchedule)
			r.Get("/", h.GetAllSchedules)
			r.Delete("/{id}", h.DeleteSchedule)
		})

		api.Route("/queries", func(r chi.Router) {
			r.Post("/", h.CreateQuery)
			r.Get("/", h.GetAllQueries)
			r.Delete("/{id}", h.DeleteQuery)
		})
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "studentapp-backend",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
}

// classGradeQueryParam parses the optional class_grade query filter.
// The second return reports whether the value was present but invalid.
func classGradeQueryParam(r *http.Request) (*models.ClassGrade, bool) {
	value := r.URL.Query().Get("class_grade")
	if value == "" {
		return nil, true
	}

	grade, ok := models.ParseClassGrade(value)
	if !ok {
		return nil, false
	}

	return &grade, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": message,
		"code":  code,
	})
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	response := map[string]interface{}{
		"success": true,
		"data":    data,
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, "validation_error", validationErr.Error())
	case errors.Is(err, service.ErrInvalidIdentifier):
		writeError(w, http.StatusBadRequest, "invalid_identifier", "invalid identifier")
	case errors.Is(err, service.ErrInvalidVideoURL):
		writeError(w, http.StatusBadRequest, "invalid_video_url", "video URL must be absolute")
	case errors.Is(err, service.ErrDuplicateVideoTitle):
		writeError(w, http.StatusConflict, "duplicate_video_title", "a video with this title already exists in the chapter")
	case errors.Is(err, service.ErrVideoNotFound):
		writeError(w, http.StatusNotFound, "not_found", "video not found")
	case errors.Is(err, service.ErrChapterNotFound):
		writeError(w, http.StatusNotFound, "not_found", "chapter not found")
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
	case errors.Is(err, service.ErrUploadFailed):
		h.logger.Error().Err(err).Msg("Upload failed")
		writeError(w, http.StatusInternalServerError, "upload_failed", "failed to store the uploaded file")
	default:
		h.logger.Error().Err(err).Msg("Service error")
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
