package httpd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentapp/backend/internal/models"
	"github.com/studentapp/backend/internal/service"
)

// stubLectureService returns a fixed error from every mutation, which is
// enough to drive the error-to-status mapping at the handler boundary.
type stubLectureService struct {
	err     error
	listing models.LectureListing
}

func (s *stubLectureService) AddVideo(ctx context.Context, req *models.AddVideoRequest) (*models.LectureGroup, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.LectureGroup{Subject: req.Subject}, nil
}

func (s *stubLectureService) DeleteVideo(ctx context.Context, req *models.DeleteVideoRequest) error {
	return s.err
}

func (s *stubLectureService) DeleteChapter(ctx context.Context, req *models.DeleteChapterRequest) error {
	return s.err
}

func (s *stubLectureService) ListByClass(ctx context.Context, grade models.ClassGrade, subject, chapter *string) (models.LectureListing, error) {
	return s.listing, s.err
}

func (s *stubLectureService) ListSubjects(ctx context.Context, grade models.ClassGrade) ([]string, error) {
	return nil, s.err
}

func newTestRouter(lectures service.LectureService) *chi.Mux {
	h := NewHandler(nil, nil, nil, nil, lectures, nil, nil, zerolog.Nop())
	router := chi.NewRouter()
	h.RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&stubLectureService{})

	recorder := doRequest(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestAddVideoErrorMapping(t *testing.T) {
	addBody := `{"class_grade":"10","subject":"Physics","chapter":"Optics","title":"Refraction","video_url":"https://v.test/r.mp4"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "duplicate title", err: service.ErrDuplicateVideoTitle, wantStatus: http.StatusConflict, wantCode: "duplicate_video_title"},
		{name: "invalid url", err: service.ErrInvalidVideoURL, wantStatus: http.StatusBadRequest, wantCode: "invalid_video_url"},
		{name: "validation", err: &service.ValidationError{Field: "title", Reason: "is required"}, wantStatus: http.StatusBadRequest, wantCode: "validation_error"},
		{name: "internal", err: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubLectureService{err: tt.err})

			recorder := doRequest(t, router, http.MethodPost, "/api/v1/lectures/videos", addBody)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestDeleteVideoNotFound(t *testing.T) {
	router := newTestRouter(&stubLectureService{err: service.ErrVideoNotFound})

	body := `{"class_grade":"10","subject":"Physics","chapter":"Optics","title":"Refraction"}`
	recorder := doRequest(t, router, http.MethodDelete, "/api/v1/lectures/videos", body)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteChapterNotFound(t *testing.T) {
	router := newTestRouter(&stubLectureService{err: service.ErrChapterNotFound})

	body := `{"class_grade":"10","subject":"Physics","chapter":"Optics"}`
	recorder := doRequest(t, router, http.MethodDelete, "/api/v1/lectures/chapters", body)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetLecturesRequiresClassGrade(t *testing.T) {
	router := newTestRouter(&stubLectureService{})

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/lectures", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, router, http.MethodGet, "/api/v1/lectures?class_grade=99", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetLecturesListing(t *testing.T) {
	listing := models.LectureListing{
		"Physics": {
			"Optics": models.ChapterContent{
				Videos: []models.VideoEntry{{Title: "Refraction", VideoURL: "https://v.test/r.mp4"}},
				PDFs:   []models.PDFEntry{},
			},
		},
	}
	router := newTestRouter(&stubLectureService{listing: listing})

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/lectures?class_grade=10", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Success bool                  `json:"success"`
		Data    models.LectureListing `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Contains(t, body.Data, "Physics")
	assert.Contains(t, body.Data["Physics"], "Optics")
}

func TestAddVideoRejectsBadBody(t *testing.T) {
	router := newTestRouter(&stubLectureService{})

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/lectures/videos", "{not json")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "invalid_body", body["code"])
}
