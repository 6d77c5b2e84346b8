package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/studentapp/backend/internal/models"
	"github.com/studentapp/backend/internal/repository"
)

type LectureService interface {
	AddVideo(ctx context.Context, req *models.AddVideoRequest) (*models.LectureGroup, error)
	DeleteVideo(ctx context.Context, req *models.DeleteVideoRequest) error
	DeleteChapter(ctx context.Context, req *models.DeleteChapterRequest) error
	ListByClass(ctx context.Context, grade models.ClassGrade, subject, chapter *string) (models.LectureListing, error)
	ListSubjects(ctx context.Context, grade models.ClassGrade) ([]string, error)
}

type lectureService struct {
	lectureRepo repository.LectureRepository
	logger      zerolog.Logger
}

func NewLectureService(lectureRepo repository.LectureRepository, logger zerolog.Logger) LectureService {
	return &lectureService{
		lectureRepo: lectureRepo,
		logger:      logger,
	}
}

func (s *lectureService) AddVideo(ctx context.Context, req *models.AddVideoRequest) (*models.LectureGroup, error) {
	switch {
	case req.ClassGrade == "":
		return nil, missingField("class_grade")
	case req.Subject == "":
		return nil, missingField("subject")
	case req.Chapter == "":
		return nil, missingField("chapter")
	case req.Title == "":
		return nil, missingField("title")
	case req.VideoURL == "":
		return nil, missingField("video_url")
	}

	grade, ok := models.ParseClassGrade(req.ClassGrade)
	if !ok {
		return nil, invalidField("class_grade", "must be between 1 and 12")
	}

	if !absoluteURL(req.VideoURL) {
		return nil, ErrInvalidVideoURL
	}
	if req.PDFURL != "" && !absoluteURL(req.PDFURL) {
		return nil, ErrInvalidVideoURL
	}

	video := models.Video{
		Title:       req.Title,
		VideoURL:    req.VideoURL,
		PDFURL:      req.PDFURL,
		Description: req.Description,
	}

	if err := s.appendVideo(ctx, grade, req.Subject, req.Chapter, video); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("class_grade", grade.Int()).
		Str("subject", req.Subject).
		Str("chapter", req.Chapter).
		Str("title", req.Title).
		Msg("Video added")

	group, err := s.lectureRepo.Get(ctx, grade, req.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to load lecture group: %w", err)
	}
	if group == nil {
		return nil, ErrNotFound
	}

	return group, nil
}

// appendVideo first tries the cheap path of pushing onto an existing
// chapter. When that matches nothing the chapter (or the whole document)
// is missing, or the title is taken; HasChapter disambiguates the two.
func (s *lectureService) appendVideo(ctx context.Context, grade models.ClassGrade, subject, chapter string, video models.Video) error {
	appended, err := s.lectureRepo.AppendVideo(ctx, grade, subject, chapter, video)
	if err != nil {
		return fmt.Errorf("failed to append video: %w", err)
	}
	if appended {
		return nil
	}

	exists, err := s.lectureRepo.HasChapter(ctx, grade, subject, chapter)
	if err != nil {
		return fmt.Errorf("failed to check chapter: %w", err)
	}
	if exists {
		return ErrDuplicateVideoTitle
	}

	err = s.lectureRepo.UpsertChapter(ctx, grade, subject, chapter, video)
	if errors.Is(err, repository.ErrConcurrentUpdate) {
		// A racing writer created the chapter or document first; take the
		// append path once more against the now-existing chapter.
		appended, err = s.lectureRepo.AppendVideo(ctx, grade, subject, chapter, video)
		if err != nil {
			return fmt.Errorf("failed to append video: %w", err)
		}
		if !appended {
			return ErrDuplicateVideoTitle
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create chapter: %w", err)
	}

	return nil
}

func (s *lectureService) DeleteVideo(ctx context.Context, req *models.DeleteVideoRequest) error {
	switch {
	case req.ClassGrade == "":
		return missingField("class_grade")
	case req.Subject == "":
		return missingField("subject")
	case req.Chapter == "":
		return missingField("chapter")
	case req.Title == "":
		return missingField("title")
	}

	grade, ok := models.ParseClassGrade(req.ClassGrade)
	if !ok {
		return invalidField("class_grade", "must be between 1 and 12")
	}

	removed, err := s.lectureRepo.RemoveVideo(ctx, grade, req.Subject, req.Chapter, req.Title)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if !removed {
		return ErrVideoNotFound
	}

	s.logger.Info().
		Int("class_grade", grade.Int()).
		Str("subject", req.Subject).
		Str("chapter", req.Chapter).
		Str("title", req.Title).
		Msg("Video deleted")

	return nil
}

func (s *lectureService) DeleteChapter(ctx context.Context, req *models.DeleteChapterRequest) error {
	switch {
	case req.ClassGrade == "":
		return missingField("class_grade")
	case req.Subject == "":
		return missingField("subject")
	case req.Chapter == "":
		return missingField("chapter")
	}

	grade, ok := models.ParseClassGrade(req.ClassGrade)
	if !ok {
		return invalidField("class_grade", "must be between 1 and 12")
	}

	removed, err := s.lectureRepo.RemoveChapter(ctx, grade, req.Subject, req.Chapter)
	if err != nil {
		return fmt.Errorf("failed to delete chapter: %w", err)
	}
	if !removed {
		return ErrChapterNotFound
	}

	s.logger.Info().
		Int("class_grade", grade.Int()).
		Str("subject", req.Subject).
		Str("chapter", req.Chapter).
		Msg("Chapter deleted")

	return nil
}

func (s *lectureService) ListByClass(ctx context.Context, grade models.ClassGrade, subject, chapter *string) (models.LectureListing, error) {
	groups, err := s.lectureRepo.GetByClass(ctx, grade, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list lectures: %w", err)
	}

	listing := make(models.LectureListing, len(groups))
	for _, group := range groups {
		chapters := make(map[string]models.ChapterContent, len(group.Chapters))
		for _, ch := range group.Chapters {
			if chapter != nil && ch.Name != *chapter {
				continue
			}
			chapters[ch.Name] = chapterContent(ch)
		}
		if len(chapters) == 0 && chapter != nil {
			continue
		}
		listing[group.Subject] = chapters
	}

	return listing, nil
}

func chapterContent(chapter models.Chapter) models.ChapterContent {
	content := models.ChapterContent{
		Videos: make([]models.VideoEntry, 0, len(chapter.Videos)),
		PDFs:   []models.PDFEntry{},
	}

	for _, video := range chapter.Videos {
		content.Videos = append(content.Videos, models.VideoEntry{
			Title:       video.Title,
			VideoURL:    video.VideoURL,
			Description: video.Description,
		})
		if video.PDFURL != "" {
			content.PDFs = append(content.PDFs, models.PDFEntry{
				Title:       video.Title + " (PDF)",
				PDFURL:      video.PDFURL,
				Description: video.Description,
			})
		}
	}

	return content
}

func (s *lectureService) ListSubjects(ctx context.Context, grade models.ClassGrade) ([]string, error) {
	subjects, err := s.lectureRepo.Subjects(ctx, grade)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	return subjects, nil
}

func absoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}
