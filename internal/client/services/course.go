package services

import (
	"context"
	"errors"

	"github.com/essaehaan/Profile/internal/client/client"
	"github.com/essaehaan/Profile/internal/client/models"
	"github.com/essaehaan/Profile/internal/client/validation"
	"github.com/essaehaan/Profile/internal/logging"
)

// CourseService reads the catalogue and performs admin mutations.
//
// Create and Update validate the draft first and return *validation.Error
// without any request when it fails. When the draft carries an image, the
// picture is uploaded in a second request after the course itself was
// saved; if only that upload fails, the saved course is returned together
// with a *PartialUpdateError.
type CourseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id models.ID) (*models.Course, error)
	Create(ctx context.Context, draft validation.CourseDraft) (*models.Course, error)
	Update(ctx context.Context, id models.ID, draft validation.CourseDraft) (*models.Course, error)
	Delete(ctx context.Context, id models.ID) error
}

type courseService struct {
	api    client.CourseAPI
	logger logging.Logger
}

func NewCourseService(api client.CourseAPI, logger logging.Logger) CourseService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &courseService{api: api, logger: logger}
}

func (s *courseService) List(ctx context.Context) ([]models.Course, error) {
	return s.api.ListCourses(ctx)
}

func (s *courseService) Get(ctx context.Context, id models.ID) (*models.Course, error) {
	return s.api.GetCourse(ctx, id)
}

func (s *courseService) Delete(ctx context.Context, id models.ID) error {
	if err := s.api.DeleteCourse(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "course deleted", "course", id)
	return nil
}

func (s *courseService) Create(ctx context.Context, draft validation.CourseDraft) (*models.Course, error) {
	in, err := draft.Input()
	if err != nil {
		return nil, err
	}

	var course *models.Course
	if draft.Image != nil {
		course, err = s.api.CreateCourseMultipart(ctx, in, draft.Image)
	} else {
		course, err = s.api.CreateCourse(ctx, in)
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "course created", "course", course.ID)

	return s.attachPicture(ctx, course, draft.Image)
}

func (s *courseService) Update(ctx context.Context, id models.ID, draft validation.CourseDraft) (*models.Course, error) {
	in, err := draft.Input()
	if err != nil {
		return nil, err
	}

	course, err := s.api.UpdateCourse(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if course.ID == "" {
		course.ID = id
	}
	s.logger.Info(ctx, "course updated", "course", course.ID)

	return s.attachPicture(ctx, course, draft.Image)
}

// attachPicture uploads img for a course that is already saved and merges
// the returned picture URL.
func (s *courseService) attachPicture(ctx context.Context, course *models.Course, img *models.Attachment) (*models.Course, error) {
	if img == nil {
		return course, nil
	}
	if course.ID == "" {
		return course, &PartialUpdateError{Err: errors.New("saved course has no id")}
	}

	picture, err := s.api.UploadPicture(ctx, course.ID, img)
	if err != nil {
		s.logger.Warn(ctx, "picture upload failed", "course", course.ID, "error", err)
		return course, &PartialUpdateError{CourseID: course.ID, Err: err}
	}
	if picture != "" {
		course.Picture = picture
	}
	return course, nil
}
