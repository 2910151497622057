package services

import (
	"context"

	"github.com/essaehaan/Profile/internal/client/models"
)

// fakeAPI implements client.Client and records the calls it receives.
type fakeAPI struct {
	calls []string

	LoginToken string
	LoginErr   error
	SignupErr  error
	ForgotErr  error
	ResetErr   error

	Courses    []models.Course
	ListErr    error
	Created    *models.Course
	CreateErr  error
	Updated    *models.Course
	UpdateErr  error
	Picture    string
	UploadErr  error
	DeleteErr  error
	LastInput  models.CourseInput
	LastImage  *models.Attachment
	LastUpload models.ID
}

func (f *fakeAPI) Login(_ context.Context, email, _ string) (string, error) {
	f.calls = append(f.calls, "login "+email)
	return f.LoginToken, f.LoginErr
}

func (f *fakeAPI) Signup(_ context.Context, _, email, _ string) error {
	f.calls = append(f.calls, "signup "+email)
	return f.SignupErr
}

func (f *fakeAPI) ForgotPassword(_ context.Context, email string) error {
	f.calls = append(f.calls, "forgot "+email)
	return f.ForgotErr
}

func (f *fakeAPI) ResetPassword(_ context.Context, token, _ string) error {
	f.calls = append(f.calls, "reset "+token)
	return f.ResetErr
}

func (f *fakeAPI) ListCourses(context.Context) ([]models.Course, error) {
	f.calls = append(f.calls, "list")
	return f.Courses, f.ListErr
}

func (f *fakeAPI) GetCourse(_ context.Context, id models.ID) (*models.Course, error) {
	f.calls = append(f.calls, "get "+id.String())
	for _, c := range f.Courses {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, f.ListErr
}

func (f *fakeAPI) CreateCourse(_ context.Context, in models.CourseInput) (*models.Course, error) {
	f.calls = append(f.calls, "create json")
	f.LastInput = in
	return f.clone(f.Created), f.CreateErr
}

func (f *fakeAPI) CreateCourseMultipart(_ context.Context, in models.CourseInput, image *models.Attachment) (*models.Course, error) {
	f.calls = append(f.calls, "create multipart")
	f.LastInput = in
	f.LastImage = image
	return f.clone(f.Created), f.CreateErr
}

func (f *fakeAPI) UpdateCourse(_ context.Context, id models.ID, in models.CourseInput) (*models.Course, error) {
	f.calls = append(f.calls, "update "+id.String())
	f.LastInput = in
	return f.clone(f.Updated), f.UpdateErr
}

func (f *fakeAPI) UploadPicture(_ context.Context, id models.ID, file *models.Attachment) (string, error) {
	f.calls = append(f.calls, "upload "+id.String())
	f.LastUpload = id
	f.LastImage = file
	return f.Picture, f.UploadErr
}

func (f *fakeAPI) DeleteCourse(_ context.Context, id models.ID) error {
	f.calls = append(f.calls, "delete "+id.String())
	return f.DeleteErr
}

func (f *fakeAPI) clone(c *models.Course) *models.Course {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
