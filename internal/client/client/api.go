package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/essaehaan/Profile/internal/client/models"
)

// AuthAPI covers the /auth endpoints.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, name, email, password string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

// CourseAPI covers the /courses endpoints.
type CourseAPI interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id models.ID) (*models.Course, error)
	CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error)
	CreateCourseMultipart(ctx context.Context, in models.CourseInput, image *models.Attachment) (*models.Course, error)
	UpdateCourse(ctx context.Context, id models.ID, in models.CourseInput) (*models.Course, error)
	UploadPicture(ctx context.Context, id models.ID, file *models.Attachment) (string, error)
	DeleteCourse(ctx context.Context, id models.ID) error
}

// Client is the full backend contract.
type Client interface {
	AuthAPI
	CourseAPI
}

var _ Client = (*HTTPClient)(nil)

func coursePath(id models.ID) string {
	return "/courses/" + url.PathEscape(id.String())
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	err := c.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/auth/login",
		JSON:     map[string]string{"email": email, "password": password},
		Fallback: "Login failed",
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", ErrNoToken
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) error {
	return c.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/auth/signup",
		JSON:     map[string]string{"name": name, "email": email, "password": password},
		Fallback: "Signup failed",
	}, nil)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	return c.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/auth/forgot-password",
		JSON:     map[string]string{"email": email},
		Fallback: "Failed to send reset email",
	}, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, token, password string) error {
	return c.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/auth/reset-password",
		JSON:     map[string]string{"token": token, "password": password},
		Fallback: "Failed to reset password",
	}, nil)
}

func (c *HTTPClient) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/courses", Fallback: "Failed to load courses"}, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *HTTPClient) GetCourse(ctx context.Context, id models.ID) (*models.Course, error) {
	var course models.Course
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: coursePath(id), Fallback: "Failed to load course"}, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *HTTPClient) CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error) {
	var course models.Course
	err := c.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/courses",
		JSON:     in,
		Fallback: "Failed to create course",
	}, &course)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourseMultipart sends the core fields as form fields together with
// the image part. The price field holds the plain number, never a
// currency string.
func (c *HTTPClient) CreateCourseMultipart(ctx context.Context, in models.CourseInput, image *models.Attachment) (*models.Course, error) {
	form := &MultipartForm{
		Fields: []FormField{
			{Name: "title", Value: in.Title},
			{Name: "description", Value: in.Description},
			{Name: "price", Value: strconv.FormatFloat(in.Price, 'f', -1, 64)},
		},
		Files: []FormFile{{Field: "image", File: image}},
	}

	var course models.Course
	err := c.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/courses",
		Form:     form,
		Fallback: "Failed to create course",
	}, &course)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *HTTPClient) UpdateCourse(ctx context.Context, id models.ID, in models.CourseInput) (*models.Course, error) {
	var course models.Course
	err := c.Do(ctx, Request{
		Method:   http.MethodPatch,
		Path:     coursePath(id),
		JSON:     in,
		Fallback: "Failed to update course",
	}, &course)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *HTTPClient) UploadPicture(ctx context.Context, id models.ID, file *models.Attachment) (string, error) {
	var resp struct {
		Picture string `json:"picture"`
	}
	err := c.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/courses/upload-picture/" + url.PathEscape(id.String()),
		Form:     &MultipartForm{Files: []FormFile{{Field: "file", File: file}}},
		Fallback: "Failed to upload image",
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Picture, nil
}

func (c *HTTPClient) DeleteCourse(ctx context.Context, id models.ID) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: coursePath(id), Fallback: "Failed to delete course"}, nil)
}
