package validation

import (
	"strings"

	"github.com/essaehaan/Profile/internal/client/models"
)

const (
	MsgTitleRequired       = "Course title is required"
	MsgDescriptionRequired = "Course description is required"
	MsgInvalidPrice        = "Valid price is required (must be 0 or greater)"
	MsgInvalidImage        = "Please select a valid image file"
	MsgImageTooLarge       = "Image size should be less than 5MB"
)

// CourseDraft is the course form as typed by an admin. Price stays text
// until the form validates.
type CourseDraft struct {
	Title       string             `json:"title" validate:"notblank"`
	Description string             `json:"description" validate:"notblank"`
	Price       string             `json:"price" validate:"price"`
	Image       *models.Attachment `json:"image" validate:"-"`
}

var courseMessages = messages{
	"title":       MsgTitleRequired,
	"description": MsgDescriptionRequired,
	"price":       MsgInvalidPrice,
}

// Validate checks a course draft. It never panics and always returns a
// non-nil map.
func Validate(d CourseDraft) Errors {
	errs := check(d, courseMessages)
	if msg := imageError(d.Image); msg != "" {
		errs["image"] = msg
	}
	return errs
}

// ValidateImage checks an image picked for a course on its own, so a form
// can report the problem as soon as the file is chosen.
func ValidateImage(img *models.Attachment) Errors {
	errs := Errors{}
	if msg := imageError(img); msg != "" {
		errs["image"] = msg
	}
	return errs
}

func imageError(img *models.Attachment) string {
	if img == nil {
		return ""
	}
	if !checkVar(img.ContentType, "startswith=image/") {
		return MsgInvalidImage
	}
	if !checkVar(img.Size, maxUploadTag) {
		return MsgImageTooLarge
	}
	return ""
}

// Input converts a valid draft into the payload sent to the backend, with
// title and description trimmed.
func (d CourseDraft) Input() (models.CourseInput, error) {
	if err := Validate(d).Err(); err != nil {
		return models.CourseInput{}, err
	}
	price, _ := ParsePrice(d.Price)
	return models.CourseInput{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Price:       price,
	}, nil
}
