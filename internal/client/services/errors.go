package services

import (
	"errors"
	"fmt"

	"github.com/essaehaan/Profile/internal/client/models"
)

// ErrSessionRejected means the backend issued a credential the client
// cannot use, for example one that is already expired.
var ErrSessionRejected = errors.New("received credential is not usable")

// PartialUpdateError reports a course whose fields were saved while its
// picture upload failed. Nothing is rolled back.
type PartialUpdateError struct {
	CourseID models.ID
	Err      error
}

func (e *PartialUpdateError) Error() string {
	return fmt.Sprintf("course %s saved but picture upload failed: %v", e.CourseID, e.Err)
}

func (e *PartialUpdateError) Unwrap() error {
	return e.Err
}
