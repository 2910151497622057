package validation

import "github.com/essaehaan/Profile/internal/client/models"

const (
	MsgEvidenceType    = "Please upload a valid image (JPG, PNG) or PDF file"
	MsgEvidenceTooBig  = "File size must be less than 5MB"
	MsgEvidenceMissing = "Please upload the transaction slip"
)

// ValidateEvidence checks a payment slip. It returns "" when the file is
// acceptable.
func ValidateEvidence(f *models.Attachment) string {
	if f == nil {
		return MsgEvidenceMissing
	}
	if !checkVar(f.ContentType, "oneof=image/jpeg image/png image/jpg application/pdf") {
		return MsgEvidenceType
	}
	if !checkVar(f.Size, maxUploadTag) {
		return MsgEvidenceTooBig
	}
	return ""
}
