package validation

const (
	MsgNameRequired     = "Name is required"
	MsgEmailInvalid     = "Valid email is required"
	MsgPasswordRequired = "Password is required"
	MsgTokenMissing     = "Invalid or missing token"
	MsgPasswordMismatch = "Passwords do not match"
)

type LoginForm struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

type SignupForm struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotForm struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetForm struct {
	Token    string `json:"token" validate:"notblank"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"eqfield=Password"`
}

var authMessages = messages{
	"name":     MsgNameRequired,
	"email":    MsgEmailInvalid,
	"password": MsgPasswordRequired,
	"token":    MsgTokenMissing,
	"confirm":  MsgPasswordMismatch,
}

func ValidateLogin(f LoginForm) Errors {
	return check(f, authMessages)
}

func ValidateSignup(f SignupForm) Errors {
	return check(f, authMessages)
}

func ValidateForgot(f ForgotForm) Errors {
	return check(f, authMessages)
}

// ValidateReset checks the reset form. A missing token is reported before
// anything else.
func ValidateReset(f ResetForm) Errors {
	errs := check(f, authMessages)
	if _, ok := errs["token"]; ok {
		return Errors{"token": MsgTokenMissing}
	}
	return errs
}
