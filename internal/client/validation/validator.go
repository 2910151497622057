// Package validation checks user-entered forms before anything is sent to
// the backend. Every validator returns a field to message map that is empty
// when the form is valid.
package validation

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/essaehaan/Profile/internal/common"
)

const (
	notBlankTag = "notblank"
	priceTag    = "price"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// English messages for tags without a form-specific message.
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Report fields by their json names so they match the form keys.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = validate.RegisterValidation(priceTag, priceValidation)
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func priceValidation(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := ParsePrice(str)
	return err == nil
}

// ErrInvalidPrice is returned by ParsePrice for anything that is not a
// finite number >= 0.
var ErrInvalidPrice = errors.New("invalid price")

// ParsePrice parses a user-entered price.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidPrice
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidPrice
	}
	return v, nil
}

// Errors maps a form field to its message.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Err returns nil for a valid form and an *Error otherwise.
func (e Errors) Err() error {
	if e.Valid() {
		return nil
	}
	return &Error{Fields: e}
}

// Error carries the field errors of a rejected form.
type Error struct {
	Fields Errors
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// messages maps "field.tag" (or just "field") to the message shown to the
// user.
type messages map[string]string

func (m messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	return m[field]
}

// check validates s and translates failures. The first failure of a field
// wins.
func check(s any, msgs messages) Errors {
	errs := Errors{}
	err := validate.Struct(s)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		msg := msgs.lookup(fe.Field(), fe.Tag())
		if msg == "" {
			msg = fe.Translate(translator)
		}
		errs[fe.Field()] = msg
	}
	return errs
}

// checkVar validates a single value against tag.
func checkVar(v any, tag string) bool {
	return validate.Var(v, tag) == nil
}

var maxUploadTag = "max=" + strconv.Itoa(common.MaxUploadSize)
