// Package validate checks master records before they are sent to the
// backend. Rules live in `validate` struct tags; `label` tags name the field
// in messages.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstPattern     = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
	aadharPattern  = regexp.MustCompile(`^[0-9]{12}$`)
	digitsPattern  = regexp.MustCompile(`^[0-9]+$`)
	alphaSpace     = regexp.MustCompile(`^[\p{L} .'-]+$`)
)

// Error is the first rule a record broke.
type Error struct {
	// Field is the Go struct field name.
	Field   string
	Label   string
	Tag     string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New builds a validator with the domain tags registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	for tag, re := range map[string]*regexp.Regexp{
		"phone":      phonePattern,
		"pan":        panPattern,
		"gst":        gstPattern,
		"pincode":    pincodePattern,
		"aadhar":     aadharPattern,
		"digits":     digitsPattern,
		"alphaspace": alphaSpace,
	} {
		// Registration only fails for empty tags or nil funcs.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}
	return v
}

// Record validates rec and returns the first failure as *Error.
func Record(rec any) error {
	errs := All(rec)
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

// All returns every failed rule in struct field order.
func All(rec any) []*Error {
	err := get().Struct(rec)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []*Error{{Message: err.Error()}}
	}
	out := make([]*Error, 0, len(ves))
	for _, fe := range ves {
		out = append(out, &Error{
			Field:   fe.StructField(),
			Label:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "phone":
		return label + " must be a 10 digit number"
	case "email":
		return label + " must be a valid email address"
	case "pan":
		return label + " must be a valid PAN (ABCDE1234F)"
	case "gst":
		return label + " must be a valid GSTIN"
	case "pincode":
		return label + " must be a 6 digit pincode"
	case "aadhar":
		return label + " must be a 12 digit number"
	case "digits":
		return label + " must contain only digits"
	case "numeric":
		return label + " must be a number"
	case "alphaspace":
		return label + " may contain only letters and spaces"
	case "hexcolor":
		return label + " must be a hex color like #ff8800"
	case "datetime":
		return label + " must be a date (YYYY-MM-DD)"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, fe.Tag())
	}
}
