package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMandatoryFields is returned when a required content field is
	// empty or absent.
	ErrMandatoryFields = errors.New("all fields are mandatory")

	// ErrSlugCharset is returned when a slug falls outside the allowed
	// character set.
	ErrSlugCharset = errors.New("slug may contain only lowercase letters, digits, and hyphens")

	// ErrSlugTooLong is returned when a slug exceeds the length limit.
	ErrSlugTooLong = errors.New("slug must be 100 characters or fewer")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks if the post meets all validation requirements.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return describeFieldError(err)
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation.
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// describeFieldError maps the first validator failure onto one of the
// caller-facing sentinel errors.
func describeFieldError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return ErrMandatoryFields
	case "slug":
		return ErrSlugCharset
	case "max":
		return ErrSlugTooLong
	}
	return fmt.Errorf("invalid value for %s", fe.Field())
}
