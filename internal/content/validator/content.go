package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"studio/pkg/logger"
	"studio/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, err := range v {
		if _, exists := details[err.Field]; !exists {
			details[err.Field] = err.Message
		}
	}
	return details
}

// ContentValidator checks gallery images, frames and reviews before they are
// stored.
type ContentValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewContentValidator(log *logger.Logger) *ContentValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("gallery_category", validateGalleryCategory); err != nil {
		log.Fatal("Failed to register 'gallery_category' validator",
			"error", err,
		)
	}

	log.Debug("Content validator initialized successfully")

	return &ContentValidator{
		validate: v,
		logger:   log,
	}
}

func validateGalleryCategory(fl validator.FieldLevel) bool {
	_, ok := CanonicalCategory(fl.Field().String())
	return ok
}

// CanonicalCategory matches category against the known gallery categories
// ignoring case and returns the stored spelling.
func CanonicalCategory(category string) (string, bool) {
	category = strings.TrimSpace(category)
	for _, known := range model.GalleryCategories {
		if strings.EqualFold(known, category) {
			return known, true
		}
	}
	return "", false
}

func (v *ContentValidator) Validate(record any) error {
	if err := v.validate.Struct(record); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translate(validationErrs)
		}
		return err
	}
	return nil
}

func translate(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "max":
			if err.Kind() == reflect.String {
				message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
			} else {
				message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
			}
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", err.Field())
		case "gallery_category":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), strings.Join(model.GalleryCategories, ", "))
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
