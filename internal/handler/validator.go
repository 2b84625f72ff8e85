package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("outcome", validateOutcome)
	_ = v.RegisterValidation("itemkind", validateItemKind)
	_ = v.RegisterValidation("resourcekind", validateResourceKind)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// without leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "outcome":
			errs[field] = "Must be correct or incorrect"
		case "itemkind":
			errs[field] = "Must be plant, tree or seed"
		case "resourcekind":
			errs[field] = "Unknown resource kind"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lt":
			errs[field] = fmt.Sprintf("Must be below %s", e.Param())
		case "uuid":
			errs[field] = "Must be a valid id"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateOutcome(fl validator.FieldLevel) bool {
	return domain.Outcome(fl.Field().String()).Valid()
}

func validateItemKind(fl validator.FieldLevel) bool {
	switch domain.ItemKind(fl.Field().String()) {
	case domain.ItemPlant, domain.ItemTree, domain.ItemSeed:
		return true
	}
	return false
}

func validateResourceKind(fl validator.FieldLevel) bool {
	return domain.ResourceKind(fl.Field().String()).Valid()
}
