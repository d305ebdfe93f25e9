package utils

import (
	"slices"

	"github.com/aaravmahajanofficial/storefront/internal/filter"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/go-playground/validator/v10"
)

const (
	TagPlainText = "plaintext"
	TagCategory  = "category"
)

// NewValidator returns a validator that also knows the storefront tags:
// plaintext rejects markup, category accepts any spelling of the wildcard and
// the known categories.
func NewValidator() *validator.Validate {

	validate := validator.New()

	// registration only fails for an empty tag or a nil func
	_ = validate.RegisterValidation(TagPlainText, func(fl validator.FieldLevel) bool {
		return IsPlainText(fl.Field().String())
	})

	_ = validate.RegisterValidation(TagCategory, func(fl validator.FieldLevel) bool {
		category := models.Category(fl.Field().String())
		return filter.IsWildcard(category) || slices.Contains(models.Categories, category)
	})

	return validate
}
