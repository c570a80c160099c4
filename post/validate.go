package post

import (
	"github.com/go-playground/validator/v10"
)

// Validator returns a validator aware of the region and tag enumerations.
// Records are validated with it before every save; stored records are
// never re-validated on read.
func Validator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return Region(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("tag", func(fl validator.FieldLevel) bool {
		return Tag(fl.Field().String()).Valid()
	})
	return validate
}
