package middlewares

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator tags on inputs that don't go through gin's
// binding (e.g. structs assembled in a handler).
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
