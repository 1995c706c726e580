package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"xisms.app/pkg/validation"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidations installs the custom binding tags on gin's validator.
// Safe to call more than once.
func RegisterValidations() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = v.RegisterValidation("emailaddr", validateEmailAddr)
	})
	return registerErr
}

// validateEmailAddr accepts a single well-formed address
func validateEmailAddr(fl validator.FieldLevel) bool {
	return validation.IsValidEmail(fl.Field().String())
}
