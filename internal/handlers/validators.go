package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// RegisterCustomValidators installs the binding-level validators used by
// request DTOs. The `currency` tag checks the 3-letter shape only; the
// registry whitelist check stays in the service layer so malformed and
// unsupported codes keep their distinct errors.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			return currencyCodePattern.MatchString(fl.Field().String())
		})
	}
}

// isCurrencyFieldError reports whether a binding failure came from the
// `currency` tag, so handlers can surface the currency-format message
// instead of a generic binding error.
func isCurrencyFieldError(err error) bool {
	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "currency" {
			return true
		}
	}
	return false
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}
