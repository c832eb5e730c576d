package validator

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/period-lib/period"
)

var v *validator.Validate

// periodProbe is an arbitrary fixed instant: the "period" tag checks the
// expression's format, and format errors do not depend on the instant.
var periodProbe = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func init() {
	v = validator.New()
	_ = v.RegisterValidation("period", validPeriod)
}

func validPeriod(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := period.Match(fl.Field().String(), periodProbe)
	return err == nil
}

func Instance() *validator.Validate {
	return v
}

func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string)
			for _, e := range errs {
				out[e.Field()] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}
