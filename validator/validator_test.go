package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vortex-fintech/period-lib/validator"
)

type scheduleConfig struct {
	Name       string `validate:"required"`
	Expression string `validate:"required,period"`
}

func TestValidate_Valid(t *testing.T) {
	s := scheduleConfig{Name: "business-hours", Expression: "wd {mo-fr} hr {9-17}"}
	res := validator.Validate(s)
	assert.Nil(t, res)
}

func TestValidate_MissingFields(t *testing.T) {
	res := validator.Validate(scheduleConfig{})
	assert.NotNil(t, res)
	assert.Equal(t, "required", res["Name"])
	assert.Equal(t, "required", res["Expression"])
}

func TestValidate_InvalidPeriod(t *testing.T) {
	cases := []string{"xx {1}", "hr {25}", "hr {a}", "md {}"}
	for _, expr := range cases {
		res := validator.Validate(scheduleConfig{Name: "n", Expression: expr})
		assert.NotNil(t, res, "expression %q", expr)
		assert.Equal(t, "invalid_period", res["Expression"], "expression %q", expr)
	}
}

func TestValidate_PeriodLiterals(t *testing.T) {
	for _, expr := range []string{"always", "never", "none"} {
		res := validator.Validate(scheduleConfig{Name: "n", Expression: expr})
		assert.Nil(t, res, "expression %q", expr)
	}
}

func TestValidate_ErrorType(t *testing.T) {
	// Passing a type that can't be validated (e.g., int)
	res := validator.Validate(123)
	assert.NotNil(t, res)
	assert.Equal(t, "validation_failed", res["_error"])
}

func TestInstance(t *testing.T) {
	assert.NotNil(t, validator.Instance())
}
