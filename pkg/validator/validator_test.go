package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Topic   string `validate:"notblank"`
	Summary string `validate:"required"`
}

func TestValidate_NotBlank(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Topic: "Budget", Summary: "Q3"}))
	assert.Error(t, v.Validate(&sample{Topic: "   ", Summary: "Q3"}))
	assert.Error(t, v.Validate(&sample{Topic: "", Summary: "Q3"}))
	assert.Error(t, v.Validate(&sample{Topic: "Budget", Summary: ""}))
}
