package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("value", "field"))
	assert.Error(t, ValidateRequired("", "field"))
	assert.Error(t, ValidateRequired("   ", "field"))
}

func TestValidatePositiveAmount(t *testing.T) {
	assert.NoError(t, ValidatePositiveAmount(1, "amount"))
	assert.Error(t, ValidatePositiveAmount(0, "amount"))
	assert.Error(t, ValidatePositiveAmount(-100, "amount"))
}

func TestValidateNonNegativeAmount(t *testing.T) {
	assert.NoError(t, ValidateNonNegativeAmount(0, "amount"))
	assert.NoError(t, ValidateNonNegativeAmount(250, "amount"))
	assert.Error(t, ValidateNonNegativeAmount(-1, "amount"))
}

func TestValidateMemberIDs(t *testing.T) {
	assert.NoError(t, ValidateMemberIDs([]string{"a", "b"}, "members"))
	assert.NoError(t, ValidateMemberIDs(nil, "members"))
	assert.Error(t, ValidateMemberIDs([]string{"a", ""}, "members"))
}
