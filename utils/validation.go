package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositiveAmount checks if an amount in minor units is positive
func ValidatePositiveAmount(value int64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegativeAmount checks if an amount in minor units is non-negative
func ValidateNonNegativeAmount(value int64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateNotEmpty checks if a slice is not empty
func ValidateNotEmpty[T any](slice []T, fieldName string) error {
	if len(slice) == 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be empty", fieldName))
	}
	return nil
}

// ValidateMemberIDs validates that all member ids in a set are non-empty
func ValidateMemberIDs(memberIDs []string, fieldName string) error {
	for i, id := range memberIDs {
		if strings.TrimSpace(id) == "" {
			return NewValidationError(fmt.Sprintf("%s entry %d cannot be empty", fieldName, i+1))
		}
	}
	return nil
}
