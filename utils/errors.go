package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sentinel errors for the settlement engine and ledger. Services wrap these
// with fmt.Errorf("%w: ...") so handlers can map them to HTTP statuses.
var (
	ErrInvalidInput    = errors.New("invalid participant input")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrSummaryNotFound = errors.New("food summary not found")
	ErrLedgerApply     = errors.New("ledger apply failed")
)

// AppError represents a custom application error
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common error constructors
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// HandleError sends an appropriate HTTP response for an error. Balance
// figures never appear in error messages.
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrSummaryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": ErrSummaryNotFound.Error()})
	case errors.Is(err, ErrLedgerApply):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply balance changes"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// HandleSuccess sends a success response
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
