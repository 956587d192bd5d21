// Package errors defines the application-level error catalogue: errors that
// carry an HTTP status and a stable business code for API clients.
package errors

import (
	"fmt"
	"net/http"

	"dailyfarm/internal/errors"

	"github.com/google/uuid"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User and auth errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrUserDisabled = NewBaseError(
		http.StatusForbidden,
		"USER_DISABLED",
		"This account has been disabled",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the strength requirements",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_TOKEN_INVALID",
		"Invalid ID token",
		"",
	)

	// Crop errors
	ErrCropNotFound = NewBaseError(
		http.StatusNotFound,
		"CROP_NOT_FOUND",
		"Crop not found",
		"",
	)

	ErrCropOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"CROP_OWNERSHIP_VIOLATION",
		"You do not own this crop",
		"",
	)

	// Cart errors
	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"Cart not found",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOnlyCustomersCanOrder = NewBaseError(
		http.StatusForbidden,
		"ONLY_CUSTOMERS_CAN_ORDER",
		"Only customers can create orders",
		"",
	)

	ErrOrderAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ORDER_ACCESS_DENIED",
		"You are not a party to this order",
		"",
	)

	ErrCannotUpdateCancelledOrder = NewBaseError(
		http.StatusBadRequest,
		"ORDER_ALREADY_CANCELLED",
		"Cannot update a cancelled order",
		"",
	)

	ErrCancelOnlyPending = NewBaseError(
		http.StatusBadRequest,
		"CANCEL_ONLY_PENDING",
		"Only pending orders can be cancelled",
		"",
	)

	// Review errors
	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrOrderNotEligibleForReview = NewBaseError(
		http.StatusBadRequest,
		"ORDER_NOT_ELIGIBLE_FOR_REVIEW",
		"Reviews require your own delivered order",
		"",
	)

	ErrAlreadyReviewed = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_REVIEWED",
		"A review already exists for this order",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"Rating must be between 1 and 5",
		"",
	)

	// Message errors
	ErrMessageNotFound = NewBaseError(
		http.StatusNotFound,
		"MESSAGE_NOT_FOUND",
		"Message not found",
		"",
	)

	ErrMessageAccessDenied = NewBaseError(
		http.StatusForbidden,
		"MESSAGE_ACCESS_DENIED",
		"You are not a participant of this message",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// InsufficientStockError is returned when an order requests more of a crop
// than is available. It names the offending crop so the client can point at
// the exact line item.
type InsufficientStockError struct {
	CropID    string
	CropName  string
	Requested float64
	Available float64
}

// NewInsufficientStockError creates an insufficient stock error for a crop.
func NewInsufficientStockError(cropID uuid.UUID, cropName string, requested, available float64) AppError {
	return &InsufficientStockError{
		CropID:    cropID.String(),
		CropName:  cropName,
		Requested: requested,
		Available: available,
	}
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for crop %s: requested %g, available %g",
		e.CropID, e.Requested, e.Available)
}

// HTTPCode returns the HTTP status code
func (e *InsufficientStockError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *InsufficientStockError) ErrorCode() string {
	return "INSUFFICIENT_STOCK"
}

// Message returns the user-friendly error message
func (e *InsufficientStockError) Message() string {
	name := e.CropName
	if name == "" {
		name = e.CropID
	}

	return fmt.Sprintf("Not enough stock for %s", name)
}

// Details returns detailed error information
func (e *InsufficientStockError) Details() string {
	return e.Error()
}

// InvalidStateTransitionError is returned when an order status change is not
// permitted by the state machine.
type InvalidStateTransitionError struct {
	From string
	To   string
}

// NewInvalidStateTransitionError creates a state machine violation error.
func NewInvalidStateTransitionError(from, to string) AppError {
	return &InvalidStateTransitionError{
		From: from,
		To:   to,
	}
}

// Error implements the error interface
func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition from %s to %s", e.From, e.To)
}

// HTTPCode returns the HTTP status code
func (e *InvalidStateTransitionError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *InvalidStateTransitionError) ErrorCode() string {
	return "INVALID_STATE_TRANSITION"
}

// Message returns the user-friendly error message
func (e *InvalidStateTransitionError) Message() string {
	return fmt.Sprintf("Order cannot move from %s to %s", e.From, e.To)
}

// Details returns detailed error information
func (e *InvalidStateTransitionError) Details() string {
	return e.Error()
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
