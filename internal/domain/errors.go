package domain

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a precondition failure the caller can act on.
// Infrastructure failures (database unavailable, broken connection) are
// never wrapped in an Error; they surface unchanged.
type ErrorCode string

const (
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeForbidden            ErrorCode = "FORBIDDEN"
	CodeInvalidState         ErrorCode = "INVALID_STATE"
	CodeDateConflict         ErrorCode = "DATE_CONFLICT"
	CodeProfileIncomplete    ErrorCode = "PROFILE_INCOMPLETE"
	CodeItemUnavailable      ErrorCode = "ITEM_UNAVAILABLE"
	CodeSelfBookingForbidden ErrorCode = "SELF_BOOKING_FORBIDDEN"
	CodeAlreadyReviewed      ErrorCode = "ALREADY_REVIEWED"
	CodeValidation           ErrorCode = "VALIDATION"
)

// Error is a typed result returned for every expected precondition
// failure so the caller decides presentation.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a typed domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf builds a typed domain error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the error code from err, or "" when err is not a
// domain error.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsCode reports whether err is a domain error carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
