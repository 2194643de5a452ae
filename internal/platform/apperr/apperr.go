// Package apperr is the shared error model of the platform. Services raise
// *APIError at the point of detection; handlers map it to an HTTP status and
// the wire body via ToHTTPStatus and Body. Anything that is not an *APIError
// is reported as INTERNAL.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT" // duplicate unique key (email)
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func Invalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func NotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func Conflict(msg string) *APIError { return &APIError{Code: CodeConflict, Message: msg} }
func Internal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func Invalidf(format string, args ...any) *APIError {
	return Invalid(fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) *APIError {
	return NotFound(fmt.Sprintf(format, args...))
}

func ToHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		case CodeConflict:
			return http.StatusConflict
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// Response is the error body returned by both services.
type Response struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Body builds the wire error object for err.
func Body(err error) Response {
	var api *APIError
	if errors.As(err, &api) {
		return Response{Error: string(api.Code), Details: api.Message}
	}
	return Response{Error: string(CodeInternal), Details: err.Error()}
}
