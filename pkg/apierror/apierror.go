package apierror

import (
	"fmt"
	"net/http"
)

// APIError is an error with a fixed HTTP status and client-facing message.
// Message is rendered verbatim as the response "detail".
type APIError struct {
	Code       string `json:"-"`
	Message    string `json:"detail"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(code string, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, HTTPStatus: status}
}

// Wrap attaches a cause so callers can still match it with errors.Is.
func Wrap(err error, code string, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func Unprocessable(err error) *APIError {
	return Wrap(err, "UNPROCESSABLE_ENTITY", err.Error(), http.StatusUnprocessableEntity)
}
