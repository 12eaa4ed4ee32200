package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Errors carries field-level validation messages for 400 responses.
	Errors []string `json:"-"`
	Err    error    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal server error. Please try again later.", err)
}

// ValidationFailed reports the collected field-level messages to the caller.
func ValidationFailed(errs []string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  errs,
	}
}

// Delivery wraps a mail transport failure. The wrapped error is logged
// server-side only; the caller sees the generic message.
func Delivery(err error) *AppError {
	return New(http.StatusInternalServerError, "Failed to send message. Please try again or contact us directly.", err)
}
