package apperrors

import "fmt"

// ErrInvalidToken is returned when the configured API token cannot be
// rendered into a valid Authorization header value.
type ErrInvalidToken struct{}

// Error implements the error interface.
func (e *ErrInvalidToken) Error() string {
	return "invalid api token: not a valid header value"
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidToken) Is(target error) bool {
	_, ok := target.(*ErrInvalidToken)
	return ok
}

// NewInvalidTokenError creates a new ErrInvalidToken.
func NewInvalidTokenError() *ErrInvalidToken {
	return &ErrInvalidToken{}
}

// ErrUnexpectedStatusCode is returned when the instance or a media URL
// responds with a non-success HTTP status and no machine-readable error code.
type ErrUnexpectedStatusCode struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *ErrUnexpectedStatusCode) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("unexpected status code %d", e.StatusCode)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnexpectedStatusCode) Is(target error) bool {
	_, ok := target.(*ErrUnexpectedStatusCode)
	return ok
}

// NewUnexpectedStatusCodeError creates a new ErrUnexpectedStatusCode.
func NewUnexpectedStatusCodeError(statusCode int, url string) *ErrUnexpectedStatusCode {
	return &ErrUnexpectedStatusCode{
		StatusCode: statusCode,
		URL:        url,
	}
}

// ErrInstanceError is returned when the instance reports an explicit
// machine-readable error code, e.g. "error.api.link.invalid".
type ErrInstanceError struct {
	Code string
}

// Error implements the error interface.
func (e *ErrInstanceError) Error() string {
	return fmt.Sprintf("cobalt error %s", e.Code)
}

// Is allows for error checking with errors.Is().
func (e *ErrInstanceError) Is(target error) bool {
	_, ok := target.(*ErrInstanceError)
	return ok
}

// NewInstanceError creates a new ErrInstanceError for the given error code.
func NewInstanceError(code string) *ErrInstanceError {
	return &ErrInstanceError{Code: code}
}

// ErrBadResponse is returned when the instance responds with a body whose
// status discriminator is missing or unrecognized.
type ErrBadResponse struct {
	Detail string
}

// Error implements the error interface.
func (e *ErrBadResponse) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("bad response from cobalt instance: %s", e.Detail)
	}
	return "bad response from cobalt instance"
}

// Is allows for error checking with errors.Is().
func (e *ErrBadResponse) Is(target error) bool {
	_, ok := target.(*ErrBadResponse)
	return ok
}

// NewBadResponseError creates a new ErrBadResponse.
func NewBadResponseError(detail string) *ErrBadResponse {
	return &ErrBadResponse{Detail: detail}
}

// ErrEmptyPicker is returned when a download is attempted on a picker
// response that offers no items to select from.
type ErrEmptyPicker struct{}

// Error implements the error interface.
func (e *ErrEmptyPicker) Error() string {
	return "picker response contains no items"
}

// Is allows for error checking with errors.Is().
func (e *ErrEmptyPicker) Is(target error) bool {
	_, ok := target.(*ErrEmptyPicker)
	return ok
}

// NewEmptyPickerError creates a new ErrEmptyPicker.
func NewEmptyPickerError() *ErrEmptyPicker {
	return &ErrEmptyPicker{}
}
