package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport is the sentinel wrapped by [TransportError].
	ErrTransport = errors.New("podio transport error")
	// ErrAuthFailure is joined with [ErrTransport] on 401 and 403 responses.
	ErrAuthFailure = errors.New("auth failure")
	// ErrFailedRequest is the sentinel wrapped by [FailedRequestError].
	ErrFailedRequest = errors.New("failed request")
	// ErrInvalidParam is returned when a reserved call parameter has the wrong type.
	ErrInvalidParam = errors.New("invalid call parameter")
)

// TransportError is returned for any response with a status of 400 or above.
type TransportError struct {
	StatusCode int
	Content    string
	Err        error
}

func newTransportError(status int, content []byte) *TransportError {
	err := ErrTransport
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		err = errors.Join(ErrTransport, ErrAuthFailure)
	}

	return &TransportError{
		StatusCode: status,
		Content:    string(content),
		Err:        err,
	}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%v: status %d, content: %s", ErrTransport, e.StatusCode, e.Content)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is the error document the API sends with failed calls.
type APIError struct {
	Code        string         `json:"error"`
	Description string         `json:"error_description"`
	Detail      map[string]any `json:"error_detail"`
	Parameters  map[string]any `json:"error_parameters"`
	Propagate   bool           `json:"error_propagate"`
}

// APIError decodes Content as the API's error document. It reports false
// when the content is not such a document.
func (e *TransportError) APIError() (APIError, bool) {
	var apiErr APIError
	if err := json.Unmarshal([]byte(e.Content), &apiErr); err != nil || apiErr.Code == "" {
		return APIError{}, false
	}
	return apiErr, true
}

// FailedRequestError is returned when a successful response could not be
// decoded. Payload holds the body as received.
type FailedRequestError struct {
	Payload string
	Err     error
}

func (e *FailedRequestError) Error() string {
	return fmt.Sprintf("%v: %v, payload: %q", ErrFailedRequest, e.Err, e.Payload)
}

func (e *FailedRequestError) Unwrap() []error {
	return []error{ErrFailedRequest, e.Err}
}
