package cosmic

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error represents a failed content store request
type Error struct {
	// StatusCode is the HTTP status code, zero for transport failures
	StatusCode int
	// Message is the store's message or a description of the failure
	Message string
	// Err is the underlying transport error, if any
	Err error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	}
	return fmt.Sprintf("cosmic status %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a 404 from the store.
func IsNotFound(err error) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.StatusCode == http.StatusNotFound
}

func newStatusError(status int, body []byte) *Error {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	message := ""
	if err := json.Unmarshal(body, &errResp); err == nil {
		message = errResp.Message
		if message == "" {
			message = errResp.Error
		}
	} else {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return &Error{StatusCode: status, Message: message}
}
