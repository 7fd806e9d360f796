package openweathermap

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrDecode wraps failures to parse a successful response body
var ErrDecode = errors.New("failed to decode response")

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Message)
}

// newStatusError prefers the API's own "message" field over the raw body
func newStatusError(statusCode int, body []byte) *StatusError {
	msg := strings.TrimSpace(string(body))
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		msg = eb.Message
	}
	return &StatusError{StatusCode: statusCode, Message: msg}
}
