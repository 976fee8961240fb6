package schema

import (
	"fmt"
	"strings"
)

type (
	// ConfigError reports an unusable credential file or configuration; it is raised before any network call.
	ConfigError struct {
		Path   string
		Reason string
		Err    error
	}

	// AuthError reports a rejected refresh exchange.
	AuthError struct {
		StatusCode int
		Body       string
		Err        error
	}

	// NetworkError reports a transport level failure reaching the API.
	NetworkError struct {
		Method string
		URL    string
		Err    error
	}

	// APIError reports a response whose status code does not match the expected one.
	APIError struct {
		Method     string
		Path       string
		Expected   int
		StatusCode int
		Body       string
		Err        error
	}

	// PersistenceError reports a failed credential file write after a successful refresh.
	PersistenceError struct {
		Path string
		Err  error
	}
)

func (e *ConfigError) Error() string {
	msg := e.Reason
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("refreshing token: %v", e.Err)
	}
	msg := fmt.Sprintf("refreshing token: expected status code 201, received %d", e.StatusCode)
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += "\n" + body
	}
	return msg
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: expected status code %d, received %d", e.Method, e.Path, e.Expected, e.StatusCode)
	if e.Err != nil {
		msg = fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += "\n" + body
	}
	return msg
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist credentials to %q: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NewConfigError creates a config error
func NewConfigError(path, reason string, err error) *ConfigError {
	return &ConfigError{Path: path, Reason: reason, Err: err}
}

// NewAuthError creates an auth error for a rejected refresh exchange
func NewAuthError(statusCode int, body []byte, err error) *AuthError {
	return &AuthError{StatusCode: statusCode, Body: string(body), Err: err}
}

// NewNetworkError creates a network error
func NewNetworkError(method, URL string, err error) *NetworkError {
	return &NetworkError{Method: method, URL: URL, Err: err}
}

// NewAPIError creates an api error
func NewAPIError(method, path string, expected, statusCode int, body []byte) *APIError {
	return &APIError{Method: method, Path: path, Expected: expected, StatusCode: statusCode, Body: string(body)}
}

// NewPersistenceError creates a persistence error
func NewPersistenceError(path string, err error) *PersistenceError {
	return &PersistenceError{Path: path, Err: err}
}
