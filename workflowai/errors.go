// Copyright (c) WorkflowAI. All rights reserved.

package workflowai

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrConfiguration indicates a required setting is missing or invalid.
	ErrConfiguration = errors.New("configuration error")

	// ErrRequestBuild indicates a chat request failed validation while it
	// was being constructed.
	ErrRequestBuild = errors.New("request build error")

	// ErrRequest is the base error for failures of the API call itself.
	ErrRequest = errors.New("request error")

	// ErrTransport indicates the request never produced an HTTP response.
	ErrTransport = fmt.Errorf("%w: transport", ErrRequest)

	// ErrAuth indicates an authentication or authorization failure.
	ErrAuth = fmt.Errorf("%w: authentication", ErrRequest)

	// ErrInvalidRequest indicates the service rejected the request as malformed.
	ErrInvalidRequest = fmt.Errorf("%w: invalid request", ErrRequest)

	// ErrInvalidResponse indicates the service returned a body that could
	// not be decoded.
	ErrInvalidResponse = fmt.Errorf("%w: invalid response", ErrRequest)
)

// ConfigurationError names the setting that could not be loaded.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return e.Key + " must be set"
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// RequestBuildError reports which part of a [ChatRequest] was invalid.
// Index is the message position for message-level failures and -1 otherwise.
type RequestBuildError struct {
	Field  string
	Index  int
	Reason string
}

func (e *RequestBuildError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("build request: messages[%d].%s: %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("build request: %s: %s", e.Field, e.Reason)
}

func (e *RequestBuildError) Unwrap() error { return ErrRequestBuild }

// RequestError provides context for a failed API call.
// Use errors.As to extract it from a wrapped error chain.
type RequestError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("request error: %s", e.Message)
	case e.Code != "":
		return fmt.Sprintf("request error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	default:
		return fmt.Sprintf("request error %d: %s", e.StatusCode, e.Message)
	}
}

func (e *RequestError) Unwrap() error {
	if e.Err == nil {
		return ErrRequest
	}
	return e.Err
}
