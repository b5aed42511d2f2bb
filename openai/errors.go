// Copyright (c) WorkflowAI. All rights reserved.

package openai

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/ckorhonen/WorkflowAI/integrations/go/workflowai"
)

// mapError translates an error returned by go-openai into a
// *workflowai.RequestError.
func mapError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return &workflowai.RequestError{
			StatusCode: apiErr.HTTPStatusCode,
			Code:       codeString(apiErr.Code),
			Message:    apiErr.Message,
			Err:        statusError(apiErr.HTTPStatusCode),
		}
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		msg := http.StatusText(reqErr.HTTPStatusCode)
		if reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return &workflowai.RequestError{
			StatusCode: reqErr.HTTPStatusCode,
			Message:    msg,
			Err:        statusError(reqErr.HTTPStatusCode),
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &workflowai.RequestError{Message: err.Error(), Err: workflowai.ErrTransport}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &workflowai.RequestError{
			Message: fmt.Sprintf("decode response: %v", err),
			Err:     workflowai.ErrInvalidResponse,
		}
	}

	return &workflowai.RequestError{Message: err.Error(), Err: workflowai.ErrRequest}
}

func statusError(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return workflowai.ErrAuth
	case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
		return workflowai.ErrInvalidRequest
	default:
		return workflowai.ErrRequest
	}
}

// codeString normalizes the API error code, which may be a string or a number.
func codeString(code any) string {
	switch v := code.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
