// Copyright (c) WorkflowAI. All rights reserved.

package openai

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/ckorhonen/WorkflowAI/integrations/go/workflowai"
)

// clientConfig holds resolved configuration for the OpenAI-compatible client.
type clientConfig struct {
	baseURL         string
	organization    string
	httpClient      *http.Client
	headers         map[string]string
	azureCredential azcore.TokenCredential
	tokenScopes     []string
	chatMiddleware  []workflowai.ChatMiddleware
}

// Option configures a [Client].
type Option func(*clientConfig)

// WithBaseURL overrides the API base URL. For WorkflowAI this is the API
// URL followed by /v1.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) { c.baseURL = url }
}

// WithOrganization sets the OpenAI-Organization header.
func WithOrganization(org string) Option {
	return func(c *clientConfig) { c.organization = org }
}

// WithHTTPClient provides a custom http.Client for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithHeaders adds custom headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) { c.headers = headers }
}

// WithAzureCredential authenticates with tokens obtained from cred instead
// of the static API key. Scopes default to the Cognitive Services scope.
func WithAzureCredential(cred azcore.TokenCredential, scopes ...string) Option {
	return func(c *clientConfig) {
		c.azureCredential = cred
		c.tokenScopes = scopes
	}
}

// WithChatMiddleware adds middleware to the completion pipeline.
// Middleware is applied in the order provided (first = outermost).
func WithChatMiddleware(mw ...workflowai.ChatMiddleware) Option {
	return func(c *clientConfig) { c.chatMiddleware = append(c.chatMiddleware, mw...) }
}
