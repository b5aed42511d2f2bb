// Copyright (c) WorkflowAI. All rights reserved.

package openai

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

const defaultTokenScope = "https://cognitiveservices.azure.com/.default"

// headerTransport decorates outgoing requests with extra headers and, when a
// credential is configured, replaces the bearer token.
type headerTransport struct {
	base       http.RoundTripper
	headers    map[string]string
	credential azcore.TokenCredential
	scopes     []string
}

// newHTTPClient returns the http.Client handed to go-openai. The caller's
// client is copied, never modified.
func newHTTPClient(cfg *clientConfig) *http.Client {
	client := cfg.httpClient
	if client == nil {
		client = &http.Client{}
	}
	if len(cfg.headers) == 0 && cfg.azureCredential == nil {
		return client
	}

	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	scopes := cfg.tokenScopes
	if len(scopes) == 0 {
		scopes = []string{defaultTokenScope}
	}

	wrapped := *client
	wrapped.Transport = &headerTransport{
		base:       base,
		headers:    cfg.headers,
		credential: cfg.azureCredential,
		scopes:     scopes,
	}
	return &wrapped
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	req = req.Clone(ctx)

	if t.credential != nil {
		slog.DebugContext(ctx, "acquiring Azure AD token", "scopes", t.scopes)
		token, err := t.credential.GetToken(ctx, policy.TokenRequestOptions{Scopes: t.scopes})
		if err != nil {
			return nil, fmt.Errorf("get azure token: %w", err)
		}
		slog.DebugContext(ctx, "using Azure AD token authentication", "token_expires_on", token.ExpiresOn)
		req.Header.Set("Authorization", "Bearer "+token.Token)
	}

	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	return t.base.RoundTrip(req)
}
