// Copyright (c) WorkflowAI. All rights reserved.

// Package openai provides a [workflowai.ChatClient] for OpenAI-compatible
// Chat Completions endpoints such as WorkflowAI's /v1 API, built on
// github.com/sashabaranov/go-openai.
//
//	client := openai.New(os.Getenv("WORKFLOWAI_API_KEY"),
//	    openai.WithBaseURL(os.Getenv("WORKFLOWAI_API_URL")+"/v1"),
//	)
//	resp, err := client.Complete(ctx, req)
//
// # Configuration
//
// Use functional options to configure the client:
//
//   - [WithBaseURL]: point at a different endpoint
//   - [WithOrganization]: set the OpenAI-Organization header
//   - [WithHTTPClient]: provide a custom http.Client
//   - [WithHeaders]: add custom headers to every request
//   - [WithAzureCredential]: use Azure AD tokens instead of an API key
//   - [WithChatMiddleware]: wrap every call, e.g. with [workflowai.LoggingMiddleware]
//
// [MarshalRequest] returns the exact JSON body a request is sent with, which
// is handy for logging what goes over the wire.
//
// # Testing
//
// Provide an http.Client with a custom RoundTripper via [WithHTTPClient], or
// point [WithBaseURL] at an httptest server such as the one in package mockapi.
package openai
