// Copyright (c) WorkflowAI. All rights reserved.

// Package workflowai holds the provider-neutral types used to talk to the
// WorkflowAI chat-completion API: messages, validated requests, responses,
// and the error kinds every caller can check with errors.Is.
//
// # Building a request
//
// [NewChatRequest] validates the model, token limit and every message once
// and returns an immutable [ChatRequest]:
//
//	req, err := workflowai.NewChatRequest("gpt-3.5-turbo", 512,
//	    workflowai.NewSystemMessage("You are a helpful assistant."),
//	    workflowai.NewUserMessage("Who won the world series in 2020?"),
//	)
//	if errors.Is(err, workflowai.ErrRequestBuild) { ... }
//
// # Errors
//
// Three kinds of failure exist, each with a sentinel and a struct:
//
//   - [ErrConfiguration] / [ConfigurationError]: a required setting is missing.
//   - [ErrRequestBuild] / [RequestBuildError]: a request failed validation.
//   - [ErrRequest] / [RequestError]: the API call failed. [ErrTransport],
//     [ErrAuth], [ErrInvalidRequest] and [ErrInvalidResponse] narrow it down.
//
// # Middleware
//
// A [ChatClient] implementation may accept [ChatMiddleware] such as
// [LoggingMiddleware] to wrap every call.
package workflowai
