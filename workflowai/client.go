// Copyright (c) WorkflowAI. All rights reserved.

package workflowai

import "context"

// ChatClient sends a [ChatRequest] to a chat-completion backend.
// Provider packages (e.g., openai) implement this interface.
type ChatClient interface {
	// Complete sends req once and waits for the complete response.
	Complete(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// ChatHandler is the function signature for processing a chat request.
type ChatHandler func(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

// ChatMiddleware wraps a [ChatHandler] to add cross-cutting behavior.
// Middleware should call next to continue the chain, or return early to short-circuit.
type ChatMiddleware func(next ChatHandler) ChatHandler

// ChainChatMiddleware applies middleware in order (first in list = outermost wrapper).
func ChainChatMiddleware(handler ChatHandler, mws ...ChatMiddleware) ChatHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}
