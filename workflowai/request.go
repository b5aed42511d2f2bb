// Copyright (c) WorkflowAI. All rights reserved.

package workflowai

import "errors"

// ChatRequest is a validated chat-completion request. Build one with
// [NewChatRequest]; the zero value is not usable.
type ChatRequest struct {
	model     string
	maxTokens int
	messages  []Message
}

// NewChatRequest validates its arguments once and returns an immutable
// request. Messages keep the order they are passed in.
//
//	req, err := workflowai.NewChatRequest("gpt-3.5-turbo", 512,
//	    workflowai.NewSystemMessage("You are a helpful assistant."),
//	    workflowai.NewUserMessage("Hello!"),
//	)
func NewChatRequest(model string, maxTokens int, messages ...Message) (*ChatRequest, error) {
	if model == "" {
		return nil, &RequestBuildError{Field: "model", Index: -1, Reason: "must not be empty"}
	}
	if maxTokens <= 0 {
		return nil, &RequestBuildError{Field: "max_tokens", Index: -1, Reason: "must be positive"}
	}
	if len(messages) == 0 {
		return nil, &RequestBuildError{Field: "messages", Index: -1, Reason: "at least one message is required"}
	}
	for i, m := range messages {
		if err := m.Validate(); err != nil {
			var be *RequestBuildError
			if errors.As(err, &be) {
				be.Index = i
			}
			return nil, err
		}
	}
	return &ChatRequest{
		model:     model,
		maxTokens: maxTokens,
		messages:  append([]Message(nil), messages...),
	}, nil
}

// Model returns the model identifier.
func (r *ChatRequest) Model() string { return r.model }

// MaxTokens returns the output token limit.
func (r *ChatRequest) MaxTokens() int { return r.maxTokens }

// Messages returns a copy of the conversation in request order.
func (r *ChatRequest) Messages() []Message {
	return append([]Message(nil), r.messages...)
}
