// Copyright (c) WorkflowAI. All rights reserved.

package workflowai

import (
	"fmt"
	"strings"
)

// Role identifies the author of a [Message].
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the roles accepted in a request.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// FinishReason indicates why the model stopped generating.
type FinishReason string

const (
	FinishReasonStop          FinishReason = "stop"
	FinishReasonLength        FinishReason = "length"
	FinishReasonToolCalls     FinishReason = "tool_calls"
	FinishReasonContentFilter FinishReason = "content_filter"
)

// Message is a single turn of the conversation sent to the model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewSystemMessage creates a system-role [Message].
func NewSystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

// NewUserMessage creates a user-role [Message].
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// NewAssistantMessage creates an assistant-role [Message].
func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}

// Validate checks the role and content of m.
func (m Message) Validate() error {
	if !m.Role.Valid() {
		return &RequestBuildError{Field: "role", Index: -1, Reason: fmt.Sprintf("unknown role %q", m.Role)}
	}
	if strings.TrimSpace(m.Content) == "" {
		return &RequestBuildError{Field: "content", Index: -1, Reason: "must not be empty"}
	}
	return nil
}
