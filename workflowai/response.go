// Copyright (c) WorkflowAI. All rights reserved.

package workflowai

// ChatResponse is the complete response to a [ChatRequest].
type ChatResponse struct {
	ID      string
	Model   string
	Created int64
	Choices []Choice
	Usage   UsageDetails

	// Raw holds the provider-specific response value, if any.
	Raw any
}

// Choice is one candidate completion, in the order the provider returned it.
type Choice struct {
	Index        int
	Message      ResponseMessage
	FinishReason FinishReason
}

// ResponseMessage is the message carried by a [Choice]. Content is nil when
// the provider sent no text.
type ResponseMessage struct {
	Role    Role
	Content *string
}

// Text returns the message content or "" when absent.
func (m ResponseMessage) Text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

// UsageDetails holds token consumption reported for a response.
type UsageDetails struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
