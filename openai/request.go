// Copyright (c) WorkflowAI. All rights reserved.

package openai

import (
	"encoding/json"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/ckorhonen/WorkflowAI/integrations/go/workflowai"
)

// BuildRequest converts a validated request into the go-openai request body.
// Messages keep their order.
func BuildRequest(req *workflowai.ChatRequest) goopenai.ChatCompletionRequest {
	msgs := req.Messages()
	out := goopenai.ChatCompletionRequest{
		Model:     req.Model(),
		MaxTokens: req.MaxTokens(),
		Messages:  make([]goopenai.ChatCompletionMessage, 0, len(msgs)),
	}
	for _, m := range msgs {
		out.Messages = append(out.Messages, goopenai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}

// MarshalRequest returns the JSON document sent on the wire for req.
func MarshalRequest(req *workflowai.ChatRequest) ([]byte, error) {
	return json.Marshal(BuildRequest(req))
}
