// Copyright (c) WorkflowAI. All rights reserved.

package openai

import (
	goopenai "github.com/sashabaranov/go-openai"

	"github.com/ckorhonen/WorkflowAI/integrations/go/workflowai"
)

// parseResponse converts the go-openai response into workflowai types.
// go-openai decodes content into a plain string, so empty content is
// reported as absent.
func parseResponse(raw *goopenai.ChatCompletionResponse) *workflowai.ChatResponse {
	resp := &workflowai.ChatResponse{
		ID:      raw.ID,
		Model:   raw.Model,
		Created: raw.Created,
		Choices: make([]workflowai.Choice, 0, len(raw.Choices)),
		Usage: workflowai.UsageDetails{
			PromptTokens:     raw.Usage.PromptTokens,
			CompletionTokens: raw.Usage.CompletionTokens,
			TotalTokens:      raw.Usage.TotalTokens,
		},
		Raw: raw,
	}

	for _, c := range raw.Choices {
		choice := workflowai.Choice{
			Index:        c.Index,
			FinishReason: workflowai.FinishReason(c.FinishReason),
			Message:      workflowai.ResponseMessage{Role: workflowai.Role(c.Message.Role)},
		}
		// go-openai decodes null and "" alike; both map to absent content.
		if c.Message.Content != "" {
			content := c.Message.Content
			choice.Message.Content = &content
		}
		resp.Choices = append(resp.Choices, choice)
	}
	return resp
}
