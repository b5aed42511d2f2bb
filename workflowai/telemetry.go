// Copyright (c) WorkflowAI. All rights reserved.

package workflowai

import (
	"context"
	"log/slog"
	"time"
)

// LoggingMiddleware returns a [ChatMiddleware] that logs each completion call using slog.
func LoggingMiddleware(logger *slog.Logger) ChatMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ChatHandler) ChatHandler {
		return func(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
			start := time.Now()
			logger.DebugContext(ctx, "chat completion started",
				"model", req.Model(),
				"message_count", len(req.messages),
				"max_tokens", req.MaxTokens(),
			)

			resp, err := next(ctx, req)

			duration := time.Since(start)
			if err != nil {
				logger.ErrorContext(ctx, "chat completion failed",
					"duration", duration,
					"error", err,
				)
				return nil, err
			}

			logger.DebugContext(ctx, "chat completion finished",
				"duration", duration,
				"response_id", resp.ID,
				"choices", len(resp.Choices),
				"prompt_tokens", resp.Usage.PromptTokens,
				"completion_tokens", resp.Usage.CompletionTokens,
			)
			return resp, nil
		}
	}
}
