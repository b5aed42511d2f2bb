// Copyright (c) WorkflowAI. All rights reserved.

// Command chat sends one fixed conversation to the WorkflowAI
// OpenAI-compatible chat-completion API and prints the choices.
//
// Usage:
//
//	export WORKFLOWAI_API_KEY=wai-...
//	export WORKFLOWAI_API_URL=https://run.workflowai.com
//	go run ./samples/chat
//
// The variables may also be put in a .env file in the working directory.
// Without credentials, run the mock API (go run ./samples/mockapi) and point
// WORKFLOWAI_API_URL at it. Set DEBUG=1 for request logs on stderr.
//
// Each choice prints its content as a Go-quoted string, or null when the
// response carried none (an empty string also prints null).
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/ckorhonen/WorkflowAI/integrations/go/config"
	"github.com/ckorhonen/WorkflowAI/integrations/go/openai"
	"github.com/ckorhonen/WorkflowAI/integrations/go/workflowai"
)

const (
	model     = "gpt-3.5-turbo"
	maxTokens = 512
)

func main() {
	log.SetFlags(0)

	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}

	var mws []workflowai.ChatMiddleware
	if os.Getenv("DEBUG") != "" {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		slog.SetDefault(logger)
		mws = append(mws, workflowai.LoggingMiddleware(logger))
	}

	if err := run(context.Background(), os.Stdout, mws...); err != nil {
		log.Fatal(err)
	}
}

// run performs the single request/response cycle, writing the request JSON
// and the response choices to stdout.
func run(ctx context.Context, stdout io.Writer, mws ...workflowai.ChatMiddleware) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "configuration loaded", "config", cfg)

	client := openai.New(cfg.APIKey,
		openai.WithBaseURL(cfg.BaseURL()),
		openai.WithChatMiddleware(mws...),
	)

	req, err := conversation()
	if err != nil {
		return err
	}

	body, err := openai.MarshalRequest(req)
	if err != nil {
		return fmt.Errorf("serialize request: %w", err)
	}
	fmt.Fprintln(stdout, string(body))

	resp, err := client.Complete(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, "\nResponse:\n\n")
	for _, c := range resp.Choices {
		fmt.Fprintf(stdout, "%d: Role: %s  Content: %s\n", c.Index, c.Message.Role, formatContent(c.Message.Content))
	}
	return nil
}

// conversation builds the fixed four-turn request.
func conversation() (*workflowai.ChatRequest, error) {
	return workflowai.NewChatRequest(model, maxTokens,
		workflowai.NewSystemMessage("You are a helpful assistant."),
		workflowai.NewUserMessage("Who won the world series in 2020?"),
		workflowai.NewAssistantMessage("The Los Angeles Dodgers won the World Series in 2020."),
		workflowai.NewUserMessage("Where was it played?"),
	)
}

// formatContent quotes the content, or prints null when the model sent none.
func formatContent(content *string) string {
	if content == nil {
		return "null"
	}
	return strconv.Quote(*content)
}
