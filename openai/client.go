// Copyright (c) WorkflowAI. All rights reserved.

package openai

import (
	"context"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/ckorhonen/WorkflowAI/integrations/go/workflowai"
)

// Client implements [workflowai.ChatClient] on top of go-openai.
// Use [New] to create one.
type Client struct {
	api     *goopenai.Client
	handler workflowai.ChatHandler
}

// Verify interface compliance at compile time.
var _ workflowai.ChatClient = (*Client)(nil)

// New creates a [Client] authenticating with apiKey.
//
//	client := openai.New(cfg.APIKey,
//	    openai.WithBaseURL(cfg.BaseURL()),
//	)
func New(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	oc := goopenai.DefaultConfig(apiKey)
	if cfg.baseURL != "" {
		oc.BaseURL = cfg.baseURL
	}
	oc.OrgID = cfg.organization
	oc.HTTPClient = newHTTPClient(cfg)

	c := &Client{api: goopenai.NewClientWithConfig(oc)}
	c.handler = workflowai.ChainChatMiddleware(c.complete, cfg.chatMiddleware...)
	return c
}

// Complete sends req once and returns the decoded response. Failures are
// returned as *workflowai.RequestError; nothing is retried.
func (c *Client) Complete(ctx context.Context, req *workflowai.ChatRequest) (*workflowai.ChatResponse, error) {
	return c.handler(ctx, req)
}

// complete is the base implementation called by the middleware chain.
func (c *Client) complete(ctx context.Context, req *workflowai.ChatRequest) (*workflowai.ChatResponse, error) {
	raw, err := c.api.CreateChatCompletion(ctx, BuildRequest(req))
	if err != nil {
		return nil, mapError(err)
	}
	return parseResponse(&raw), nil
}
