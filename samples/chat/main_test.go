// Copyright (c) WorkflowAI. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ckorhonen/WorkflowAI/integrations/go/mockapi"
	"github.com/ckorhonen/WorkflowAI/integrations/go/workflowai"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// startMock serves api and points the configuration at it.
func startMock(t *testing.T, api *mockapi.Server) {
	t.Helper()
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)
	t.Setenv("WORKFLOWAI_API_KEY", "test-key")
	t.Setenv("WORKFLOWAI_API_URL", srv.URL)
}

func strPtr(s string) *string { return &s }

func TestRun_PrintsOneLinePerChoice(t *testing.T) {
	fixture := &mockapi.Fixture{Choices: []mockapi.FixtureChoice{
		{Role: "assistant", Content: strPtr("It was played at Globe Life Field in Arlington, Texas."), FinishReason: "stop"},
		{Role: "assistant", Content: strPtr("Arlington, Texas."), FinishReason: "stop"},
		{Role: "assistant", FinishReason: "length"},
	}}
	api := mockapi.New(mockapi.WithFixture(fixture))
	startMock(t, api)

	var out bytes.Buffer
	if err := run(context.Background(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	_, after, found := strings.Cut(out.String(), "\n\nResponse:\n\n")
	if !found {
		t.Fatalf("output has no Response section:\n%s", out.String())
	}
	lines := strings.Split(strings.TrimSuffix(after, "\n"), "\n")
	want := []string{
		`0: Role: assistant  Content: "It was played at Globe Life Field in Arlington, Texas."`,
		`1: Role: assistant  Content: "Arlington, Texas."`,
		`2: Role: assistant  Content: null`,
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %d, want %d:\n%s", len(lines), len(want), after)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if api.Requests() != 1 {
		t.Errorf("requests = %d, want exactly 1", api.Requests())
	}
}

func TestRun_EmptyContentPrintsNull(t *testing.T) {
	fixture := &mockapi.Fixture{Choices: []mockapi.FixtureChoice{
		{Role: "assistant", Content: strPtr(""), FinishReason: "stop"},
	}}
	startMock(t, mockapi.New(mockapi.WithFixture(fixture)))

	var out bytes.Buffer
	if err := run(context.Background(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasSuffix(out.String(), "\n\nResponse:\n\n0: Role: assistant  Content: null\n") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRun_GeneratedChoices(t *testing.T) {
	for _, n := range []int{1, 4} {
		t.Run(fmt.Sprintf("%d choices", n), func(t *testing.T) {
			startMock(t, mockapi.New(mockapi.WithChoices(n)))

			var out bytes.Buffer
			if err := run(context.Background(), &out); err != nil {
				t.Fatalf("run: %v", err)
			}
			_, after, _ := strings.Cut(out.String(), "Response:\n\n")
			lines := strings.Split(strings.TrimSuffix(after, "\n"), "\n")
			if len(lines) != n {
				t.Fatalf("lines = %d, want %d", len(lines), n)
			}
			for i, l := range lines {
				prefix := fmt.Sprintf("%d: Role: assistant  Content: \"", i)
				if !strings.HasPrefix(l, prefix) {
					t.Errorf("line %d = %q, want prefix %q", i, l, prefix)
				}
			}
		})
	}
}

func TestRun_PrintedRequest(t *testing.T) {
	api := mockapi.New()
	startMock(t, api)

	var out bytes.Buffer
	if err := run(context.Background(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	first, _, _ := strings.Cut(out.String(), "\n")
	var doc struct {
		Model     *string `json:"model"`
		MaxTokens int     `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.Unmarshal([]byte(first), &doc); err != nil {
		t.Fatalf("printed request is not JSON: %v\n%s", err, first)
	}

	if doc.Model == nil || *doc.Model == "" {
		t.Error("printed request has no model")
	}
	if doc.MaxTokens != 512 {
		t.Errorf("max_tokens = %d, want 512", doc.MaxTokens)
	}
	want := []struct{ role, content string }{
		{"system", "You are a helpful assistant."},
		{"user", "Who won the world series in 2020?"},
		{"assistant", "The Los Angeles Dodgers won the World Series in 2020."},
		{"user", "Where was it played?"},
	}
	if len(doc.Messages) != len(want) {
		t.Fatalf("messages = %d, want %d", len(doc.Messages), len(want))
	}
	for i, w := range want {
		if doc.Messages[i].Role != w.role || doc.Messages[i].Content != w.content {
			t.Errorf("messages[%d] = %s/%q, want %s/%q", i, doc.Messages[i].Role, doc.Messages[i].Content, w.role, w.content)
		}
	}

	if got := string(api.LastRequest()); got != first {
		t.Errorf("printed request differs from the one sent:\nprinted: %s\nsent:    %s", first, got)
	}
}

func TestRun_MissingConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantMsg string
	}{
		{"api key", "WORKFLOWAI_API_KEY", "WORKFLOWAI_API_KEY must be set"},
		{"api url", "WORKFLOWAI_API_URL", "WORKFLOWAI_API_URL must be set"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := mockapi.New()
			startMock(t, api)
			t.Setenv(tc.unset, "")
			os.Unsetenv(tc.unset)

			var out bytes.Buffer
			err := run(context.Background(), &out)
			if !errors.Is(err, workflowai.ErrConfiguration) {
				t.Fatalf("err = %v, want configuration error", err)
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tc.wantMsg)
			}
			if api.Requests() != 0 {
				t.Errorf("requests = %d, want 0", api.Requests())
			}
			if out.Len() != 0 {
				t.Errorf("unexpected output: %s", out.String())
			}
		})
	}
}

func TestRun_RequestFailures(t *testing.T) {
	tests := []struct {
		name   string
		api    *mockapi.Server
		wantIs error
	}{
		{"http error status", mockapi.New(mockapi.WithErrorStatus(http.StatusInternalServerError, "boom")), workflowai.ErrRequest},
		{"unauthorized", mockapi.New(mockapi.WithErrorStatus(http.StatusUnauthorized, "bad key")), workflowai.ErrAuth},
		{"malformed json", mockapi.New(mockapi.WithMalformedBody()), workflowai.ErrInvalidResponse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			startMock(t, tc.api)

			var out bytes.Buffer
			err := run(context.Background(), &out)
			if !errors.Is(err, tc.wantIs) {
				t.Fatalf("err = %v, want %v", err, tc.wantIs)
			}
			if strings.Contains(out.String(), "Response:") {
				t.Errorf("Response section printed on failure:\n%s", out.String())
			}
			if tc.api.Requests() != 1 {
				t.Errorf("requests = %d, want 1 (no retries)", tc.api.Requests())
			}
		})
	}
}

func TestRun_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	t.Setenv("WORKFLOWAI_API_KEY", "test-key")
	t.Setenv("WORKFLOWAI_API_URL", url)

	err := run(context.Background(), &bytes.Buffer{})
	if !errors.Is(err, workflowai.ErrTransport) {
		t.Errorf("err = %v, want ErrTransport", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	startMock(t, mockapi.New(mockapi.WithChoices(2)))

	var first, second bytes.Buffer
	if err := run(context.Background(), &first); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := run(context.Background(), &second); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("outputs differ:\n%s\n---\n%s", first.String(), second.String())
	}
}

func TestRun_WithMiddleware(t *testing.T) {
	startMock(t, mockapi.New())

	calls := 0
	count := func(next workflowai.ChatHandler) workflowai.ChatHandler {
		return func(ctx context.Context, req *workflowai.ChatRequest) (*workflowai.ChatResponse, error) {
			calls++
			return next(ctx, req)
		}
	}
	if err := run(context.Background(), &bytes.Buffer{}, count); err != nil {
		t.Fatalf("run: %v", err)
	}
	if calls != 1 {
		t.Errorf("middleware calls = %d", calls)
	}
}

func TestFormatContent(t *testing.T) {
	if got := formatContent(nil); got != "null" {
		t.Errorf("nil = %q", got)
	}
	if got := formatContent(strPtr(`say "hi"`)); got != `"say \"hi\""` {
		t.Errorf("quoted = %q", got)
	}
}
