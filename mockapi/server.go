// Copyright (c) WorkflowAI. All rights reserved.

// Package mockapi serves a deterministic OpenAI-compatible chat-completion
// endpoint for tests and for running the examples without credentials.
//
//	srv := httptest.NewServer(mockapi.New(mockapi.WithChoices(2)).Handler())
//	defer srv.Close()
//	client := openai.New("test-key", openai.WithBaseURL(srv.URL+"/v1"))
package mockapi

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	loremgen "github.com/bozaro/golorem"
	"github.com/gin-gonic/gin"
)

const (
	// CompletionID is the id of every generated response.
	CompletionID = "chatcmpl-mock"

	// Created is the fixed creation timestamp of every response.
	Created int64 = 1700000000
)

// Models lists the model ids reported by GET /v1/models.
var Models = []string{"gpt-3.5-turbo", "gpt-4o-mini"}

type settings struct {
	choices      int
	fixture      *Fixture
	errStatus    int
	errMessage   string
	malformed    bool
	logger       *slog.Logger
	requireToken bool
	lorem        bool
}

// Option configures a [Server].
type Option func(*settings)

// WithChoices sets how many generated choices each response carries.
func WithChoices(n int) Option {
	return func(s *settings) { s.choices = n }
}

// WithFixture replies with the given canned choices instead of generated text.
func WithFixture(f *Fixture) Option {
	return func(s *settings) { s.fixture = f }
}

// WithErrorStatus replies to every completion with status and an
// OpenAI-style error body.
func WithErrorStatus(status int, message string) Option {
	return func(s *settings) {
		s.errStatus = status
		s.errMessage = message
	}
}

// WithMalformedBody replies 200 with a truncated JSON document.
func WithMalformedBody() Option {
	return func(s *settings) { s.malformed = true }
}

// WithLoremText replies with random lorem ipsum instead of the fixed
// sentence bank. Responses are no longer reproducible.
func WithLoremText() Option {
	return func(s *settings) { s.lorem = true }
}

// WithLogger logs every request through logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithoutAuth accepts requests that carry no bearer token.
func WithoutAuth() Option {
	return func(s *settings) { s.requireToken = false }
}

// Server is the mock API. It is safe for concurrent use.
type Server struct {
	engine *gin.Engine
	cfg    settings

	mu       sync.Mutex
	requests int
	lastBody []byte
}

// New builds a mock server. Mount it with [Server.Handler].
func New(opts ...Option) *Server {
	cfg := settings{choices: 1, requireToken: true}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.choices < 1 {
		cfg.choices = 1
	}

	s := &Server{engine: gin.New(), cfg: cfg}
	s.engine.Use(gin.Recovery())
	if cfg.logger != nil {
		s.engine.Use(requestLogger(cfg.logger))
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/v1")
	api.Use(s.authenticate)
	api.POST("/chat/completions", s.chatCompletion)
	api.GET("/models", s.listModels)
}

// Handler returns the http.Handler serving the API.
func (s *Server) Handler() http.Handler { return s.engine }

// Requests returns how many chat-completion requests were received.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// LastRequest returns the raw body of the most recent chat-completion request.
func (s *Server) LastRequest() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.lastBody...)
}

func (s *Server) authenticate(c *gin.Context) {
	if !s.cfg.requireToken {
		c.Next()
		return
	}
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		code := "invalid_api_key"
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: apiError{
			Message: "missing bearer token",
			Type:    "invalid_request_error",
			Code:    &code,
		}})
		return
	}
	c.Next()
}

func (s *Server) chatCompletion(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: apiError{Message: err.Error(), Type: "invalid_request_error"}})
		return
	}

	s.mu.Lock()
	s.requests++
	s.lastBody = body
	s.mu.Unlock()

	switch {
	case s.cfg.errStatus != 0:
		c.JSON(s.cfg.errStatus, errorBody{Error: apiError{Message: s.cfg.errMessage, Type: "api_error"}})
		return
	case s.cfg.malformed:
		c.Data(http.StatusOK, "application/json", []byte(`{"id":"`+CompletionID+`","choices":[`))
		return
	}

	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: apiError{Message: "invalid JSON body", Type: "invalid_request_error"}})
		return
	}
	if req.Stream {
		c.JSON(http.StatusBadRequest, errorBody{Error: apiError{Message: "streaming is not supported", Type: "invalid_request_error"}})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, errorBody{Error: apiError{Message: "messages must not be empty", Type: "invalid_request_error"}})
		return
	}

	c.JSON(http.StatusOK, s.respond(&req, body))
}

// respond builds the completion. Unless lorem text is enabled, generated
// text is a pure function of the request body.
func (s *Server) respond(req *chatRequest, body []byte) *chatResponse {
	resp := &chatResponse{
		ID:      CompletionID,
		Object:  "chat.completion",
		Created: Created,
		Model:   req.Model,
	}

	for _, m := range req.Messages {
		resp.Usage.PromptTokens += len(strings.Fields(m.Content))
	}

	if f := s.cfg.fixture; f != nil {
		if f.ID != "" {
			resp.ID = f.ID
		}
		if f.Model != "" {
			resp.Model = f.Model
		}
		for i, fc := range f.Choices {
			resp.Choices = append(resp.Choices, choice{
				Index:        i,
				Message:      respMessage{Role: fc.Role, Content: fc.Content},
				FinishReason: fc.FinishReason,
			})
			if fc.Content != nil {
				resp.Usage.CompletionTokens += len(strings.Fields(*fc.Content))
			}
		}
	} else {
		h := fnv.New64a()
		h.Write(body)
		seed := h.Sum64()
		var gen *loremgen.Lorem
		if s.cfg.lorem {
			gen = loremgen.New()
		}
		for i := 0; i < s.cfg.choices; i++ {
			var sentence string
			if gen != nil {
				sentence = gen.Sentence(5, 15)
			} else {
				sentence = pickSentence(seed, i)
			}
			text, finish := truncateWords(sentence, req.MaxTokens)
			resp.Choices = append(resp.Choices, choice{
				Index:        i,
				Message:      respMessage{Role: "assistant", Content: &text},
				FinishReason: finish,
			})
			resp.Usage.CompletionTokens += len(strings.Fields(text))
		}
	}

	resp.Usage.TotalTokens = resp.Usage.PromptTokens + resp.Usage.CompletionTokens
	return resp
}

// sentences is the bank deterministic replies are drawn from.
var sentences = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris.",
	"Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore.",
	"Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia.",
	"Nemo enim ipsam voluptatem quia voluptas sit aspernatur aut odit aut fugit.",
	"Neque porro quisquam est, qui dolorem ipsum quia dolor sit amet.",
	"Quis autem vel eum iure reprehenderit qui in ea voluptate velit esse.",
}

// pickSentence selects the sentence for choice i of the request hashed to seed.
func pickSentence(seed uint64, i int) string {
	return sentences[(seed+uint64(i))%uint64(len(sentences))]
}

// truncateWords caps text at limit words, treating one word as one token.
func truncateWords(text string, limit int) (string, string) {
	words := strings.Fields(text)
	if limit <= 0 || len(words) <= limit {
		return text, "stop"
	}
	return strings.Join(words[:limit], " "), "length"
}

func (s *Server) listModels(c *gin.Context) {
	list := modelList{Object: "list"}
	for _, id := range Models {
		list.Data = append(list.Data, modelInfo{ID: id, Object: "model", OwnedBy: "mockapi"})
	}
	c.JSON(http.StatusOK, list)
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.InfoContext(c.Request.Context(), "mockapi request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// String describes the configured behavior, for startup logs.
func (s *Server) String() string {
	switch {
	case s.cfg.errStatus != 0:
		return fmt.Sprintf("error status %d", s.cfg.errStatus)
	case s.cfg.malformed:
		return "malformed body"
	case s.cfg.fixture != nil:
		return fmt.Sprintf("fixture with %d choices", len(s.cfg.fixture.Choices))
	default:
		if s.cfg.lorem {
			return fmt.Sprintf("%d lorem choices", s.cfg.choices)
		}
		return fmt.Sprintf("%d generated choices", s.cfg.choices)
	}
}
