// Copyright (c) WorkflowAI. All rights reserved.

// Command mockapi serves a deterministic OpenAI-compatible API so the chat
// sample can run without WorkflowAI credentials.
//
// Usage:
//
//	go run ./samples/mockapi
//	WORKFLOWAI_API_KEY=test WORKFLOWAI_API_URL=http://localhost:8089 go run ./samples/chat
//
// Settings (environment):
//
//	MOCKAPI_ADDR     listen address, default :8089
//	MOCKAPI_CHOICES  generated choices per response, default 1
//	MOCKAPI_FIXTURE  YAML file with canned choices
//	MOCKAPI_LOREM    non-empty: random lorem ipsum replies (not reproducible)
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/ckorhonen/WorkflowAI/integrations/go/config"
	"github.com/ckorhonen/WorkflowAI/integrations/go/mockapi"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}

	v := viper.New()
	v.SetEnvPrefix("MOCKAPI")
	v.AutomaticEnv()
	v.SetDefault("addr", ":8089")
	v.SetDefault("choices", 1)

	gin.SetMode(gin.ReleaseMode)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	opts := []mockapi.Option{
		mockapi.WithChoices(v.GetInt("choices")),
		mockapi.WithLogger(logger),
	}
	if v.GetBool("lorem") {
		opts = append(opts, mockapi.WithLoremText())
	}
	if path := v.GetString("fixture"); path != "" {
		f, err := mockapi.LoadFixture(path)
		if err != nil {
			log.Fatalf("Failed to load fixture: %v", err)
		}
		opts = append(opts, mockapi.WithFixture(f))
	}
	api := mockapi.New(opts...)

	srv := &http.Server{
		Addr:              v.GetString("addr"),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("mockapi listening", "addr", srv.Addr, "behavior", api.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
