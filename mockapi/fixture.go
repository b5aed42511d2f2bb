// Copyright (c) WorkflowAI. All rights reserved.

package mockapi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is a canned chat-completion response, usually loaded from YAML:
//
//	id: chatcmpl-fixture
//	model: gpt-3.5-turbo
//	choices:
//	  - role: assistant
//	    content: The 2020 World Series was played at Globe Life Field.
//	    finish_reason: stop
type Fixture struct {
	ID      string          `yaml:"id"`
	Model   string          `yaml:"model"`
	Choices []FixtureChoice `yaml:"choices"`
}

// FixtureChoice is one choice of a [Fixture]. A nil Content is sent as JSON null.
type FixtureChoice struct {
	Role         string  `yaml:"role"`
	Content      *string `yaml:"content"`
	FinishReason string  `yaml:"finish_reason"`
}

// ParseFixture decodes a YAML fixture.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Choices) == 0 {
		return nil, fmt.Errorf("parse fixture: no choices")
	}
	for i := range f.Choices {
		if f.Choices[i].Role == "" {
			f.Choices[i].Role = "assistant"
		}
		if f.Choices[i].FinishReason == "" {
			f.Choices[i].FinishReason = "stop"
		}
	}
	return &f, nil
}

// LoadFixture reads and decodes the YAML fixture at path.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load fixture: %w", err)
	}
	return ParseFixture(data)
}
