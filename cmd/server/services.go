package main

import (
	"fmt"

	"github.com/schynno0/studio/internal/config"
	"github.com/schynno0/studio/internal/flows"
	"github.com/schynno0/studio/internal/llm"
	"github.com/schynno0/studio/internal/metrics"
)

// creates the model client and the lab flows
func InitializeServices(cfg *config.Config) (*Services, error) {
	generator, err := llm.NewGenerator(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	// the mock provider answers each tool with its sample result
	if err := flows.UseSampleReplies(generator); err != nil {
		return nil, fmt.Errorf("failed to build mock responses: %w", err)
	}

	registry, err := flows.NewRegistry(generator,
		flows.WithTimeout(cfg.FlowTimeout),
		flows.WithRecorder(metrics.NewFlowRecorder()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create flows: %w", err)
	}

	return &Services{
		Generator: generator,
		Flows:     registry,
	}, nil
}
