package services

import (
	"context"
	"fmt"

	"llm-prompt-repository/pkg/logger"
	"llm-prompt-repository/pkg/metrics"

	"go.uber.org/zap"
)

const wolframPromptRepository = "https://resources.wolframcloud.com/PromptRepository/resources/"

// examplePrompts are inserted into an empty store on startup.
var examplePrompts = []CreatePromptInput{
	{
		Title:      "ClickBaitTitle",
		PromptText: "Rewrite the given text as a clickbait-style headline.",
		Purpose:    "Text rewriting",
		Tags:       []string{"headline", "rewriting"},
		Source:     stringPtr(wolframPromptRepository + "ClickBaitTitle/"),
	},
	{
		Title:      "CodeDocAnnotator",
		PromptText: "Generate clear documentation annotations for the given source code.",
		Purpose:    "Code documentation",
		Tags:       []string{"code", "documentation"},
		Source:     stringPtr(wolframPromptRepository + "CodeDocAnnotator/"),
	},
	{
		Title:      "MermaidDiagram",
		PromptText: "Generate a Mermaid.js diagram from a textual description.",
		Purpose:    "Visualization",
		Tags:       []string{"diagram", "visualization"},
		Source:     stringPtr(wolframPromptRepository + "MermaidDiagram/"),
	},
}

// SeedPrompts inserts the example prompts if and only if the store is empty.
// It returns the number of prompts inserted.
func SeedPrompts(ctx context.Context, s *PromptService) (int, error) {
	existing, err := s.CountPrompts(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed prompts: count existing: %w", err)
	}
	if existing > 0 {
		logger.Log.Info("Skipping prompt seeding, store is not empty", zap.Int64("existing", existing))
		return 0, nil
	}

	for i, input := range examplePrompts {
		if _, err := s.CreatePrompt(ctx, input); err != nil {
			return i, fmt.Errorf("seed prompts: create %q: %w", input.Title, err)
		}
	}

	metrics.RecordPromptsSeeded(len(examplePrompts))
	logger.Log.Info("Seeded example prompts", zap.Int("count", len(examplePrompts)))
	return len(examplePrompts), nil
}

func stringPtr(s string) *string {
	return &s
}
