package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPromptsEmptyStore(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()

	inserted, err := SeedPrompts(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	prompts, err := s.ListPrompts(ctx, PromptFilter{})
	require.NoError(t, err)
	require.Len(t, prompts, 3)
	assert.Equal(t, "ClickBaitTitle", prompts[0].Title)
	assert.Equal(t, "CodeDocAnnotator", prompts[1].Title)
	assert.Equal(t, "MermaidDiagram", prompts[2].Title)
	for _, p := range prompts {
		assert.Len(t, p.Tags, 2)
		require.NotNil(t, p.Source)
		assert.Contains(t, *p.Source, p.Title)
	}
}

func TestSeedPromptsRunsOnce(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()

	_, err := SeedPrompts(ctx, s)
	require.NoError(t, err)

	inserted, err := SeedPrompts(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	count, err := s.CountPrompts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSeedPromptsSkipsNonEmptyStore(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()
	mustCreate(t, s, "Unrelated", "Other")

	inserted, err := SeedPrompts(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	count, err := s.CountPrompts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
