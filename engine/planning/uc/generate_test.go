package uc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepwise-hq/stepwise/engine/infra/repo"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/llm"
	"github.com/stepwise-hq/stepwise/engine/planning/uc"
)

type stubClient struct {
	content string
	err     error
	calls   int
}

func (s *stubClient) GenerateContent(_ context.Context, _ *llm.Request) (*llm.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{Content: s.content}, nil
}

func (s *stubClient) Close() error { return nil }

const planJSON = `{
  "plan": "Build a raised garden bed",
  "total_time": "3 hours",
  "tasks": [
    {"id": 1, "title": "Frame", "description": "Assemble the frame", "checkpoint": "frame assembled", "achievement": "four corners joined", "time": "1h", "priority": "high", "dependencies": []},
    {"id": 2, "title": "Soil", "description": "Fill with soil", "checkpoint": "bed filled", "achievement": "soil level with rim", "time": "1h", "priority": "medium", "dependencies": [1]},
    {"id": 3, "title": "Plant", "description": "Plant seedlings", "checkpoint": "seedlings planted", "achievement": "rows of seedlings visible", "time": "1h", "priority": "low", "dependencies": [2]}
  ]
}`

func TestGenerate_Execute(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, existingOrder []string) (*repo.BlockRepo, *repo.ProjectRepo, string) {
		t.Helper()
		s := store.NewMemoryStore()
		projects := repo.NewProjectRepo(s)
		p, err := projects.Create(ctx, "garden", "c1", existingOrder)
		require.NoError(t, err)
		return repo.NewBlockRepo(s), projects, p.ID
	}

	t.Run("Should persist one block per task and append all ids in one merge", func(t *testing.T) {
		blocks, projects, projectID := setup(t, []string{"b0"})
		client := &stubClient{content: "Here you go:\n" + planJSON}
		gen := uc.NewGenerate(client, blocks, projects)

		out, err := gen.Execute(ctx, &uc.GenerateInput{Prompt: "build a garden bed", ProjectID: projectID})
		require.NoError(t, err)
		require.Len(t, out.SavedBlocks, 3)
		assert.Equal(t, 1, client.calls)
		assert.Equal(t, "Build a raised garden bed", out.Plan.Plan)
		assert.Equal(t, "frame assembled", out.SavedBlocks[0].Checkpoint)
		assert.Equal(t, "four corners joined", out.SavedBlocks[0].Achievement)

		order, err := projects.GetOrder(ctx, projectID)
		require.NoError(t, err)
		want := []string{"b0"}
		for _, b := range out.SavedBlocks {
			want = append(want, b.ID)
		}
		assert.Equal(t, want, order)
	})

	t.Run("Should return ErrProjectNotFound before calling the model", func(t *testing.T) {
		blocks, projects, _ := setup(t, nil)
		client := &stubClient{content: planJSON}
		gen := uc.NewGenerate(client, blocks, projects)

		_, err := gen.Execute(ctx, &uc.GenerateInput{Prompt: "anything", ProjectID: "ghost"})
		assert.ErrorIs(t, err, uc.ErrProjectNotFound)
		assert.Zero(t, client.calls)
	})

	t.Run("Should fail hard on output with no JSON object", func(t *testing.T) {
		blocks, projects, projectID := setup(t, nil)
		client := &stubClient{content: "I cannot help with that."}
		gen := uc.NewGenerate(client, blocks, projects)

		_, err := gen.Execute(ctx, &uc.GenerateInput{Prompt: "plan", ProjectID: projectID})
		assert.ErrorIs(t, err, uc.ErrMalformedPlan)
	})

	t.Run("Should fail hard on a JSON object that does not parse", func(t *testing.T) {
		blocks, projects, projectID := setup(t, nil)
		client := &stubClient{content: `{"tasks": "not-a-list"}`}
		gen := uc.NewGenerate(client, blocks, projects)

		_, err := gen.Execute(ctx, &uc.GenerateInput{Prompt: "plan", ProjectID: projectID})
		assert.ErrorIs(t, err, uc.ErrMalformedPlan)
	})

	t.Run("Should leave the order untouched when parsing fails", func(t *testing.T) {
		blocks, projects, projectID := setup(t, []string{"b0"})
		client := &stubClient{content: "nope"}
		gen := uc.NewGenerate(client, blocks, projects)

		_, err := gen.Execute(ctx, &uc.GenerateInput{Prompt: "plan", ProjectID: projectID})
		require.Error(t, err)

		order, err := projects.GetOrder(ctx, projectID)
		require.NoError(t, err)
		assert.Equal(t, []string{"b0"}, order)
	})

	t.Run("Should classify model transport failures", func(t *testing.T) {
		blocks, projects, projectID := setup(t, nil)
		client := &stubClient{err: errors.New("429 too many requests")}
		gen := uc.NewGenerate(client, blocks, projects)

		_, err := gen.Execute(ctx, &uc.GenerateInput{Prompt: "plan", ProjectID: projectID})
		var upstream *llm.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, llm.FailureRateLimit, upstream.Kind)
	})

	t.Run("Should reject an empty prompt", func(t *testing.T) {
		blocks, projects, projectID := setup(t, nil)
		gen := uc.NewGenerate(&stubClient{content: planJSON}, blocks, projects)

		_, err := gen.Execute(ctx, &uc.GenerateInput{Prompt: "  ", ProjectID: projectID})
		assert.ErrorIs(t, err, uc.ErrInvalidInput)
	})
}
