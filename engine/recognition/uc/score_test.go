package uc_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepwise-hq/stepwise/engine/block"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/llm"
	"github.com/stepwise-hq/stepwise/engine/recognition/uc"
)

type stubBlocks struct {
	block *block.Block
}

func (s *stubBlocks) GetByID(_ context.Context, id string) (*block.Block, error) {
	if s.block == nil || s.block.ID != id {
		return nil, store.ErrNotFound
	}
	return s.block, nil
}

type stubClient struct {
	content string
	err     error
	lastReq *llm.Request
}

func (s *stubClient) GenerateContent(_ context.Context, req *llm.Request) (*llm.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{Content: s.content}, nil
}

func (s *stubClient) Close() error { return nil }

func TestScore_Execute(t *testing.T) {
	ctx := context.Background()
	testBlock := &block.Block{
		ID:          "b1",
		ProjectID:   "p1",
		Checkpoint:  "paint the fence",
		Achievement: "fence fully covered in white paint",
	}
	input := &uc.ScoreInput{BlockID: "b1", ImageURL: "https://img.example.com/fence.jpg"}

	t.Run("Should pass at exactly the threshold", func(t *testing.T) {
		client := &stubClient{content: "score: 60"}
		score := uc.NewScore(&stubBlocks{block: testBlock}, client, 0)

		out, err := score.Execute(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 60, out.Score)
		assert.Equal(t, uc.StatusSuccess, out.Status)
	})

	t.Run("Should fail one below the threshold without erroring", func(t *testing.T) {
		client := &stubClient{content: "score: 59"}
		score := uc.NewScore(&stubBlocks{block: testBlock}, client, 0)

		out, err := score.Execute(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 59, out.Score)
		assert.Equal(t, uc.StatusFail, out.Status)
	})

	t.Run("Should extract the score from surrounding prose case-insensitively", func(t *testing.T) {
		client := &stubClient{content: "Looking at the photo, I'd say\nScore: 85\noverall."}
		score := uc.NewScore(&stubBlocks{block: testBlock}, client, 0)

		out, err := score.Execute(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 85, out.Score)
	})

	t.Run("Should send the block criterion and image to the model", func(t *testing.T) {
		client := &stubClient{content: "score: 70"}
		score := uc.NewScore(&stubBlocks{block: testBlock}, client, 0)

		_, err := score.Execute(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, client.lastReq)
		assert.Contains(t, client.lastReq.Prompt, "paint the fence")
		assert.Contains(t, client.lastReq.Prompt, "fence fully covered in white paint")
		assert.Equal(t, input.ImageURL, client.lastReq.ImageURL)
	})

	t.Run("Should classify missing scores as extraction failures", func(t *testing.T) {
		client := &stubClient{content: "The fence looks great!"}
		score := uc.NewScore(&stubBlocks{block: testBlock}, client, 0)

		_, err := score.Execute(ctx, input)
		var upstream *llm.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, llm.FailureScoreExtraction, upstream.Kind)
	})

	t.Run("Should reject out-of-range scores as extraction failures", func(t *testing.T) {
		client := &stubClient{content: "score: 250"}
		score := uc.NewScore(&stubBlocks{block: testBlock}, client, 0)

		_, err := score.Execute(ctx, input)
		var upstream *llm.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, llm.FailureScoreExtraction, upstream.Kind)
	})

	t.Run("Should classify model transport failures by message", func(t *testing.T) {
		client := &stubClient{err: fmt.Errorf("request failed: %w", errors.New("invalid api key"))}
		score := uc.NewScore(&stubBlocks{block: testBlock}, client, 0)

		_, err := score.Execute(ctx, input)
		var upstream *llm.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, llm.FailureAuth, upstream.Kind)
	})

	t.Run("Should return ErrBlockNotFound for a missing block", func(t *testing.T) {
		client := &stubClient{content: "score: 90"}
		score := uc.NewScore(&stubBlocks{}, client, 0)

		_, err := score.Execute(ctx, &uc.ScoreInput{BlockID: "ghost", ImageURL: input.ImageURL})
		assert.ErrorIs(t, err, uc.ErrBlockNotFound)
	})

	t.Run("Should honor a custom threshold", func(t *testing.T) {
		client := &stubClient{content: "score: 75"}
		score := uc.NewScore(&stubBlocks{block: testBlock}, client, 80)

		out, err := score.Execute(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, uc.StatusFail, out.Status)
	})
}
