package uc

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stepwise-hq/stepwise/engine/block"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/llm"
	"github.com/stepwise-hq/stepwise/pkg/logger"
)

var (
	// ErrBlockNotFound is returned when the scored block is absent.
	ErrBlockNotFound = errors.New("block not found")
	// ErrInvalidInput is returned for malformed use-case input.
	ErrInvalidInput = errors.New("invalid input")
)

// DefaultPassThreshold is the score at which a submission passes.
const DefaultPassThreshold = 60

// Statuses reported to the caller. A failing score is a well-formed
// result, not a server error.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// scorePattern is the fixed extraction pattern the model is instructed to
// answer with. Anything that does not match is a score-extraction failure.
var scorePattern = regexp.MustCompile(`(?i)score\s*[:：]\s*(\d{1,3})`)

const promptTemplate = `You are judging whether a submitted photo shows that a work step was completed.
Step goal: %s
Acceptance criterion: %s
Inspect the attached photo and rate how well it satisfies the acceptance criterion.
Answer with a single line of the form "score: NN" where NN is an integer from 0 to 100.`

// BlockGetter fetches the block whose criterion is being scored.
type BlockGetter interface {
	GetByID(ctx context.Context, id string) (*block.Block, error)
}

// ScoreInput references a block and the submitted image.
type ScoreInput struct {
	BlockID  string
	ImageURL string
}

// ScoreOutput is returned for both passing and failing scores.
type ScoreOutput struct {
	BlockID string `json:"block_id"`
	Score   int    `json:"score"`
	Status  string `json:"status"`
}

// Score runs the image-recognition workflow: fetch the block, ask the
// vision model to rate the photo against the block's acceptance
// criterion, extract the integer score and apply the pass threshold.
// Upstream failures are classified for user messaging only; nothing is
// retried.
type Score struct {
	blocks    BlockGetter
	client    llm.Client
	threshold int
}

func NewScore(blocks BlockGetter, client llm.Client, threshold int) *Score {
	if threshold <= 0 {
		threshold = DefaultPassThreshold
	}
	return &Score{blocks: blocks, client: client, threshold: threshold}
}

func (uc *Score) Execute(ctx context.Context, in *ScoreInput) (*ScoreOutput, error) {
	log := logger.FromContext(ctx)
	if in == nil || strings.TrimSpace(in.BlockID) == "" || strings.TrimSpace(in.ImageURL) == "" {
		return nil, fmt.Errorf("%w: block_id and image_url are required", ErrInvalidInput)
	}
	b, err := uc.blocks.GetByID(ctx, in.BlockID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("failed to look up block: %w", err)
	}
	resp, err := uc.client.GenerateContent(ctx, &llm.Request{
		Prompt:   fmt.Sprintf(promptTemplate, b.Checkpoint, b.Achievement),
		ImageURL: in.ImageURL,
	})
	if err != nil {
		return nil, llm.ClassifyError(err)
	}
	score, err := extractScore(resp.Content)
	if err != nil {
		return nil, llm.NewUpstreamError(llm.FailureScoreExtraction, err)
	}
	status := StatusFail
	if score >= uc.threshold {
		status = StatusSuccess
	}
	log.Info("image scored", "block_id", in.BlockID, "score", score, "status", status)
	return &ScoreOutput{BlockID: in.BlockID, Score: score, Status: status}, nil
}

func extractScore(content string) (int, error) {
	m := scorePattern.FindStringSubmatch(content)
	if m == nil {
		return 0, fmt.Errorf("no score found in model output")
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: %w", m[1], err)
	}
	if score < 0 || score > 100 {
		return 0, fmt.Errorf("score %d is out of range", score)
	}
	return score, nil
}
