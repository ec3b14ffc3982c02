package uc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stepwise-hq/stepwise/engine/block"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/llm"
	"github.com/stepwise-hq/stepwise/engine/planning"
	"github.com/stepwise-hq/stepwise/pkg/logger"
)

var (
	// ErrProjectNotFound is returned when the target project is absent.
	ErrProjectNotFound = errors.New("project not found")
	// ErrMalformedPlan is returned when the model output cannot be parsed
	// into a plan. Parsing is attempted once; there is no retry.
	ErrMalformedPlan = errors.New("model returned a malformed plan")
	// ErrInvalidInput is returned for malformed use-case input.
	ErrInvalidInput = errors.New("invalid input")
)

const systemPrompt = "You are a planning assistant that decomposes a goal " +
	"into an ordered list of concrete, verifiable work steps."

const instructionTemplate = `Decompose the following request into an ordered task list.
Respond with a single JSON object of the shape:
{"plan": "<one-paragraph summary>", "total_time": "<estimate>", "tasks": [{"id": 1, "title": "...", "description": "...", "checkpoint": "<goal of the step>", "achievement": "<how to verify the step is done, visually checkable>", "time": "<estimate>", "priority": "high|medium|low", "dependencies": [<ids>]}]}
Do not include any text outside the JSON object.

Request: %s`

// BlockCreator persists generated blocks. The bulk path writes rows
// directly and manages the project order itself in a single merge.
type BlockCreator interface {
	Create(ctx context.Context, b *block.Block) (*block.Block, error)
}

// OrderIndex mutates the project's block order list.
type OrderIndex interface {
	GetOrder(ctx context.Context, projectID string) ([]string, error)
	SetOrder(ctx context.Context, projectID string, order []string) error
}

// GenerateInput is a free-text prompt targeting one project.
type GenerateInput struct {
	Prompt    string
	ProjectID string
}

// GenerateOutput returns the parsed plan and the persisted blocks, in
// generation order.
type GenerateOutput struct {
	Plan        *planning.Plan
	SavedBlocks []*block.Block
}

// Generate runs the task-planning workflow: one model call, one parse,
// N block rows, then exactly one read-modify-write on the project order.
type Generate struct {
	client llm.Client
	blocks BlockCreator
	orders OrderIndex
}

func NewGenerate(client llm.Client, blocks BlockCreator, orders OrderIndex) *Generate {
	return &Generate{client: client, blocks: blocks, orders: orders}
}

func (uc *Generate) Execute(ctx context.Context, in *GenerateInput) (*GenerateOutput, error) {
	log := logger.FromContext(ctx)
	if in == nil || strings.TrimSpace(in.Prompt) == "" {
		return nil, fmt.Errorf("%w: prompt must not be empty", ErrInvalidInput)
	}
	order, err := uc.orders.GetOrder(ctx, in.ProjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to read project order: %w", err)
	}
	plan, err := uc.generatePlan(ctx, in.Prompt)
	if err != nil {
		return nil, err
	}
	saved := make([]*block.Block, 0, len(plan.Tasks))
	newIDs := make([]string, 0, len(plan.Tasks))
	for _, task := range plan.Tasks {
		created, err := uc.blocks.Create(ctx, &block.Block{
			ProjectID:   in.ProjectID,
			Checkpoint:  task.Checkpoint,
			Achievement: task.Achievement,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to persist generated block: %w", err)
		}
		saved = append(saved, created)
		newIDs = append(newIDs, created.ID)
	}
	// Single merge: one concatenation write instead of N appends. Still a
	// read-modify-write, so a concurrent order mutation can be lost.
	if len(newIDs) > 0 {
		if err := uc.orders.SetOrder(ctx, in.ProjectID, append(order, newIDs...)); err != nil {
			return nil, fmt.Errorf("failed to append generated blocks to project order: %w", err)
		}
	}
	log.Info("task plan generated", "project_id", in.ProjectID, "tasks", len(plan.Tasks))
	return &GenerateOutput{Plan: plan, SavedBlocks: saved}, nil
}

func (uc *Generate) generatePlan(ctx context.Context, prompt string) (*planning.Plan, error) {
	resp, err := uc.client.GenerateContent(ctx, &llm.Request{
		System:   systemPrompt,
		Prompt:   fmt.Sprintf(instructionTemplate, prompt),
		JSONMode: true,
	})
	if err != nil {
		return nil, llm.ClassifyError(err)
	}
	raw, err := planning.ExtractJSONObject(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPlan, err)
	}
	plan := &planning.Plan{}
	if err := json.Unmarshal([]byte(raw), plan); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPlan, err)
	}
	return plan, nil
}
