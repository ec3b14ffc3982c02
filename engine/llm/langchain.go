package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// LangChainClient adapts langchaingo models to the Client interface.
type LangChainClient struct {
	model llms.Model
}

// Config selects the model backing the adapter.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewLangChainClient builds an OpenAI-backed langchaingo client.
func NewLangChainClient(cfg Config) (*LangChainClient, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM model: %w", err)
	}
	return &LangChainClient{model: model}, nil
}

// GenerateContent implements the Client interface.
func (c *LangChainClient) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := convertMessages(req)
	options := buildCallOptions(req)
	response, err := c.model.GenerateContent(ctx, messages, options...)
	if err != nil {
		return nil, fmt.Errorf("langchain GenerateContent failed: %w", err)
	}
	if response == nil || len(response.Choices) == 0 {
		return nil, fmt.Errorf("empty response from LLM")
	}
	return &Response{Content: response.Choices[0].Content}, nil
}

func (c *LangChainClient) Close() error {
	return nil
}

func convertMessages(req *Request) []llms.MessageContent {
	messages := make([]llms.MessageContent, 0, 2)
	if req.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	parts := []llms.ContentPart{llms.TextPart(req.Prompt)}
	if req.ImageURL != "" {
		parts = append(parts, llms.ImageURLPart(req.ImageURL))
	}
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: parts,
	})
	return messages
}

func buildCallOptions(req *Request) []llms.CallOption {
	var options []llms.CallOption
	if req.Temperature > 0 {
		options = append(options, llms.WithTemperature(req.Temperature))
	}
	if req.MaxTokens > 0 {
		options = append(options, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.JSONMode {
		options = append(options, llms.WithJSONMode())
	}
	return options
}
