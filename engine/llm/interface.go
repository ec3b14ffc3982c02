package llm

import "context"

// Request is a single-turn generation request, independent of provider.
// ImageURL, when set, is attached to the user message as an image part.
type Request struct {
	System      string
	Prompt      string
	ImageURL    string
	JSONMode    bool
	Temperature float64
	MaxTokens   int
}

// Response carries the model's text output.
type Response struct {
	Content string
}

// Client is the language-model port. Both workflows treat the model as a
// black-box function: (prompt[, image]) -> text.
type Client interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Close() error
}
