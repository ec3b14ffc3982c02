package llm

import (
	"fmt"
	"strings"
)

// FailureKind buckets upstream LLM failures for user messaging. The
// classification is cosmetic only: no retry logic hangs off it.
type FailureKind string

const (
	FailureAuth            FailureKind = "auth"
	FailureRateLimit       FailureKind = "rate_limit"
	FailureImageAccess     FailureKind = "image_access"
	FailureScoreExtraction FailureKind = "score_extraction"
	FailureNetwork         FailureKind = "network"
	FailureUnknown         FailureKind = "unknown"
)

// UpstreamError wraps an LLM failure with its classified kind.
type UpstreamError struct {
	Kind FailureKind
	Err  error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm %s failure: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("llm %s failure", e.Kind)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Code returns a stable machine-readable code for the failure kind.
func (e *UpstreamError) Code() string {
	return "LLM_" + strings.ToUpper(string(e.Kind))
}

// UserMessage maps each failure kind to a distinct user-facing message.
func (e *UpstreamError) UserMessage() string {
	switch e.Kind {
	case FailureAuth:
		return "The image analysis service rejected our credentials. Contact the administrator."
	case FailureRateLimit:
		return "The image analysis service is rate limiting requests. Try again in a moment."
	case FailureImageAccess:
		return "The submitted image could not be accessed. Check the image URL and try again."
	case FailureScoreExtraction:
		return "The analysis result could not be interpreted. Try again with a clearer photo."
	case FailureNetwork:
		return "Could not reach the analysis service. Check connectivity and try again."
	default:
		return "The analysis request failed unexpectedly. Try again later."
	}
}

// NewUpstreamError builds an UpstreamError of an explicit kind.
func NewUpstreamError(kind FailureKind, err error) *UpstreamError {
	return &UpstreamError{Kind: kind, Err: err}
}

// ClassifyError buckets an adapter error by substring matching against the
// underlying message. Order matters: more specific patterns win.
func ClassifyError(err error) *UpstreamError {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg,
		"invalid api key", "incorrect api key", "api key", "unauthorized",
		"authentication", "permission denied", "401", "403"):
		return &UpstreamError{Kind: FailureAuth, Err: err}
	case containsAny(msg,
		"rate limit", "rate-limit", "ratelimit", "too many requests",
		"quota exceeded", "insufficient_quota", "429"):
		return &UpstreamError{Kind: FailureRateLimit, Err: err}
	case containsAny(msg,
		"image", "invalid_image", "unsupported image", "could not process the image",
		"error while downloading", "failed to download"):
		return &UpstreamError{Kind: FailureImageAccess, Err: err}
	case containsAny(msg,
		"timeout", "timed out", "deadline exceeded", "connection refused",
		"connection reset", "network error", "no such host", "dns"):
		return &UpstreamError{Kind: FailureNetwork, Err: err}
	default:
		return &UpstreamError{Kind: FailureUnknown, Err: err}
	}
}

func containsAny(msg string, patterns ...string) bool {
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
