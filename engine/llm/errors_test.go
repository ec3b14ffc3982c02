package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		want FailureKind
	}{
		{"Should classify api key errors as auth", "Incorrect API key provided", FailureAuth},
		{"Should classify 401 responses as auth", "request failed with status 401", FailureAuth},
		{"Should classify rate limits", "429: too many requests", FailureRateLimit},
		{"Should classify quota exhaustion as rate limit", "insufficient_quota: billing limit", FailureRateLimit},
		{"Should classify image fetch failures", "error while downloading image from url", FailureImageAccess},
		{"Should classify timeouts as network", "context deadline exceeded (Client.Timeout)", FailureNetwork},
		{"Should classify connection refusals as network", "dial tcp: connection refused", FailureNetwork},
		{"Should fall back to unknown", "something odd happened", FailureUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyError(errors.New(tc.msg))
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.Kind)
		})
	}

	t.Run("Should return nil for a nil error", func(t *testing.T) {
		assert.Nil(t, ClassifyError(nil))
	})

	t.Run("Should preserve the cause for unwrapping", func(t *testing.T) {
		cause := errors.New("rate limit reached")
		classified := ClassifyError(cause)
		assert.ErrorIs(t, classified, cause)
	})
}

func TestUpstreamError_Messaging(t *testing.T) {
	t.Run("Should expose a stable machine code per kind", func(t *testing.T) {
		err := NewUpstreamError(FailureScoreExtraction, errors.New("no score"))
		assert.Equal(t, "LLM_SCORE_EXTRACTION", err.Code())
	})

	t.Run("Should map each kind to a distinct user message", func(t *testing.T) {
		kinds := []FailureKind{
			FailureAuth, FailureRateLimit, FailureImageAccess,
			FailureScoreExtraction, FailureNetwork, FailureUnknown,
		}
		seen := make(map[string]FailureKind, len(kinds))
		for _, kind := range kinds {
			msg := NewUpstreamError(kind, nil).UserMessage()
			require.NotEmpty(t, msg)
			if prev, dup := seen[msg]; dup {
				t.Fatalf("kinds %s and %s share the message %q", prev, kind, msg)
			}
			seen[msg] = kind
		}
	})
}
