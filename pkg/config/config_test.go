package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should load defaults when no environment is set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "surreal", cfg.Store.Driver)
		assert.Equal(t, "gpt-4o", cfg.LLM.Model)
		assert.Equal(t, 60, cfg.Recognition.PassThreshold)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	})

	t.Run("Should override fields from the environment", func(t *testing.T) {
		t.Setenv("STEPWISE_SERVER_PORT", "9090")
		t.Setenv("STEPWISE_STORE_DRIVER", "memory")
		t.Setenv("STEPWISE_LLM_API_KEY", "sk-test")
		t.Setenv("STEPWISE_IDENTITY_API_KEY", "fir-test")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "memory", cfg.Store.Driver)
		assert.Equal(t, "sk-test", cfg.LLM.APIKey)
		assert.Equal(t, "fir-test", cfg.Identity.APIKey)
	})

	t.Run("Should reject an invalid store driver", func(t *testing.T) {
		t.Setenv("STEPWISE_STORE_DRIVER", "mongo")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Should reject an out-of-range port", func(t *testing.T) {
		t.Setenv("STEPWISE_SERVER_PORT", "70000")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestTransformEnvKey(t *testing.T) {
	t.Run("Should split the first segment as the section", func(t *testing.T) {
		assert.Equal(t, "server.port", transformEnvKey("STEPWISE_SERVER_PORT"))
		assert.Equal(t, "identity.api_key", transformEnvKey("STEPWISE_IDENTITY_API_KEY"))
		assert.Equal(t, "server.shutdown_timeout", transformEnvKey("STEPWISE_SERVER_SHUTDOWN_TIMEOUT"))
		assert.Equal(t, "recognition.pass_threshold", transformEnvKey("STEPWISE_RECOGNITION_PASS_THRESHOLD"))
	})
}
