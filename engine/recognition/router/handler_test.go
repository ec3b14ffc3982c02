package recognitionrouter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepwise-hq/stepwise/engine/block"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/llm"
	recognitionrouter "github.com/stepwise-hq/stepwise/engine/recognition/router"
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
}

func (s *stubClient) GenerateContent(_ context.Context, _ *llm.Request) (*llm.Response, error) {
	return &llm.Response{Content: s.content}, nil
}

func (s *stubClient) Close() error { return nil }

func newTestRouter(blocks *stubBlocks, client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	recognitionrouter.RegisterRoutes(engine.Group("/api"), blocks, client, 0)
	return engine
}

func TestScoreEndpoint(t *testing.T) {
	testBlock := &block.Block{
		ID:          "b1",
		ProjectID:   "p1",
		Checkpoint:  "paint the fence",
		Achievement: "fence fully covered",
	}

	t.Run("Should accept a snake_case body and return the score envelope", func(t *testing.T) {
		engine := newTestRouter(&stubBlocks{block: testBlock}, &stubClient{content: "score: 72"})

		body := `{"block_id": "b1", "image_url": "https://img.example.com/fence.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/api/image-recognition", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp struct {
			Data struct {
				BlockID string `json:"block_id"`
				Score   int    `json:"score"`
				Status  string `json:"status"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "b1", resp.Data.BlockID)
		assert.Equal(t, 72, resp.Data.Score)
		assert.Equal(t, "success", resp.Data.Status)
	})

	t.Run("Should reject a body missing block_id", func(t *testing.T) {
		engine := newTestRouter(&stubBlocks{block: testBlock}, &stubClient{content: "score: 72"})

		body := `{"image_url": "https://img.example.com/fence.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/api/image-recognition", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Should return 404 for an unknown block", func(t *testing.T) {
		engine := newTestRouter(&stubBlocks{}, &stubClient{content: "score: 72"})

		body := `{"block_id": "ghost", "image_url": "https://img.example.com/fence.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/api/image-recognition", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
