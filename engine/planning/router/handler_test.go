package planningrouter_test

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

	"github.com/stepwise-hq/stepwise/engine/infra/repo"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/llm"
	planningrouter "github.com/stepwise-hq/stepwise/engine/planning/router"
)

type stubClient struct {
	content string
}

func (s *stubClient) GenerateContent(_ context.Context, _ *llm.Request) (*llm.Response, error) {
	return &llm.Response{Content: s.content}, nil
}

func (s *stubClient) Close() error { return nil }

const planJSON = `{
  "plan": "Assemble the shelf",
  "total_time": "1 hour",
  "tasks": [
    {"id": 1, "title": "Frame", "description": "Bolt the frame", "checkpoint": "frame bolted", "achievement": "frame stands on its own", "time": "30m", "priority": "high", "dependencies": []},
    {"id": 2, "title": "Boards", "description": "Insert the boards", "checkpoint": "boards inserted", "achievement": "all shelves level", "time": "30m", "priority": "medium", "dependencies": [1]}
  ]
}`

func TestGenerateEndpoint(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, client llm.Client) (*gin.Engine, string) {
		t.Helper()
		gin.SetMode(gin.TestMode)
		s := store.NewMemoryStore()
		projects := repo.NewProjectRepo(s)
		p, err := projects.Create(ctx, "shelf", "c1", nil)
		require.NoError(t, err)
		engine := gin.New()
		planningrouter.RegisterRoutes(engine.Group("/api"), client, repo.NewBlockRepo(s), projects)
		return engine, p.ID
	}

	t.Run("Should respond with the plan and saved_blocks", func(t *testing.T) {
		engine, projectID := setup(t, &stubClient{content: planJSON})

		body := `{"prompt": "assemble a shelf", "projectId": "` + projectID + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/task-planning", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var resp struct {
			Data struct {
				Plan struct {
					Plan string `json:"plan"`
				} `json:"plan"`
				SavedBlocks []struct {
					ID         string `json:"id"`
					Checkpoint string `json:"checkpoint"`
				} `json:"saved_blocks"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Assemble the shelf", resp.Data.Plan.Plan)
		require.Len(t, resp.Data.SavedBlocks, 2)
		assert.Equal(t, "frame bolted", resp.Data.SavedBlocks[0].Checkpoint)
	})

	t.Run("Should return 502 for unparseable model output", func(t *testing.T) {
		engine, projectID := setup(t, &stubClient{content: "no json here"})

		body := `{"prompt": "assemble a shelf", "projectId": "` + projectID + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/task-planning", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
