package projectrouter_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepwise-hq/stepwise/engine/infra/repo"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	projectrouter "github.com/stepwise-hq/stepwise/engine/project/router"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repo.ProjectRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := store.NewMemoryStore()
	projects := repo.NewProjectRepo(s)
	engine := gin.New()
	projectrouter.RegisterRoutes(engine.Group("/api"), projects, repo.NewRagRepo(s))
	return engine, projects
}

func doJSON(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestProjectRoutes(t *testing.T) {
	ctx := context.Background()

	t.Run("Should list projects by the companyId query parameter", func(t *testing.T) {
		engine, projects := newTestRouter(t)
		p1, err := projects.Create(ctx, "shed", "c1", nil)
		require.NoError(t, err)
		_, err = projects.Create(ctx, "fence", "c2", nil)
		require.NoError(t, err)

		rec := doJSON(engine, http.MethodGet, "/api/projects?companyId=c1", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Data []struct {
				ID        string `json:"id"`
				CompanyID string `json:"company_id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, p1.ID, resp.Data[0].ID)
	})

	t.Run("Should reject listing without a companyId", func(t *testing.T) {
		engine, _ := newTestRouter(t)
		rec := doJSON(engine, http.MethodGet, "/api/projects", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Should register a rag document via the rag_document route", func(t *testing.T) {
		engine, projects := newTestRouter(t)
		p, err := projects.Create(ctx, "shed", "c1", nil)
		require.NoError(t, err)

		rec := doJSON(engine, http.MethodPost,
			fmt.Sprintf("/api/projects/%s/rag_document", p.ID),
			`{"storage_url": "https://bucket.example.com/manual.pdf"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		list := doJSON(engine, http.MethodGet, fmt.Sprintf("/api/projects/%s/rag", p.ID), "")
		require.Equal(t, http.StatusOK, list.Code)

		var resp struct {
			Data []struct {
				StorageURL string `json:"storage_url"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "https://bucket.example.com/manual.pdf", resp.Data[0].StorageURL)
	})

	t.Run("Should return 404 when registering a document for a missing project", func(t *testing.T) {
		engine, _ := newTestRouter(t)
		rec := doJSON(engine, http.MethodPost, "/api/projects/ghost/rag_document",
			`{"storage_url": "https://bucket.example.com/manual.pdf"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
