package server

import (
	"github.com/gin-gonic/gin"

	blockrouter "github.com/stepwise-hq/stepwise/engine/block/router"
	companyrouter "github.com/stepwise-hq/stepwise/engine/company/router"
	"github.com/stepwise-hq/stepwise/engine/infra/repo"
	planningrouter "github.com/stepwise-hq/stepwise/engine/planning/router"
	projectrouter "github.com/stepwise-hq/stepwise/engine/project/router"
	recognitionrouter "github.com/stepwise-hq/stepwise/engine/recognition/router"
	userrouter "github.com/stepwise-hq/stepwise/engine/user/router"
)

// registerRoutes mounts every domain router under the /api group.
func (s *Server) registerRoutes(apiBase *gin.RouterGroup) {
	blocks := repo.NewBlockRepo(s.deps.Store)
	projects := repo.NewProjectRepo(s.deps.Store)
	companies := repo.NewCompanyRepo(s.deps.Store)
	users := repo.NewUserRepo(s.deps.Store)
	rags := repo.NewRagRepo(s.deps.Store)

	userrouter.RegisterRoutes(apiBase, users, s.deps.Identity, RequireAuth(s.deps.Identity))
	companyrouter.RegisterRoutes(apiBase, companies)
	projectrouter.RegisterRoutes(apiBase, projects, rags)
	blockrouter.RegisterRoutes(apiBase, blocks, projects)
	planningrouter.RegisterRoutes(apiBase, s.deps.LLM, blocks, projects)
	recognitionrouter.RegisterRoutes(apiBase, blocks, s.deps.LLM, s.cfg.Recognition.PassThreshold)
}
