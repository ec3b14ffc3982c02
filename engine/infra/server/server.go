package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/infra/identity"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/llm"
	"github.com/stepwise-hq/stepwise/pkg/config"
	"github.com/stepwise-hq/stepwise/pkg/logger"
)

// Dependencies carries the external ports the HTTP layer is wired to.
type Dependencies struct {
	Store    store.Store
	Identity identity.Provider
	LLM      llm.Client
}

// Server owns the gin engine and its http.Server lifecycle.
type Server struct {
	cfg  *config.Config
	log  logger.Logger
	deps Dependencies
}

func NewServer(cfg *config.Config, log logger.Logger, deps Dependencies) *Server {
	return &Server{cfg: cfg, log: log, deps: deps}
}

// Run serves until ctx is canceled, then drains in-flight requests for up
// to the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	engine := s.buildRouter()
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return <-errCh
}

func (s *Server) buildRouter() *gin.Engine {
	if s.cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(RequestLogger(s.log))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.registerRoutes(engine.Group("/api"))
	return engine
}
