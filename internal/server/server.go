package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/txproof/txproof-api/internal/auth"
	"github.com/txproof/txproof-api/internal/config"
	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/guard"
	"github.com/txproof/txproof-api/internal/handlers"
	"github.com/txproof/txproof-api/internal/jobs"
	"github.com/txproof/txproof-api/internal/logger"
)

// Server wires the database pool, admission guard and HTTP handlers.
type Server struct {
	cfg        *config.Config
	pool       *pgxpool.Pool
	queries    *db.Queries
	jobHandler *handlers.JobHandler
}

// New builds the server and its database pool.
func New(cfg *config.Config) (*Server, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, err
	}

	queries := db.New(pool)
	store := jobs.NewStore(queries)
	admission := guard.NewGuard(queries)
	common := handlers.NewCommonServices(queries, store, admission)

	return &Server{
		cfg:        cfg,
		pool:       pool,
		queries:    queries,
		jobHandler: handlers.NewJobHandler(common),
	}, nil
}

// Queries exposes the query layer for callers that share the pool.
func (s *Server) Queries() *db.Queries {
	return s.queries
}

// Close releases the database pool.
func (s *Server) Close() {
	s.pool.Close()
}

// Router assembles the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.configureCORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(auth.EnsureValidAPIKey(s.queries))
		{
			protected.POST("/jobs", s.jobHandler.SubmitJob)
			protected.GET("/jobs/:job_id", s.jobHandler.GetJob)
		}
	}

	return router
}

// Run starts the HTTP listener and blocks until ctx is cancelled, then
// drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("port", s.cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// configureCORS returns a configured CORS middleware
func (s *Server) configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = s.cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-API-Key"}
	corsConfig.ExposeHeaders = []string{"X-RateLimit-Remaining", "X-Quota-Remaining", "Retry-After"}
	corsConfig.MaxAge = 12 * time.Hour
	return cors.New(corsConfig)
}
