package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/services/health"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
	"resume-matcher/internal/web"
)

// Deps are the handlers the router mounts.
type Deps struct {
	Config   config.Config
	Analyses *analyses.Handler
	Web      *web.Handler
	Health   *health.Service
	Limiter  *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(d Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(d.Config.CORSAllowOrigin),
	)

	if d.Web != nil {
		if err := d.Web.RegisterRoutes(r); err != nil {
			return nil, err
		}
	}

	limiter := d.Limiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}
	if d.Analyses != nil {
		rule := middleware.RateLimitRule{Rate: d.Config.RateLimit.RPS, Burst: d.Config.RateLimit.Burst}
		d.Analyses.RegisterRoutes(r, middleware.RateLimit(rule, limiter))
	}

	healthSvc := d.Health
	if healthSvc == nil {
		healthSvc = health.NewService(d.Config.LLM.Provider)
	}
	r.GET("/healthz", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	r.GET("/metrics", metrics.Handler())

	return r, nil
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
