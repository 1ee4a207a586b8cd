package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/chart"
	"resume-matcher/internal/extract"
	"resume-matcher/internal/llm"
	"resume-matcher/internal/services/health"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/server"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/telemetry"
	"resume-matcher/internal/web"
)

const probeTimeout = 30 * time.Second

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	LLM             llm.Client
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
	WebHandler      *web.Handler
	Health          *health.Service
	Limiter         *middleware.RateLimiter
}

// LLMConfig maps application config onto the provider factory's config.
func LLMConfig(cfg config.LLMConfig) llm.Config {
	return llm.Config{
		Provider:    cfg.Provider,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		Temperature: llm.DefaultTemperature,
		MaxTokens:   llm.DefaultMaxTokens,
		Timeout:     cfg.Timeout,
	}
}

// Build prepares dependencies and the router. The LLM client is built from
// cfg when client is nil.
func Build(ctx context.Context, cfg config.Config, client llm.Client) (*App, error) {
	if client == nil {
		built, err := llm.New(ctx, LLMConfig(cfg.LLM))
		if err != nil {
			return nil, fmt.Errorf("build llm client: %w", err)
		}
		client = built
	}

	svc := &analyses.Service{
		Extractor: extract.PDF{},
		LLM:       client,
		Chart:     chart.Doughnut{},
	}

	webHandler, err := web.NewHandler(web.PageData{
		MaxUploadMB: analyses.MaxUploadBytes >> 20,
		Provider:    client.Name(),
	})
	if err != nil {
		return nil, fmt.Errorf("build web handler: %w", err)
	}

	app := &App{
		Config:          cfg,
		LLM:             client,
		AnalysesService: svc,
		AnalysisHandler: analyses.NewHandler(svc),
		WebHandler:      webHandler,
		Health:          health.NewService(client.Name()),
		Limiter:         middleware.NewRateLimiter(nil),
	}

	router, err := server.NewRouter(server.Deps{
		Config:   cfg,
		Analyses: app.AnalysisHandler,
		Web:      app.WebHandler,
		Health:   app.Health,
		Limiter:  app.Limiter,
	})
	if err != nil {
		return nil, err
	}
	app.Router = router

	return app, nil
}

// Probe sends a greeting to the LLM and logs the outcome. It never fails startup.
func (a *App) Probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	reply, err := llm.Probe(ctx, a.LLM)
	if err != nil {
		telemetry.Warn("llm.probe_failed", map[string]any{
			"provider":    a.LLM.Name(),
			"duration_ms": time.Since(start).Milliseconds(),
			"error":       err.Error(),
		})
		return
	}
	telemetry.Info("llm.probe_ok", map[string]any{
		"provider":    a.LLM.Name(),
		"duration_ms": time.Since(start).Milliseconds(),
		"reply":       reply,
	})
}
