package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-matcher/internal/llm"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/telemetry"
	"resume-matcher/internal/shared/util"
)

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// ChartRenderer rasterises a match percentage.
type ChartRenderer interface {
	Render(percentage int) ([]byte, error)
}

// Service runs the analysis pipeline. It holds no mutable state.
type Service struct {
	Extractor TextExtractor
	LLM       llm.Client
	Chart     ChartRenderer
}

// Analyze validates req, extracts the résumé text, asks the LLM once, parses
// the match percentage and renders the chart. A chart failure only drops the chart.
func (s *Service) Analyze(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		metrics.IncAnalysisFailed(StageValidation)
		return Result{}, err
	}
	if s.Extractor == nil || s.LLM == nil {
		return Result{}, errors.New("analysis service not configured")
	}

	requestID := requestIDFromContext(ctx)
	fingerprint := util.Fingerprint(req.Resume)
	start := time.Now()
	metrics.IncAnalysisStarted()
	defer func() {
		metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Milliseconds()))
	}()

	resumeText, err := s.Extractor.ExtractText(ctx, req.Resume)
	if err == nil && strings.TrimSpace(resumeText) == "" {
		err = errors.New("no text found")
	}
	if err != nil {
		metrics.IncAnalysisFailed(StageExtraction)
		telemetry.Error("analysis.extract_failed", map[string]any{
			"request_id":   requestID,
			"file_name":    req.FileName,
			"resume_sha":   fingerprint,
			"resume_bytes": len(req.Resume),
			"error":        err.Error(),
		})
		return Result{}, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	prompt := BuildPrompt(resumeText, strings.TrimSpace(req.JobDescription))
	telemetry.Debug("analysis.prompt", map[string]any{
		"request_id":     requestID,
		"provider":       s.LLM.Name(),
		"prompt_preview": truncateRunes(prompt, promptPreviewRunes),
		"prompt_runes":   len([]rune(prompt)),
	})

	llmStart := time.Now()
	raw, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		metrics.IncAnalysisFailed(StageUpstream)
		telemetry.Error("analysis.llm_failed", map[string]any{
			"request_id":  requestID,
			"provider":    s.LLM.Name(),
			"duration_ms": time.Since(llmStart).Milliseconds(),
			"error":       err.Error(),
		})
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	telemetry.Debug("analysis.llm_response", map[string]any{
		"request_id":  requestID,
		"provider":    s.LLM.Name(),
		"duration_ms": time.Since(llmStart).Milliseconds(),
		"response":    raw,
	})

	result := Result{
		Analysis:        raw,
		MatchPercentage: ParseMatchPercentage(raw),
	}

	if s.Chart != nil {
		png, err := s.Chart.Render(result.MatchPercentage)
		if err != nil {
			metrics.IncChartRenderFailed()
			telemetry.Warn("analysis.chart_failed", map[string]any{
				"request_id":       requestID,
				"match_percentage": result.MatchPercentage,
				"error":            err.Error(),
			})
		} else {
			result.Chart = png
		}
	}

	metrics.IncAnalysisCompleted()
	telemetry.Info("analysis.complete", map[string]any{
		"request_id":       requestID,
		"provider":         s.LLM.Name(),
		"resume_sha":       fingerprint,
		"match_percentage": result.MatchPercentage,
		"has_chart":        result.Chart != nil,
	})
	return result, nil
}
