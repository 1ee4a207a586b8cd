package analyses

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
	"resume-matcher/internal/shared/telemetry"
	"resume-matcher/internal/shared/util"
)

const (
	// MaxUploadBytes caps the whole request body.
	MaxUploadBytes = 16 << 20

	fieldJobDescription = "job_description"
	fieldResumeFile     = "resume_file"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc      *Service
	MaxBytes int64
}

// NewHandler constructs a Handler with the default upload cap.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc, MaxBytes: MaxUploadBytes}
}

// RegisterRoutes attaches POST /analyze. Extra handlers run before it.
func (h *Handler) RegisterRoutes(r gin.IRoutes, pre ...gin.HandlerFunc) {
	r.POST("/analyze", append(pre, h.analyze)...)
}

type analyzeResponse struct {
	Success         bool   `json:"success"`
	Analysis        string `json:"analysis"`
	MatchPercentage int    `json:"match_percentage"`
	Chart           string `json:"chart,omitempty"`
}

func (h *Handler) analyze(c *gin.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("analysis.panic", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"error":      fmt.Sprint(rec),
				"stack":      string(debug.Stack()),
			})
			h.fail(c, errors.New("panic"))
		}
	}()

	limit := h.MaxBytes
	if limit <= 0 {
		limit = MaxUploadBytes
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	if err := c.Request.ParseMultipartForm(limit); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(c, ErrBodyTooLarge)
			return
		}
		telemetry.Warn("analysis.form_parse_failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"error":      err.Error(),
		})
	}

	req := Request{JobDescription: strings.TrimSpace(c.PostForm(fieldJobDescription))}
	file, fileErr := c.FormFile(fieldResumeFile)
	if fileErr == nil {
		req.FileName = util.BaseFileName(file.Filename)
	}
	if err := req.Validate(); err != nil {
		h.fail(c, err)
		return
	}

	f, err := file.Open()
	if err != nil {
		h.fail(c, fmt.Errorf("open upload: %w", err))
		return
	}
	data, err := io.ReadAll(f)
	_ = f.Close()
	if err != nil {
		h.fail(c, fmt.Errorf("read upload: %w", err))
		return
	}
	req.Resume = data

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	res, err := h.Svc.Analyze(ctx, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Set("matchPercentage", res.MatchPercentage)
	c.Set("analysisOutcome", "success")
	body := analyzeResponse{
		Success:         true,
		Analysis:        res.Analysis,
		MatchPercentage: res.MatchPercentage,
	}
	if len(res.Chart) > 0 {
		body.Chart = base64.StdEncoding.EncodeToString(res.Chart)
	}
	respond.OK(c, body)
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, message, stage := Classify(err)
	c.Set("analysisOutcome", stage)
	if stage == StageValidation || stage == StageInternal {
		metrics.IncAnalysisFailed(stage)
	}
	if status == http.StatusInternalServerError {
		telemetry.Error("analysis.unexpected", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"error":      err.Error(),
		})
	}
	respond.Failure(c, status, message)
}
