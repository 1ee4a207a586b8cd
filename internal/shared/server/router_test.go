package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/web"
)

type stubExtractor struct{}

func (stubExtractor) ExtractText(context.Context, []byte) (string, error) {
	return "Go engineer with Kubernetes experience", nil
}

type stubLLM struct{}

func (stubLLM) Complete(context.Context, string) (string, error) {
	return "1. Match Percentage: 91%\n2. Missing Keywords: Terraform", nil
}

func (stubLLM) Name() string { return "stub" }

type stubChart struct{}

func (stubChart) Render(int) ([]byte, error) { return []byte{0x89, 'P', 'N', 'G'}, nil }

func testConfig() config.Config {
	return config.Config{
		Env:             "test",
		CORSAllowOrigin: []string{"*"},
		LLM:             config.LLMConfig{Provider: "groq"},
		RateLimit:       config.RateLimitConfig{RPS: 1, Burst: 1},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := &analyses.Service{Extractor: stubExtractor{}, LLM: stubLLM{}, Chart: stubChart{}}
	webHandler, err := web.NewHandler(web.PageData{MaxUploadMB: 16})
	require.NoError(t, err)
	r, err := NewRouter(Deps{
		Config:   testConfig(),
		Analyses: analyses.NewHandler(svc),
		Web:      webHandler,
	})
	require.NoError(t, err)
	return r
}

func analyzeRequest(t *testing.T) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("job_description", "Platform engineer"))
	part, err := w.CreateFormFile("resume_file", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.RemoteAddr = "203.0.113.7:5555"
	return req
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["ok"])
	assert.Equal(t, "groq", payload["provider"])
	assert.NotEmpty(t, resp.Header().Get("X-Request-Id"))
}

func TestAnalyzeEndToEndThenRateLimited(t *testing.T) {
	r := newTestRouter(t)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, analyzeRequest(t))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["success"])
	assert.EqualValues(t, 91, payload["match_percentage"])
	assert.NotEmpty(t, payload["chart"])

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, analyzeRequest(t))
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.NotEmpty(t, resp.Header().Get("Retry-After"))
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "analysis_started_total")
}

func TestIndexServed(t *testing.T) {
	r := newTestRouter(t)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":5000", Addr(""))
	assert.Equal(t, ":8080", Addr("8080"))
	assert.Equal(t, ":9000", Addr(":9000"))
}
