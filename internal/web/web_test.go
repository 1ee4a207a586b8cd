package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h, err := NewHandler(PageData{MaxUploadMB: 16, Provider: "groq"})
	require.NoError(t, err)
	r := gin.New()
	require.NoError(t, h.RegisterRoutes(r))
	return r
}

func TestIndexRendersForm(t *testing.T) {
	r := newRouter(t)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
	body := resp.Body.String()
	assert.Contains(t, body, `name="job_description"`)
	assert.Contains(t, body, `name="resume_file"`)
	assert.Contains(t, body, "up to 16MB")
	assert.Contains(t, body, "Powered by groq")
}

func TestStaticAssets(t *testing.T) {
	r := newRouter(t)
	for _, path := range []string{"/static/js/script.js", "/static/css/style.css"} {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, resp.Code, path)
		assert.NotEmpty(t, resp.Body.String(), path)
	}
}

func TestStaticMissingAssetIs404(t *testing.T) {
	r := newRouter(t)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/static/js/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
