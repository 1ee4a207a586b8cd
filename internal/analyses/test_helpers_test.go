package analyses

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f fakeExtractor) ExtractText(_ context.Context, _ []byte) (string, error) {
	return f.text, f.err
}

type fakeLLM struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type fakeChart struct {
	got  []int
	png  []byte
	err  error
	boom bool
}

func (f *fakeChart) Render(percentage int) ([]byte, error) {
	if f.boom {
		panic("renderer exploded")
	}
	f.got = append(f.got, percentage)
	if f.err != nil {
		return nil, f.err
	}
	return f.png, nil
}

var errUpstreamDown = errors.New("groq http status 503: unavailable")

func newTestService(text, response string) (*Service, *fakeLLM, *fakeChart) {
	llmFake := &fakeLLM{response: response}
	chartFake := &fakeChart{png: []byte("png-bytes")}
	return &Service{
		Extractor: fakeExtractor{text: text},
		LLM:       llmFake,
		Chart:     chartFake,
	}, llmFake, chartFake
}

func setupRouter(svc *Service) *gin.Engine {
	return routerFor(NewHandler(svc))
}

func routerFor(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

// multipartRequest builds POST /analyze. An empty fileName omits the file part.
func multipartRequest(t *testing.T, jobDescription, fileName string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField(fieldJobDescription, jobDescription); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if fileName != "" {
		part, err := w.CreateFormFile(fieldResumeFile, fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
