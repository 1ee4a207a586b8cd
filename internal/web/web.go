package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageData feeds the landing page template.
type PageData struct {
	Title       string
	MaxUploadMB int
	Provider    string
}

// Handler serves the landing page and its assets.
type Handler struct {
	page *template.Template
	data PageData
}

// NewHandler parses the embedded templates.
func NewHandler(data PageData) (*Handler, error) {
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	if data.Title == "" {
		data.Title = "Resume Matcher"
	}
	return &Handler{page: page, data: data}, nil
}

// RegisterRoutes attaches GET / and GET /static/*filepath.
func (h *Handler) RegisterRoutes(r gin.IRoutes) error {
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	r.GET("/", h.index)
	r.StaticFS("/static", http.FS(assets))
	return nil
}

func (h *Handler) index(c *gin.Context) {
	c.Render(http.StatusOK, render.HTML{Template: h.page, Name: "index.html", Data: h.data})
}
