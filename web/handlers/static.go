package handlers

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves stylesheets and other assets from an embedded tree
type StaticHandler struct {
	files fs.FS
}

// NewStaticHandler creates a new static file handler over files
func NewStaticHandler(files fs.FS) *StaticHandler {
	return &StaticHandler{
		files: files,
	}
}

// ServeStatic handles GET /static/*filepath
func (h *StaticHandler) ServeStatic(c *gin.Context) {
	name := strings.TrimPrefix(path.Clean("/"+c.Param("filepath")), "/")
	if name == "" || name == "." {
		c.Status(http.StatusNotFound)
		return
	}

	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, getContentType(name), data)
}

// getContentType returns the appropriate content type for a file
func getContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript"
	case ".json":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".ico":
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}
