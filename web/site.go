// Package web bundles the HTML site: embedded templates, assets and page routes.
package web

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/gin-gonic/gin"

	"speechbench/web/handlers"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("").Funcs(handlers.FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// Register mounts the site pages and assets on router
func Register(router *gin.Engine, pages *handlers.PageHandler) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	staticHandler := handlers.NewStaticHandler(assets)

	router.GET("/", pages.Home)
	router.GET("/leaderboard", pages.Leaderboard)
	router.GET("/compare", pages.Compare)
	router.GET("/calculator", pages.Calculator)
	router.GET("/quiz", pages.Quiz)
	router.GET("/static/*filepath", staticHandler.ServeStatic)

	return nil
}
