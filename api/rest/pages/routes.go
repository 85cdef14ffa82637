package pages

import (
	"fmt"
	"net/http"

	"codeberg.org/codegen/server/web"
	"github.com/gin-gonic/gin"
)

// installs the page templates on the engine and registers the index and static routes
func RegisterRoutes(router *gin.Engine, model string) error {
	templates, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse page templates: %w", err)
	}

	router.SetHTMLTemplate(templates)
	router.StaticFS("/static", http.FS(web.Static()))
	router.GET("/", IndexHandler(model))

	return nil
}
