package docs

import (
	_ "codeberg.org/codegen/server/docs" // registers the swagger document
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router gin.IRoutes) {
	router.GET("/swagger/doc.json", Handler)
}
