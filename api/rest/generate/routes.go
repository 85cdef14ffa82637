package generate

import "github.com/gin-gonic/gin"

// registers code generation routes
func RegisterRoutes(router gin.IRoutes, generator Generator) {
	router.POST("/generate-code", Handler(generator))
}
