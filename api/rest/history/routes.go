package history

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRoutes, store Store) {
	router.GET("/history", ListHandler(store))
	router.DELETE("/history/:id", DeleteHandler(store))
}
