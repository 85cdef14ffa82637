package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// renders the generation form
func IndexHandler(model string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", IndexData{Model: model})
	}
}
