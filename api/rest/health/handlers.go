package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckConnection godoc
// @Summary Liveness check
// @Description Always reports online; the gateway is not contacted
// @Tags health
// @Produce json
// @Success 200 {object} health.Response
// @Router /check-connection [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: "online"})
}
