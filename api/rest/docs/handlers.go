package docs

import (
	"net/http"

	"codeberg.org/codegen/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// serves the registered OpenAPI document
func Handler(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		errors.InternalError(c, "failed to render api document", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
