package generate

import (
	"net/http"

	"codeberg.org/codegen/server/internal/errors"
	"codeberg.org/codegen/server/internal/llm"
	"github.com/gin-gonic/gin"
)

// GenerateCode godoc
// @Summary Generate code from a prompt
// @Description Sends the prompt to the chat completion gateway, interprets the JSON reply and records the exchange in history
// @Tags generate
// @Accept x-www-form-urlencoded
// @Produce json
// @Param prompt formData string true "What the code should do"
// @Success 200 {object} agent.GenerateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /generate-code [post]
func Handler(generator Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBind(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		resp, err := generator.Generate(c.Request.Context(), req.Prompt)
		if err != nil {
			if llm.IsResponseFormatError(err) {
				errors.UpstreamError(c, errors.CodeLLMResponseFormat, "Unexpected LLM response format", err)
				return
			}

			errors.UpstreamError(c, errors.CodeLLMAPIError, "LLM API error", err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
