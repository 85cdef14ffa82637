package history

import (
	"net/http"

	"codeberg.org/codegen/server/api/rest/pagination"
	"codeberg.org/codegen/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListHistory godoc
// @Summary List generation history
// @Description Returns stored prompt/response pairs, most recent first
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of records (default all)"
// @Param offset query int false "Number of records to skip"
// @Success 200 {array} history.Record
// @Failure 500 {object} errors.ErrorResponse
// @Router /history [get]
func ListHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query ListQuery
		_ = c.ShouldBindQuery(&query) //nolint:errcheck // string fields cannot fail to bind

		params := pagination.FromQuery(query.Limit, query.Offset, 0, 0)

		records, err := store.List(c.Request.Context(), params)
		if err != nil {
			errors.InternalError(c, "failed to list history", err)
			return
		}

		c.JSON(http.StatusOK, records)
	}
}

// DeleteHistory godoc
// @Summary Delete a history record
// @Description Removes the record if it exists; deleting a missing id also succeeds
// @Tags history
// @Param id path int true "History record ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /history/{id} [delete]
func DeleteHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ParsePathInt(c, "id")
		if !ok {
			return
		}

		if err := store.Delete(c.Request.Context(), id); err != nil {
			errors.InternalError(c, "failed to delete history record", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
