package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/app/api/mid"
	"github.com/ribgsilva/studyvault/business/v1/note"
	"github.com/ribgsilva/studyvault/platform/web/handler"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Description Delete a note of the current user, this cannot be undone
// @Tags Note
// @Security Bearer
// @Param id path string true "Note id"
// @Success 204
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	if err := note.Delete(ctx, mid.User(ctx).ID, ctx.Param("id")); err != nil {
		return failure(err)
	}

	return handler.Result{Status: http.StatusNoContent}
}
