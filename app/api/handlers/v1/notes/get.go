package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/app/api/mid"
	"github.com/ribgsilva/studyvault/business/v1/note"
	"github.com/ribgsilva/studyvault/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a notes
// @Description Find a notes of the current user using its id
// @Tags Note
// @Produce json
// @Security Bearer
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	get, err := note.Find(ctx, mid.User(ctx).ID, ctx.Param("id"))
	if err != nil {
		return failure(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   get,
	}
}
