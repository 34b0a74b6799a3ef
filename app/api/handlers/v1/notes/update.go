package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/app/api/mid"
	"github.com/ribgsilva/studyvault/business/v1/note"
	"github.com/ribgsilva/studyvault/platform/web/handler"
	"net/http"
)

// Update godoc
// @Summary Replace a note
// @Description Replace every field of a note of the current user, the content type cannot change
// @Tags Note
// @Accept json,mpfd
// @Produce json
// @Security Bearer
// @Param id path string true "Note id"
// @Param note body notes.Request true "Note"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [put]
func Update(ctx *gin.Context) handler.Result {
	newN, bad := bind(ctx, mid.User(ctx).ID)
	if bad != nil {
		return *bad
	}

	updated, err := note.Update(ctx, note.UpdateNote{Id: ctx.Param("id"), NewNote: newN})
	if err != nil {
		return failure(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   updated,
	}
}
