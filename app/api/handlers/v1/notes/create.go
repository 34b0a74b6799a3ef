package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/app/api/mid"
	"github.com/ribgsilva/studyvault/business/v1/note"
	"github.com/ribgsilva/studyvault/platform/web/handler"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Create a text, code or image note for the current user
// @Tags Note
// @Accept json,mpfd
// @Produce json
// @Security Bearer
// @Param note body notes.Request true "Note"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /v1/notes [post]
func Create(ctx *gin.Context) handler.Result {
	newN, bad := bind(ctx, mid.User(ctx).ID)
	if bad != nil {
		return *bad
	}

	created, err := note.Create(ctx, newN)
	if err != nil {
		return failure(err)
	}

	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
