package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/app/api/mid"
	"github.com/ribgsilva/studyvault/business/v1/note"
	"github.com/ribgsilva/studyvault/business/v1/view"
	"github.com/ribgsilva/studyvault/platform/web/handler"
	"net/http"
	"time"
)

// Stats godoc
// @Summary Note statistics
// @Description Counts, content type shares, top languages and notes per day over every note of the current user
// @Tags Note
// @Produce json
// @Security Bearer
// @Success 200 {object} view.Summary
// @Failure 401 {object} handler.Error
// @Router /v1/stats [get]
func Stats(ctx *gin.Context) handler.Result {
	all, err := note.List(ctx, mid.User(ctx).ID)
	if err != nil {
		return failure(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   view.Summarize(all, time.Now()),
	}
}
