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

// ListResponse is the filtered view of the notes of the user
type ListResponse struct {
	Notes         []note.Note   `json:"notes"`
	Total         int           `json:"total" example:"7"`
	FiltersActive bool          `json:"filtersActive" example:"false"`
	Criteria      view.Criteria `json:"criteria"`
}

// List godoc
// @Summary List notes
// @Description List the notes of the current user, newest first, narrowed by the given filters
// @Tags Note
// @Produce json
// @Security Bearer
// @Param search query string false "Case insensitive text searched in title and content"
// @Param date query string false "Creation date range" Enums(all, today, week, month, year)
// @Param size query string false "Collection size bucket" Enums(all, small, medium, large)
// @Success 200 {object} notes.ListResponse
// @Failure 401 {object} handler.Error
// @Router /v1/notes [get]
func List(ctx *gin.Context) handler.Result {
	all, err := note.List(ctx, mid.User(ctx).ID)
	if err != nil {
		return failure(err)
	}

	c := view.NewCriteria(ctx.Query("search"), ctx.Query("date"), ctx.Query("size"))

	return handler.Result{
		Status: http.StatusOK,
		Body: ListResponse{
			Notes:         view.Filter(all, c, time.Now()),
			Total:         len(all),
			FiltersActive: view.Active(c),
			Criteria:      c,
		},
	}
}
