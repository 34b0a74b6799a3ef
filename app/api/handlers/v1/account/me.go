package account

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/app/api/mid"
	"github.com/ribgsilva/studyvault/platform/web/handler"
	"net/http"
)

// Me is the current user as shown by the client
type Me struct {
	ID          string `json:"id" example:"b1f0c6a2"`
	DisplayName string `json:"displayName" example:"Ada"`
	Email       string `json:"email,omitempty" example:"ada@example.com"`
}

// GetMe godoc
// @Summary Current user
// @Description The authenticated user, display name falls back to the email
// @Tags Account
// @Produce json
// @Security Bearer
// @Success 200 {object} account.Me
// @Failure 401 {object} handler.Error
// @Router /v1/me [get]
func GetMe(ctx *gin.Context) handler.Result {
	u := mid.User(ctx)
	return handler.Result{
		Status: http.StatusOK,
		Body:   Me{ID: u.ID, DisplayName: u.DisplayName(), Email: u.Email},
	}
}
