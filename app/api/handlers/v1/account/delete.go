package account

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/app/api/mid"
	"github.com/ribgsilva/studyvault/business/v1/note"
	"github.com/ribgsilva/studyvault/platform/web/handler"
	"github.com/ribgsilva/studyvault/sys"
	"net/http"
)

// Deleted reports how many notes an account deletion removed
type Deleted struct {
	Deleted int `json:"deleted" example:"7"`
}

// Delete godoc
// @Summary Delete account data
// @Description Delete every note of the current user, called before the account is removed from the identity provider
// @Tags Account
// @Produce json
// @Security Bearer
// @Success 200 {object} account.Deleted
// @Failure 401 {object} handler.Error
// @Router /v1/account [delete]
func Delete(ctx *gin.Context) handler.Result {
	u := mid.User(ctx)
	n, err := note.DeleteAll(ctx, u.ID)
	if err != nil {
		sys.R.Log.Errorf("failed to delete notes of user %s: %s", u.ID, err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	sys.R.Log.Infow("account", "status", "notes deleted", "user", u.ID, "count", n)
	return handler.Result{
		Status: http.StatusOK,
		Body:   Deleted{Deleted: n},
	}
}
