package healthcheck

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/platform/web/handler"
	"github.com/ribgsilva/studyvault/sys"
	"net/http"
)

// Status is the healthcheck body
type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Reports whether the database and the cache are reachable
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} handler.Error
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	if sys.R.Database != nil {
		dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := sys.R.Database.PingContext(dbCtx); err != nil {
			return handler.Result{
				Status: http.StatusServiceUnavailable,
				Body:   handler.Error{Message: "database unavailable"},
			}
		}
	}
	if sys.R.Cache != nil {
		rdsCtx, rdsCancel := context.WithTimeout(ctx, sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := sys.R.Cache.Ping(rdsCtx).Err(); err != nil {
			return handler.Result{
				Status: http.StatusServiceUnavailable,
				Body:   handler.Error{Message: "cache unavailable"},
			}
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok"},
	}
}
