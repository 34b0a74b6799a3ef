package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/app/api/handlers/v1/account"
	"github.com/ribgsilva/studyvault/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/studyvault/app/api/handlers/v1/notes"
	"github.com/ribgsilva/studyvault/app/api/mid"
	"github.com/ribgsilva/studyvault/platform/auth"
	"github.com/ribgsilva/studyvault/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, v *auth.Verifier) {
	api := r.Group("/v1", mid.Authenticate(v))

	api.GET("/me", handler.Wrapper(account.GetMe))
	api.DELETE("/account", handler.Wrapper(account.Delete))

	api.GET("/stats", handler.Wrapper(notes.Stats))
	api.GET("/notes", handler.Wrapper(notes.List))
	api.POST("/notes", handler.Wrapper(notes.Create))
	api.GET("/notes/:id", handler.Wrapper(notes.Get))
	api.PUT("/notes/:id", handler.Wrapper(notes.Update))
	api.DELETE("/notes/:id", handler.Wrapper(notes.Delete))
}
