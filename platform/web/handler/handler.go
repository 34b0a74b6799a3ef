package handler

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// Result is what a handler produces, the wrapper takes care of writing it
type Result struct {
	Status int
	Body   any
}

// Error is the body returned on failures
type Error struct {
	Message string `json:"message" example:"notes not found"`
}

// Func is a handler that returns its result instead of writing it
type Func func(ctx *gin.Context) Result

// Wrapper adapts a Func into a gin.HandlerFunc
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		if ctx.IsAborted() {
			return
		}
		if r.Body == nil || r.Status == http.StatusNoContent {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
