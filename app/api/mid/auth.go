package mid

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/studyvault/platform/auth"
	"github.com/ribgsilva/studyvault/platform/web/handler"
	"github.com/ribgsilva/studyvault/sys"
	"net/http"
	"strings"
)

const userKey = "user"

// Authenticate rejects requests without a valid bearer token and stores the
// authenticated user in the context
func Authenticate(v *auth.Verifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "authorization header required"})
			return
		}

		u, err := v.Verify(token)
		if err != nil {
			sys.R.Log.Infow("auth", "status", "rejected", "path", ctx.FullPath(), "error", err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "invalid token"})
			return
		}

		ctx.Set(userKey, u)
		ctx.Next()
	}
}

// User returns the user stored by Authenticate
func User(ctx *gin.Context) auth.User {
	u, _ := ctx.Get(userKey)
	user, _ := u.(auth.User)
	return user
}
