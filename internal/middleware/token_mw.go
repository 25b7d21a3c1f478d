package middleware

import (
	"net/http"

	"contact_book/internal/model"
	"contact_book/internal/service"

	"github.com/gin-gonic/gin"
)

// TokenHeader is the designated header carrying the session token.
const TokenHeader = "X-API-TOKEN"

// AuthUserKey is the gin context key under which the resolved principal is
// stored.
const AuthUserKey = "authUser"

// TokenAuth creates a middleware that resolves the request's token to the
// acting user. The principal is resolved exactly once here; handlers read it
// from the context and pass it to services explicitly.
func TokenAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.WebResponse{Errors: "Unauthorized"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}
