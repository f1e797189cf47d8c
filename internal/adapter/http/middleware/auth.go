package middleware

import (
	"net/http"
	"strings"

	"oficina_ibs/internal/usecase/interfaces"
	"oficina_ibs/pkg"

	"github.com/gin-gonic/gin"
)

const principalKey = "auth.principal"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or missing credentials", http.StatusUnauthorized)

// RequireAuth rejects requests that do not carry a valid Bearer token. The
// response body is the same for every failure mode so callers cannot probe
// which part of the check failed.
func RequireAuth(tokens interfaces.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		username, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(principalKey, username)
		c.Next()
	}
}

// Principal returns the username set by RequireAuth, if any.
func Principal(c *gin.Context) string {
	return c.GetString(principalKey)
}
