package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"donation-api/internal/core/auth"
	resp "donation-api/internal/transport/http/response"
)

const (
	KeyAdminID  = "adminId"
	KeyUsername = "username"
)

// AuthJWT gates every admin route: missing, malformed, tampered and
// expired tokens all yield a uniform 401.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortError(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortError(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set(KeyAdminID, claims.UID)
		c.Set(KeyUsername, claims.Username)
		c.Next()
	}
}
