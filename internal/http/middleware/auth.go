package middleware

import (
	"net/http"

	"pizzahouse/internal/domain"

	"github.com/gin-gonic/gin"
)

const authKey = "auth"

// TokenParser turns a bearer token into the admin it belongs to.
type TokenParser interface {
	ParseToken(raw string) (domain.AuthContext, error)
}

// RequireAdmin rejects requests without a valid admin bearer token and stores
// the AuthContext for the handlers.
func RequireAdmin(parser TokenParser, extract func(header string) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := extract(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, "autenticação necessária")
			return
		}
		auth, err := parser.ParseToken(raw)
		if err != nil || !auth.IsAdmin() {
			abortUnauthorized(c, "sessão inválida ou expirada")
			return
		}
		c.Set(authKey, auth)
		c.Next()
	}
}

// GetAuth returns the AuthContext stored by RequireAdmin.
func GetAuth(c *gin.Context) (domain.AuthContext, bool) {
	v, ok := c.Get(authKey)
	if !ok {
		return domain.AuthContext{}, false
	}
	auth, ok := v.(domain.AuthContext)
	return auth, ok
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}
