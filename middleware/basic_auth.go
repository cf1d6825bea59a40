package middleware

import (
	"crypto/subtle"

	"github.com/Alex3925/company-suggestion-box/config"
	apperrors "github.com/Alex3925/company-suggestion-box/errors"
	"github.com/gin-gonic/gin"
)

// BasicAuthGate guards the admin view with a single configured user/password
// pair. Missing credentials get a challenge (401), mismatched credentials a
// denial (403). Stateless: every request re-authenticates.
func BasicAuthGate(cfg *config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			_ = c.Error(apperrors.AuthenticationFailed("Authentication required."))
			c.Abort()
			return
		}

		// An unset password disables the view entirely rather than allowing
		// empty credentials through.
		if cfg.Password == "" || !credentialsMatch(user, pass, cfg) {
			_ = c.Error(apperrors.Forbidden("Access denied."))
			c.Abort()
			return
		}

		c.Next()
	}
}

// credentialsMatch compares both fields in constant time to avoid timing
// side channels.
func credentialsMatch(user, pass string, cfg *config.AdminConfig) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.Password)) == 1
	return userOK && passOK
}
