package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
	"github.com/oksasatya/go-ddd-blog/pkg/response"
)

// LoginPath is where anonymous visitors of a guarded route are sent.
const LoginPath = "/connexion"

// RequireRole stops the chain unless the principal holds role. Anonymous
// visitors are redirected to the login page and, for GET requests, the
// page they wanted is remembered for after login.
func RequireRole(role string, cookies *helpers.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			if c.Request.Method == http.MethodGet {
				cookies.SetTargetPath(c, c.Request.URL.RequestURI())
			}
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		if !u.HasRole(role) {
			response.Abort(c, response.Error[any](c, http.StatusForbidden, "access denied", nil))
			return
		}
		c.Next()
	}
}
