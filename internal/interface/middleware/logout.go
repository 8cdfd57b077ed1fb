package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

// LogoutPath is handled entirely by the Logout interceptor.
const LogoutPath = "/deconnexion"

type SessionEnder interface {
	EndSession(ctx context.Context, sid string) error
}

// Logout intercepts LogoutPath: it ends the session, clears the cookies and
// redirects home. The route handler behind it never runs.
func Logout(sessions SessionEnder, cookies *helpers.Manager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path != LogoutPath {
			c.Next()
			return
		}
		if err := sessions.EndSession(c.Request.Context(), SessionID(c)); err != nil {
			helpers.LogError(logger, "end session failed", err, helpers.RequestFields(c))
		}
		cookies.Clear(c)
		c.Redirect(http.StatusFound, "/")
		c.Abort()
	}
}
