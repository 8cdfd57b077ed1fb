package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/internal/application/security"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

// Context keys set by Authenticate.
const (
	CtxPrincipalKey = "principal"
	CtxSessionKey   = "session_id"
	CtxUserIDKey    = "userID"
)

// SessionResolver maps a session cookie to its user and session id.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*entity.User, string, error)
}

// Authenticate loads the principal behind the session cookie. Requests
// without a usable session continue anonymously and a stale cookie is dropped.
func Authenticate(sessions SessionResolver, cookies *helpers.Manager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		u, sid, err := sessions.ResolveSession(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, security.ErrSessionNotFound) && !errors.Is(err, security.ErrInactiveUser) {
				helpers.LogError(logger, "session lookup failed", err, helpers.RequestFields(c))
			}
			cookies.Clear(c)
			c.Next()
			return
		}
		c.Set(CtxPrincipalKey, u)
		c.Set(CtxSessionKey, sid)
		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user of the request, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxPrincipalKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// SessionID returns the id of the request's session, or "".
func SessionID(c *gin.Context) string {
	return c.GetString(CtxSessionKey)
}
