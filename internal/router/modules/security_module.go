package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog/internal/container"
	handlers "github.com/oksasatya/go-ddd-blog/internal/interface/http"
	"github.com/oksasatya/go-ddd-blog/internal/interface/middleware"
)

// SecurityModule serves registration, login and the logout path.
type SecurityModule struct {
	Handler *handlers.SecurityHandler
	// Limit is the number of login or registration POSTs allowed per IP
	// and minute.
	Limit int
	Allow middleware.AllowFunc
}

func NewSecurityModule(h *handlers.SecurityHandler, limit int, allow middleware.AllowFunc) *SecurityModule {
	return &SecurityModule{Handler: h, Limit: limit, Allow: allow}
}

func (m *SecurityModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), m.Limit, time.Minute, middleware.KeyByIPAndPath(), m.Allow)

	rg.GET("/inscription", m.Handler.RegisterForm)
	rg.POST("/inscription", limiter, m.Handler.Register)
	rg.GET(middleware.LoginPath, m.Handler.LoginForm)
	rg.POST(middleware.LoginPath, limiter, m.Handler.Login)

	// Answered by middleware.Logout before dispatch.
	rg.Any(middleware.LogoutPath, m.Handler.Logout)
}
