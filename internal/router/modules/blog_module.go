package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	handlers "github.com/oksasatya/go-ddd-blog/internal/interface/http"
	"github.com/oksasatya/go-ddd-blog/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

// BlogModule serves the home page, the article pages and comments.
// Writing articles needs ROLE_USER; reading is public.
type BlogModule struct {
	Handler *handlers.BlogHandler
	Cookies *helpers.Manager
}

func NewBlogModule(h *handlers.BlogHandler, cookies *helpers.Manager) *BlogModule {
	return &BlogModule{Handler: h, Cookies: cookies}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Home)
	rg.GET("/blog", m.Handler.List)
	rg.GET("/blog/search", m.Handler.Search)

	member := rg.Group("/blog")
	member.Use(middleware.RequireRole(entity.RoleUser, m.Cookies))
	{
		member.GET("/new", m.Handler.New)
		member.POST("/new", m.Handler.Create)
		member.GET("/:id/edit", m.Handler.Edit)
		member.POST("/:id/edit", m.Handler.Update)
		member.POST("/:id/delete", m.Handler.Delete)
	}

	// The comment form is withheld from anonymous visitors by the handler.
	rg.GET("/blog/:id", m.Handler.Show)
	rg.POST("/blog/:id", m.Handler.Comment)
}
