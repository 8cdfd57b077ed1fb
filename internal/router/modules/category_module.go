package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	handlers "github.com/oksasatya/go-ddd-blog/internal/interface/http"
	"github.com/oksasatya/go-ddd-blog/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

type CategoryModule struct {
	Handler *handlers.CategoryHandler
	Cookies *helpers.Manager
}

func NewCategoryModule(h *handlers.CategoryHandler, cookies *helpers.Manager) *CategoryModule {
	return &CategoryModule{Handler: h, Cookies: cookies}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/categories")
	admin.Use(middleware.RequireRole(entity.RoleAdmin, m.Cookies))
	{
		admin.GET("", m.Handler.Index)
		admin.GET("/new", m.Handler.New)
		admin.POST("/new", m.Handler.Create)
		admin.GET("/:id/edit", m.Handler.Edit)
		admin.POST("/:id/edit", m.Handler.Update)
		admin.POST("/:id/delete", m.Handler.Delete)
	}
}
