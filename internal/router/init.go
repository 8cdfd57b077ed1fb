package router

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog/internal/application/blog"
	"github.com/oksasatya/go-ddd-blog/internal/application/security"
	"github.com/oksasatya/go-ddd-blog/internal/container"
	"github.com/oksasatya/go-ddd-blog/internal/infrastructure/objectstore"
	"github.com/oksasatya/go-ddd-blog/internal/infrastructure/search"
	handlers "github.com/oksasatya/go-ddd-blog/internal/interface/http"
	"github.com/oksasatya/go-ddd-blog/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-blog/internal/router/modules"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

func buildSecurityService() *security.Service {
	cfg := container.GetConfig()
	svc := security.NewService(
		container.GetRepositories().Users,
		helpers.BcryptHasher{},
		container.GetJWT(),
		container.GetRedis(),
		cfg,
		container.GetLogger(),
	)
	// Assigned only when present so the interface never holds a typed nil.
	if pub := container.GetRabbitPub(); pub != nil && cfg.MailSendEnabled {
		svc.Mail = pub
	}
	return svc
}

func buildBlogService() *blog.Service {
	cfg := container.GetConfig()
	svc := blog.NewService(container.GetRepositories(), cfg, container.GetLogger())
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		svc.Images = objectstore.NewImageStore(gcs, cfg.GCSBucket)
	}
	if es := container.GetES(); es != nil {
		svc.Index = search.NewArticleIndex(es, cfg.ESArticlesIndex)
	}
	if pub := container.GetRabbitPub(); pub != nil && cfg.MailSendEnabled {
		svc.Mail = pub
	}
	return svc
}

// GlobalMiddleware returns the chain every route runs behind: principal
// loading, then the logout interceptor which needs the session id.
func GlobalMiddleware(sec *security.Service) []gin.HandlerFunc {
	cookies := container.GetCookies()
	logger := container.GetLogger()
	return []gin.HandlerFunc{
		middleware.Authenticate(sec, cookies, logger),
		middleware.Logout(sec, cookies, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	cookies := container.GetCookies()
	logger := container.GetLogger()

	sec := buildSecurityService()
	posts := buildBlogService()
	pages := handlers.NewPages(sec, cookies, logger)

	r.Use(GlobalMiddleware(sec)...)

	var allow middleware.AllowFunc
	if cfg.Env == "development" {
		allow = middleware.AllowPrivateIP()
	}

	r.Add(modules.NewBlogModule(handlers.NewBlogHandler(posts, pages, logger), cookies))
	r.Add(modules.NewSecurityModule(handlers.NewSecurityHandler(sec, pages, cookies, logger), cfg.LoginRateLimit, allow))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(posts, pages, logger), cookies))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
