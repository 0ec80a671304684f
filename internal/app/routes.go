package app

import (
	"net/http"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/modules/aggregate"
	"github.com/folio-space/core/internal/modules/contact"
	"github.com/folio-space/core/internal/modules/emailconfig"
	"github.com/folio-space/core/internal/modules/homepage"
	"github.com/folio-space/core/internal/modules/markdown"
	"github.com/folio-space/core/internal/modules/project"
	"github.com/folio-space/core/internal/modules/upload"
	"github.com/folio-space/core/internal/modules/user"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	authMW := middleware.Auth()

	var rateMW gin.HandlerFunc
	if a.Redis != nil {
		rateMW = middleware.RateLimit(a.Redis.Raw())
	} else {
		rateMW = middleware.RateLimit(nil)
	}

	api := a.Engine.Group("/api")
	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": "folio-core", "env": a.Cfg.Env})
	})
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})

	projectSvc := project.NewService(a.DB)
	homepageSvc := homepage.NewService(a.DB)
	emailCfgSvc := emailconfig.NewService(a.DB)
	userSvc := user.NewService(a.DB, emailCfgSvc, a.Cfg.PublicURL)
	contactStore := contact.NewStore(a.Cfg.DataDir)

	// A typed nil must not reach the handler's interface field.
	var objectStore upload.ObjectStore
	if uploader := upload.NewUploader(a.Cfg.S3); uploader != nil {
		objectStore = uploader
	}

	project.NewHandler(projectSvc, a.Log).RegisterRoutes(api, authMW)
	homepage.NewHandler(homepageSvc, a.Log).RegisterRoutes(api, authMW)
	contact.NewHandler(contactStore, a.Log).RegisterRoutes(api, authMW, rateMW)
	user.NewHandler(userSvc, a.Log).RegisterRoutes(api, authMW)
	emailconfig.NewHandler(emailCfgSvc, a.Log).RegisterRoutes(api, authMW)
	upload.NewHandler(objectStore, a.Log).RegisterRoutes(api, authMW)
	markdown.NewHandler(a.Log).RegisterRoutes(api, authMW)
	aggregate.NewHandler(homepageSvc, projectSvc, a.Log).RegisterRoutes(api)

	a.Engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found"})
	})
}
