package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/pkg/jwt"
	"github.com/folio-space/core/internal/pkg/redis"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App wires configuration, storage and the HTTP surface together.
type App struct {
	Cfg    *config.AppConfig
	DB     *gorm.DB
	Redis  *redis.Client
	Engine *gin.Engine
	Log    *zap.Logger
}

// New builds a ready-to-serve application.
func New(cfg *config.AppConfig, log *zap.Logger) (*App, error) {
	jwt.SetSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	// Redis is optional: without it the rate limiter is disabled.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = redis.Connect(cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
			rdb = nil
		}
	}

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(cors.New(corsConfig(cfg)))

	a := &App{Cfg: cfg, DB: db, Redis: rdb, Engine: engine, Log: log}
	a.registerRoutes()
	return a, nil
}

// Server returns the configured HTTP server for the app.
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Cfg.Port),
		Handler:           a.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Close releases external connections.
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 {
		c.AllowOrigins = cfg.AllowedOrigins
	} else {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}
	return c
}
