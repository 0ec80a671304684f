package emailconfig

import (
	"github.com/folio-space/core/internal/pkg/mail"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the relay credentials to the admin panel. Both routes sit
// behind auth; credentials never reach the public surface.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/email-config", authMW)
	g.GET("", h.get)
	g.PUT("", h.update)
}

func (h *Handler) get(c *gin.Context) {
	cfg, err := h.svc.Get()
	if err != nil {
		h.log.Error("get email config", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{
		"gmailUser":        cfg.User,
		"gmailAppPassword": cfg.AppPassword,
		"configured":       cfg.Complete(),
	})
}

func (h *Handler) update(c *gin.Context) {
	var cfg mail.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Set(cfg); err != nil {
		h.log.Error("update email config", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Message(c, "Email configuration saved")
}
