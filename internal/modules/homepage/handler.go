package homepage

import (
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the homepage singleton on /homepage.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/homepage")
	g.GET("", h.get)
	g.PUT("", authMW, h.update)
}

func (h *Handler) get(c *gin.Context) {
	hp, err := h.svc.Get()
	if err != nil {
		h.log.Error("get homepage", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, hp)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateHomePageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	hp, err := h.svc.Update(&dto)
	if err != nil {
		h.log.Error("update homepage", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, hp)
}
