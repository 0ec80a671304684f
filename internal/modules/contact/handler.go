package contact

import (
	"net/http"
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler exposes the contact-form inbox. The submit endpoint keeps the
// legacy {ok: ...} envelope the public form already speaks.
type Handler struct {
	store *Store
	log   *zap.Logger
}

func NewHandler(store *Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, rateMW gin.HandlerFunc) {
	g := rg.Group("/contact")
	g.POST("", rateMW, h.create)
	g.GET("", authMW, h.list)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateMessageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body"})
		return
	}
	if err := dto.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Validation failed", "errors": ErrorList(err)})
		return
	}

	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      dto.Name,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Message:   dto.Message,
		UserAgent: c.Request.UserAgent(),
		IP:        c.ClientIP(),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.Append(msg); err != nil {
		h.log.Error("store contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Could not save message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "item": msg})
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.store.List()
	if err != nil {
		h.log.Error("list contact messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Could not read messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "list": list})
}
