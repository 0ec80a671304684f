package markdown

import (
	"bytes"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
)

// Handler renders markdown to HTML for the admin editor preview.
type Handler struct {
	md  goldmark.Markdown
	log *zap.Logger
}

func NewHandler(log *zap.Logger) *Handler {
	return &Handler{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		log: log,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/markdown/render", authMW, h.render)
}

type renderDTO struct {
	Text string `json:"text" binding:"required"`
}

func (h *Handler) render(c *gin.Context) {
	var dto renderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.md.Convert([]byte(dto.Text), &buf); err != nil {
		h.log.Error("render markdown", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"html": buf.String()})
}
