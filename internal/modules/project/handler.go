package project

import (
	"errors"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes project CRUD on /projects.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/projects")

	g.GET("", h.get)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PUT("", h.update)
	a.DELETE("", h.delete)
	a.POST("/reorder-section", h.reorderSection)
}

// get serves three shapes behind one route: ?id= and ?slug= fetch a single
// project, otherwise ?status= filters the list.
func (h *Handler) get(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if q.ID != "" || q.Slug != "" {
		p, err := h.fetchOne(q)
		if err != nil {
			h.log.Error("fetch project", zap.Error(err))
			response.InternalError(c)
			return
		}
		if p == nil {
			response.NotFound(c, "Project not found")
			return
		}
		response.OK(c, p)
		return
	}

	items, err := h.svc.List(q.Status)
	if err != nil {
		if errors.Is(err, errInvalidStatus) {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		h.log.Error("list projects", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

func (h *Handler) fetchOne(q ListQuery) (interface{}, error) {
	if q.ID != "" {
		p, err := h.svc.GetByID(q.ID)
		if p == nil {
			return nil, err
		}
		return p, err
	}
	p, err := h.svc.GetBySlug(q.Slug)
	if p == nil {
		return nil, err
	}
	return p, err
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(&dto)
	if err != nil {
		switch {
		case errors.Is(err, errDuplicateSlug):
			response.BadRequest(c, "A project with this slug already exists")
		case errors.Is(err, errInvalidStatus):
			response.BadRequest(c, "Status must be draft or published")
		default:
			h.log.Error("create project", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.Created(c, p)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(&dto)
	if err != nil {
		switch {
		case errors.Is(err, errNotFound):
			response.NotFound(c, "Project not found")
		case errors.Is(err, errDuplicateSlug):
			response.BadRequest(c, "A project with this slug already exists")
		case errors.Is(err, errInvalidStatus):
			response.BadRequest(c, "Status must be draft or published")
		default:
			h.log.Error("update project", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.OK(c, p)
}

func (h *Handler) reorderSection(c *gin.Context) {
	var dto ReorderSectionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.ReorderSection(&dto)
	if err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		h.log.Error("reorder section", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, p)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, "id is required")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		h.log.Error("delete project", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Message(c, "Project deleted")
}
