package aggregate

import (
	"sort"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/homepage"
	"github.com/folio-space/core/internal/modules/project"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the combined public-landing payload: the homepage document
// plus its featured project refs resolved to published projects, so the
// front end boots with one request.
type Handler struct {
	homepages *homepage.Service
	projects  *project.Service
	log       *zap.Logger
}

func NewHandler(homepages *homepage.Service, projects *project.Service, log *zap.Logger) *Handler {
	return &Handler{homepages: homepages, projects: projects, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/aggregate", h.get)
}

func (h *Handler) get(c *gin.Context) {
	hp, err := h.homepages.Get()
	if err != nil {
		h.log.Error("aggregate homepage", zap.Error(err))
		response.InternalError(c)
		return
	}
	featured, err := h.projects.ListFeaturedPublished()
	if err != nil {
		h.log.Error("aggregate projects", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{
		"homepage":         hp,
		"featuredProjects": ResolveFeatured(hp.FeaturedProjects, featured),
	})
}

// ResolveFeatured orders the published featured projects by the homepage's
// visible refs (ref order, ascending); projects not referenced keep their own
// order at the end.
func ResolveFeatured(refs []models.FeaturedProjectRef, published []models.ProjectModel) []models.ProjectModel {
	byID := make(map[string]int, len(published))
	for i, p := range published {
		byID[p.ID] = i
	}

	sorted := make([]models.FeaturedProjectRef, len(refs))
	copy(sorted, refs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	out := make([]models.ProjectModel, 0, len(published))
	seen := make(map[string]bool, len(refs))
	for _, ref := range sorted {
		if !ref.IsVisible || seen[ref.ProjectID] {
			continue
		}
		if i, ok := byID[ref.ProjectID]; ok {
			out = append(out, published[i])
			seen[ref.ProjectID] = true
		}
	}
	for _, p := range published {
		if !seen[p.ID] {
			out = append(out, p)
		}
	}
	return out
}
