package project

import (
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

// Service handles project business logic.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Create inserts a new project. The slug is derived from the title when not
// supplied and must be unique across all projects.
func (s *Service) Create(dto *CreateProjectDTO) (*models.ProjectModel, error) {
	slug := dto.Slug
	if slug == "" {
		slug = Slugify(dto.Title)
	}
	var count int64
	if err := s.db.Model(&models.ProjectModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errDuplicateSlug
	}

	p := models.ProjectModel{
		Slug:             slug,
		Title:            dto.Title,
		ShortDescription: dto.ShortDescription,
		Thumbnail:        dto.Thumbnail,
		Technologies:     dto.Technologies,
		Status:           models.StatusDraft,
		SectionOrder:     dto.SectionOrder,
	}
	if dto.Status != nil {
		if !validStatus(*dto.Status) {
			return nil, errInvalidStatus
		}
		p.Status = *dto.Status
	}
	if dto.Featured != nil {
		p.Featured = *dto.Featured
	}
	if dto.Order != nil {
		p.Order = *dto.Order
	}
	if dto.Sections != nil {
		p.Sections = *dto.Sections
	} else {
		p.Sections = models.DefaultSections(dto.Title, dto.ShortDescription)
	}

	NormalizeOnWrite(&p)
	return &p, s.db.Create(&p).Error
}

// GetByID fetches one project and applies the legacy-repair normalization.
func (s *Service) GetByID(id string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	NormalizeOnRead(&p)
	return &p, nil
}

// GetBySlug fetches one project by slug. The same idempotent normalization
// runs here so the public page never sees a legacy shape.
func (s *Service) GetBySlug(slug string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	NormalizeOnRead(&p)
	return &p, nil
}

// List returns projects, optionally filtered by status, sorted by ascending
// order with creation-time-descending tie break.
func (s *Service) List(status string) ([]models.ProjectModel, error) {
	tx := s.db.Model(&models.ProjectModel{}).Order("sort_order ASC, created_at DESC")
	switch status {
	case "", "all":
	case string(models.StatusDraft), string(models.StatusPublished):
		tx = tx.Where("status = ?", status)
	default:
		return nil, errInvalidStatus
	}

	var items []models.ProjectModel
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		NormalizeOnRead(&items[i])
	}
	return items, nil
}

// ListFeaturedPublished returns the published projects flagged featured, in
// display order.
func (s *Service) ListFeaturedPublished() ([]models.ProjectModel, error) {
	var items []models.ProjectModel
	err := s.db.
		Where("status = ? AND featured = ?", models.StatusPublished, true).
		Order("sort_order ASC, created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	for i := range items {
		NormalizeOnRead(&items[i])
	}
	return items, nil
}

// Update applies a field-level merge. Nested section fields absent from the
// payload stay untouched; two concurrent updates to disjoint fields both
// land, same-field races are last-write-wins.
func (s *Service) Update(dto *UpdateProjectDTO) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, "id = ?", dto.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Slug != nil && *dto.Slug != p.Slug {
		var count int64
		if err := s.db.Model(&models.ProjectModel{}).
			Where("slug = ? AND id <> ?", *dto.Slug, p.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errDuplicateSlug
		}
		p.Slug = *dto.Slug
		updates["slug"] = p.Slug
	}
	if dto.Title != nil {
		p.Title = *dto.Title
		updates["title"] = p.Title
	}
	if dto.ShortDescription != nil {
		p.ShortDescription = *dto.ShortDescription
		updates["short_description"] = p.ShortDescription
	}
	if dto.Thumbnail != nil {
		p.Thumbnail = dto.Thumbnail
	}
	if dto.Technologies != nil {
		p.Technologies = dto.Technologies
		updates["technologies"] = p.Technologies
	}
	if dto.Status != nil {
		if !validStatus(*dto.Status) {
			return nil, errInvalidStatus
		}
		p.Status = *dto.Status
		updates["status"] = p.Status
	}
	if dto.Featured != nil {
		p.Featured = *dto.Featured
		updates["featured"] = p.Featured
	}
	if dto.Order != nil {
		p.Order = *dto.Order
		updates["sort_order"] = p.Order
	}
	if dto.Sections != nil {
		dto.Sections.ApplyTo(&p.Sections)
	}
	if dto.SectionOrder != nil {
		p.SectionOrder = dto.SectionOrder
	}

	NormalizeOnWrite(&p)
	// JSON columns are written whole; thumbnail may have been stripped to nil.
	updates["thumbnail"] = p.Thumbnail
	updates["sections"] = p.Sections
	updates["section_order"] = p.SectionOrder

	if err := s.db.Model(&p).Updates(updates).Error; err != nil {
		return nil, err
	}
	NormalizeOnRead(&p)
	return &p, nil
}

// ReorderSection moves one entry of the section order list (array move, not
// swap) and persists the result.
func (s *Service) ReorderSection(dto *ReorderSectionDTO) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, "id = ?", dto.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}

	p.SectionOrder = p.SectionOrder.Normalize().Move(dto.From, dto.To)
	if err := s.db.Model(&p).Update("section_order", p.SectionOrder).Error; err != nil {
		return nil, err
	}
	NormalizeOnRead(&p)
	return &p, nil
}

// Delete removes a project by id. The delete is hard: the row goes away and
// its slug is immediately free for a new project, which keeps the slug
// uniqueness check and the database unique index seeing the same rows.
func (s *Service) Delete(id string) error {
	res := s.db.Unscoped().Delete(&models.ProjectModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotFound
	}
	return nil
}

func validStatus(st models.ProjectStatus) bool {
	return st == models.StatusDraft || st == models.StatusPublished
}
