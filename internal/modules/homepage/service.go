package homepage

import (
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

// Service owns the homepage singleton.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Get returns the homepage document, creating the default one on first
// access. Legacy documents that predate the footer block get the default
// footer backfilled and persisted on the way out.
func (s *Service) Get() (*models.HomePageModel, error) {
	var hp models.HomePageModel
	err := s.db.First(&hp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hp = DefaultHomePage()
		if err := s.db.Create(&hp).Error; err != nil {
			return nil, err
		}
		return &hp, nil
	}
	if err != nil {
		return nil, err
	}

	if hp.Footer.OwnerName == "" {
		hp.Footer = DefaultFooter()
		if err := s.db.Model(&hp).Update("footer", hp.Footer).Error; err != nil {
			return nil, err
		}
	}
	return &hp, nil
}

// Update merges the patch into the singleton. When no document exists yet
// the payload is persisted verbatim, without default-filling; defaults only
// ever come from the read path. An existing document gets a targeted update
// of only the patched block columns, so concurrent patches to disjoint
// blocks both land (same-block races stay last-write-wins).
func (s *Service) Update(dto *UpdateHomePageDTO) (*models.HomePageModel, error) {
	var hp models.HomePageModel
	err := s.db.First(&hp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dto.ApplyTo(&hp)
		if err := s.db.Create(&hp).Error; err != nil {
			return nil, err
		}
		return &hp, nil
	}
	if err != nil {
		return nil, err
	}

	updates := dto.ApplyTo(&hp)
	if len(updates) == 0 {
		return &hp, nil
	}
	if err := s.db.Model(&hp).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &hp, nil
}
