package project

import (
	"regexp"
	"strings"

	"github.com/folio-space/core/internal/models"
)

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: lowercase, non-alphanumeric
// runs collapsed to a single hyphen, leading/trailing hyphens stripped.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// NormalizeOnWrite prepares a project for persistence: image sub-objects
// with an empty URL become absent, a blank overview description is cleared,
// and the section order is normalized to a full permutation of the known
// section set.
func NormalizeOnWrite(p *models.ProjectModel) {
	if p.Thumbnail.IsEmpty() {
		p.Thumbnail = nil
	}
	if p.Sections.Hero.HeroImage.IsEmpty() {
		p.Sections.Hero.HeroImage = nil
	}
	if p.Sections.Branding.Logo.IsEmpty() {
		p.Sections.Branding.Logo = nil
	}
	if strings.TrimSpace(p.Sections.Overview.Description) == "" {
		p.Sections.Overview.Description = ""
	}
	p.SectionOrder = p.SectionOrder.Normalize()
}

// NormalizeOnRead repairs documents carried over from the legacy store.
// It is pure and idempotent: well-formed documents pass through unchanged.
// Legacy array-shaped color palettes are already collapsed at decode time
// (models.ColorPalette.UnmarshalJSON); this pass guarantees the
// hero.heroImage and branding.logo sub-objects exist as empty-but-present
// placeholders and that the section order covers the full section set.
func NormalizeOnRead(p *models.ProjectModel) {
	if p.Sections.Hero.HeroImage == nil {
		p.Sections.Hero.HeroImage = &models.Image{}
	}
	if p.Sections.Branding.Logo == nil {
		p.Sections.Branding.Logo = &models.Image{}
	}
	p.SectionOrder = p.SectionOrder.Normalize()
}
