package project

import "github.com/folio-space/core/internal/models"

// SectionsPatch mirrors models.ProjectSections with every leaf optional.
// ApplyTo implements the documented merge precedence: an incoming leaf wins,
// nested objects merge key-wise, arrays replace wholesale.
type SectionsPatch struct {
	Hero               *HeroSectionPatch     `json:"hero"`
	Overview           *OverviewSectionPatch `json:"overview"`
	HoverExploration   *GallerySectionPatch  `json:"hoverExploration"`
	ProblemStatement   *TextSectionPatch     `json:"problemStatement"`
	Solutions          *ListSectionPatch     `json:"solutions"`
	QuoteProcess       *StepsSectionPatch    `json:"quoteProcess"`
	Branding           *BrandingSectionPatch `json:"branding"`
	Wireframes         *GallerySectionPatch  `json:"wireframes"`
	UIUXDesign         *GallerySectionPatch  `json:"uiuxDesign"`
	Themes             *ThemesSectionPatch   `json:"themes"`
	DevelopmentProcess *StepsSectionPatch    `json:"developmentProcess"`
	SpecialOffers      *OffersSectionPatch   `json:"specialOffers"`
	WebsitePreview     *PreviewSectionPatch  `json:"websitePreview"`
	ResultsImpact      *MetricsSectionPatch  `json:"resultsImpact"`
	Conclusion         *TextSectionPatch     `json:"conclusion"`
	CallToAction       *CTASectionPatch      `json:"callToAction"`
}

type HeroSectionPatch struct {
	Enabled   *bool         `json:"enabled"`
	Title     *string       `json:"title"`
	Tagline   *string       `json:"tagline"`
	Category  *string       `json:"category"`
	HeroImage *models.Image `json:"heroImage"`
}

type OverviewSectionPatch struct {
	Enabled     *bool    `json:"enabled"`
	Heading     *string  `json:"heading"`
	Description *string  `json:"description"`
	Highlights  []string `json:"highlights"`
}

type TextSectionPatch struct {
	Enabled     *bool   `json:"enabled"`
	Heading     *string `json:"heading"`
	Description *string `json:"description"`
}

type ListSectionPatch struct {
	Enabled *bool    `json:"enabled"`
	Heading *string  `json:"heading"`
	Items   []string `json:"items"`
}

type GallerySectionPatch struct {
	Enabled     *bool          `json:"enabled"`
	Heading     *string        `json:"heading"`
	Description *string        `json:"description"`
	Images      []models.Image `json:"images"`
}

type StepsSectionPatch struct {
	Enabled *bool         `json:"enabled"`
	Heading *string       `json:"heading"`
	Steps   []models.Step `json:"steps"`
}

type BrandingSectionPatch struct {
	Enabled      *bool                `json:"enabled"`
	Heading      *string              `json:"heading"`
	Description  *string              `json:"description"`
	Logo         *models.Image        `json:"logo"`
	ColorPalette *models.ColorPalette `json:"colorPalette"`
	Fonts        []string             `json:"fonts"`
}

type ThemesSectionPatch struct {
	Enabled *bool               `json:"enabled"`
	Heading *string             `json:"heading"`
	Groups  []models.ThemeGroup `json:"groups"`
}

type OffersSectionPatch struct {
	Enabled *bool          `json:"enabled"`
	Heading *string        `json:"heading"`
	Offers  []models.Offer `json:"offers"`
}

type PreviewSectionPatch struct {
	Enabled     *bool          `json:"enabled"`
	Heading     *string        `json:"heading"`
	URL         *string        `json:"url"`
	Screenshots []models.Image `json:"screenshots"`
}

type MetricsSectionPatch struct {
	Enabled      *bool                `json:"enabled"`
	Heading      *string              `json:"heading"`
	Description  *string              `json:"description"`
	Metrics      []models.Metric      `json:"metrics"`
	Testimonials []models.Testimonial `json:"testimonials"`
}

type CTASectionPatch struct {
	Enabled     *bool   `json:"enabled"`
	Heading     *string `json:"heading"`
	Subheading  *string `json:"subheading"`
	ButtonLabel *string `json:"buttonLabel"`
	ButtonURL   *string `json:"buttonUrl"`
}

// ApplyTo merges the patch into s in place.
func (p *SectionsPatch) ApplyTo(s *models.ProjectSections) {
	if p == nil {
		return
	}
	if v := p.Hero; v != nil {
		setBool(&s.Hero.Enabled, v.Enabled)
		setString(&s.Hero.Title, v.Title)
		setString(&s.Hero.Tagline, v.Tagline)
		setString(&s.Hero.Category, v.Category)
		if v.HeroImage != nil {
			s.Hero.HeroImage = v.HeroImage
		}
	}
	if v := p.Overview; v != nil {
		setBool(&s.Overview.Enabled, v.Enabled)
		setString(&s.Overview.Heading, v.Heading)
		setString(&s.Overview.Description, v.Description)
		if v.Highlights != nil {
			s.Overview.Highlights = v.Highlights
		}
	}
	applyGallery(&s.HoverExploration, p.HoverExploration)
	applyText(&s.ProblemStatement, p.ProblemStatement)
	if v := p.Solutions; v != nil {
		setBool(&s.Solutions.Enabled, v.Enabled)
		setString(&s.Solutions.Heading, v.Heading)
		if v.Items != nil {
			s.Solutions.Items = v.Items
		}
	}
	applySteps(&s.QuoteProcess, p.QuoteProcess)
	if v := p.Branding; v != nil {
		setBool(&s.Branding.Enabled, v.Enabled)
		setString(&s.Branding.Heading, v.Heading)
		setString(&s.Branding.Description, v.Description)
		if v.Logo != nil {
			s.Branding.Logo = v.Logo
		}
		if v.ColorPalette != nil {
			s.Branding.ColorPalette = *v.ColorPalette
		}
		if v.Fonts != nil {
			s.Branding.Fonts = v.Fonts
		}
	}
	applyGallery(&s.Wireframes, p.Wireframes)
	applyGallery(&s.UIUXDesign, p.UIUXDesign)
	if v := p.Themes; v != nil {
		setBool(&s.Themes.Enabled, v.Enabled)
		setString(&s.Themes.Heading, v.Heading)
		if v.Groups != nil {
			s.Themes.Groups = v.Groups
		}
	}
	applySteps(&s.DevelopmentProcess, p.DevelopmentProcess)
	if v := p.SpecialOffers; v != nil {
		setBool(&s.SpecialOffers.Enabled, v.Enabled)
		setString(&s.SpecialOffers.Heading, v.Heading)
		if v.Offers != nil {
			s.SpecialOffers.Offers = v.Offers
		}
	}
	if v := p.WebsitePreview; v != nil {
		setBool(&s.WebsitePreview.Enabled, v.Enabled)
		setString(&s.WebsitePreview.Heading, v.Heading)
		setString(&s.WebsitePreview.URL, v.URL)
		if v.Screenshots != nil {
			s.WebsitePreview.Screenshots = v.Screenshots
		}
	}
	if v := p.ResultsImpact; v != nil {
		setBool(&s.ResultsImpact.Enabled, v.Enabled)
		setString(&s.ResultsImpact.Heading, v.Heading)
		setString(&s.ResultsImpact.Description, v.Description)
		if v.Metrics != nil {
			s.ResultsImpact.Metrics = v.Metrics
		}
		if v.Testimonials != nil {
			s.ResultsImpact.Testimonials = v.Testimonials
		}
	}
	applyText(&s.Conclusion, p.Conclusion)
	if v := p.CallToAction; v != nil {
		setBool(&s.CallToAction.Enabled, v.Enabled)
		setString(&s.CallToAction.Heading, v.Heading)
		setString(&s.CallToAction.Subheading, v.Subheading)
		setString(&s.CallToAction.ButtonLabel, v.ButtonLabel)
		setString(&s.CallToAction.ButtonURL, v.ButtonURL)
	}
}

func applyText(dst *models.TextSection, src *TextSectionPatch) {
	if src == nil {
		return
	}
	setBool(&dst.Enabled, src.Enabled)
	setString(&dst.Heading, src.Heading)
	setString(&dst.Description, src.Description)
}

func applyGallery(dst *models.GallerySection, src *GallerySectionPatch) {
	if src == nil {
		return
	}
	setBool(&dst.Enabled, src.Enabled)
	setString(&dst.Heading, src.Heading)
	setString(&dst.Description, src.Description)
	if src.Images != nil {
		dst.Images = src.Images
	}
}

func applySteps(dst *models.StepsSection, src *StepsSectionPatch) {
	if src == nil {
		return
	}
	setBool(&dst.Enabled, src.Enabled)
	setString(&dst.Heading, src.Heading)
	if src.Steps != nil {
		dst.Steps = src.Steps
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
