package models

import "encoding/json"

// SectionName identifies one of the fixed case-study sections. The set is
// closed: a project always carries all sixteen, each individually enabled or
// disabled.
type SectionName string

const (
	SectionHero               SectionName = "hero"
	SectionOverview           SectionName = "overview"
	SectionHoverExploration   SectionName = "hoverExploration"
	SectionProblemStatement   SectionName = "problemStatement"
	SectionSolutions          SectionName = "solutions"
	SectionQuoteProcess       SectionName = "quoteProcess"
	SectionBranding           SectionName = "branding"
	SectionWireframes         SectionName = "wireframes"
	SectionUIUXDesign         SectionName = "uiuxDesign"
	SectionThemes             SectionName = "themes"
	SectionDevelopmentProcess SectionName = "developmentProcess"
	SectionSpecialOffers      SectionName = "specialOffers"
	SectionWebsitePreview     SectionName = "websitePreview"
	SectionResultsImpact      SectionName = "resultsImpact"
	SectionConclusion         SectionName = "conclusion"
	SectionCallToAction       SectionName = "callToAction"
)

// AllSectionNames returns the canonical render order of the full section set.
func AllSectionNames() []SectionName {
	return []SectionName{
		SectionHero,
		SectionOverview,
		SectionHoverExploration,
		SectionProblemStatement,
		SectionSolutions,
		SectionQuoteProcess,
		SectionBranding,
		SectionWireframes,
		SectionUIUXDesign,
		SectionThemes,
		SectionDevelopmentProcess,
		SectionSpecialOffers,
		SectionWebsitePreview,
		SectionResultsImpact,
		SectionConclusion,
		SectionCallToAction,
	}
}

// IsKnownSection reports whether name belongs to the fixed section set.
func IsKnownSection(name SectionName) bool {
	for _, n := range AllSectionNames() {
		if n == name {
			return true
		}
	}
	return false
}

// SectionOrder is the per-project render order of the section set.
type SectionOrder []SectionName

// Normalize repairs an order list into a full permutation of the known
// section set: unknown names are dropped, duplicates keep their first
// position, and missing sections are appended in canonical order. A nil or
// legacy partial list therefore normalizes to something renderable.
func (o SectionOrder) Normalize() SectionOrder {
	seen := make(map[SectionName]bool, len(o))
	out := make(SectionOrder, 0, 16)
	for _, name := range o {
		if !IsKnownSection(name) || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	for _, name := range AllSectionNames() {
		if !seen[name] {
			out = append(out, name)
		}
	}
	return out
}

// Move relocates the entry at from to position to (array move, not a swap)
// and returns the result. Out-of-range indices leave the order unchanged.
func (o SectionOrder) Move(from, to int) SectionOrder {
	if from < 0 || from >= len(o) || to < 0 || to >= len(o) || from == to {
		return o
	}
	out := make(SectionOrder, 0, len(o))
	out = append(out, o[:from]...)
	out = append(out, o[from+1:]...)
	out = append(out[:to], append(SectionOrder{o[from]}, out[to:]...)...)
	return out
}

// Image is a stored picture reference.
type Image struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// IsEmpty reports whether the image carries no URL. Empty images are
// stripped on write and re-materialized as placeholders on read.
func (i *Image) IsEmpty() bool { return i == nil || i.URL == "" }

// ColorPalette is the branding color pair. Both keys always serialize, so a
/// repaired legacy palette reads back as {primary:"", secondary:""} rather
// than an empty object.
type ColorPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// UnmarshalJSON tolerates the legacy array shape (["#aaa", "#bbb"]) by
// collapsing it to an empty palette; the object shape decodes normally.
func (p *ColorPalette) UnmarshalJSON(data []byte) error {
	type plain ColorPalette
	var obj plain
	if err := json.Unmarshal(data, &obj); err == nil {
		*p = ColorPalette(obj)
		return nil
	}
	var legacy []string
	if err := json.Unmarshal(data, &legacy); err == nil {
		*p = ColorPalette{}
		return nil
	}
	*p = ColorPalette{}
	return nil
}

// Step is one entry of a process timeline.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Metric is a labelled figure (results, bio stats).
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Testimonial is a quoted endorsement.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Offer is one entry of the special-offers section.
type Offer struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

// ThemeGroup is a named set of theme screenshots.
type ThemeGroup struct {
	Name   string  `json:"name"`
	Images []Image `json:"images,omitempty"`
}

type HeroSection struct {
	Enabled   bool   `json:"enabled"`
	Title     string `json:"title,omitempty"`
	Tagline   string `json:"tagline,omitempty"`
	Category  string `json:"category,omitempty"`
	HeroImage *Image `json:"heroImage,omitempty"`
}

type OverviewSection struct {
	Enabled     bool     `json:"enabled"`
	Heading     string   `json:"heading,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

type TextSection struct {
	Enabled     bool   `json:"enabled"`
	Heading     string `json:"heading,omitempty"`
	Description string `json:"description,omitempty"`
}

type ListSection struct {
	Enabled bool     `json:"enabled"`
	Heading string   `json:"heading,omitempty"`
	Items   []string `json:"items,omitempty"`
}

type GallerySection struct {
	Enabled     bool    `json:"enabled"`
	Heading     string  `json:"heading,omitempty"`
	Description string  `json:"description,omitempty"`
	Images      []Image `json:"images,omitempty"`
}

type StepsSection struct {
	Enabled bool   `json:"enabled"`
	Heading string `json:"heading,omitempty"`
	Steps   []Step `json:"steps,omitempty"`
}

type BrandingSection struct {
	Enabled      bool         `json:"enabled"`
	Heading      string       `json:"heading,omitempty"`
	Description  string       `json:"description,omitempty"`
	Logo         *Image       `json:"logo,omitempty"`
	ColorPalette ColorPalette `json:"colorPalette"`
	Fonts        []string     `json:"fonts,omitempty"`
}

type ThemesSection struct {
	Enabled bool         `json:"enabled"`
	Heading string       `json:"heading,omitempty"`
	Groups  []ThemeGroup `json:"groups,omitempty"`
}

type OffersSection struct {
	Enabled bool    `json:"enabled"`
	Heading string  `json:"heading,omitempty"`
	Offers  []Offer `json:"offers,omitempty"`
}

type PreviewSection struct {
	Enabled     bool    `json:"enabled"`
	Heading     string  `json:"heading,omitempty"`
	URL         string  `json:"url,omitempty"`
	Screenshots []Image `json:"screenshots,omitempty"`
}

type MetricsSection struct {
	Enabled      bool          `json:"enabled"`
	Heading      string        `json:"heading,omitempty"`
	Description  string        `json:"description,omitempty"`
	Metrics      []Metric      `json:"metrics,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty"`
}

type CTASection struct {
	Enabled     bool   `json:"enabled"`
	Heading     string `json:"heading,omitempty"`
	Subheading  string `json:"subheading,omitempty"`
	ButtonLabel string `json:"buttonLabel,omitempty"`
	ButtonURL   string `json:"buttonUrl,omitempty"`
}

// ProjectSections is the fixed document of all sixteen sections. Every
// project carries all of them; visibility is the per-section Enabled flag.
type ProjectSections struct {
	Hero               HeroSection     `json:"hero"`
	Overview           OverviewSection `json:"overview"`
	HoverExploration   GallerySection  `json:"hoverExploration"`
	ProblemStatement   TextSection     `json:"problemStatement"`
	Solutions          ListSection     `json:"solutions"`
	QuoteProcess       StepsSection    `json:"quoteProcess"`
	Branding           BrandingSection `json:"branding"`
	Wireframes         GallerySection  `json:"wireframes"`
	UIUXDesign         GallerySection  `json:"uiuxDesign"`
	Themes             ThemesSection   `json:"themes"`
	DevelopmentProcess StepsSection    `json:"developmentProcess"`
	SpecialOffers      OffersSection   `json:"specialOffers"`
	WebsitePreview     PreviewSection  `json:"websitePreview"`
	ResultsImpact      MetricsSection  `json:"resultsImpact"`
	Conclusion         TextSection     `json:"conclusion"`
	CallToAction       CTASection      `json:"callToAction"`
}

// DefaultSections builds the section document for a new project: hero and
// overview enabled and seeded from the top-level fields, everything else
// present but disabled.
func DefaultSections(title, shortDescription string) ProjectSections {
	return ProjectSections{
		Hero: HeroSection{
			Enabled:  true,
			Title:    title,
			Tagline:  shortDescription,
			Category: "Case Study",
		},
		Overview: OverviewSection{
			Enabled:     true,
			Description: shortDescription,
		},
	}
}

// Enabled reports the visibility flag of the named section.
func (s *ProjectSections) Enabled(name SectionName) bool {
	switch name {
	case SectionHero:
		return s.Hero.Enabled
	case SectionOverview:
		return s.Overview.Enabled
	case SectionHoverExploration:
		return s.HoverExploration.Enabled
	case SectionProblemStatement:
		return s.ProblemStatement.Enabled
	case SectionSolutions:
		return s.Solutions.Enabled
	case SectionQuoteProcess:
		return s.QuoteProcess.Enabled
	case SectionBranding:
		return s.Branding.Enabled
	case SectionWireframes:
		return s.Wireframes.Enabled
	case SectionUIUXDesign:
		return s.UIUXDesign.Enabled
	case SectionThemes:
		return s.Themes.Enabled
	case SectionDevelopmentProcess:
		return s.DevelopmentProcess.Enabled
	case SectionSpecialOffers:
		return s.SpecialOffers.Enabled
	case SectionWebsitePreview:
		return s.WebsitePreview.Enabled
	case SectionResultsImpact:
		return s.ResultsImpact.Enabled
	case SectionConclusion:
		return s.Conclusion.Enabled
	case SectionCallToAction:
		return s.CallToAction.Enabled
	default:
		return false
	}
}
