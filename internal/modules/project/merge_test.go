package project

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/folio-space/core/internal/models"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestSectionsPatchApplyTo(t *testing.T) {
	t.Run("incoming leaf wins", func(t *testing.T) {
		s := models.DefaultSections("Old Title", "Old pitch")
		patch := SectionsPatch{
			Hero: &HeroSectionPatch{Title: strPtr("New Title")},
		}
		patch.ApplyTo(&s)

		if s.Hero.Title != "New Title" {
			t.Errorf("title = %q", s.Hero.Title)
		}
		if s.Hero.Tagline != "Old pitch" {
			t.Errorf("untouched sibling changed: %q", s.Hero.Tagline)
		}
		if !s.Hero.Enabled {
			t.Error("enabled flag changed without being patched")
		}
	})

	t.Run("absent sections untouched", func(t *testing.T) {
		s := models.DefaultSections("T", "D")
		s.Conclusion = models.TextSection{Enabled: true, Heading: "Wrap up"}
		before := s.Conclusion

		patch := SectionsPatch{Overview: &OverviewSectionPatch{Heading: strPtr("Context")}}
		patch.ApplyTo(&s)

		if !reflect.DeepEqual(s.Conclusion, before) {
			t.Fatalf("conclusion changed: %+v", s.Conclusion)
		}
	})

	t.Run("arrays replace wholesale", func(t *testing.T) {
		var s models.ProjectSections
		s.Wireframes.Images = []models.Image{{URL: "a"}, {URL: "b"}}

		patch := SectionsPatch{
			Wireframes: &GallerySectionPatch{Images: []models.Image{{URL: "c"}}},
		}
		patch.ApplyTo(&s)

		if len(s.Wireframes.Images) != 1 || s.Wireframes.Images[0].URL != "c" {
			t.Fatalf("images = %+v", s.Wireframes.Images)
		}
	})

	t.Run("nil array leaves stored array", func(t *testing.T) {
		var s models.ProjectSections
		s.Solutions.Items = []string{"keep", "me"}

		patch := SectionsPatch{Solutions: &ListSectionPatch{Heading: strPtr("Solutions")}}
		patch.ApplyTo(&s)

		if len(s.Solutions.Items) != 2 {
			t.Fatalf("items = %v", s.Solutions.Items)
		}
	})

	t.Run("enable flag toggles independently", func(t *testing.T) {
		var s models.ProjectSections
		s.ResultsImpact.Heading = "Results"

		patch := SectionsPatch{ResultsImpact: &MetricsSectionPatch{Enabled: boolPtr(true)}}
		patch.ApplyTo(&s)

		if !s.ResultsImpact.Enabled || s.ResultsImpact.Heading != "Results" {
			t.Fatalf("section = %+v", s.ResultsImpact)
		}
	})

	t.Run("decoded from request JSON", func(t *testing.T) {
		raw := `{"branding":{"colorPalette":{"primary":"#0f0"},"fonts":["Inter","Mono"]}}`
		var patch SectionsPatch
		if err := json.Unmarshal([]byte(raw), &patch); err != nil {
			t.Fatal(err)
		}

		var s models.ProjectSections
		s.Branding.ColorPalette = models.ColorPalette{Primary: "#000", Secondary: "#fff"}
		patch.ApplyTo(&s)

		// The palette object replaces as one leaf.
		if s.Branding.ColorPalette.Primary != "#0f0" || s.Branding.ColorPalette.Secondary != "" {
			t.Fatalf("palette = %+v", s.Branding.ColorPalette)
		}
		if len(s.Branding.Fonts) != 2 {
			t.Fatalf("fonts = %v", s.Branding.Fonts)
		}
	})

	t.Run("nil patch is a no-op", func(t *testing.T) {
		s := models.DefaultSections("T", "D")
		before, _ := json.Marshal(s)
		(*SectionsPatch)(nil).ApplyTo(&s)
		after, _ := json.Marshal(s)
		if !reflect.DeepEqual(before, after) {
			t.Fatal("nil patch mutated sections")
		}
	})
}
