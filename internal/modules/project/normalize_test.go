package project

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/folio-space/core/internal/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Portfolio Site", "my-portfolio-site"},
		{"  Spaces  Everywhere  ", "spaces-everywhere"},
		{"Fancy!!! Characters???", "fancy-characters"},
		{"Already-a-slug", "already-a-slug"},
		{"UPPER case 123", "upper-case-123"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeOnWrite(t *testing.T) {
	t.Run("empty images stripped", func(t *testing.T) {
		p := models.ProjectModel{
			Thumbnail: &models.Image{Alt: "no url"},
			Sections:  models.DefaultSections("T", "D"),
		}
		p.Sections.Hero.HeroImage = &models.Image{}
		p.Sections.Branding.Logo = &models.Image{Caption: "still empty"}

		NormalizeOnWrite(&p)

		if p.Thumbnail != nil {
			t.Error("empty thumbnail not stripped")
		}
		if p.Sections.Hero.HeroImage != nil {
			t.Error("empty hero image not stripped")
		}
		if p.Sections.Branding.Logo != nil {
			t.Error("empty logo not stripped")
		}
	})

	t.Run("non-empty images kept", func(t *testing.T) {
		p := models.ProjectModel{Thumbnail: &models.Image{URL: "https://x/t.png"}}
		NormalizeOnWrite(&p)
		if p.Thumbnail == nil {
			t.Fatal("thumbnail with URL was stripped")
		}
	})

	t.Run("blank overview description cleared", func(t *testing.T) {
		p := models.ProjectModel{}
		p.Sections.Overview.Description = "   \n\t "
		NormalizeOnWrite(&p)
		if p.Sections.Overview.Description != "" {
			t.Errorf("description = %q", p.Sections.Overview.Description)
		}
	})

	t.Run("section order completed", func(t *testing.T) {
		p := models.ProjectModel{SectionOrder: models.SectionOrder{"conclusion"}}
		NormalizeOnWrite(&p)
		if len(p.SectionOrder) != 16 || p.SectionOrder[0] != models.SectionConclusion {
			t.Fatalf("order = %v", p.SectionOrder)
		}
	})
}

func TestNormalizeOnRead(t *testing.T) {
	t.Run("placeholders materialized", func(t *testing.T) {
		var p models.ProjectModel
		NormalizeOnRead(&p)
		if p.Sections.Hero.HeroImage == nil || p.Sections.Branding.Logo == nil {
			t.Fatal("placeholders missing after read normalization")
		}
		if len(p.SectionOrder) != 16 {
			t.Fatalf("order len = %d", len(p.SectionOrder))
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		var p models.ProjectModel
		p.Sections = models.DefaultSections("T", "D")
		p.SectionOrder = models.SectionOrder{"branding", "hero"}

		NormalizeOnRead(&p)
		snapshot, _ := json.Marshal(p)
		NormalizeOnRead(&p)
		again, _ := json.Marshal(p)

		if !reflect.DeepEqual(snapshot, again) {
			t.Fatal("read normalization changed an already-normalized project")
		}
	})

	t.Run("repairs legacy document", func(t *testing.T) {
		raw := `{
			"hero": {"enabled": true, "title": "Old"},
			"branding": {"enabled": true, "colorPalette": ["#123", "#456"]}
		}`
		var p models.ProjectModel
		if err := json.Unmarshal([]byte(raw), &p.Sections); err != nil {
			t.Fatal(err)
		}

		NormalizeOnRead(&p)

		if p.Sections.Branding.ColorPalette != (models.ColorPalette{}) {
			t.Fatalf("palette = %+v", p.Sections.Branding.ColorPalette)
		}
		if p.Sections.Hero.HeroImage == nil {
			t.Fatal("hero image placeholder missing")
		}
		if p.Sections.Hero.Title != "Old" {
			t.Fatal("existing data lost during repair")
		}
	})
}
