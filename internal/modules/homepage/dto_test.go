package homepage

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/folio-space/core/internal/models"
)

func TestUpdateApplyTo(t *testing.T) {
	t.Run("patched leaves win, siblings survive", func(t *testing.T) {
		hp := DefaultHomePage()
		title := "Jane Doe"
		dto := UpdateHomePageDTO{Hero: &HeroPatch{Title: &title}}
		dto.ApplyTo(&hp)

		if hp.Hero.Title != "Jane Doe" {
			t.Errorf("title = %q", hp.Hero.Title)
		}
		if hp.Hero.Greeting != "Hi, I'm" {
			t.Errorf("untouched greeting changed: %q", hp.Hero.Greeting)
		}
	})

	t.Run("absent blocks untouched", func(t *testing.T) {
		hp := DefaultHomePage()
		before := hp.Footer

		heading := "What I do"
		dto := UpdateHomePageDTO{About: &AboutPatch{Heading: &heading}}
		dto.ApplyTo(&hp)

		if !reflect.DeepEqual(hp.Footer, before) {
			t.Fatal("footer changed by an about patch")
		}
	})

	t.Run("lists replace wholesale", func(t *testing.T) {
		hp := DefaultHomePage()
		dto := UpdateHomePageDTO{
			Footer: &FooterPatch{
				SocialLinks: []models.SocialLink{
					{ID: "dribbble", Platform: "Dribbble", URL: "https://dribbble.com/me", IsVisible: true},
				},
			},
		}
		dto.ApplyTo(&hp)

		if len(hp.Footer.SocialLinks) != 1 || hp.Footer.SocialLinks[0].ID != "dribbble" {
			t.Fatalf("links = %+v", hp.Footer.SocialLinks)
		}
		if hp.Footer.OwnerName == "" {
			t.Fatal("footer leaves lost during list replace")
		}
	})

	t.Run("featured refs replace wholesale", func(t *testing.T) {
		hp := DefaultHomePage()
		dto := UpdateHomePageDTO{
			FeaturedProjects: []models.FeaturedProjectRef{
				{ProjectID: "p1", Order: 0, IsVisible: true},
				{ProjectID: "p2", Order: 1, IsVisible: false},
			},
		}
		dto.ApplyTo(&hp)

		if len(hp.FeaturedProjects) != 2 {
			t.Fatalf("refs = %+v", hp.FeaturedProjects)
		}
	})

	t.Run("reports only the touched columns", func(t *testing.T) {
		hp := DefaultHomePage()
		title := "Jane Doe"
		dto := UpdateHomePageDTO{
			Hero:             &HeroPatch{Title: &title},
			FeaturedProjects: []models.FeaturedProjectRef{},
		}
		updates := dto.ApplyTo(&hp)

		if len(updates) != 2 {
			t.Fatalf("updates = %v", updates)
		}
		for _, col := range []string{"hero", "featured_projects"} {
			if _, ok := updates[col]; !ok {
				t.Fatalf("missing column %q in %v", col, updates)
			}
		}
	})

	t.Run("empty patch touches nothing", func(t *testing.T) {
		hp := DefaultHomePage()
		if updates := (&UpdateHomePageDTO{}).ApplyTo(&hp); len(updates) != 0 {
			t.Fatalf("updates = %v", updates)
		}
	})

	t.Run("decoded from request JSON", func(t *testing.T) {
		raw := `{"bio":{"role":"Design Engineer","stats":[{"label":"Clients","value":"30"}]}}`
		var dto UpdateHomePageDTO
		if err := json.Unmarshal([]byte(raw), &dto); err != nil {
			t.Fatal(err)
		}

		hp := DefaultHomePage()
		dto.ApplyTo(&hp)

		if hp.Bio.Role != "Design Engineer" {
			t.Errorf("role = %q", hp.Bio.Role)
		}
		if len(hp.Bio.Stats) != 1 || hp.Bio.Stats[0].Label != "Clients" {
			t.Errorf("stats = %+v", hp.Bio.Stats)
		}
		if hp.Bio.Name != "Your Name" {
			t.Errorf("untouched name changed: %q", hp.Bio.Name)
		}
	})
}

func TestDefaultHomePage(t *testing.T) {
	hp := DefaultHomePage()

	if hp.Hero.Title == "" || hp.Bio.Name == "" {
		t.Fatal("defaults missing core copy")
	}
	if hp.Footer.OwnerName == "" {
		t.Fatal("default footer missing owner name")
	}
	if len(hp.Footer.SocialLinks) != 2 {
		t.Fatalf("default social links = %d, want 2", len(hp.Footer.SocialLinks))
	}
	if hp.FeaturedProjects == nil {
		t.Fatal("featured projects should be an empty list, not nil")
	}
}
