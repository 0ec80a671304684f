package aggregate

import (
	"testing"

	"github.com/folio-space/core/internal/models"
)

func published(ids ...string) []models.ProjectModel {
	out := make([]models.ProjectModel, len(ids))
	for i, id := range ids {
		out[i].ID = id
		out[i].Status = models.StatusPublished
	}
	return out
}

func TestResolveFeatured(t *testing.T) {
	t.Run("refs drive the order", func(t *testing.T) {
		refs := []models.FeaturedProjectRef{
			{ProjectID: "b", Order: 0, IsVisible: true},
			{ProjectID: "a", Order: 1, IsVisible: true},
		}
		got := ResolveFeatured(refs, published("a", "b"))
		if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("ref order field sorts before position", func(t *testing.T) {
		refs := []models.FeaturedProjectRef{
			{ProjectID: "a", Order: 2, IsVisible: true},
			{ProjectID: "b", Order: 1, IsVisible: true},
		}
		got := ResolveFeatured(refs, published("a", "b"))
		if got[0].ID != "b" {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("hidden refs skipped", func(t *testing.T) {
		refs := []models.FeaturedProjectRef{
			{ProjectID: "a", Order: 0, IsVisible: false},
			{ProjectID: "b", Order: 1, IsVisible: true},
		}
		got := ResolveFeatured(refs, published("a", "b"))
		// "a" is still published featured, so it trails the referenced list.
		if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("dangling refs ignored", func(t *testing.T) {
		refs := []models.FeaturedProjectRef{
			{ProjectID: "deleted", Order: 0, IsVisible: true},
			{ProjectID: "a", Order: 1, IsVisible: true},
		}
		got := ResolveFeatured(refs, published("a"))
		if len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("no refs keeps project order", func(t *testing.T) {
		got := ResolveFeatured(nil, published("x", "y"))
		if len(got) != 2 || got[0].ID != "x" {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("duplicate refs resolve once", func(t *testing.T) {
		refs := []models.FeaturedProjectRef{
			{ProjectID: "a", Order: 0, IsVisible: true},
			{ProjectID: "a", Order: 1, IsVisible: true},
		}
		got := ResolveFeatured(refs, published("a"))
		if len(got) != 1 {
			t.Fatalf("got %v", ids(got))
		}
	})
}

func ids(projects []models.ProjectModel) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}
