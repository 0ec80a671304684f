package contact

import (
	"testing"
	"time"

	"github.com/folio-space/core/internal/models"
)

func TestStore(t *testing.T) {
	t.Run("empty store lists nothing", func(t *testing.T) {
		s := NewStore(t.TempDir())
		list, err := s.List()
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 0 {
			t.Fatalf("len = %d", len(list))
		}
	})

	t.Run("append keeps newest first", func(t *testing.T) {
		s := NewStore(t.TempDir())
		for _, id := range []string{"first", "second", "third"} {
			err := s.Append(models.ContactMessage{
				ID:        id,
				Name:      "Visitor",
				Email:     "v@example.com",
				Message:   "hello",
				CreatedAt: time.Now().UTC(),
			})
			if err != nil {
				t.Fatal(err)
			}
		}

		list, err := s.List()
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 3 {
			t.Fatalf("len = %d", len(list))
		}
		if list[0].ID != "third" || list[2].ID != "first" {
			t.Fatalf("order = %s, %s, %s", list[0].ID, list[1].ID, list[2].ID)
		}
	})

	t.Run("survives reopen", func(t *testing.T) {
		dir := t.TempDir()
		s := NewStore(dir)
		if err := s.Append(models.ContactMessage{ID: "m1", Name: "A", Email: "a@b.c", Message: "hi"}); err != nil {
			t.Fatal(err)
		}

		reopened := NewStore(dir)
		list, err := reopened.List()
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 1 || list[0].ID != "m1" {
			t.Fatalf("list = %+v", list)
		}
	})
}
