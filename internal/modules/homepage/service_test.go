package homepage

import (
	"testing"

	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestGetCreatesDefaultOnce(t *testing.T) {
	svc := NewService(newTestDB(t))

	first, err := svc.Get()
	if err != nil {
		t.Fatal(err)
	}
	if first.Hero.Title == "" || first.Footer.OwnerName == "" {
		t.Fatalf("default doc incomplete: %+v", first)
	}

	second, err := svc.Get()
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID {
		t.Fatal("second Get created another document")
	}
}

func TestGetBackfillsFooter(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	// A document from before the footer block existed.
	legacy := DefaultHomePage()
	legacy.Footer = models.FooterBlock{}
	if err := db.Create(&legacy).Error; err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get()
	if err != nil {
		t.Fatal(err)
	}
	if got.Footer.OwnerName == "" {
		t.Fatal("footer not backfilled")
	}

	var stored models.HomePageModel
	if err := db.First(&stored).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Footer.OwnerName == "" {
		t.Fatal("backfilled footer not persisted")
	}
}

func TestUpdateCreatesVerbatimWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	name := "Jane Doe"
	hp, err := svc.Update(&UpdateHomePageDTO{Bio: &BioPatch{Name: &name}})
	if err != nil {
		t.Fatal(err)
	}
	if hp.Bio.Name != "Jane Doe" {
		t.Fatalf("name = %q", hp.Bio.Name)
	}
	// No default-filling on the write path: untouched blocks stay zero.
	if hp.Hero.Title != "" {
		t.Fatalf("hero defaulted on write: %+v", hp.Hero)
	}
}

func TestUpdateDisjointBlocks(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	if _, err := svc.Get(); err != nil {
		t.Fatal(err)
	}

	heroTitle := "Building calm software"
	if _, err := svc.Update(&UpdateHomePageDTO{Hero: &HeroPatch{Title: &heroTitle}}); err != nil {
		t.Fatal(err)
	}
	bioRole := "Design Engineer"
	if _, err := svc.Update(&UpdateHomePageDTO{Bio: &BioPatch{Role: &bioRole}}); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get()
	if err != nil {
		t.Fatal(err)
	}
	if got.Hero.Title != heroTitle {
		t.Fatalf("hero title = %q", got.Hero.Title)
	}
	if got.Bio.Role != bioRole {
		t.Fatalf("bio role = %q", got.Bio.Role)
	}

	// A patch with no blocks writes nothing and is not an error.
	if _, err := svc.Update(&UpdateHomePageDTO{}); err != nil {
		t.Fatal(err)
	}
}
