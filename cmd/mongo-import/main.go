// Command mongo-import is the one-shot migration from the legacy MongoDB
// deployment into MySQL. It copies projects, the homepage singleton, user
// accounts, the email-relay credentials and the contact inbox, then exits.
// Shape repair (legacy palettes, missing section orders) happens on the
// normal read/write paths, not here.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"time"

	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/contact"
	"github.com/folio-space/core/internal/modules/emailconfig"
	"github.com/folio-space/core/internal/modules/project"
	"github.com/folio-space/core/internal/pkg/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const insertBatchSize = 100

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "path to the YAML config file")
	mongoURI := flag.String("mongo-uri", "mongodb://127.0.0.1:27017", "source MongoDB connection string")
	mongoDB := flag.String("mongo-db", "portfolio", "source MongoDB database name")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("connect mysql", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURI))
	if err != nil {
		log.Fatal("connect mongo", zap.Error(err))
	}
	defer client.Disconnect(ctx)
	src := client.Database(*mongoDB)

	if err := importUsers(ctx, src, db, log); err != nil {
		log.Fatal("import users", zap.Error(err))
	}
	if err := importProjects(ctx, src, db, log); err != nil {
		log.Fatal("import projects", zap.Error(err))
	}
	if err := importHomepage(ctx, src, db, log); err != nil {
		log.Fatal("import homepage", zap.Error(err))
	}
	if err := importEmailConfig(ctx, src, db, log); err != nil {
		log.Fatal("import email config", zap.Error(err))
	}
	if err := importContacts(ctx, src, cfg.DataDir, log); err != nil {
		log.Fatal("import contacts", zap.Error(err))
	}

	log.Info("import complete")
}

func importProjects(ctx context.Context, src *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := loadAll(ctx, src, "projects")
	if err != nil {
		return err
	}

	items := make([]models.ProjectModel, 0, len(docs))
	for _, doc := range docs {
		p := models.ProjectModel{
			Slug:             getString(doc, "slug"),
			Title:            getString(doc, "title"),
			ShortDescription: getString(doc, "shortDescription"),
			Status:           models.ProjectStatus(getString(doc, "status")),
			Featured:         getBool(doc, "featured"),
			Order:            getInt(doc, "order"),
		}
		p.ID = stringID(doc["_id"])
		if p.Status == "" {
			p.Status = models.StatusDraft
		}
		remarshal(doc["thumbnail"], &p.Thumbnail)
		remarshal(doc["technologies"], &p.Technologies)
		remarshal(doc["sections"], &p.Sections)
		remarshal(doc["sectionOrder"], &p.SectionOrder)

		project.NormalizeOnWrite(&p)
		items = append(items, p)
	}

	if len(items) > 0 {
		if err := db.CreateInBatches(items, insertBatchSize).Error; err != nil {
			return err
		}
	}
	log.Info("projects imported", zap.Int("count", len(items)))
	return nil
}

func importHomepage(ctx context.Context, src *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := loadAll(ctx, src, "homepages")
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		log.Info("no homepage to import")
		return nil
	}
	doc := docs[0]

	hp := models.HomePageModel{}
	hp.ID = stringID(doc["_id"])
	remarshal(doc["hero"], &hp.Hero)
	remarshal(doc["bio"], &hp.Bio)
	remarshal(doc["about"], &hp.About)
	remarshal(doc["userExperience"], &hp.UserExperience)
	remarshal(doc["footer"], &hp.Footer)
	remarshal(doc["featuredProjects"], &hp.FeaturedProjects)

	if err := db.Create(&hp).Error; err != nil {
		return err
	}
	log.Info("homepage imported")
	return nil
}

func importUsers(ctx context.Context, src *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := loadAll(ctx, src, "users")
	if err != nil {
		return err
	}

	items := make([]models.UserModel, 0, len(docs))
	for _, doc := range docs {
		u := models.UserModel{
			Name:     getString(doc, "name"),
			Email:    getString(doc, "email"),
			Password: getString(doc, "password"), // bcrypt hashes carry over as-is
			Role:     models.UserRole(getString(doc, "role")),
		}
		u.ID = stringID(doc["_id"])
		if u.Role == "" {
			u.Role = models.RoleAdmin
		}
		items = append(items, u)
	}

	if len(items) > 0 {
		if err := db.CreateInBatches(items, insertBatchSize).Error; err != nil {
			return err
		}
	}
	log.Info("users imported", zap.Int("count", len(items)))
	return nil
}

func importEmailConfig(ctx context.Context, src *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := loadAll(ctx, src, "emailconfigs")
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		log.Info("no email config to import")
		return nil
	}

	cfg := mail.Config{
		User:        getString(docs[0], "gmailUser"),
		AppPassword: getString(docs[0], "gmailAppPassword"),
	}
	if err := emailconfig.NewService(db).Set(cfg); err != nil {
		return err
	}
	log.Info("email config imported")
	return nil
}

func importContacts(ctx context.Context, src *mongo.Database, dataDir string, log *zap.Logger) error {
	docs, err := loadAll(ctx, src, "contacts")
	if err != nil {
		return err
	}

	store := contact.NewStore(dataDir)
	// Oldest first, so the store ends up newest-first.
	for i := len(docs) - 1; i >= 0; i-- {
		doc := docs[i]
		msg := models.ContactMessage{
			ID:        stringID(doc["_id"]),
			Name:      getString(doc, "name"),
			Email:     getString(doc, "email"),
			Phone:     getString(doc, "phone"),
			Message:   getString(doc, "message"),
			UserAgent: getString(doc, "userAgent"),
			IP:        getString(doc, "ip"),
			CreatedAt: getTime(doc, "createdAt"),
		}
		if err := store.Append(msg); err != nil {
			return err
		}
	}
	log.Info("contact messages imported", zap.Int("count", len(docs)))
	return nil
}

func loadAll(ctx context.Context, src *mongo.Database, collection string) ([]bson.M, error) {
	cur, err := src.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// remarshal converts a decoded BSON value into a typed destination through
// its JSON form, which is where all the tolerant legacy decoding lives.
func remarshal(src interface{}, dst interface{}) {
	if src == nil {
		return
	}
	b, err := json.Marshal(src)
	if err != nil {
		return
	}
	_ = json.Unmarshal(b, dst)
}

func stringID(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}

func getString(doc bson.M, key string) string {
	s, _ := doc[key].(string)
	return s
}

func getBool(doc bson.M, key string) bool {
	b, _ := doc[key].(bool)
	return b
}

func getInt(doc bson.M, key string) int {
	switch n := doc[key].(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	default:
		return 0
	}
}

func getTime(doc bson.M, key string) time.Time {
	switch t := doc[key].(type) {
	case primitive.DateTime:
		return t.Time()
	case time.Time:
		return t
	default:
		return time.Now().UTC()
	}
}
