package models

// ProjectStatus is the publication state of a project.
type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "draft"
	StatusPublished ProjectStatus = "published"
)

// ProjectModel is a portfolio case study: top-level presentation fields plus
// the fixed set of named sections and their render order. Sections and order
// are stored as JSON documents, matching the shape the legacy store used.
type ProjectModel struct {
	Base
	Slug             string          `json:"slug"             gorm:"uniqueIndex;not null"`
	Title            string          `json:"title"            gorm:"not null"`
	ShortDescription string          `json:"shortDescription" gorm:"type:text"`
	Thumbnail        *Image          `json:"thumbnail,omitempty" gorm:"type:longtext;serializer:json"`
	Technologies     StringArray     `json:"technologies"     gorm:"type:longtext"`
	Status           ProjectStatus   `json:"status"           gorm:"index;default:'draft'"`
	Featured         bool            `json:"featured"`
	Order            int             `json:"order"            gorm:"column:sort_order"`
	Sections         ProjectSections `json:"sections"         gorm:"type:longtext;serializer:json"`
	SectionOrder     SectionOrder    `json:"sectionOrder"     gorm:"type:longtext;serializer:json"`
}

func (ProjectModel) TableName() string { return "projects" }
