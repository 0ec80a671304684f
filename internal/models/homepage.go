package models

// HeroBlock is the landing hero copy.
type HeroBlock struct {
	Greeting    string `json:"greeting,omitempty"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	CTALabel    string `json:"ctaLabel,omitempty"`
	CTAURL      string `json:"ctaUrl,omitempty"`
}

// BioBlock is the short owner introduction shown next to the hero.
type BioBlock struct {
	Name     string   `json:"name"`
	Role     string   `json:"role,omitempty"`
	Location string   `json:"location,omitempty"`
	Avatar   string   `json:"avatar,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Stats    []Metric `json:"stats,omitempty"`
}

// AboutBlock is the long-form about copy.
type AboutBlock struct {
	Heading     string   `json:"heading,omitempty"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// ExperienceItem is one entry in the user-experience timeline.
type ExperienceItem struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	FullDescription string `json:"fullDescription,omitempty"`
}

// UserExperienceBlock holds the ordered experience timeline.
type UserExperienceBlock struct {
	Heading string           `json:"heading,omitempty"`
	Items   []ExperienceItem `json:"items,omitempty"`
}

// SocialLink is one footer social entry.
type SocialLink struct {
	ID        string `json:"id"`
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	Icon      string `json:"icon,omitempty"`
	IsVisible bool   `json:"isVisible"`
}

// FooterBlock holds owner contact info and the ordered social-link list.
type FooterBlock struct {
	OwnerName   string       `json:"ownerName"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Location    string       `json:"location,omitempty"`
	Copyright   string       `json:"copyright,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty"`
}

// FeaturedProjectRef points at a Project shown on the homepage.
type FeaturedProjectRef struct {
	ProjectID string `json:"projectId"`
	Order     int    `json:"order"`
	IsVisible bool   `json:"isVisible"`
}

// HomePageModel is the singleton document holding all public homepage copy.
// The collection is intended to hold exactly one row; the repository creates
// it lazily with defaults on first read and never deletes it.
type HomePageModel struct {
	Base
	Hero             HeroBlock            `json:"hero"             gorm:"type:longtext;serializer:json"`
	Bio              BioBlock             `json:"bio"              gorm:"type:longtext;serializer:json"`
	About            AboutBlock           `json:"about"            gorm:"type:longtext;serializer:json"`
	UserExperience   UserExperienceBlock  `json:"userExperience"   gorm:"type:longtext;serializer:json"`
	Footer           FooterBlock          `json:"footer"           gorm:"type:longtext;serializer:json"`
	FeaturedProjects []FeaturedProjectRef `json:"featuredProjects" gorm:"type:longtext;serializer:json"`
}

func (HomePageModel) TableName() string { return "homepages" }
