package homepage

import "github.com/folio-space/core/internal/models"

// UpdateHomePageDTO is a partial update over the singleton: nil blocks are
// untouched, block leaves merge key-wise, lists replace wholesale.
type UpdateHomePageDTO struct {
	Hero             *HeroPatch                  `json:"hero"`
	Bio              *BioPatch                   `json:"bio"`
	About            *AboutPatch                 `json:"about"`
	UserExperience   *UserExperiencePatch        `json:"userExperience"`
	Footer           *FooterPatch                `json:"footer"`
	FeaturedProjects []models.FeaturedProjectRef `json:"featuredProjects"`
}

type HeroPatch struct {
	Greeting    *string `json:"greeting"`
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	CTALabel    *string `json:"ctaLabel"`
	CTAURL      *string `json:"ctaUrl"`
}

type BioPatch struct {
	Name     *string         `json:"name"`
	Role     *string         `json:"role"`
	Location *string         `json:"location"`
	Avatar   *string         `json:"avatar"`
	Summary  *string         `json:"summary"`
	Stats    []models.Metric `json:"stats"`
}

type AboutPatch struct {
	Heading     *string  `json:"heading"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
}

type UserExperiencePatch struct {
	Heading *string                 `json:"heading"`
	Items   []models.ExperienceItem `json:"items"`
}

type FooterPatch struct {
	OwnerName   *string             `json:"ownerName"`
	Email       *string             `json:"email"`
	Phone       *string             `json:"phone"`
	Location    *string             `json:"location"`
	Copyright   *string             `json:"copyright"`
	SocialLinks []models.SocialLink `json:"socialLinks"`
}

// ApplyTo merges the patch into the stored document in place and returns
// the storage columns the patch touched, so the service writes only those.
// Blocks absent from the patch never reach the UPDATE, which lets
// concurrent patches to disjoint blocks both land.
func (dto *UpdateHomePageDTO) ApplyTo(hp *models.HomePageModel) map[string]interface{} {
	updates := map[string]interface{}{}
	if v := dto.Hero; v != nil {
		setString(&hp.Hero.Greeting, v.Greeting)
		setString(&hp.Hero.Title, v.Title)
		setString(&hp.Hero.Subtitle, v.Subtitle)
		setString(&hp.Hero.Description, v.Description)
		setString(&hp.Hero.CTALabel, v.CTALabel)
		setString(&hp.Hero.CTAURL, v.CTAURL)
		updates["hero"] = hp.Hero
	}
	if v := dto.Bio; v != nil {
		setString(&hp.Bio.Name, v.Name)
		setString(&hp.Bio.Role, v.Role)
		setString(&hp.Bio.Location, v.Location)
		setString(&hp.Bio.Avatar, v.Avatar)
		setString(&hp.Bio.Summary, v.Summary)
		if v.Stats != nil {
			hp.Bio.Stats = v.Stats
		}
		updates["bio"] = hp.Bio
	}
	if v := dto.About; v != nil {
		setString(&hp.About.Heading, v.Heading)
		setString(&hp.About.Description, v.Description)
		if v.Skills != nil {
			hp.About.Skills = v.Skills
		}
		updates["about"] = hp.About
	}
	if v := dto.UserExperience; v != nil {
		setString(&hp.UserExperience.Heading, v.Heading)
		if v.Items != nil {
			hp.UserExperience.Items = v.Items
		}
		updates["user_experience"] = hp.UserExperience
	}
	if v := dto.Footer; v != nil {
		setString(&hp.Footer.OwnerName, v.OwnerName)
		setString(&hp.Footer.Email, v.Email)
		setString(&hp.Footer.Phone, v.Phone)
		setString(&hp.Footer.Location, v.Location)
		setString(&hp.Footer.Copyright, v.Copyright)
		if v.SocialLinks != nil {
			hp.Footer.SocialLinks = v.SocialLinks
		}
		updates["footer"] = hp.Footer
	}
	if dto.FeaturedProjects != nil {
		hp.FeaturedProjects = dto.FeaturedProjects
		updates["featured_projects"] = hp.FeaturedProjects
	}
	return updates
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
