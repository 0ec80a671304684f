package homepage

import "github.com/folio-space/core/internal/models"

// DefaultHomePage is the document created on first read when no homepage
// exists yet. The copy mirrors what the public site shipped with.
func DefaultHomePage() models.HomePageModel {
	return models.HomePageModel{
		Hero: models.HeroBlock{
			Greeting:    "Hi, I'm",
			Title:       "Your Name",
			Subtitle:    "Product Designer & Developer",
			Description: "I design and build digital products end to end, from brand and UX through production code.",
			CTALabel:    "View my work",
			CTAURL:      "#projects",
		},
		Bio: models.BioBlock{
			Name:     "Your Name",
			Role:     "Product Designer & Developer",
			Location: "Remote",
			Summary:  "A decade of shipping web products for startups and agencies.",
			Stats: []models.Metric{
				{Label: "Years of experience", Value: "10+"},
				{Label: "Projects delivered", Value: "60+"},
			},
		},
		About: models.AboutBlock{
			Heading:     "About me",
			Description: "I care about the whole arc of a product: research, brand, interface, implementation.",
			Skills:      []string{"Product design", "Branding", "Frontend development"},
		},
		UserExperience: models.UserExperienceBlock{
			Heading: "How I work",
			Items: []models.ExperienceItem{
				{
					ID:          "discover",
					Title:       "Discover",
					Description: "Understand the problem and the audience before touching pixels.",
				},
				{
					ID:          "design",
					Title:       "Design",
					Description: "Iterate on brand, flows and interface until the story is clear.",
				},
				{
					ID:          "deliver",
					Title:       "Deliver",
					Description: "Ship production code and measure what happens.",
				},
			},
		},
		Footer:           DefaultFooter(),
		FeaturedProjects: []models.FeaturedProjectRef{},
	}
}

// DefaultFooter is also used to backfill legacy documents that predate the
// footer block.
func DefaultFooter() models.FooterBlock {
	return models.FooterBlock{
		OwnerName: "Your Name",
		Email:     "hello@example.com",
		Location:  "Remote",
		Copyright: "All rights reserved.",
		SocialLinks: []models.SocialLink{
			{ID: "github", Platform: "GitHub", URL: "https://github.com", Icon: "github", IsVisible: true},
			{ID: "linkedin", Platform: "LinkedIn", URL: "https://linkedin.com", Icon: "linkedin", IsVisible: true},
		},
	}
}
