package project

import (
	"errors"

	"github.com/folio-space/core/internal/models"
)

// CreateProjectDTO is the request body for creating a project. Sections may
// be omitted entirely; a default skeleton is synthesized from the title and
// short description.
type CreateProjectDTO struct {
	Title            string                  `json:"title"            binding:"required"`
	ShortDescription string                  `json:"shortDescription" binding:"required"`
	Slug             string                  `json:"slug"`
	Thumbnail        *models.Image           `json:"thumbnail"`
	Technologies     []string                `json:"technologies"`
	Status           *models.ProjectStatus   `json:"status"`
	Featured         *bool                   `json:"featured"`
	Order            *int                    `json:"order"`
	Sections         *models.ProjectSections `json:"sections"`
	SectionOrder     models.SectionOrder     `json:"sectionOrder"`
}

// UpdateProjectDTO is a field-level merge: nil fields are left untouched,
// non-nil leaves win, arrays replace wholesale.
type UpdateProjectDTO struct {
	ID               string                `json:"id" binding:"required"`
	Title            *string               `json:"title"`
	ShortDescription *string               `json:"shortDescription"`
	Slug             *string               `json:"slug"`
	Thumbnail        *models.Image         `json:"thumbnail"`
	Technologies     []string              `json:"technologies"`
	Status           *models.ProjectStatus `json:"status"`
	Featured         *bool                 `json:"featured"`
	Order            *int                  `json:"order"`
	Sections         *SectionsPatch        `json:"sections"`
	SectionOrder     models.SectionOrder   `json:"sectionOrder"`
}

// ReorderSectionDTO moves one entry of the section order list.
type ReorderSectionDTO struct {
	ID   string `json:"id"   binding:"required"`
	From int    `json:"from" binding:"min=0"`
	To   int    `json:"to"   binding:"min=0"`
}

// ListQuery holds query params for fetching projects.
type ListQuery struct {
	ID     string `form:"id"`
	Slug   string `form:"slug"`
	Status string `form:"status"`
}

var (
	errDuplicateSlug = errors.New("duplicate slug")
	errNotFound      = errors.New("project not found")
	errInvalidStatus = errors.New("invalid status")
)
