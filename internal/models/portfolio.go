package models

import (
	"time"
)

// PortfolioFact is one atomic, user-authored fact forming part of a user's
// portfolio: one row per skill, one per project, one per contact detail.
// Categories is a free-text tag ("Name", "Skill", "Project", ...) by
// convention only, not a closed enum.
type PortfolioFact struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Username    string    `json:"username" db:"username"`
	Categories  string    `json:"categories" db:"categories"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Picture     string    `json:"picture" db:"picture"`
	TechStack   string    `json:"techStack" db:"tech_stack"`
	Skills      string    `json:"skills" db:"skills"`
	LiveLink    string    `json:"liveLink" db:"live_link"`
	GithubLink  string    `json:"githubLink" db:"github_link"`
	LinkedIn    string    `json:"linkedIn" db:"linked_in"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	Email       string    `json:"email" db:"email"`
	Contact     string    `json:"contact" db:"contact"`
	MediaType   string    `json:"mediaType" db:"media_type"`
	CreateDate  time.Time `json:"createDate" db:"create_date"`

	// Filled by the enricher at read time, never persisted.
	UserInfo *UserInfo `json:"userInfo" db:"-"`
}

// ConsolidatedProfile is the single composite card produced by folding all
// of one user's portfolio facts together. It shares the fact's wire shape;
// only the fold semantics differ.
type ConsolidatedProfile = PortfolioFact

// PortfolioInput is the payload for creating or updating a portfolio fact
type PortfolioInput struct {
	Categories  string `json:"categories" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	TechStack   string `json:"techStack"`
	Skills      string `json:"skills"`
	LiveLink    string `json:"liveLink" validate:"omitempty,url"`
	GithubLink  string `json:"githubLink" validate:"omitempty,url"`
	LinkedIn    string `json:"linkedIn"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" validate:"omitempty,email"`
	Contact     string `json:"contact"`
	MediaType   string `json:"mediaType"`
}
