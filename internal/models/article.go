package models

import (
	"time"
)

// Article is the unified, presentation-ready blog record. Rows from the
// native blogs table map onto it directly; rows from the legacy posts table
// are adapted into it with IsLegacy set.
type Article struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Story       string    `json:"story,omitempty" db:"story"`
	Picture     string    `json:"picture" db:"picture"`
	MediaType   string    `json:"mediaType" db:"media_type"`
	TechStack   string    `json:"techStack,omitempty" db:"tech_stack"`
	GithubLink  string    `json:"githubLink,omitempty" db:"github_link"`
	LiveLink    string    `json:"liveLink,omitempty" db:"live_link"`
	Username    string    `json:"username" db:"username"`
	UserID      string    `json:"userId" db:"user_id"`
	Category    string    `json:"category" db:"category"`
	Tags        []string  `json:"tags,omitempty" db:"-"` // Stored as JSONB in DB
	Views       int       `json:"views" db:"views"`
	Likes       int       `json:"likes" db:"likes"`
	Status      string    `json:"status" db:"status"`
	IsLegacy    bool      `json:"isLegacy" db:"-"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ValidStatuses defines allowed article statuses
var ValidStatuses = map[string]bool{
	"draft":     true,
	"published": true,
	"archived":  true,
}

// ValidMediaTypes defines allowed media kinds
var ValidMediaTypes = map[string]bool{
	"Image": true,
	"Video": true,
	"Audio": true,
}

// ValidCategories defines the closed category set for native articles.
// Legacy rows may carry free-text categories outside this set; they are
// passed through as-is at read time, never rejected.
var ValidCategories = map[string]bool{
	"Blog":       true,
	"Story":      true,
	"Technology": true,
	"Lifestyle":  true,
	"Travel":     true,
	"Food":       true,
	"Health":     true,
	"Business":   true,
	"Education":  true,
	"Tutorial":   true,
	"News":       true,
	"Review":     true,
	"Other":      true,
}

// ArticleFilter narrows an article listing. Zero values mean "no constraint",
// except Status which the aggregator defaults to "published".
type ArticleFilter struct {
	Category string
	UserID   string
	Status   string
	Search   string
}

// ArticlePage is one page of a merged article listing
type ArticlePage struct {
	Items []Article `json:"data"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Pages int       `json:"pages"`
}

// BlogStats aggregates counters over published articles
type BlogStats struct {
	TotalBlogs    int            `json:"totalBlogs"`
	TotalViews    int            `json:"totalViews"`
	TotalLikes    int            `json:"totalLikes"`
	CategoryStats map[string]int `json:"categoryStats"`
}

// BlogInput is the payload for creating or updating a native article
type BlogInput struct {
	Title       string   `json:"title" validate:"required,min=5,max=200"`
	Description string   `json:"description" validate:"omitempty,min=10"`
	Story       string   `json:"story"`
	Picture     string   `json:"picture"`
	MediaType   string   `json:"mediaType"`
	TechStack   string   `json:"techStack"`
	GithubLink  string   `json:"githubLink" validate:"omitempty,url"`
	LiveLink    string   `json:"liveLink" validate:"omitempty,url"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
}
