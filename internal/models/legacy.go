package models

import (
	"time"
)

// LegacyPost is a row from the old posts table, kept for backward
// compatibility with content created before the blogs table existed.
// The table is mixed: alongside article-like rows it holds old portfolio
// rows ("Name", "Skill", ...) that blog listings must filter out.
type LegacyPost struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Picture     string     `json:"picture" db:"picture"`
	Username    string     `json:"username" db:"username"`
	UserID      string     `json:"userId" db:"user_id"`
	Categories  string     `json:"categories" db:"categories"`
	CreateDate  *time.Time `json:"createDate,omitempty" db:"create_date"`
	TechStack   string     `json:"techStack,omitempty" db:"tech_stack"`
	LiveLink    string     `json:"liveLink,omitempty" db:"live_link"`
	GithubLink  string     `json:"githubLink,omitempty" db:"github_link"`
	Skills      string     `json:"skills,omitempty" db:"skills"`
	LinkedIn    string     `json:"linkedIn,omitempty" db:"linked_in"`
	Instagram   string     `json:"instagram,omitempty" db:"instagram"`
	Contact     string     `json:"contact,omitempty" db:"contact"`
	MediaType   string     `json:"mediaType,omitempty" db:"media_type"`
}

// LegacyFilter narrows a legacy post listing. Categories is an exact-match
// safelist; a nil slice means no category constraint. CategoryFold matches a
// single category ignoring case, the way the old list endpoint always did.
type LegacyFilter struct {
	Categories   []string
	CategoryFold string
	UserID       string
	Search       string
}

// ToArticle adapts a legacy post to the unified article shape. The transform
// is pure and trusts the stored record; no validation is re-applied. Legacy
// posts have no draft concept, no counters and a single timestamp, so those
// fields take fixed defaults.
func (p *LegacyPost) ToArticle() Article {
	title := p.Title
	if title == "" {
		title = "Untitled"
	}
	username := p.Username
	if username == "" {
		username = "Anonymous"
	}
	category := p.Categories
	if category == "" {
		category = "Blog"
	}
	created := time.Now()
	if p.CreateDate != nil {
		created = *p.CreateDate
	}
	mediaType := p.MediaType
	if mediaType == "" {
		mediaType = "Image"
	}

	return Article{
		ID:          p.ID,
		Title:       title,
		Description: p.Description,
		Picture:     p.Picture,
		MediaType:   mediaType,
		TechStack:   p.TechStack,
		GithubLink:  p.GithubLink,
		LiveLink:    p.LiveLink,
		Username:    username,
		UserID:      p.UserID,
		Category:    category,
		Views:       0,
		Likes:       0,
		Status:      "published",
		IsLegacy:    true,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

// LegacyPostInput is the payload for creating or updating a legacy post.
// The legacy write path stays open so old clients keep working.
type LegacyPostInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	Categories  string `json:"categories" validate:"required"`
	TechStack   string `json:"techStack"`
	LiveLink    string `json:"liveLink"`
	GithubLink  string `json:"githubLink"`
	Skills      string `json:"skills"`
	LinkedIn    string `json:"linkedIn"`
	Instagram   string `json:"instagram"`
	Contact     string `json:"contact"`
	MediaType   string `json:"mediaType"`
}
