package models

import (
	"reflect"
	"testing"
	"time"
)

func TestLegacyToArticle_FullRecord(t *testing.T) {
	created := time.Date(2022, 6, 1, 10, 0, 0, 0, time.UTC)
	post := LegacyPost{
		ID:          "p1",
		Title:       "Old post",
		Description: "body",
		Picture:     "pic.png",
		Username:    "alice",
		UserID:      "u1",
		Categories:  "Tech",
		CreateDate:  &created,
		TechStack:   "Go",
		GithubLink:  "https://github.com/a/b",
		LiveLink:    "https://example.com",
		MediaType:   "Video",
	}

	a := post.ToArticle()

	if a.ID != "p1" || a.Title != "Old post" || a.Category != "Tech" {
		t.Errorf("field mapping broken: %+v", a)
	}
	if !a.IsLegacy {
		t.Error("expected legacy flag set")
	}
	if a.Status != "published" {
		t.Errorf("expected status published, got %s", a.Status)
	}
	if a.Views != 0 || a.Likes != 0 {
		t.Errorf("expected zero counters, got views=%d likes=%d", a.Views, a.Likes)
	}
	if !a.CreatedAt.Equal(created) || !a.UpdatedAt.Equal(created) {
		t.Errorf("expected both timestamps from createDate, got %v / %v", a.CreatedAt, a.UpdatedAt)
	}
}

func TestLegacyToArticle_Defaults(t *testing.T) {
	before := time.Now()
	a := (&LegacyPost{ID: "p2"}).ToArticle()

	if a.Title != "Untitled" {
		t.Errorf("expected Untitled, got %q", a.Title)
	}
	if a.Username != "Anonymous" {
		t.Errorf("expected Anonymous, got %q", a.Username)
	}
	if a.Category != "Blog" {
		t.Errorf("expected Blog, got %q", a.Category)
	}
	if a.MediaType != "Image" {
		t.Errorf("expected Image, got %q", a.MediaType)
	}
	if a.CreatedAt.Before(before) || a.CreatedAt.After(time.Now()) {
		t.Errorf("expected missing createDate to default to now, got %v", a.CreatedAt)
	}
}

func TestLegacyToArticle_Pure(t *testing.T) {
	created := time.Date(2022, 6, 1, 10, 0, 0, 0, time.UTC)
	post := LegacyPost{ID: "p1", Title: "Old post", CreateDate: &created}

	first := post.ToArticle()
	second := post.ToArticle()

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output for identical input")
	}
	if post.Title != "Old post" {
		t.Error("adapter mutated its input")
	}
}
