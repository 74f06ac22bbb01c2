package models

import (
	"time"
)

// Comment represents a comment on an article (native or legacy)
type Comment struct {
	ID        string    `json:"id" db:"id"`
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Body      string    `json:"comments" db:"comment"`
	CreatedAt time.Time `json:"date" db:"created_at"`
}

// CommentInput is the payload for creating a comment
type CommentInput struct {
	PostID string `json:"postId" validate:"required"`
	Body   string `json:"comments" validate:"required"`
}

// MaxCommentWords is the maximum allowed words in a comment body
const MaxCommentWords = 500
