package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/repository"
	"github.com/blogfolio-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments     repository.CommentRepository
	validate     *validation.Validator
	queryTimeout time.Duration
	log          zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, validate *validation.Validator, queryTimeout time.Duration, log zerolog.Logger) CommentService {
	return &commentService{
		comments:     comments,
		validate:     validate,
		queryTimeout: queryTimeout,
		log:          log.With().Str("service", "comment").Logger(),
	}
}

// Create adds a comment to an article. Commenter identity always comes from
// the token.
func (s *commentService) Create(ctx context.Context, actor *models.AuthUser, in *models.CommentInput) (*models.Comment, error) {
	if err := validationErr(s.validate.ValidateComment(in)); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		PostID:    in.PostID,
		UserID:    actor.ID,
		Name:      actor.Name,
		Body:      in.Body,
		CreatedAt: time.Now(),
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.comments.Create(qctx, comment); err != nil {
		return nil, storeErr("create comment", err)
	}

	s.log.Info().Str("id", comment.ID).Str("post_id", comment.PostID).Msg("Comment created")
	return comment, nil
}

// ListByPost returns all comments on an article, oldest first
func (s *commentService) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	comments, err := s.comments.FindByPost(qctx, postID)
	if err != nil {
		return nil, storeErr("query comments", err)
	}
	return comments, nil
}

// Delete removes a comment. Only the commenter or an admin may delete.
func (s *commentService) Delete(ctx context.Context, actor *models.AuthUser, id string) error {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	comment, err := s.comments.GetByID(qctx, id)
	if err != nil {
		return storeErr("get comment", err)
	}
	if comment == nil {
		return fmt.Errorf("comment %s: %w", id, ErrNotFound)
	}
	if comment.UserID != actor.ID && !actor.IsAdmin() {
		return fmt.Errorf("user %s does not own comment %s: %w", actor.ID, id, ErrForbidden)
	}

	if err := s.comments.Delete(qctx, id); err != nil {
		return storeErr("delete comment", err)
	}

	s.log.Info().Str("id", id).Msg("Comment deleted")
	return nil
}
