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

// legacyPostService is the concrete implementation of LegacyPostService
type legacyPostService struct {
	posts        repository.LegacyPostRepository
	validate     *validation.Validator
	queryTimeout time.Duration
	log          zerolog.Logger
}

func newLegacyPostService(posts repository.LegacyPostRepository, validate *validation.Validator, queryTimeout time.Duration, log zerolog.Logger) LegacyPostService {
	return &legacyPostService{
		posts:        posts,
		validate:     validate,
		queryTimeout: queryTimeout,
		log:          log.With().Str("service", "legacy").Logger(),
	}
}

// Create writes a row to the old posts table
func (s *legacyPostService) Create(ctx context.Context, actor *models.AuthUser, in *models.LegacyPostInput) (*models.LegacyPost, error) {
	if err := validationErr(s.validate.ValidateLegacyPost(in)); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &models.LegacyPost{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Picture:     in.Picture,
		Username:    actor.Username,
		UserID:      actor.ID,
		Categories:  in.Categories,
		CreateDate:  &now,
		TechStack:   in.TechStack,
		LiveLink:    in.LiveLink,
		GithubLink:  in.GithubLink,
		Skills:      in.Skills,
		LinkedIn:    in.LinkedIn,
		Instagram:   in.Instagram,
		Contact:     in.Contact,
		MediaType:   in.MediaType,
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.posts.Create(qctx, post); err != nil {
		return nil, storeErr("create legacy post", err)
	}

	s.log.Info().Str("id", post.ID).Str("categories", post.Categories).Msg("Legacy post created")
	return post, nil
}

// Get retrieves a single legacy post
func (s *legacyPostService) Get(ctx context.Context, id string) (*models.LegacyPost, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	post, err := s.posts.GetByID(qctx, id)
	if err != nil {
		return nil, storeErr("get legacy post", err)
	}
	if post == nil {
		return nil, fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return post, nil
}

// List returns legacy posts, optionally narrowed to one category matched
// without case sensitivity
func (s *legacyPostService) List(ctx context.Context, category string) ([]models.LegacyPost, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	posts, err := s.posts.Find(qctx, models.LegacyFilter{CategoryFold: category})
	if err != nil {
		return nil, storeErr("query legacy posts", err)
	}
	return posts, nil
}

// Update rewrites a legacy post. Only the author or an admin may update.
func (s *legacyPostService) Update(ctx context.Context, actor *models.AuthUser, id string, in *models.LegacyPostInput) error {
	if err := validationErr(s.validate.ValidateLegacyPost(in)); err != nil {
		return err
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	post, err := s.posts.GetByID(qctx, id)
	if err != nil {
		return storeErr("get legacy post", err)
	}
	if post == nil {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	if post.UserID != actor.ID && !actor.IsAdmin() {
		return fmt.Errorf("user %s does not own post %s: %w", actor.ID, id, ErrForbidden)
	}

	post.Title = in.Title
	post.Description = in.Description
	post.Picture = in.Picture
	post.Categories = in.Categories
	post.TechStack = in.TechStack
	post.LiveLink = in.LiveLink
	post.GithubLink = in.GithubLink
	post.Skills = in.Skills
	post.LinkedIn = in.LinkedIn
	post.Instagram = in.Instagram
	post.Contact = in.Contact
	post.MediaType = in.MediaType

	if err := s.posts.Update(qctx, post); err != nil {
		return storeErr("update legacy post", err)
	}

	s.log.Info().Str("id", id).Msg("Legacy post updated")
	return nil
}

// Delete removes a legacy post. Only the author or an admin may delete.
func (s *legacyPostService) Delete(ctx context.Context, actor *models.AuthUser, id string) error {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	post, err := s.posts.GetByID(qctx, id)
	if err != nil {
		return storeErr("get legacy post", err)
	}
	if post == nil {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	if post.UserID != actor.ID && !actor.IsAdmin() {
		return fmt.Errorf("user %s does not own post %s: %w", actor.ID, id, ErrForbidden)
	}

	if err := s.posts.Delete(qctx, id); err != nil {
		return storeErr("delete legacy post", err)
	}

	s.log.Info().Str("id", id).Msg("Legacy post deleted")
	return nil
}
