package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/blogfolio-api/internal/config"
	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/repository"
	"github.com/blogfolio-api/internal/validation"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	blogs    repository.BlogRepository
	legacy   repository.LegacyPostRepository
	validate *validation.Validator
	sanitize *bluemonday.Policy

	maxPageSize    int
	legacySafelist []string
	queryTimeout   time.Duration
	log            zerolog.Logger
}

func newArticleService(repos *repository.Repositories, cfg *config.Config, validate *validation.Validator, sanitize *bluemonday.Policy, log zerolog.Logger) ArticleService {
	return &articleService{
		blogs:          repos.Blog,
		legacy:         repos.Legacy,
		validate:       validate,
		sanitize:       sanitize,
		maxPageSize:    cfg.Content.MaxPageSize,
		legacySafelist: cfg.Content.LegacyCategories,
		queryTimeout:   cfg.Database.QueryTimeout,
		log:            log.With().Str("service", "article").Logger(),
	}
}

// List merges native and legacy articles into one paginated result set.
//
// Both stores are loaded in full and merged in memory before slicing, so the
// call is O(native+legacy) per request. That is acceptable at current data
// volumes; if either store grows large this must become a merge over two
// sorted cursors instead.
//
// The two underlying queries are not snapshot-consistent with each other: a
// row created between them can appear in one but not the other on a given
// request.
func (s *articleService) List(ctx context.Context, filter models.ArticleFilter, page, limit int) (*models.ArticlePage, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1, got %d: %w", page, ErrInvalidArgument)
	}
	if limit < 1 {
		return nil, fmt.Errorf("limit must be >= 1, got %d: %w", limit, ErrInvalidArgument)
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	// Drafts never surface unless explicitly requested
	status := filter.Status
	if status == "" {
		status = "published"
	}

	nativeFilter := filter
	nativeFilter.Status = status

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	native, err := s.blogs.Find(qctx, nativeFilter)
	if err != nil {
		return nil, storeErr("query native articles", err)
	}

	merged := append([]models.Article{}, native...)
	merged = append(merged, s.legacyArticles(ctx, filter, status)...)

	// Stable sort keeps concatenation order (native before legacy) for
	// records with equal timestamps.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	total := len(merged)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &models.ArticlePage{
		Items: merged[start:end],
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: (total + limit - 1) / limit,
	}, nil
}

// legacyArticles fetches and adapts legacy rows for a listing. A legacy
// store failure degrades to zero legacy results so an outage there never
// blocks native content.
func (s *articleService) legacyArticles(ctx context.Context, filter models.ArticleFilter, status string) []models.Article {
	// Legacy rows have no status column; anything there counts as published
	if status != "published" {
		return nil
	}

	legacyFilter := models.LegacyFilter{
		UserID: filter.UserID,
		Search: filter.Search,
	}
	if filter.Category != "" {
		legacyFilter.Categories = []string{filter.Category}
	} else {
		// The legacy table also holds old portfolio rows ("Name", "Skill",
		// ...); without an explicit category, constrain to categories
		// historically used for article-like content.
		legacyFilter.Categories = s.legacySafelist
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	posts, err := s.legacy.Find(qctx, legacyFilter)
	if err != nil {
		legacyFallbacks.Inc()
		s.log.Warn().Err(err).Msg("Legacy store query failed, continuing with native results only")
		return nil
	}

	articles := make([]models.Article, 0, len(posts))
	for i := range posts {
		articles = append(articles, posts[i].ToArticle())
	}
	return articles
}

// Get retrieves one unified article: native lookup first, legacy fallback on
// miss. Native hits get their view counter bumped.
func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	article, err := s.blogs.GetByID(qctx, id)
	if err != nil {
		return nil, storeErr("get article", err)
	}
	if article != nil {
		if err := s.blogs.IncrementViews(qctx, id); err != nil {
			s.log.Warn().Err(err).Str("id", id).Msg("Failed to increment view count")
		} else {
			article.Views++
		}
		return article, nil
	}

	// Legacy fallback; a failure there is treated as a miss
	post, err := s.legacy.GetByID(qctx, id)
	if err != nil {
		legacyFallbacks.Inc()
		s.log.Warn().Err(err).Str("id", id).Msg("Legacy store lookup failed")
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}
	if post == nil {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}

	adapted := post.ToArticle()
	return &adapted, nil
}

// ListByUser retrieves all of one author's native articles, newest first
func (s *articleService) ListByUser(ctx context.Context, userID string) ([]models.Article, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	articles, err := s.blogs.FindByUser(qctx, userID)
	if err != nil {
		return nil, storeErr("query user articles", err)
	}
	return articles, nil
}

// Create stores a new native article. Author identity always comes from the
// token, never from the payload.
func (s *articleService) Create(ctx context.Context, actor *models.AuthUser, in *models.BlogInput) (*models.Article, error) {
	if err := validationErr(s.validate.ValidateBlog(in)); err != nil {
		return nil, err
	}

	now := time.Now()
	article := &models.Article{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: s.sanitize.Sanitize(in.Description),
		Story:       s.sanitize.Sanitize(in.Story),
		Picture:     in.Picture,
		MediaType:   defaultString(in.MediaType, "Image"),
		TechStack:   in.TechStack,
		GithubLink:  in.GithubLink,
		LiveLink:    in.LiveLink,
		Username:    actor.Username,
		UserID:      actor.ID,
		Category:    in.Category,
		Tags:        in.Tags,
		Status:      defaultString(in.Status, "published"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.blogs.Create(qctx, article); err != nil {
		return nil, storeErr("create article", err)
	}

	s.log.Info().Str("id", article.ID).Str("user_id", actor.ID).Str("category", article.Category).Msg("Article created")
	return article, nil
}

// Update rewrites an article. Only the author or an admin may update.
func (s *articleService) Update(ctx context.Context, actor *models.AuthUser, id string, in *models.BlogInput) (*models.Article, error) {
	if err := validationErr(s.validate.ValidateBlog(in)); err != nil {
		return nil, err
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	article, err := s.blogs.GetByID(qctx, id)
	if err != nil {
		return nil, storeErr("get article", err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}
	if article.UserID != actor.ID && !actor.IsAdmin() {
		return nil, fmt.Errorf("user %s does not own article %s: %w", actor.ID, id, ErrForbidden)
	}

	article.Title = in.Title
	article.Description = s.sanitize.Sanitize(in.Description)
	article.Story = s.sanitize.Sanitize(in.Story)
	article.Picture = in.Picture
	article.MediaType = defaultString(in.MediaType, article.MediaType)
	article.TechStack = in.TechStack
	article.GithubLink = in.GithubLink
	article.LiveLink = in.LiveLink
	article.Category = in.Category
	article.Tags = in.Tags
	article.Status = defaultString(in.Status, article.Status)
	article.UpdatedAt = time.Now()

	if err := s.blogs.Update(qctx, article); err != nil {
		return nil, storeErr("update article", err)
	}

	s.log.Info().Str("id", id).Msg("Article updated")
	return article, nil
}

// Delete removes an article. Only the author or an admin may delete.
func (s *articleService) Delete(ctx context.Context, actor *models.AuthUser, id string) error {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	article, err := s.blogs.GetByID(qctx, id)
	if err != nil {
		return storeErr("get article", err)
	}
	if article == nil {
		return fmt.Errorf("article %s: %w", id, ErrNotFound)
	}
	if article.UserID != actor.ID && !actor.IsAdmin() {
		return fmt.Errorf("user %s does not own article %s: %w", actor.ID, id, ErrForbidden)
	}

	if err := s.blogs.Delete(qctx, id); err != nil {
		return storeErr("delete article", err)
	}

	s.log.Info().Str("id", id).Msg("Article deleted")
	return nil
}

// ToggleLike adjusts an article's like counter and returns the new count.
// Unlike floors at zero.
func (s *articleService) ToggleLike(ctx context.Context, id, action string) (int, error) {
	if action != "like" && action != "unlike" {
		return 0, fmt.Errorf("action must be like or unlike, got %q: %w", action, ErrInvalidArgument)
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	article, err := s.blogs.GetByID(qctx, id)
	if err != nil {
		return 0, storeErr("get article", err)
	}
	if article == nil {
		return 0, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}

	likes := article.Likes
	if action == "like" {
		likes++
	} else if likes > 0 {
		likes--
	}

	if err := s.blogs.SetLikes(qctx, id, likes); err != nil {
		return 0, storeErr("update likes", err)
	}
	return likes, nil
}

// Stats aggregates counters over published native articles
func (s *articleService) Stats(ctx context.Context) (*models.BlogStats, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	stats, err := s.blogs.Stats(qctx)
	if err != nil {
		return nil, storeErr("query stats", err)
	}
	return stats, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrStoreUnavailable)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
