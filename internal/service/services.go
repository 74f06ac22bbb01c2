package service

import (
	"context"

	"github.com/blogfolio-api/internal/config"
	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/repository"
	"github.com/blogfolio-api/internal/validation"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

// ArticleService merges the native and legacy article stores into unified,
// paginated listings and owns the native write path
type ArticleService interface {
	List(ctx context.Context, filter models.ArticleFilter, page, limit int) (*models.ArticlePage, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	ListByUser(ctx context.Context, userID string) ([]models.Article, error)
	Create(ctx context.Context, actor *models.AuthUser, in *models.BlogInput) (*models.Article, error)
	Update(ctx context.Context, actor *models.AuthUser, id string, in *models.BlogInput) (*models.Article, error)
	Delete(ctx context.Context, actor *models.AuthUser, id string) error
	ToggleLike(ctx context.Context, id, action string) (int, error)
	Stats(ctx context.Context) (*models.BlogStats, error)
}

// LegacyPostService keeps the old posts CRUD surface alive for clients that
// predate the blogs table
type LegacyPostService interface {
	Create(ctx context.Context, actor *models.AuthUser, in *models.LegacyPostInput) (*models.LegacyPost, error)
	Get(ctx context.Context, id string) (*models.LegacyPost, error)
	List(ctx context.Context, category string) ([]models.LegacyPost, error)
	Update(ctx context.Context, actor *models.AuthUser, id string, in *models.LegacyPostInput) error
	Delete(ctx context.Context, actor *models.AuthUser, id string) error
}

// PortfolioService owns portfolio facts and their consolidation into one
// card per user
type PortfolioService interface {
	Create(ctx context.Context, actor *models.AuthUser, in *models.PortfolioInput) (*models.PortfolioFact, error)
	Get(ctx context.Context, id string) (*models.PortfolioFact, error)
	ListConsolidated(ctx context.Context, category string) ([]*models.ConsolidatedProfile, error)
	ListByUser(ctx context.Context, userID string) ([]models.PortfolioFact, error)
	Update(ctx context.Context, actor *models.AuthUser, id string, in *models.PortfolioInput) (*models.PortfolioFact, error)
	Delete(ctx context.Context, actor *models.AuthUser, id string) error
}

// AuthService handles registration, login and user listing
type AuthService interface {
	Signup(ctx context.Context, in *models.SignupInput) error
	Login(ctx context.Context, in *models.LoginInput) (*models.LoginResponse, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// CommentService handles comments on articles
type CommentService interface {
	Create(ctx context.Context, actor *models.AuthUser, in *models.CommentInput) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Delete(ctx context.Context, actor *models.AuthUser, id string) error
}

// MessageService handles contact-form messages
type MessageService interface {
	Create(ctx context.Context, in *models.MessageInput) (*models.Message, error)
	ListByReceiver(ctx context.Context, receiverID string) ([]models.Message, error)
}

// FileService handles uploaded binaries
type FileService interface {
	Save(ctx context.Context, originalName, contentType string, data []byte) (string, error)
	Get(ctx context.Context, filename string) (*models.StoredFile, error)
}

// Services holds all service interfaces
type Services struct {
	Article   ArticleService
	Legacy    LegacyPostService
	Portfolio PortfolioService
	Auth      AuthService
	Comment   CommentService
	Message   MessageService
	File      FileService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	validate := validation.New()
	sanitize := bluemonday.UGCPolicy()
	mailer := NewSMTPMailer(cfg.SMTP, log)

	return &Services{
		Article:   newArticleService(repos, cfg, validate, sanitize, log),
		Legacy:    newLegacyPostService(repos.Legacy, validate, cfg.Database.QueryTimeout, log),
		Portfolio: newPortfolioService(repos.Portfolio, repos.User, validate, cfg.Database.QueryTimeout, log),
		Auth:      newAuthService(repos.User, cfg.Auth, validate, cfg.Database.QueryTimeout, log),
		Comment:   newCommentService(repos.Comment, validate, cfg.Database.QueryTimeout, log),
		Message:   newMessageService(repos.Message, repos.Portfolio, mailer, cfg.Content.DefaultRecipient, validate, cfg.Database.QueryTimeout, log),
		File:      newFileService(repos.File, cfg.Upload, cfg.Database.QueryTimeout, log),
	}
}
