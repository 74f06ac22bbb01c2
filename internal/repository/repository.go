package repository

import (
	"context"

	"github.com/blogfolio-api/internal/database"
	"github.com/blogfolio-api/internal/models"
)

// BlogRepository defines the interface for the native article store
type BlogRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Find(ctx context.Context, filter models.ArticleFilter) ([]models.Article, error)
	FindByUser(ctx context.Context, userID string) ([]models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	SetLikes(ctx context.Context, id string, likes int) error
	Stats(ctx context.Context) (*models.BlogStats, error)
}

// LegacyPostRepository defines the interface for the legacy content store
type LegacyPostRepository interface {
	Create(ctx context.Context, post *models.LegacyPost) error
	GetByID(ctx context.Context, id string) (*models.LegacyPost, error)
	Find(ctx context.Context, filter models.LegacyFilter) ([]models.LegacyPost, error)
	Update(ctx context.Context, post *models.LegacyPost) error
	Delete(ctx context.Context, id string) error
}

// PortfolioRepository defines the interface for portfolio facts
type PortfolioRepository interface {
	Create(ctx context.Context, fact *models.PortfolioFact) error
	GetByID(ctx context.Context, id string) (*models.PortfolioFact, error)
	Find(ctx context.Context, category string) ([]models.PortfolioFact, error)
	FindByUser(ctx context.Context, userID string) ([]models.PortfolioFact, error)
	FindContactEmail(ctx context.Context, userID string) (string, error)
	Update(ctx context.Context, fact *models.PortfolioFact) error
	Delete(ctx context.Context, id string) error
}

// UserRepository defines the interface for user identities
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetInfoByIDs(ctx context.Context, ids []string) ([]models.UserInfo, error)
	List(ctx context.Context) ([]models.User, error)
	StoreRefreshToken(ctx context.Context, token, userID string) error
}

// CommentRepository defines the interface for comments
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	FindByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Delete(ctx context.Context, id string) error
}

// MessageRepository defines the interface for contact messages
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindByReceiver(ctx context.Context, receiverID string) ([]models.Message, error)
}

// FileRepository defines the interface for uploaded binaries
type FileRepository interface {
	Save(ctx context.Context, file *models.StoredFile) error
	GetByName(ctx context.Context, filename string) (*models.StoredFile, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Blog      BlogRepository
	Legacy    LegacyPostRepository
	Portfolio PortfolioRepository
	User      UserRepository
	Comment   CommentRepository
	Message   MessageRepository
	File      FileRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Blog:      NewBlogRepo(db),
		Legacy:    NewLegacyPostRepo(db),
		Portfolio: NewPortfolioRepo(db),
		User:      NewUserRepo(db),
		Comment:   NewCommentRepo(db),
		Message:   NewMessageRepo(db),
		File:      NewFileRepo(db),
	}
}
