package mocks

import (
	"context"

	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListFunc       func(ctx context.Context, filter models.ArticleFilter, page, limit int) (*models.ArticlePage, error)
	GetFunc        func(ctx context.Context, id string) (*models.Article, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]models.Article, error)
	CreateFunc     func(ctx context.Context, actor *models.AuthUser, in *models.BlogInput) (*models.Article, error)
	UpdateFunc     func(ctx context.Context, actor *models.AuthUser, id string, in *models.BlogInput) (*models.Article, error)
	DeleteFunc     func(ctx context.Context, actor *models.AuthUser, id string) error
	ToggleLikeFunc func(ctx context.Context, id, action string) (int, error)
	StatsFunc      func(ctx context.Context) (*models.BlogStats, error)
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func (m *MockArticleService) List(ctx context.Context, filter models.ArticleFilter, page, limit int) (*models.ArticlePage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, page, limit)
	}
	return &models.ArticlePage{Items: []models.Article{}, Page: page, Limit: limit}, nil
}

func (m *MockArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &models.Article{ID: id}, nil
}

func (m *MockArticleService) ListByUser(ctx context.Context, userID string) ([]models.Article, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockArticleService) Create(ctx context.Context, actor *models.AuthUser, in *models.BlogInput) (*models.Article, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, in)
	}
	return &models.Article{ID: "new", Title: in.Title}, nil
}

func (m *MockArticleService) Update(ctx context.Context, actor *models.AuthUser, id string, in *models.BlogInput) (*models.Article, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, in)
	}
	return &models.Article{ID: id, Title: in.Title}, nil
}

func (m *MockArticleService) Delete(ctx context.Context, actor *models.AuthUser, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

func (m *MockArticleService) ToggleLike(ctx context.Context, id, action string) (int, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, id, action)
	}
	return 1, nil
}

func (m *MockArticleService) Stats(ctx context.Context) (*models.BlogStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &models.BlogStats{CategoryStats: map[string]int{}}, nil
}

// MockPortfolioService is a mock implementation of PortfolioService
type MockPortfolioService struct {
	CreateFunc           func(ctx context.Context, actor *models.AuthUser, in *models.PortfolioInput) (*models.PortfolioFact, error)
	GetFunc              func(ctx context.Context, id string) (*models.PortfolioFact, error)
	ListConsolidatedFunc func(ctx context.Context, category string) ([]*models.ConsolidatedProfile, error)
	ListByUserFunc       func(ctx context.Context, userID string) ([]models.PortfolioFact, error)
	UpdateFunc           func(ctx context.Context, actor *models.AuthUser, id string, in *models.PortfolioInput) (*models.PortfolioFact, error)
	DeleteFunc           func(ctx context.Context, actor *models.AuthUser, id string) error
}

// Verify interface compliance
var _ service.PortfolioService = (*MockPortfolioService)(nil)

func (m *MockPortfolioService) Create(ctx context.Context, actor *models.AuthUser, in *models.PortfolioInput) (*models.PortfolioFact, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, in)
	}
	return &models.PortfolioFact{ID: "new"}, nil
}

func (m *MockPortfolioService) Get(ctx context.Context, id string) (*models.PortfolioFact, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &models.PortfolioFact{ID: id}, nil
}

func (m *MockPortfolioService) ListConsolidated(ctx context.Context, category string) ([]*models.ConsolidatedProfile, error) {
	if m.ListConsolidatedFunc != nil {
		return m.ListConsolidatedFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockPortfolioService) ListByUser(ctx context.Context, userID string) ([]models.PortfolioFact, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockPortfolioService) Update(ctx context.Context, actor *models.AuthUser, id string, in *models.PortfolioInput) (*models.PortfolioFact, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, in)
	}
	return &models.PortfolioFact{ID: id}, nil
}

func (m *MockPortfolioService) Delete(ctx context.Context, actor *models.AuthUser, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	SignupFunc    func(ctx context.Context, in *models.SignupInput) error
	LoginFunc     func(ctx context.Context, in *models.LoginInput) (*models.LoginResponse, error)
	ListUsersFunc func(ctx context.Context) ([]models.User, error)
}

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Signup(ctx context.Context, in *models.SignupInput) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, in)
	}
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, in *models.LoginInput) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, in)
	}
	return &models.LoginResponse{AccessToken: "token"}, nil
}

func (m *MockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

// MockLegacyPostService is a mock implementation of LegacyPostService
type MockLegacyPostService struct {
	CreateFunc func(ctx context.Context, actor *models.AuthUser, in *models.LegacyPostInput) (*models.LegacyPost, error)
	GetFunc    func(ctx context.Context, id string) (*models.LegacyPost, error)
	ListFunc   func(ctx context.Context, category string) ([]models.LegacyPost, error)
	UpdateFunc func(ctx context.Context, actor *models.AuthUser, id string, in *models.LegacyPostInput) error
	DeleteFunc func(ctx context.Context, actor *models.AuthUser, id string) error
}

// Verify interface compliance
var _ service.LegacyPostService = (*MockLegacyPostService)(nil)

func (m *MockLegacyPostService) Create(ctx context.Context, actor *models.AuthUser, in *models.LegacyPostInput) (*models.LegacyPost, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, in)
	}
	return &models.LegacyPost{ID: "new", Title: in.Title}, nil
}

func (m *MockLegacyPostService) Get(ctx context.Context, id string) (*models.LegacyPost, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &models.LegacyPost{ID: id}, nil
}

func (m *MockLegacyPostService) List(ctx context.Context, category string) ([]models.LegacyPost, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockLegacyPostService) Update(ctx context.Context, actor *models.AuthUser, id string, in *models.LegacyPostInput) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, in)
	}
	return nil
}

func (m *MockLegacyPostService) Delete(ctx context.Context, actor *models.AuthUser, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	CreateFunc     func(ctx context.Context, actor *models.AuthUser, in *models.CommentInput) (*models.Comment, error)
	ListByPostFunc func(ctx context.Context, postID string) ([]models.Comment, error)
	DeleteFunc     func(ctx context.Context, actor *models.AuthUser, id string) error
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) Create(ctx context.Context, actor *models.AuthUser, in *models.CommentInput) (*models.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, in)
	}
	return &models.Comment{ID: "new", PostID: in.PostID}, nil
}

func (m *MockCommentService) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	if m.ListByPostFunc != nil {
		return m.ListByPostFunc(ctx, postID)
	}
	return nil, nil
}

func (m *MockCommentService) Delete(ctx context.Context, actor *models.AuthUser, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

// MockMessageService is a mock implementation of MessageService
type MockMessageService struct {
	CreateFunc         func(ctx context.Context, in *models.MessageInput) (*models.Message, error)
	ListByReceiverFunc func(ctx context.Context, receiverID string) ([]models.Message, error)
}

// Verify interface compliance
var _ service.MessageService = (*MockMessageService)(nil)

func (m *MockMessageService) Create(ctx context.Context, in *models.MessageInput) (*models.Message, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &models.Message{ID: "new", ReceiverID: in.ReceiverID}, nil
}

func (m *MockMessageService) ListByReceiver(ctx context.Context, receiverID string) ([]models.Message, error) {
	if m.ListByReceiverFunc != nil {
		return m.ListByReceiverFunc(ctx, receiverID)
	}
	return nil, nil
}

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	SaveFunc func(ctx context.Context, originalName, contentType string, data []byte) (string, error)
	GetFunc  func(ctx context.Context, filename string) (*models.StoredFile, error)
}

// Verify interface compliance
var _ service.FileService = (*MockFileService)(nil)

func (m *MockFileService) Save(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, originalName, contentType, data)
	}
	return "http://localhost:8080/file/" + originalName, nil
}

func (m *MockFileService) Get(ctx context.Context, filename string) (*models.StoredFile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, filename)
	}
	return &models.StoredFile{Filename: filename}, nil
}
