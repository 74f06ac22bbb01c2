package mocks

import (
	"context"

	"github.com/blogfolio-api/internal/models"
)

// MockBlogRepository is a mock implementation of BlogRepository. Articles
// keeps insertion order so tests control listing order directly.
type MockBlogRepository struct {
	Articles  []models.Article
	FindErr   error
	GetErr    error
	WriteErr  error
	FindCalls int
}

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{}
}

func (m *MockBlogRepository) Create(ctx context.Context, article *models.Article) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Articles = append(m.Articles, *article)
	return nil
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Articles {
		if m.Articles[i].ID == id {
			a := m.Articles[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *MockBlogRepository) Find(ctx context.Context, filter models.ArticleFilter) ([]models.Article, error) {
	m.FindCalls++
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []models.Article
	for _, a := range m.Articles {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.UserID != "" && a.UserID != filter.UserID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *MockBlogRepository) FindByUser(ctx context.Context, userID string) ([]models.Article, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []models.Article
	for _, a := range m.Articles {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockBlogRepository) Update(ctx context.Context, article *models.Article) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	for i := range m.Articles {
		if m.Articles[i].ID == article.ID {
			m.Articles[i] = *article
			return nil
		}
	}
	return nil
}

func (m *MockBlogRepository) Delete(ctx context.Context, id string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	for i := range m.Articles {
		if m.Articles[i].ID == id {
			m.Articles = append(m.Articles[:i], m.Articles[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockBlogRepository) IncrementViews(ctx context.Context, id string) error {
	for i := range m.Articles {
		if m.Articles[i].ID == id {
			m.Articles[i].Views++
		}
	}
	return nil
}

func (m *MockBlogRepository) SetLikes(ctx context.Context, id string, likes int) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	for i := range m.Articles {
		if m.Articles[i].ID == id {
			m.Articles[i].Likes = likes
		}
	}
	return nil
}

func (m *MockBlogRepository) Stats(ctx context.Context) (*models.BlogStats, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	stats := &models.BlogStats{CategoryStats: make(map[string]int)}
	for _, a := range m.Articles {
		if a.Status != "published" {
			continue
		}
		stats.TotalBlogs++
		stats.TotalViews += a.Views
		stats.TotalLikes += a.Likes
		stats.CategoryStats[a.Category]++
	}
	return stats, nil
}

// MockLegacyPostRepository is a mock implementation of LegacyPostRepository
type MockLegacyPostRepository struct {
	Posts      []models.LegacyPost
	FindErr    error
	GetErr     error
	WriteErr   error
	FindCalls  int
	LastFilter models.LegacyFilter
}

func NewMockLegacyPostRepository() *MockLegacyPostRepository {
	return &MockLegacyPostRepository{}
}

func (m *MockLegacyPostRepository) Create(ctx context.Context, post *models.LegacyPost) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Posts = append(m.Posts, *post)
	return nil
}

func (m *MockLegacyPostRepository) GetByID(ctx context.Context, id string) (*models.LegacyPost, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Posts {
		if m.Posts[i].ID == id {
			p := m.Posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *MockLegacyPostRepository) Find(ctx context.Context, filter models.LegacyFilter) ([]models.LegacyPost, error) {
	m.FindCalls++
	m.LastFilter = filter
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []models.LegacyPost
	for _, p := range m.Posts {
		if len(filter.Categories) > 0 && !containsString(filter.Categories, p.Categories) {
			continue
		}
		if filter.UserID != "" && p.UserID != filter.UserID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MockLegacyPostRepository) Update(ctx context.Context, post *models.LegacyPost) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	for i := range m.Posts {
		if m.Posts[i].ID == post.ID {
			m.Posts[i] = *post
			return nil
		}
	}
	return nil
}

func (m *MockLegacyPostRepository) Delete(ctx context.Context, id string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	for i := range m.Posts {
		if m.Posts[i].ID == id {
			m.Posts = append(m.Posts[:i], m.Posts[i+1:]...)
			return nil
		}
	}
	return nil
}

// MockPortfolioRepository is a mock implementation of PortfolioRepository.
// Facts keeps insertion order; tests feed rows in the order the real query
// would return them (newest first).
type MockPortfolioRepository struct {
	Facts        []models.PortfolioFact
	ContactEmail string
	FindErr      error
	WriteErr     error
	LastCtx      context.Context
}

func NewMockPortfolioRepository() *MockPortfolioRepository {
	return &MockPortfolioRepository{}
}

func (m *MockPortfolioRepository) Create(ctx context.Context, fact *models.PortfolioFact) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Facts = append(m.Facts, *fact)
	return nil
}

func (m *MockPortfolioRepository) GetByID(ctx context.Context, id string) (*models.PortfolioFact, error) {
	for i := range m.Facts {
		if m.Facts[i].ID == id {
			f := m.Facts[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (m *MockPortfolioRepository) Find(ctx context.Context, category string) ([]models.PortfolioFact, error) {
	m.LastCtx = ctx
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []models.PortfolioFact
	for _, f := range m.Facts {
		if category != "" && f.Categories != category {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (m *MockPortfolioRepository) FindByUser(ctx context.Context, userID string) ([]models.PortfolioFact, error) {
	m.LastCtx = ctx
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []models.PortfolioFact
	for _, f := range m.Facts {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *MockPortfolioRepository) FindContactEmail(ctx context.Context, userID string) (string, error) {
	if m.FindErr != nil {
		return "", m.FindErr
	}
	return m.ContactEmail, nil
}

func (m *MockPortfolioRepository) Update(ctx context.Context, fact *models.PortfolioFact) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	for i := range m.Facts {
		if m.Facts[i].ID == fact.ID {
			m.Facts[i] = *fact
			return nil
		}
	}
	return nil
}

func (m *MockPortfolioRepository) Delete(ctx context.Context, id string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	for i := range m.Facts {
		if m.Facts[i].ID == id {
			m.Facts = append(m.Facts[:i], m.Facts[i+1:]...)
			return nil
		}
	}
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users         map[string]*models.User
	ByUsername    map[string]*models.User
	RefreshTokens map[string]string
	CreateErr     error
	LookupErr     error
	InfoErr       error
	InfoCalls     int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:         make(map[string]*models.User),
		ByUsername:    make(map[string]*models.User),
		RefreshTokens: make(map[string]string),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Users[user.ID] = user
	m.ByUsername[user.Username] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	return m.ByUsername[username], nil
}

func (m *MockUserRepository) GetInfoByIDs(ctx context.Context, ids []string) ([]models.UserInfo, error) {
	m.InfoCalls++
	if m.InfoErr != nil {
		return nil, m.InfoErr
	}
	var infos []models.UserInfo
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := m.Users[id]; ok {
			infos = append(infos, models.UserInfo{ID: u.ID, Name: u.Name, Picture: u.Picture, Username: u.Username})
		}
	}
	return infos, nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	var out []models.User
	for _, u := range m.Users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *MockUserRepository) StoreRefreshToken(ctx context.Context, token, userID string) error {
	m.RefreshTokens[token] = userID
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments []models.Comment
	FindErr  error
	WriteErr error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Comments = append(m.Comments, *comment)
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	for i := range m.Comments {
		if m.Comments[i].ID == id {
			c := m.Comments[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []models.Comment
	for _, c := range m.Comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	for i := range m.Comments {
		if m.Comments[i].ID == id {
			m.Comments = append(m.Comments[:i], m.Comments[i+1:]...)
			return nil
		}
	}
	return nil
}

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	Messages []models.Message
	WriteErr error
}

func NewMockMessageRepository() *MockMessageRepository {
	return &MockMessageRepository{}
}

func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Messages = append(m.Messages, *message)
	return nil
}

func (m *MockMessageRepository) FindByReceiver(ctx context.Context, receiverID string) ([]models.Message, error) {
	var out []models.Message
	for _, msg := range m.Messages {
		if msg.ReceiverID == receiverID {
			out = append(out, msg)
		}
	}
	return out, nil
}

// MockFileRepository is a mock implementation of FileRepository
type MockFileRepository struct {
	Files    map[string]*models.StoredFile
	WriteErr error
}

func NewMockFileRepository() *MockFileRepository {
	return &MockFileRepository{Files: make(map[string]*models.StoredFile)}
}

func (m *MockFileRepository) Save(ctx context.Context, file *models.StoredFile) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Files[file.Filename] = file
	return nil
}

func (m *MockFileRepository) GetByName(ctx context.Context, filename string) (*models.StoredFile, error) {
	return m.Files[filename], nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
