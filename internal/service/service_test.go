package service_test

import (
	"time"

	"github.com/blogfolio-api/internal/config"
	"github.com/blogfolio-api/internal/mocks"
	"github.com/blogfolio-api/internal/repository"
	"github.com/blogfolio-api/internal/service"
	"github.com/rs/zerolog"
)

// testEnv bundles the mock repositories behind a fully wired service layer
type testEnv struct {
	blogs      *mocks.MockBlogRepository
	legacy     *mocks.MockLegacyPostRepository
	portfolios *mocks.MockPortfolioRepository
	users      *mocks.MockUserRepository
	comments   *mocks.MockCommentRepository
	messages   *mocks.MockMessageRepository
	files      *mocks.MockFileRepository
	services   *service.Services
}

func newTestEnv() *testEnv {
	env := &testEnv{
		blogs:      mocks.NewMockBlogRepository(),
		legacy:     mocks.NewMockLegacyPostRepository(),
		portfolios: mocks.NewMockPortfolioRepository(),
		users:      mocks.NewMockUserRepository(),
		comments:   mocks.NewMockCommentRepository(),
		messages:   mocks.NewMockMessageRepository(),
		files:      mocks.NewMockFileRepository(),
	}

	repos := &repository.Repositories{
		Blog:      env.blogs,
		Legacy:    env.legacy,
		Portfolio: env.portfolios,
		User:      env.users,
		Comment:   env.comments,
		Message:   env.messages,
		File:      env.files,
	}

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5 * time.Second
	cfg.Content.MaxPageSize = 100
	cfg.Content.LegacyCategories = []string{"Blog", "Tech", "Code", "Story"}
	cfg.Content.DefaultRecipient = "owner@example.com"
	cfg.Auth.AccessSecret = "test-access-secret"
	cfg.Auth.RefreshSecret = "test-refresh-secret"
	cfg.Auth.AccessTTL = time.Hour
	cfg.Upload.MaxUploadSize = 1 << 20
	cfg.Upload.PublicBaseURL = "http://localhost:8080"

	env.services = service.NewServices(repos, cfg, zerolog.Nop())
	return env
}
