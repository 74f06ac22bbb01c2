package benchmark

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/blogfolio-api/internal/config"
	"github.com/blogfolio-api/internal/mocks"
	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/repository"
	"github.com/blogfolio-api/internal/service"
	"github.com/rs/zerolog"
)

func benchServices(blogs *mocks.MockBlogRepository, legacy *mocks.MockLegacyPostRepository,
	portfolios *mocks.MockPortfolioRepository, users *mocks.MockUserRepository) *service.Services {

	repos := &repository.Repositories{
		Blog:      blogs,
		Legacy:    legacy,
		Portfolio: portfolios,
		User:      users,
		Comment:   mocks.NewMockCommentRepository(),
		Message:   mocks.NewMockMessageRepository(),
		File:      mocks.NewMockFileRepository(),
	}

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 30 * time.Second
	cfg.Content.MaxPageSize = 100
	cfg.Content.LegacyCategories = []string{"Blog", "Tech", "Code", "Story"}
	cfg.Auth.AccessSecret = "bench"
	cfg.Auth.RefreshSecret = "bench"

	return service.NewServices(repos, cfg, zerolog.Nop())
}

// BenchmarkMergedListing benchmarks the dual-store merge with 1000 native
// and 1000 legacy records
func BenchmarkMergedListing(b *testing.B) {
	blogs := mocks.NewMockBlogRepository()
	legacy := mocks.NewMockLegacyPostRepository()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		created := base.Add(time.Duration(i) * time.Minute)
		blogs.Articles = append(blogs.Articles, models.Article{
			ID:        fmt.Sprintf("native-%04d", i),
			Title:     fmt.Sprintf("Native article %d", i),
			Category:  "Technology",
			Status:    "published",
			CreatedAt: created,
		})
		legacyCreated := created.Add(30 * time.Second)
		legacy.Posts = append(legacy.Posts, models.LegacyPost{
			ID:         fmt.Sprintf("legacy-%04d", i),
			Title:      fmt.Sprintf("Legacy post %d", i),
			Categories: "Blog",
			CreateDate: &legacyCreated,
		})
	}

	services := benchServices(blogs, legacy, mocks.NewMockPortfolioRepository(), mocks.NewMockUserRepository())

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := services.Article.List(context.Background(), models.ArticleFilter{}, 1, 20); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportMetric(float64(2000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkConsolidation benchmarks the portfolio fold with 200 users at
// 10 facts each
func BenchmarkConsolidation(b *testing.B) {
	portfolios := mocks.NewMockPortfolioRepository()
	users := mocks.NewMockUserRepository()

	for u := 0; u < 200; u++ {
		userID := fmt.Sprintf("user-%03d", u)
		users.Create(context.Background(), &models.User{
			ID:       userID,
			Username: fmt.Sprintf("user%03d", u),
			Name:     fmt.Sprintf("User %d", u),
		})
		for f := 0; f < 10; f++ {
			portfolios.Facts = append(portfolios.Facts, models.PortfolioFact{
				ID:         fmt.Sprintf("fact-%03d-%02d", u, f),
				UserID:     userID,
				Categories: "Skill",
				Skills:     fmt.Sprintf("skill-%d", f),
			})
		}
	}

	services := benchServices(mocks.NewMockBlogRepository(), mocks.NewMockLegacyPostRepository(), portfolios, users)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		profiles, err := services.Portfolio.ListConsolidated(context.Background(), "")
		if err != nil {
			b.Fatal(err)
		}
		if len(profiles) != 200 {
			b.Fatalf("expected 200 profiles, got %d", len(profiles))
		}
	}

	b.ReportMetric(float64(2000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}
