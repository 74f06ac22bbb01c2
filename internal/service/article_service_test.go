package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/service"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func nativeArticle(id string, created time.Time) models.Article {
	return models.Article{
		ID:        id,
		Title:     "Native " + id,
		Username:  "alice",
		UserID:    "u1",
		Category:  "Technology",
		Status:    "published",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func legacyPost(id string, created time.Time) models.LegacyPost {
	t := created
	return models.LegacyPost{
		ID:         id,
		Title:      "Legacy " + id,
		Username:   "bob",
		UserID:     "u2",
		Categories: "Blog",
		CreateDate: &t,
	}
}

func TestArticleList_MergesBothStoresNewestFirst(t *testing.T) {
	env := newTestEnv()
	env.blogs.Articles = []models.Article{
		nativeArticle("n1", baseTime.Add(1*time.Hour)),
		nativeArticle("n2", baseTime.Add(3*time.Hour)),
	}
	env.legacy.Posts = []models.LegacyPost{
		legacyPost("l1", baseTime.Add(2*time.Hour)),
		legacyPost("l2", baseTime.Add(4*time.Hour)),
	}

	page, err := env.services.Article.List(context.Background(), models.ArticleFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if page.Total != 4 {
		t.Fatalf("expected total 4, got %d", page.Total)
	}
	wantOrder := []string{"l2", "n2", "l1", "n1"}
	for i, want := range wantOrder {
		if page.Items[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, page.Items[i].ID)
		}
	}
	if !page.Items[0].IsLegacy {
		t.Error("expected l2 to carry the legacy flag")
	}
}

func TestArticleList_EqualTimestampsKeepNativeFirst(t *testing.T) {
	env := newTestEnv()
	env.blogs.Articles = []models.Article{nativeArticle("n1", baseTime)}
	env.legacy.Posts = []models.LegacyPost{legacyPost("l1", baseTime)}

	page, err := env.services.Article.List(context.Background(), models.ArticleFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if page.Items[0].ID != "n1" || page.Items[1].ID != "l1" {
		t.Errorf("expected native before legacy on equal timestamps, got %s then %s",
			page.Items[0].ID, page.Items[1].ID)
	}
}

func TestArticleList_Pagination(t *testing.T) {
	env := newTestEnv()
	for i := 0; i < 7; i++ {
		env.blogs.Articles = append(env.blogs.Articles,
			nativeArticle(fmt.Sprintf("n%d", i), baseTime.Add(time.Duration(i)*time.Hour)))
	}

	tests := []struct {
		page, limit   int
		wantItems     int
		wantPages     int
		wantFirstID   string
	}{
		{1, 3, 3, 3, "n6"},
		{2, 3, 3, 3, "n3"},
		{3, 3, 1, 3, "n0"},
		{4, 3, 0, 3, ""},
		{1, 10, 7, 1, "n6"},
	}

	for _, tt := range tests {
		page, err := env.services.Article.List(context.Background(), models.ArticleFilter{}, tt.page, tt.limit)
		if err != nil {
			t.Fatalf("List(page=%d, limit=%d) failed: %v", tt.page, tt.limit, err)
		}
		if len(page.Items) != tt.wantItems {
			t.Errorf("page=%d limit=%d: expected %d items, got %d", tt.page, tt.limit, tt.wantItems, len(page.Items))
		}
		if page.Pages != tt.wantPages {
			t.Errorf("page=%d limit=%d: expected %d pages, got %d", tt.page, tt.limit, tt.wantPages, page.Pages)
		}
		if page.Total != 7 {
			t.Errorf("page=%d limit=%d: expected total 7, got %d", tt.page, tt.limit, page.Total)
		}
		if tt.wantFirstID != "" && page.Items[0].ID != tt.wantFirstID {
			t.Errorf("page=%d limit=%d: expected first item %s, got %s", tt.page, tt.limit, tt.wantFirstID, page.Items[0].ID)
		}
	}
}

func TestArticleList_Idempotent(t *testing.T) {
	env := newTestEnv()
	env.blogs.Articles = []models.Article{nativeArticle("n1", baseTime)}
	env.legacy.Posts = []models.LegacyPost{legacyPost("l1", baseTime.Add(time.Hour))}

	first, err := env.services.Article.List(context.Background(), models.ArticleFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("first List failed: %v", err)
	}
	second, err := env.services.Article.List(context.Background(), models.ArticleFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("second List failed: %v", err)
	}

	if len(first.Items) != len(second.Items) {
		t.Fatalf("result size changed between identical calls: %d vs %d", len(first.Items), len(second.Items))
	}
	for i := range first.Items {
		if first.Items[i].ID != second.Items[i].ID {
			t.Errorf("position %d changed between identical calls: %s vs %s",
				i, first.Items[i].ID, second.Items[i].ID)
		}
	}
}

func TestArticleList_InvalidPagination(t *testing.T) {
	env := newTestEnv()

	for _, tt := range []struct{ page, limit int }{{0, 10}, {-1, 10}, {1, 0}, {1, -5}} {
		_, err := env.services.Article.List(context.Background(), models.ArticleFilter{}, tt.page, tt.limit)
		if !errors.Is(err, service.ErrInvalidArgument) {
			t.Errorf("page=%d limit=%d: expected ErrInvalidArgument, got %v", tt.page, tt.limit, err)
		}
	}
}

func TestArticleList_LegacyFailureDegradesToNativeOnly(t *testing.T) {
	env := newTestEnv()
	env.blogs.Articles = []models.Article{nativeArticle("n1", baseTime)}
	env.legacy.FindErr = errors.New("connection refused")

	page, err := env.services.Article.List(context.Background(), models.ArticleFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("expected degraded success, got error: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != "n1" {
		t.Errorf("expected native-only results, got total %d", page.Total)
	}
}

func TestArticleList_NativeFailureSurfaces(t *testing.T) {
	env := newTestEnv()
	env.blogs.FindErr = errors.New("connection refused")

	_, err := env.services.Article.List(context.Background(), models.ArticleFilter{}, 1, 10)
	if !errors.Is(err, service.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestArticleList_NoCategoryConstrainsLegacyToSafelist(t *testing.T) {
	env := newTestEnv()

	if _, err := env.services.Article.List(context.Background(), models.ArticleFilter{}, 1, 10); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"Blog", "Tech", "Code", "Story"}
	got := env.legacy.LastFilter.Categories
	if len(got) != len(want) {
		t.Fatalf("expected safelist %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected safelist %v, got %v", want, got)
		}
	}
}

func TestArticleList_ExplicitCategoryPassedToLegacy(t *testing.T) {
	env := newTestEnv()

	if _, err := env.services.Article.List(context.Background(), models.ArticleFilter{Category: "Travel"}, 1, 10); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	got := env.legacy.LastFilter.Categories
	if len(got) != 1 || got[0] != "Travel" {
		t.Fatalf("expected legacy filter [Travel], got %v", got)
	}
}

func TestArticleList_DraftListingSkipsLegacyStore(t *testing.T) {
	env := newTestEnv()
	env.blogs.Articles = []models.Article{{ID: "d1", Status: "draft", CreatedAt: baseTime}}

	page, err := env.services.Article.List(context.Background(), models.ArticleFilter{Status: "draft"}, 1, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if env.legacy.FindCalls != 0 {
		t.Errorf("expected no legacy query for a draft listing, got %d calls", env.legacy.FindCalls)
	}
	if page.Total != 1 {
		t.Errorf("expected 1 draft, got %d", page.Total)
	}
}

func TestArticleGet_NativeHitIncrementsViews(t *testing.T) {
	env := newTestEnv()
	env.blogs.Articles = []models.Article{nativeArticle("n1", baseTime)}

	article, err := env.services.Article.Get(context.Background(), "n1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if article.Views != 1 {
		t.Errorf("expected view count 1 after read, got %d", article.Views)
	}
}

func TestArticleGet_LegacyFallback(t *testing.T) {
	env := newTestEnv()
	env.legacy.Posts = []models.LegacyPost{legacyPost("l1", baseTime)}

	article, err := env.services.Article.Get(context.Background(), "l1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !article.IsLegacy {
		t.Error("expected legacy flag on adapted article")
	}
	if article.Status != "published" {
		t.Errorf("expected adapted status published, got %s", article.Status)
	}
}

func TestArticleGet_MissReturnsNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Article.Get(context.Background(), "missing")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestArticleGet_LegacyFailureReadsAsMiss(t *testing.T) {
	env := newTestEnv()
	env.legacy.GetErr = errors.New("connection refused")

	_, err := env.services.Article.Get(context.Background(), "l1")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound when legacy lookup fails, got %v", err)
	}
}

func TestArticleCreate_TakesIdentityFromActor(t *testing.T) {
	env := newTestEnv()
	actor := &models.AuthUser{ID: "u9", Username: "carol", Name: "Carol", Role: "user"}

	article, err := env.services.Article.Create(context.Background(), actor, &models.BlogInput{
		Title:    "A reasonable title",
		Category: "Technology",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if article.UserID != "u9" || article.Username != "carol" {
		t.Errorf("expected identity from actor, got user_id=%s username=%s", article.UserID, article.Username)
	}
	if article.Status != "published" {
		t.Errorf("expected default status published, got %s", article.Status)
	}
}

func TestArticleCreate_SanitizesStory(t *testing.T) {
	env := newTestEnv()
	actor := &models.AuthUser{ID: "u1", Username: "alice", Role: "user"}

	article, err := env.services.Article.Create(context.Background(), actor, &models.BlogInput{
		Title:    "A reasonable title",
		Category: "Technology",
		Story:    `<p>hello</p><script>alert(1)</script>`,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if article.Story != "<p>hello</p>" {
		t.Errorf("expected script stripped, got %q", article.Story)
	}
}

func TestArticleCreate_RejectsShortTitle(t *testing.T) {
	env := newTestEnv()
	actor := &models.AuthUser{ID: "u1", Username: "alice", Role: "user"}

	_, err := env.services.Article.Create(context.Background(), actor, &models.BlogInput{
		Title:    "abc",
		Category: "Technology",
	})
	if !errors.Is(err, service.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	var vf *service.ValidationFailure
	if !errors.As(err, &vf) || len(vf.Errors) == 0 {
		t.Fatal("expected field-level validation details")
	}
}

func TestArticleUpdate_OwnershipEnforced(t *testing.T) {
	env := newTestEnv()
	env.blogs.Articles = []models.Article{nativeArticle("n1", baseTime)}

	input := &models.BlogInput{Title: "Updated title", Category: "Technology"}

	_, err := env.services.Article.Update(context.Background(),
		&models.AuthUser{ID: "intruder", Role: "user"}, "n1", input)
	if !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	if _, err := env.services.Article.Update(context.Background(),
		&models.AuthUser{ID: "u1", Role: "user"}, "n1", input); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}

	if _, err := env.services.Article.Update(context.Background(),
		&models.AuthUser{ID: "someone-else", Role: "admin"}, "n1", input); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestArticleDelete_NotFound(t *testing.T) {
	env := newTestEnv()

	err := env.services.Article.Delete(context.Background(), &models.AuthUser{ID: "u1", Role: "admin"}, "missing")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestArticleToggleLike(t *testing.T) {
	env := newTestEnv()
	env.blogs.Articles = []models.Article{nativeArticle("n1", baseTime)}

	likes, err := env.services.Article.ToggleLike(context.Background(), "n1", "like")
	if err != nil || likes != 1 {
		t.Fatalf("expected 1 like, got %d (err %v)", likes, err)
	}

	likes, err = env.services.Article.ToggleLike(context.Background(), "n1", "unlike")
	if err != nil || likes != 0 {
		t.Fatalf("expected 0 likes, got %d (err %v)", likes, err)
	}

	// Unlike never goes negative
	likes, err = env.services.Article.ToggleLike(context.Background(), "n1", "unlike")
	if err != nil || likes != 0 {
		t.Fatalf("expected likes floored at 0, got %d (err %v)", likes, err)
	}

	if _, err := env.services.Article.ToggleLike(context.Background(), "n1", "boost"); !errors.Is(err, service.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown action, got %v", err)
	}
}

func TestArticleStats(t *testing.T) {
	env := newTestEnv()
	a := nativeArticle("n1", baseTime)
	a.Views = 10
	a.Likes = 2
	b := nativeArticle("n2", baseTime)
	b.Category = "Travel"
	b.Views = 5
	draft := nativeArticle("n3", baseTime)
	draft.Status = "draft"
	draft.Views = 100
	env.blogs.Articles = []models.Article{a, b, draft}

	stats, err := env.services.Article.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalBlogs != 2 || stats.TotalViews != 15 || stats.TotalLikes != 2 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.CategoryStats["Technology"] != 1 || stats.CategoryStats["Travel"] != 1 {
		t.Errorf("unexpected category breakdown: %v", stats.CategoryStats)
	}
}
