package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blogfolio-api/internal/api"
	"github.com/blogfolio-api/internal/config"
	"github.com/blogfolio-api/internal/mocks"
	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
)

const testSecret = "test-access-secret"

type testMocks struct {
	article   *mocks.MockArticleService
	legacy    *mocks.MockLegacyPostService
	portfolio *mocks.MockPortfolioService
	auth      *mocks.MockAuthService
	comment   *mocks.MockCommentService
	message   *mocks.MockMessageService
	file      *mocks.MockFileService
}

func setupTestRouter() (*gin.Engine, *testMocks) {
	gin.SetMode(gin.TestMode)

	m := &testMocks{
		article:   &mocks.MockArticleService{},
		legacy:    &mocks.MockLegacyPostService{},
		portfolio: &mocks.MockPortfolioService{},
		auth:      &mocks.MockAuthService{},
		comment:   &mocks.MockCommentService{},
		message:   &mocks.MockMessageService{},
		file:      &mocks.MockFileService{},
	}

	services := &service.Services{
		Article:   m.article,
		Legacy:    m.legacy,
		Portfolio: m.portfolio,
		Auth:      m.auth,
		Comment:   m.comment,
		Message:   m.message,
		File:      m.file,
	}

	cfg := &config.Config{}
	cfg.Server.Port = "8080"
	cfg.Auth.AccessSecret = testSecret
	cfg.Upload.MaxUploadSize = 1 << 20

	router := api.NewRouter(services, cfg, zerolog.Nop())
	return router, m
}

func bearerToken(t *testing.T, userID, role string) string {
	t.Helper()
	claims := service.Claims{
		Username: "tester",
		Name:     "Tester",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return "Bearer " + token
}

func doJSON(router *gin.Engine, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "blogfolio-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestBlogList_QueryParamsReachService(t *testing.T) {
	router, m := setupTestRouter()

	var gotFilter models.ArticleFilter
	var gotPage, gotLimit int
	m.article.ListFunc = func(ctx context.Context, filter models.ArticleFilter, page, limit int) (*models.ArticlePage, error) {
		gotFilter, gotPage, gotLimit = filter, page, limit
		return &models.ArticlePage{Items: []models.Article{}, Page: page, Limit: limit}, nil
	}

	w := doJSON(router, "GET", "/api/blog/all?page=2&limit=5&category=Travel&userId=u1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotPage != 2 || gotLimit != 5 {
		t.Errorf("Expected page=2 limit=5, got %d/%d", gotPage, gotLimit)
	}
	if gotFilter.Category != "Travel" || gotFilter.UserID != "u1" {
		t.Errorf("Filter not passed through: %+v", gotFilter)
	}
}

func TestBlogList_DefaultsAndBadParams(t *testing.T) {
	router, m := setupTestRouter()

	var gotPage, gotLimit int
	m.article.ListFunc = func(ctx context.Context, filter models.ArticleFilter, page, limit int) (*models.ArticlePage, error) {
		gotPage, gotLimit = page, limit
		return &models.ArticlePage{Page: page, Limit: limit}, nil
	}

	if w := doJSON(router, "GET", "/api/blog/all", "", nil); w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if gotPage != 1 || gotLimit != 10 {
		t.Errorf("Expected defaults page=1 limit=10, got %d/%d", gotPage, gotLimit)
	}

	if w := doJSON(router, "GET", "/api/blog/all?page=abc", "", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-integer page, got %d", w.Code)
	}
}

func TestErrorMapping(t *testing.T) {
	router, m := setupTestRouter()

	tests := []struct {
		err      error
		wantCode int
	}{
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrInvalidArgument, http.StatusBadRequest},
		{service.ErrStoreUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		m.article.GetFunc = func(ctx context.Context, id string) (*models.Article, error) {
			return nil, tt.err
		}
		w := doJSON(router, "GET", "/api/blog/some-id", "", nil)
		if w.Code != tt.wantCode {
			t.Errorf("error %v: expected %d, got %d", tt.err, tt.wantCode, w.Code)
		}
	}
}

func TestBlogCreate_RequiresAuth(t *testing.T) {
	router, _ := setupTestRouter()

	body := models.BlogInput{Title: "A valid title", Category: "Technology"}

	if w := doJSON(router, "POST", "/api/blog/create", "", body); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}
	if w := doJSON(router, "POST", "/api/blog/create", "Bearer garbage", body); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with bad token, got %d", w.Code)
	}
}

func TestBlogCreate_PassesActor(t *testing.T) {
	router, m := setupTestRouter()

	var gotActor *models.AuthUser
	m.article.CreateFunc = func(ctx context.Context, actor *models.AuthUser, in *models.BlogInput) (*models.Article, error) {
		gotActor = actor
		return &models.Article{ID: "new", Title: in.Title}, nil
	}

	w := doJSON(router, "POST", "/api/blog/create", bearerToken(t, "u42", "user"),
		models.BlogInput{Title: "A valid title", Category: "Technology"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if gotActor == nil || gotActor.ID != "u42" {
		t.Errorf("Expected actor from token, got %+v", gotActor)
	}
}

func TestUsersEndpoint_AdminOnly(t *testing.T) {
	router, _ := setupTestRouter()

	if w := doJSON(router, "GET", "/users", bearerToken(t, "u1", "user"), nil); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for non-admin, got %d", w.Code)
	}
	if w := doJSON(router, "GET", "/users", bearerToken(t, "u1", "admin"), nil); w.Code != http.StatusOK {
		t.Errorf("Expected 200 for admin, got %d", w.Code)
	}
}

func TestMessagesEndpoint_OwnInboxOnly(t *testing.T) {
	router, m := setupTestRouter()
	m.message.ListByReceiverFunc = func(ctx context.Context, receiverID string) ([]models.Message, error) {
		return []models.Message{{ID: "m1", ReceiverID: receiverID}}, nil
	}

	if w := doJSON(router, "GET", "/messages/u1", bearerToken(t, "u2", "user"), nil); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 reading another inbox, got %d", w.Code)
	}
	if w := doJSON(router, "GET", "/messages/u1", bearerToken(t, "u1", "user"), nil); w.Code != http.StatusOK {
		t.Errorf("Expected 200 reading own inbox, got %d", w.Code)
	}
	if w := doJSON(router, "GET", "/messages/u1", bearerToken(t, "admin-1", "admin"), nil); w.Code != http.StatusOK {
		t.Errorf("Expected 200 for admin, got %d", w.Code)
	}
}

func TestMessageCreate_Public(t *testing.T) {
	router, m := setupTestRouter()

	var got *models.MessageInput
	m.message.CreateFunc = func(ctx context.Context, in *models.MessageInput) (*models.Message, error) {
		got = in
		return &models.Message{ID: "m1", ReceiverID: in.ReceiverID}, nil
	}

	w := doJSON(router, "POST", "/message/new", "", models.MessageInput{
		SenderName:  "Visitor",
		SenderEmail: "v@example.com",
		Body:        "hello",
		ReceiverID:  "u1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 without auth, got %d: %s", w.Code, w.Body.String())
	}
	if got == nil || got.ReceiverID != "u1" {
		t.Errorf("Payload not passed through: %+v", got)
	}
}

func TestPortfolioAll_ReturnsProfiles(t *testing.T) {
	router, m := setupTestRouter()
	m.portfolio.ListConsolidatedFunc = func(ctx context.Context, category string) ([]*models.ConsolidatedProfile, error) {
		return []*models.ConsolidatedProfile{{ID: "f1", UserID: "u1", Title: "Alice"}}, nil
	}

	w := doJSON(router, "GET", "/portfolio/all", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var profiles []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &profiles); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(profiles) != 1 || profiles[0]["title"] != "Alice" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestValidationDetailsInResponse(t *testing.T) {
	router, m := setupTestRouter()
	m.article.CreateFunc = func(ctx context.Context, actor *models.AuthUser, in *models.BlogInput) (*models.Article, error) {
		return nil, &service.ValidationFailure{}
	}

	w := doJSON(router, "POST", "/api/blog/create", bearerToken(t, "u1", "user"),
		models.BlogInput{Title: "x", Category: "Technology"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation failed") {
		t.Errorf("Expected validation error body, got %s", w.Body.String())
	}
}

func TestFileUpload(t *testing.T) {
	router, m := setupTestRouter()

	var gotName string
	var gotData []byte
	m.file.SaveFunc = func(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
		gotName = originalName
		gotData = data
		return "http://localhost:8080/file/123-blog-" + originalName, nil
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "photo.png")
	part.Write([]byte("image-bytes"))
	mw.Close()

	req := httptest.NewRequest("POST", "/file/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", bearerToken(t, "u1", "user"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if gotName != "photo.png" || string(gotData) != "image-bytes" {
		t.Errorf("Upload not passed through: %s / %q", gotName, gotData)
	}
	if !strings.Contains(w.Body.String(), "/file/123-blog-photo.png") {
		t.Errorf("Expected URL in response, got %s", w.Body.String())
	}
}

func TestFileDownload(t *testing.T) {
	router, m := setupTestRouter()
	m.file.GetFunc = func(ctx context.Context, filename string) (*models.StoredFile, error) {
		return &models.StoredFile{Filename: filename, ContentType: "image/png", Data: []byte("image-bytes")}, nil
	}

	w := doJSON(router, "GET", "/file/123-blog-photo.png", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}
	if w.Body.String() != "image-bytes" {
		t.Errorf("Unexpected body: %q", w.Body.String())
	}
}

func TestLegacyRoutes(t *testing.T) {
	router, m := setupTestRouter()
	m.legacy.ListFunc = func(ctx context.Context, category string) ([]models.LegacyPost, error) {
		return []models.LegacyPost{{ID: "p1", Categories: category}}, nil
	}

	if w := doJSON(router, "GET", "/posts?category=Tech", "", nil); w.Code != http.StatusOK {
		t.Errorf("Expected 200 on public listing, got %d", w.Code)
	}
	if w := doJSON(router, "POST", "/create", "", models.LegacyPostInput{Title: "t", Categories: "Tech"}); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 on unauthenticated create, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	// A served request shows up in the per-route counter and histogram
	if w := doJSON(router, "GET", "/health", "", nil); w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /health, got %d", w.Code)
	}

	w := doJSON(router, "GET", "/metrics", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_") {
		t.Error("Expected prometheus exposition output")
	}
	if !strings.Contains(w.Body.String(), `blogfolio_http_requests_total{method="GET",path="/health",status="200"}`) {
		t.Error("Expected request counter sample for /health")
	}
	if !strings.Contains(w.Body.String(), "blogfolio_http_request_duration_seconds") {
		t.Error("Expected request duration histogram")
	}
}
