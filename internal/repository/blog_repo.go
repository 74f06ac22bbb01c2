package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blogfolio-api/internal/database"
	"github.com/blogfolio-api/internal/models"
)

// blogRepo is the concrete implementation of BlogRepository
type blogRepo struct {
	db *database.DB
}

// NewBlogRepo creates a new blog repository
func NewBlogRepo(db *database.DB) BlogRepository {
	return &blogRepo{db: db}
}

const blogColumns = `id, title, description, story, picture, media_type, tech_stack,
	github_link, live_link, username, user_id, category, tags, views, likes, status,
	created_at, updated_at`

// Create inserts a new article
func (r *blogRepo) Create(ctx context.Context, article *models.Article) error {
	tagsJSON, _ := json.Marshal(article.Tags)
	if article.Tags == nil {
		tagsJSON = []byte("[]")
	}

	query := `
		INSERT INTO blogs (id, title, description, story, picture, media_type, tech_stack,
			github_link, live_link, username, user_id, category, tags, views, likes, status,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Description, article.Story, article.Picture,
		article.MediaType, article.TechStack, article.GithubLink, article.LiveLink,
		article.Username, article.UserID, article.Category, tagsJSON,
		article.Views, article.Likes, article.Status,
		article.CreatedAt, article.UpdatedAt,
	)
	return err
}

// GetByID retrieves an article by ID
func (r *blogRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM blogs WHERE id = $1`, blogColumns)

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// Find retrieves articles matching the filter, newest first
func (r *blogRepo) Find(ctx context.Context, filter models.ArticleFilter) ([]models.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM blogs WHERE 1=1`, blogColumns)
	var args []interface{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectArticles(rows)
}

// FindByUser retrieves all of one author's articles, newest first
func (r *blogRepo) FindByUser(ctx context.Context, userID string) ([]models.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM blogs WHERE user_id = $1 ORDER BY created_at DESC`, blogColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectArticles(rows)
}

// Update rewrites an article's mutable fields
func (r *blogRepo) Update(ctx context.Context, article *models.Article) error {
	tagsJSON, _ := json.Marshal(article.Tags)
	if article.Tags == nil {
		tagsJSON = []byte("[]")
	}

	query := `
		UPDATE blogs SET title = $2, description = $3, story = $4, picture = $5,
			media_type = $6, tech_stack = $7, github_link = $8, live_link = $9,
			category = $10, tags = $11, status = $12, updated_at = $13
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Description, article.Story, article.Picture,
		article.MediaType, article.TechStack, article.GithubLink, article.LiveLink,
		article.Category, tagsJSON, article.Status, time.Now(),
	)
	return err
}

// Delete removes an article
func (r *blogRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM blogs WHERE id = $1", id)
	return err
}

// IncrementViews bumps the view counter without touching updated_at
func (r *blogRepo) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE blogs SET views = views + 1 WHERE id = $1", id)
	return err
}

// SetLikes stores an absolute like count
func (r *blogRepo) SetLikes(ctx context.Context, id string, likes int) error {
	_, err := r.db.ExecContext(ctx, "UPDATE blogs SET likes = $2 WHERE id = $1", id, likes)
	return err
}

// Stats aggregates counters over published articles
func (r *blogRepo) Stats(ctx context.Context) (*models.BlogStats, error) {
	stats := &models.BlogStats{CategoryStats: make(map[string]int)}

	query := `
		SELECT COUNT(*), COALESCE(SUM(views), 0), COALESCE(SUM(likes), 0)
		FROM blogs WHERE status = 'published'
	`
	if err := r.db.QueryRowContext(ctx, query).Scan(&stats.TotalBlogs, &stats.TotalViews, &stats.TotalLikes); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT category, COUNT(*) FROM blogs WHERE status = 'published' GROUP BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		stats.CategoryStats[category] = count
	}
	return stats, rows.Err()
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var tagsJSON []byte

	err := row.Scan(
		&article.ID, &article.Title, &article.Description, &article.Story, &article.Picture,
		&article.MediaType, &article.TechStack, &article.GithubLink, &article.LiveLink,
		&article.Username, &article.UserID, &article.Category, &tagsJSON,
		&article.Views, &article.Likes, &article.Status,
		&article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	json.Unmarshal(tagsJSON, &article.Tags)
	return &article, nil
}

func collectArticles(rows *sql.Rows) ([]models.Article, error) {
	var articles []models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	return articles, rows.Err()
}
