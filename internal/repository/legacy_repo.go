package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogfolio-api/internal/database"
	"github.com/blogfolio-api/internal/models"
	"github.com/lib/pq"
)

// legacyPostRepo is the concrete implementation of LegacyPostRepository
type legacyPostRepo struct {
	db *database.DB
}

// NewLegacyPostRepo creates a new legacy post repository
func NewLegacyPostRepo(db *database.DB) LegacyPostRepository {
	return &legacyPostRepo{db: db}
}

const legacyColumns = `id, title, description, picture, username, user_id, categories,
	create_date, tech_stack, live_link, github_link, skills, linked_in, instagram,
	contact, media_type`

// Create inserts a new legacy post. The legacy write path stays open for
// clients that predate the blogs table.
func (r *legacyPostRepo) Create(ctx context.Context, post *models.LegacyPost) error {
	query := `
		INSERT INTO posts (id, title, description, picture, username, user_id, categories,
			create_date, tech_stack, live_link, github_link, skills, linked_in, instagram,
			contact, media_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Description, post.Picture, post.Username, post.UserID,
		post.Categories, post.CreateDate, post.TechStack, post.LiveLink, post.GithubLink,
		post.Skills, post.LinkedIn, post.Instagram, post.Contact, post.MediaType,
	)
	return err
}

// GetByID retrieves a legacy post by ID
func (r *legacyPostRepo) GetByID(ctx context.Context, id string) (*models.LegacyPost, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1`, legacyColumns)

	post, err := scanLegacyPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Find retrieves legacy posts matching the filter, newest first. Rows with
// no create_date sort last.
func (r *legacyPostRepo) Find(ctx context.Context, filter models.LegacyFilter) ([]models.LegacyPost, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE 1=1`, legacyColumns)
	var args []interface{}

	if len(filter.Categories) > 0 {
		args = append(args, pq.Array(filter.Categories))
		query += fmt.Sprintf(" AND categories = ANY($%d)", len(args))
	}
	if filter.CategoryFold != "" {
		args = append(args, filter.CategoryFold)
		query += fmt.Sprintf(" AND LOWER(categories) = LOWER($%d)", len(args))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY create_date DESC NULLS LAST"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.LegacyPost
	for rows.Next() {
		post, err := scanLegacyPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

// Update rewrites a legacy post's mutable fields
func (r *legacyPostRepo) Update(ctx context.Context, post *models.LegacyPost) error {
	query := `
		UPDATE posts SET title = $2, description = $3, picture = $4, categories = $5,
			tech_stack = $6, live_link = $7, github_link = $8, skills = $9,
			linked_in = $10, instagram = $11, contact = $12, media_type = $13
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Description, post.Picture, post.Categories,
		post.TechStack, post.LiveLink, post.GithubLink, post.Skills,
		post.LinkedIn, post.Instagram, post.Contact, post.MediaType,
	)
	return err
}

// Delete removes a legacy post
func (r *legacyPostRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

func scanLegacyPost(row rowScanner) (*models.LegacyPost, error) {
	var post models.LegacyPost
	var createDate sql.NullTime

	err := row.Scan(
		&post.ID, &post.Title, &post.Description, &post.Picture, &post.Username,
		&post.UserID, &post.Categories, &createDate, &post.TechStack, &post.LiveLink,
		&post.GithubLink, &post.Skills, &post.LinkedIn, &post.Instagram,
		&post.Contact, &post.MediaType,
	)
	if err != nil {
		return nil, err
	}

	if createDate.Valid {
		post.CreateDate = &createDate.Time
	}
	return &post, nil
}
