package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/blogfolio-api/internal/database"
	"github.com/blogfolio-api/internal/models"
	"github.com/lib/pq"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, name, password_hash, role, picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Name, user.PasswordHash, user.Role, user.Picture,
		user.CreatedAt, time.Now(),
	)
	return err
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, username, name, password_hash, role, picture, created_at, updated_at
		FROM users WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByUsername retrieves a user by username
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, name, password_hash, role, picture, created_at, updated_at
		FROM users WHERE username = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

// GetInfoByIDs retrieves identity summaries for a set of user IDs in one
// query. Unknown IDs are simply absent from the result.
func (r *userRepo) GetInfoByIDs(ctx context.Context, ids []string) ([]models.UserInfo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id, name, picture, username FROM users WHERE id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []models.UserInfo
	for rows.Next() {
		var info models.UserInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Picture, &info.Username); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// List retrieves all users, newest first. Password hashes stay in the struct
// but are never serialized.
func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, username, name, password_hash, role, picture, created_at, updated_at
		FROM users ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash,
			&user.Role, &user.Picture, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// StoreRefreshToken persists an issued refresh token
func (r *userRepo) StoreRefreshToken(ctx context.Context, token, userID string) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, token, userID, time.Now())
	return err
}

func (r *userRepo) scanOne(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash,
		&user.Role, &user.Picture, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
