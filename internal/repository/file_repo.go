package repository

import (
	"context"
	"database/sql"

	"github.com/blogfolio-api/internal/database"
	"github.com/blogfolio-api/internal/models"
)

// fileRepo is the concrete implementation of FileRepository
type fileRepo struct {
	db *database.DB
}

// NewFileRepo creates a new file repository
func NewFileRepo(db *database.DB) FileRepository {
	return &fileRepo{db: db}
}

// Save stores an uploaded binary. Re-uploading the same name overwrites.
func (r *fileRepo) Save(ctx context.Context, file *models.StoredFile) error {
	query := `
		INSERT INTO files (filename, content_type, data, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (filename) DO UPDATE SET content_type = $2, data = $3
	`
	_, err := r.db.ExecContext(ctx, query,
		file.Filename, file.ContentType, file.Data, file.CreatedAt,
	)
	return err
}

// GetByName retrieves a stored binary by filename
func (r *fileRepo) GetByName(ctx context.Context, filename string) (*models.StoredFile, error) {
	query := `SELECT filename, content_type, data, created_at FROM files WHERE filename = $1`

	var file models.StoredFile
	err := r.db.QueryRowContext(ctx, query, filename).Scan(
		&file.Filename, &file.ContentType, &file.Data, &file.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}
