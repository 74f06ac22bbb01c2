package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/blogfolio-api/internal/config"
	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/repository"
	"github.com/rs/zerolog"
)

// fileService is the concrete implementation of FileService
type fileService struct {
	files        repository.FileRepository
	cfg          config.UploadConfig
	queryTimeout time.Duration
	log          zerolog.Logger
}

func newFileService(files repository.FileRepository, cfg config.UploadConfig, queryTimeout time.Duration, log zerolog.Logger) FileService {
	return &fileService{
		files:        files,
		cfg:          cfg,
		queryTimeout: queryTimeout,
		log:          log.With().Str("service", "file").Logger(),
	}
}

// Save stores an uploaded binary under a timestamped name and returns the
// public URL it is retrievable at
func (s *fileService) Save(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("file is empty: %w", ErrInvalidArgument)
	}
	if int64(len(data)) > s.cfg.MaxUploadSize {
		return "", fmt.Errorf("file exceeds %d bytes: %w", s.cfg.MaxUploadSize, ErrInvalidArgument)
	}

	// Prefix with upload time so repeated uploads of the same file never
	// collide; Base strips any path components a client smuggles in
	base := filepath.Base(strings.TrimSpace(originalName))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	name := fmt.Sprintf("%d-blog-%s", time.Now().UnixMilli(), base)

	file := &models.StoredFile{
		Filename:    name,
		ContentType: contentType,
		Data:        data,
		CreatedAt:   time.Now(),
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.files.Save(qctx, file); err != nil {
		return "", storeErr("save file", err)
	}

	s.log.Info().Str("filename", name).Int("bytes", len(data)).Msg("File stored")
	return s.cfg.PublicBaseURL + "/file/" + name, nil
}

// Get retrieves a stored binary by name
func (s *fileService) Get(ctx context.Context, filename string) (*models.StoredFile, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	file, err := s.files.GetByName(qctx, filename)
	if err != nil {
		return nil, storeErr("get file", err)
	}
	if file == nil {
		return nil, fmt.Errorf("file %s: %w", filename, ErrNotFound)
	}
	return file, nil
}
