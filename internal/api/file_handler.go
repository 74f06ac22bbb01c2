package api

import (
	"io"
	"net/http"

	"github.com/blogfolio-api/internal/config"
	"github.com/blogfolio-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// FileHandler handles upload and download endpoints
type FileHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *FileHandler {
	return &FileHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "file").Logger(),
	}
}

// Upload handles POST /file/upload (multipart, field name "file")
func (h *FileHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.Upload.MaxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}

	url, err := h.services.File.Save(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// Download handles GET /file/:filename
func (h *FileHandler) Download(c *gin.Context) {
	file, err := h.services.File.Get(c.Request.Context(), c.Param("filename"))
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, file.Data)
}
