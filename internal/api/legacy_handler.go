package api

import (
	"net/http"

	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// LegacyHandler keeps the old posts endpoints alive for clients that predate
// the blogs table
type LegacyHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewLegacyHandler creates a new LegacyHandler
func NewLegacyHandler(services *service.Services, log zerolog.Logger) *LegacyHandler {
	return &LegacyHandler{
		services: services,
		log:      log.With().Str("handler", "legacy").Logger(),
	}
}

// List handles GET /posts
func (h *LegacyHandler) List(c *gin.Context) {
	posts, err := h.services.Legacy.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Get handles GET /post/:id
func (h *LegacyHandler) Get(c *gin.Context) {
	post, err := h.services.Legacy.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Create handles POST /create
func (h *LegacyHandler) Create(c *gin.Context) {
	var in models.LegacyPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.services.Legacy.Create(c.Request.Context(), currentUser(c), &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Update handles PUT /update/:id
func (h *LegacyHandler) Update(c *gin.Context) {
	var in models.LegacyPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.services.Legacy.Update(c.Request.Context(), currentUser(c), c.Param("id"), &in); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post updated"})
}

// Delete handles DELETE /delete/:id
func (h *LegacyHandler) Delete(c *gin.Context) {
	if err := h.services.Legacy.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
