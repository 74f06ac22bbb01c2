package api

import (
	"net/http"

	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PortfolioHandler handles portfolio endpoints
type PortfolioHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(services *service.Services, log zerolog.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		services: services,
		log:      log.With().Str("handler", "portfolio").Logger(),
	}
}

// ListConsolidated handles GET /portfolio/all
// Returns one consolidated card per user.
func (h *PortfolioHandler) ListConsolidated(c *gin.Context) {
	profiles, err := h.services.Portfolio.ListConsolidated(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// ListByUser handles GET /portfolio/user/:userId
// Returns the user's raw facts, unconsolidated.
func (h *PortfolioHandler) ListByUser(c *gin.Context) {
	facts, err := h.services.Portfolio.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, facts)
}

// Create handles POST /portfolio/add
func (h *PortfolioHandler) Create(c *gin.Context) {
	var in models.PortfolioInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fact, err := h.services.Portfolio.Create(c.Request.Context(), currentUser(c), &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fact)
}

// Update handles PUT /portfolio/update/:id
func (h *PortfolioHandler) Update(c *gin.Context) {
	var in models.PortfolioInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fact, err := h.services.Portfolio.Update(c.Request.Context(), currentUser(c), c.Param("id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fact)
}

// Delete handles DELETE /portfolio/delete/:id
func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.services.Portfolio.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "portfolio deleted"})
}
