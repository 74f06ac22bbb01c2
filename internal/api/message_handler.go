package api

import (
	"net/http"

	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MessageHandler handles contact-form endpoints
type MessageHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(services *service.Services, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		services: services,
		log:      log.With().Str("handler", "message").Logger(),
	}
}

// Create handles POST /message/new
// Public: visitors send messages without an account.
func (h *MessageHandler) Create(c *gin.Context) {
	var in models.MessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	msg, err := h.services.Message.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListByReceiver handles GET /messages/:id where :id is the receiving user.
// Users read only their own inbox; admins read any.
func (h *MessageHandler) ListByReceiver(c *gin.Context) {
	receiverID := c.Param("id")
	user := currentUser(c)
	if user.ID != receiverID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot read another user's messages"})
		return
	}

	messages, err := h.services.Message.ListByReceiver(c.Request.Context(), receiverID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
