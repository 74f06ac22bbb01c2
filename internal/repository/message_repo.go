package repository

import (
	"context"

	"github.com/blogfolio-api/internal/database"
	"github.com/blogfolio-api/internal/models"
)

// messageRepo is the concrete implementation of MessageRepository
type messageRepo struct {
	db *database.DB
}

// NewMessageRepo creates a new message repository
func NewMessageRepo(db *database.DB) MessageRepository {
	return &messageRepo{db: db}
}

// Create inserts a new contact message
func (r *messageRepo) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (id, sender_name, sender_email, message, receiver_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		message.ID, message.SenderName, message.SenderEmail, message.Body,
		message.ReceiverID, message.CreatedAt,
	)
	return err
}

// FindByReceiver retrieves all messages addressed to one user, newest first
func (r *messageRepo) FindByReceiver(ctx context.Context, receiverID string) ([]models.Message, error) {
	query := `
		SELECT id, sender_name, sender_email, message, receiver_id, created_at
		FROM messages WHERE receiver_id = $1 ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var message models.Message
		err := rows.Scan(&message.ID, &message.SenderName, &message.SenderEmail,
			&message.Body, &message.ReceiverID, &message.CreatedAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
