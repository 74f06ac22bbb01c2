package models

import (
	"time"
)

// Message is a contact-form message addressed to a portfolio owner
type Message struct {
	ID          string    `json:"id" db:"id"`
	SenderName  string    `json:"senderName" db:"sender_name"`
	SenderEmail string    `json:"senderEmail" db:"sender_email"`
	Body        string    `json:"message" db:"message"`
	ReceiverID  string    `json:"receiverId" db:"receiver_id"`
	CreatedAt   time.Time `json:"timestamp" db:"created_at"`
}

// MessageInput is the contact-form payload. OwnerEmail is an optional hint
// for where to forward the message; the service falls back to the receiver's
// portfolio contact email, then the configured default.
type MessageInput struct {
	SenderName  string `json:"senderName" validate:"required"`
	SenderEmail string `json:"senderEmail" validate:"required,email"`
	Body        string `json:"message" validate:"required"`
	ReceiverID  string `json:"receiverId" validate:"required"`
	OwnerEmail  string `json:"ownerEmail"`
}
