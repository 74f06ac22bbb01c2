package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/repository"
	"github.com/blogfolio-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// messageService is the concrete implementation of MessageService
type messageService struct {
	messages         repository.MessageRepository
	portfolios       repository.PortfolioRepository
	mailer           Mailer
	defaultRecipient string
	validate         *validation.Validator
	queryTimeout     time.Duration
	log              zerolog.Logger
}

func newMessageService(messages repository.MessageRepository, portfolios repository.PortfolioRepository, mailer Mailer, defaultRecipient string, validate *validation.Validator, queryTimeout time.Duration, log zerolog.Logger) MessageService {
	return &messageService{
		messages:         messages,
		portfolios:       portfolios,
		mailer:           mailer,
		defaultRecipient: defaultRecipient,
		validate:         validate,
		queryTimeout:     queryTimeout,
		log:              log.With().Str("service", "message").Logger(),
	}
}

// Create stores a contact-form message and forwards it by mail. The store
// write decides success; mail delivery is fire-and-forget.
func (s *messageService) Create(ctx context.Context, in *models.MessageInput) (*models.Message, error) {
	if err := validationErr(s.validate.ValidateMessage(in)); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:          uuid.New().String(),
		SenderName:  in.SenderName,
		SenderEmail: in.SenderEmail,
		Body:        in.Body,
		ReceiverID:  in.ReceiverID,
		CreatedAt:   time.Now(),
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.messages.Create(qctx, msg); err != nil {
		return nil, storeErr("create message", err)
	}

	recipient := s.resolveRecipient(qctx, in)
	if recipient != "" {
		subject := fmt.Sprintf("New message from %s", in.SenderName)
		s.mailer.Send(recipient, in.SenderEmail, subject, renderMessageMail(msg))
	} else {
		s.log.Warn().Str("receiver_id", in.ReceiverID).Msg("No mail recipient resolved for message")
	}

	s.log.Info().Str("id", msg.ID).Str("receiver_id", msg.ReceiverID).Msg("Message created")
	return msg, nil
}

// ListByReceiver returns all messages addressed to one portfolio owner
func (s *messageService) ListByReceiver(ctx context.Context, receiverID string) ([]models.Message, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	messages, err := s.messages.FindByReceiver(qctx, receiverID)
	if err != nil {
		return nil, storeErr("query messages", err)
	}
	return messages, nil
}

// resolveRecipient picks the forwarding address: the caller-supplied owner
// email when it looks real, else the receiver's portfolio contact email,
// else the configured default. Old clients send the literal strings "null"
// and "undefined" in the ownerEmail field.
func (s *messageService) resolveRecipient(ctx context.Context, in *models.MessageInput) string {
	owner := strings.TrimSpace(in.OwnerEmail)
	if strings.Contains(owner, "@") && owner != "null" && owner != "undefined" {
		return owner
	}

	email, err := s.portfolios.FindContactEmail(ctx, in.ReceiverID)
	if err != nil {
		s.log.Warn().Err(err).Str("receiver_id", in.ReceiverID).Msg("Contact email lookup failed")
	} else if email != "" {
		return email
	}

	return s.defaultRecipient
}

func renderMessageMail(msg *models.Message) string {
	var b strings.Builder
	b.WriteString("<h3>You have a new message on your portfolio</h3>")
	fmt.Fprintf(&b, "<p><b>From:</b> %s (%s)</p>", html.EscapeString(msg.SenderName), html.EscapeString(msg.SenderEmail))
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(msg.Body))
	return b.String()
}
