package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/blogfolio-api/internal/config"
	"github.com/rs/zerolog"
)

// Mailer sends notification mail. Implementations must not block the caller
// on network I/O.
type Mailer interface {
	Send(to, replyTo, subject, htmlBody string)
}

// smtpMailer delivers mail over plain SMTP with STARTTLS negotiated by the
// net/smtp client. Delivery runs on a goroutine per message; failures are
// logged and dropped since contact mail is best-effort.
type smtpMailer struct {
	cfg config.SMTPConfig
	log zerolog.Logger
}

// NewSMTPMailer builds a Mailer from SMTP settings. With no host configured
// it still returns a working Mailer that only logs, so the message flow
// works in environments without mail credentials.
func NewSMTPMailer(cfg config.SMTPConfig, log zerolog.Logger) Mailer {
	return &smtpMailer{
		cfg: cfg,
		log: log.With().Str("component", "mailer").Logger(),
	}
}

func (m *smtpMailer) Send(to, replyTo, subject, htmlBody string) {
	if m.cfg.Host == "" {
		m.log.Info().Str("to", to).Str("subject", subject).Msg("SMTP not configured, skipping mail delivery")
		return
	}

	go func() {
		var msg strings.Builder
		fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
		fmt.Fprintf(&msg, "To: %s\r\n", to)
		if replyTo != "" {
			fmt.Fprintf(&msg, "Reply-To: %s\r\n", replyTo)
		}
		fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
		msg.WriteString("MIME-Version: 1.0\r\n")
		msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(htmlBody)

		addr := m.cfg.Host + ":" + m.cfg.Port
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
			m.log.Error().Err(err).Str("to", to).Msg("Failed to send mail")
			return
		}
		m.log.Info().Str("to", to).Str("subject", subject).Msg("Mail sent")
	}()
}
