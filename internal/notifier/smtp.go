package notifier

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"gift-shop/pkg/utils"

	"go.uber.org/zap"
)

// SMTPSender delivers mail over plain SMTP with AUTH PLAIN.
type SMTPSender struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPSender(config utils.EmailConfig, log *zap.Logger) *SMTPSender {
	return &SMTPSender{
		config: config,
		log:    log,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.config.Host == "" || s.config.User == "" || s.config.Password == "" {
		return ErrNotConfigured
	}

	from := s.config.From
	if from == "" {
		from = s.config.User
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)

	// net/smtp has no context support; delivery is bounded by the
	// server's own timeouts.
	if err := smtp.SendMail(addr, auth, from, []string{msg.To}, []byte(b.String())); err != nil {
		s.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	s.log.Info("Email sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
