// Package mail delivers transactional e-mail over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// ErrSendingEmail indicates that message delivery to the SMTP server failed.
var ErrSendingEmail = errors.New("error sending email")

// Sender delivers an HTML message to a single recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPSender is the production [Sender] backed by an SMTP client.
type SMTPSender struct {
	client *gomail.Client
	from   string
	logger *logger.Logger
}

// NewSMTPSender constructs an [SMTPSender] from mail configuration. The
// underlying client dials lazily, so a misconfigured server surfaces on the
// first Send rather than at startup.
func NewSMTPSender(cfg config.Mail, logger *logger.Logger) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating SMTP client: %w", err)
	}

	logger.Debug().Str("host", cfg.Host).Int("port", cfg.Port).Msg("SMTP sender created")
	return &SMTPSender{
		client: client,
		from:   cfg.From,
		logger: logger,
	}, nil
}

// Send composes an HTML message and delivers it synchronously.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	log := logger.FromContext(ctx)

	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("func", "*SMTPSender.Send").Msg("failed to deliver email")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	return nil
}

// ResetPasswordEmail renders the subject and HTML body of a password-reset
// message containing the one-time reset link.
func ResetPasswordEmail(resetURL string) (subject, body string) {
	subject = "Your password reset token (valid for only 30 minutes)"
	body = fmt.Sprintf(`<p>Forgot your password? Submit a request with your new password to: <a href=%q>%s</a></p><p>If you didn't forget your password, please ignore this email.</p>`, resetURL, resetURL)
	return subject, body
}
