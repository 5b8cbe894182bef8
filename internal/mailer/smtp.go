package mailer

import (
	"context"
	"fmt"

	"github.com/prperemyshlev/vidverse/internal/config"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SMTPMailer sends mail through an SMTP relay
type SMTPMailer struct {
	client *mail.Client
	from   string
	logger *zap.Logger
}

// NewSMTPMailer builds an SMTP client; no connection is opened until the first send
func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPMailer{
		client: client,
		from:   cfg.From,
		logger: logger.Named("mailer"),
	}, nil
}

func (m *SMTPMailer) SendVerificationCode(ctx context.Context, to, username, code string) error {
	msg, err := m.verificationMessage(to, username, code)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	m.logger.Debug("Verification email sent", zap.String("to", to))
	return nil
}

func (m *SMTPMailer) verificationMessage(to, username, code string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(verificationSubject)

	htmlBody, textBody := verificationBody(username, code)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, textBody)
	return msg, nil
}
