// Package mailer delivers account verification codes.
package mailer

import (
	"context"
	"fmt"
	"html"

	"github.com/prperemyshlev/vidverse/internal/config"
	"go.uber.org/zap"
)

const verificationSubject = "Vidverse Verification Code"

// Mailer sends transactional email
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, username, code string) error
}

// New returns the mailer selected by cfg.Driver
func New(cfg config.MailConfig, logger *zap.Logger) (Mailer, error) {
	switch cfg.Driver {
	case "smtp":
		return NewSMTPMailer(cfg, logger)
	case "log", "":
		return NewLogMailer(logger), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
	}
}

func verificationBody(username, code string) (htmlBody, textBody string) {
	htmlBody = fmt.Sprintf("<p>Hi %s,</p><p>your otp is <strong>%s</strong>. It expires in one hour.</p>",
		html.EscapeString(username), html.EscapeString(code))
	textBody = fmt.Sprintf("Hi %s,\n\nyour otp is %s. It expires in one hour.\n", username, code)
	return htmlBody, textBody
}

// LogMailer writes codes to the log instead of sending them; meant for development
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger.Named("mailer")}
}

func (m *LogMailer) SendVerificationCode(_ context.Context, to, username, code string) error {
	m.logger.Info("Verification code issued",
		zap.String("to", to),
		zap.String("username", username),
		zap.String("code", code),
	)
	return nil
}
