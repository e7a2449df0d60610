package notification

import (
	"context"
	"log/slog"

	"tours/internal/domain/service"
)

// logMailer records emails instead of sending them. Used when no SMTP relay is configured.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that only logs.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, email *service.Email) error {
	m.logger.InfoContext(ctx, "Email not sent, no mail host configured",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.String("body", email.Body),
	)

	return nil
}
