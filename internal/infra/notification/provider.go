package notification

import (
	"log/slog"

	"tours/config"
	"tours/internal/domain/service"

	"go.uber.org/fx"
)

// MailerParams holds dependencies for selecting a mailer.
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer picks SMTP delivery when a host is configured and logging otherwise.
func NewMailer(params MailerParams) (service.Mailer, error) {
	if params.Config.Mail == nil || params.Config.Mail.Host == "" {
		params.Logger.Warn("Mail host not configured, emails will be logged")

		return NewLogMailer(params.Logger), nil
	}

	return NewSMTPMailer(params.Config.Mail)
}
