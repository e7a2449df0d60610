// Package notification delivers out-of-band messages to users.
package notification

import (
	"context"
	"time"

	"github.com/wneessen/go-mail"

	"tours/config"
	"tours/internal/domain/service"
	"tours/internal/errors"
)

const defaultMailTimeout = 10 * time.Second

// mailSender is the part of *mail.Client the mailer relies on.
type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type smtpMailer struct {
	from   string
	sender mailSender
}

// NewSMTPMailer creates a mailer that relays through the configured SMTP server.
func NewSMTPMailer(cfg *config.MailConfig) (service.Mailer, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, errors.New("mail host must be provided")
	}
	if cfg.From == "" {
		return nil, errors.New("mail sender must be provided")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultMailTimeout
	}

	opts := []mail.Option{
		mail.WithTimeout(timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
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
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{from: cfg.From, sender: client}, nil
}

// Send writes a plain-text message to the relay. Dialing and delivery stop when
// ctx is done or the configured timeout passes.
func (m *smtpMailer) Send(ctx context.Context, email *service.Email) error {
	msg, err := m.compose(email)
	if err != nil {
		return err
	}

	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrapf(err, "send mail to %s", email.To)
	}

	return nil
}

func (m *smtpMailer) compose(email *service.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, errors.Wrapf(err, "invalid sender %q", m.from)
	}
	if err := msg.To(email.To); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient %q", email.To)
	}
	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, email.Body)

	return msg, nil
}
