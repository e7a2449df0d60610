package service

import "context"

// Email is a plain-text message to a single recipient.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers emails out of band.
type Mailer interface {
	Send(ctx context.Context, email *Email) error
}
