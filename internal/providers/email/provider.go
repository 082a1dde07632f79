// Package email delivers rendered documents to recipients.
package email

import "context"

// Attachment is one document attached to an outgoing message.
type Attachment struct {
	Filename    string
	ContentType string
	Bytes       []byte
}

type Provider interface {
	Send(ctx context.Context, to []string, subject string, htmlBody string) error
	SendAttachment(ctx context.Context, to []string, subject string, htmlBody string, att Attachment) error
}

// NoOpProvider is used when no SMTP host is configured; sends succeed
// silently so document flows keep working in development.
type NoOpProvider struct{}

func (p *NoOpProvider) Send(ctx context.Context, to []string, subject string, htmlBody string) error {
	return nil
}

func (p *NoOpProvider) SendAttachment(ctx context.Context, to []string, subject string, htmlBody string, att Attachment) error {
	return nil
}
