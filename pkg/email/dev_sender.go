package email

import (
	"context"
	"log/slog"
)

// DevSender implements EmailSender for local development by logging emails
// instead of sending them.
type DevSender struct {
	log *slog.Logger
}

// NewDevSender creates a development email sender.
func NewDevSender(log *slog.Logger) EmailSender {
	return &DevSender{log: log}
}

// SendEmail logs the email parameters at info level.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	d.log.InfoContext(ctx, "dev email sender",
		slog.String("send_to", params.SendTo),
		slog.String("subject", params.Subject),
		slog.String("tag", params.Tag),
		slog.String("body_html", params.BodyHTML),
	)
	return nil
}
