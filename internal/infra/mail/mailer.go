package mail

import (
	"context"
	"time"

	"linenhire/internal/pkg/errs"
	"linenhire/internal/usecase/commands"

	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers through whatever SMTP server the back office has
// configured. Connection details travel with each call because the admin can
// change them at runtime; nothing is cached here.
type SMTPMailer struct {
	timeout time.Duration
}

func NewSMTPMailer(timeout time.Duration) *SMTPMailer {
	return &SMTPMailer{timeout: timeout}
}

func (m *SMTPMailer) Send(ctx context.Context, settings commands.MailSettings, msg commands.MailMessage) error {
	message := gomail.NewMessage()
	from := settings.FromEmail
	if settings.SenderName != "" {
		from = message.FormatAddress(settings.FromEmail, settings.SenderName)
	}
	message.SetHeader("From", from)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/html", msg.HTML)

	dialer := gomail.NewDialer(settings.Host, int(settings.Port), settings.Username, settings.Password)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	// gomail has no context support; bound it ourselves.
	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(message)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errs.Wrap(err, "smtp send failed")
		}
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "smtp send timed out")
	}
}
