package commands

import (
	"context"
	"log/slog"
	"strings"
)

// renderTemplate substitutes {{key}} placeholders. Unknown placeholders are
// left in place so a typo in a stored template is visible in the delivered
// mail rather than silently dropped.
func renderTemplate(tmpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// notifier sends templated admin/customer mails. Every path is best effort:
// a missing config or an SMTP failure is logged and swallowed so the
// triggering write always succeeds.
type notifier struct {
	mailConfigRepo MailConfigRepository
	mailer         Mailer
	enabled        bool
}

func newNotifier(mailConfigRepo MailConfigRepository, mailer Mailer, enabled bool) *notifier {
	return &notifier{mailConfigRepo: mailConfigRepo, mailer: mailer, enabled: enabled}
}

func (n *notifier) bookingCreated(ctx context.Context, vars map[string]string, customerEmail string) {
	n.send(ctx, customerEmail, vars, func(s *MailSettings) (string, string, string, string) {
		return s.BookingAdminSubject, s.BookingAdminBody, s.BookingCustomerSubject, s.BookingCustomerBody
	})
}

func (n *notifier) querySubmitted(ctx context.Context, vars map[string]string, customerEmail string) {
	n.send(ctx, customerEmail, vars, func(s *MailSettings) (string, string, string, string) {
		return s.QueryAdminSubject, s.QueryAdminBody, s.QueryCustomerSubject, s.QueryCustomerBody
	})
}

func (n *notifier) send(
	ctx context.Context,
	customerEmail string,
	vars map[string]string,
	templates func(*MailSettings) (adminSubject, adminBody, customerSubject, customerBody string),
) {
	if !n.enabled {
		return
	}
	settings, err := n.mailConfigRepo.Get(ctx)
	if err != nil {
		slog.Warn("mail settings unavailable, skipping notification", "error", err)
		return
	}
	if settings == nil || settings.Host == "" || settings.AdminEmail == "" {
		slog.Debug("mail not configured, skipping notification")
		return
	}

	adminSubject, adminBody, customerSubject, customerBody := templates(settings)

	admin := MailMessage{
		To:      settings.AdminEmail,
		Subject: renderTemplate(adminSubject, vars),
		HTML:    renderTemplate(adminBody, vars),
	}
	if err := n.mailer.Send(ctx, *settings, admin); err != nil {
		slog.Warn("admin notification failed", "to", admin.To, "error", err)
	}

	if customerEmail == "" || customerSubject == "" {
		return
	}
	customer := MailMessage{
		To:      customerEmail,
		Subject: renderTemplate(customerSubject, vars),
		HTML:    renderTemplate(customerBody, vars),
	}
	if err := n.mailer.Send(ctx, *settings, customer); err != nil {
		slog.Warn("customer notification failed", "to", customer.To, "error", err)
	}
}
