package bootstrap

import (
	"linenhire/internal/infra/mail"
	"linenhire/internal/pkg/config"
	"linenhire/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Mailer)),
		),
	),
)

func NewMailer(cfg config.Config) *mail.SMTPMailer {
	return mail.NewSMTPMailer(cfg.Mail.SendTimeout)
}
