package commands

import (
	"context"

	reqdto "linenhire/internal/handler/dto/request"
	"linenhire/internal/pkg/errs"
)

type MailConfigCommands interface {
	Update(ctx context.Context, req reqdto.UpdateMailConfigRequest) error
}

type mailConfigCommandsImpl struct {
	mailConfigRepo MailConfigRepository
}

func NewMailConfigCommands(mailConfigRepo MailConfigRepository) MailConfigCommands {
	return &mailConfigCommandsImpl{mailConfigRepo: mailConfigRepo}
}

// Update writes the singleton SMTP row. The password is only replaced when
// the request carries a non-empty one; the settings form never echoes the
// stored password back, so an empty field means "keep".
func (m *mailConfigCommandsImpl) Update(ctx context.Context, req reqdto.UpdateMailConfigRequest) error {
	settings := MailSettings{
		Host:                   req.Host,
		Port:                   req.Port,
		Username:               req.Username,
		Password:               req.Password,
		FromEmail:              req.FromEmail,
		SenderName:             req.SenderName,
		AdminEmail:             req.AdminEmail,
		QueryAdminSubject:      req.QueryAdminSubject,
		QueryAdminBody:         req.QueryAdminBody,
		QueryCustomerSubject:   req.QueryCustomerSubject,
		QueryCustomerBody:      req.QueryCustomerBody,
		BookingAdminSubject:    req.BookingAdminSubject,
		BookingAdminBody:       req.BookingAdminBody,
		BookingCustomerSubject: req.BookingCustomerSubject,
		BookingCustomerBody:    req.BookingCustomerBody,
	}

	if settings.Password == "" {
		current, err := m.mailConfigRepo.Get(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if current != nil {
			settings.Password = current.Password
		}
	}

	if err := m.mailConfigRepo.Upsert(ctx, settings); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}
