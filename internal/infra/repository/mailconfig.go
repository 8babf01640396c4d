package repository

import (
	"context"

	"linenhire/internal/infra"
	"linenhire/internal/pkg/pgconv"
	"linenhire/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MailConfigRepository manages the singleton SMTP row. There is at most one
// row; Upsert updates it in place or inserts the first one.
type MailConfigRepository struct {
	db *pgxpool.Pool
}

func NewMailConfigRepository(db *pgxpool.Pool) commands.MailConfigRepository {
	return &MailConfigRepository{db: db}
}

const selectMailConfigSQL = `
SELECT id, host, port, username, password, from_email, sender_name, admin_email,
       query_admin_subject, query_admin_body, query_customer_subject, query_customer_body,
       booking_admin_subject, booking_admin_body, booking_customer_subject, booking_customer_body,
       updated_at
FROM mail_config
LIMIT 1`

func (r *MailConfigRepository) Get(ctx context.Context) (*commands.MailSettings, error) {
	var (
		s         commands.MailSettings
		id        uuid.UUID
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectMailConfigSQL).Scan(
		&id, &s.Host, &s.Port, &s.Username, &s.Password, &s.FromEmail, &s.SenderName, &s.AdminEmail,
		&s.QueryAdminSubject, &s.QueryAdminBody, &s.QueryCustomerSubject, &s.QueryCustomerBody,
		&s.BookingAdminSubject, &s.BookingAdminBody, &s.BookingCustomerSubject, &s.BookingCustomerBody,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load mail settings", err)
	}
	s.ID = id
	s.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &s, nil
}

const updateMailConfigSQL = `
UPDATE mail_config SET
	host = $1, port = $2, username = $3, password = $4,
	from_email = $5, sender_name = $6, admin_email = $7,
	query_admin_subject = $8, query_admin_body = $9,
	query_customer_subject = $10, query_customer_body = $11,
	booking_admin_subject = $12, booking_admin_body = $13,
	booking_customer_subject = $14, booking_customer_body = $15,
	updated_at = now()`

const insertMailConfigSQL = `
INSERT INTO mail_config (
	host, port, username, password, from_email, sender_name, admin_email,
	query_admin_subject, query_admin_body, query_customer_subject, query_customer_body,
	booking_admin_subject, booking_admin_body, booking_customer_subject, booking_customer_body
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

func (r *MailConfigRepository) Upsert(ctx context.Context, s commands.MailSettings) error {
	args := []any{
		s.Host, s.Port, s.Username, s.Password,
		s.FromEmail, s.SenderName, s.AdminEmail,
		s.QueryAdminSubject, s.QueryAdminBody,
		s.QueryCustomerSubject, s.QueryCustomerBody,
		s.BookingAdminSubject, s.BookingAdminBody,
		s.BookingCustomerSubject, s.BookingCustomerBody,
	}

	tag, err := r.db.Exec(ctx, updateMailConfigSQL, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update mail settings", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.db.Exec(ctx, insertMailConfigSQL, args...); err != nil {
		return infra.WrapRepoErr("failed to insert mail settings", err)
	}
	return nil
}
