package readstore

import (
	"context"

	"linenhire/internal/infra"
	"linenhire/internal/pkg/pgconv"
	"linenhire/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MailConfigReadStore struct {
	db *pgxpool.Pool
}

func NewMailConfigReadStore(db *pgxpool.Pool) queries.MailConfigReadStore {
	return &MailConfigReadStore{db: db}
}

// The password column is deliberately not selected here.
const selectMailConfigViewSQL = `
SELECT id, host, port, username, from_email, sender_name, admin_email,
       query_admin_subject, query_admin_body, query_customer_subject, query_customer_body,
       booking_admin_subject, booking_admin_body, booking_customer_subject, booking_customer_body,
       updated_at
FROM mail_config
LIMIT 1`

func (r *MailConfigReadStore) Find(ctx context.Context) (*queries.MailConfigView, error) {
	var (
		view      queries.MailConfigView
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectMailConfigViewSQL).Scan(
		&view.ID, &view.Host, &view.Port, &view.Username,
		&view.FromEmail, &view.SenderName, &view.AdminEmail,
		&view.QueryAdminSubject, &view.QueryAdminBody,
		&view.QueryCustomerSubject, &view.QueryCustomerBody,
		&view.BookingAdminSubject, &view.BookingAdminBody,
		&view.BookingCustomerSubject, &view.BookingCustomerBody,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load mail settings", err)
	}
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
