package readstore

import (
	"context"

	"linenhire/internal/infra"
	"linenhire/internal/pkg/pgconv"
	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) queries.BookingReadStore {
	return &BookingReadStore{db: db}
}

const selectBookingViewSQL = `
SELECT b.id, b.product_id, p.title AS product_title,
       b.start_at, b.end_at, b.quantity,
       b.customer_name, b.customer_email, b.customer_phone,
       b.address, b.city, b.zip, b.price, b.status,
       b.created_at, b.updated_at
FROM bookings b
JOIN products p ON p.id = b.product_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, selectBookingViewSQL+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr("failed to find booking by ID", err)
		}
		return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return scanBookingView(rows)
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, selectBookingViewSQL+` ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return views, nil
}

const countBookingsByStatusSQL = `
SELECT count(*),
       count(*) FILTER (WHERE status = 'pending'),
       count(*) FILTER (WHERE status = 'confirmed'),
       count(*) FILTER (WHERE status = 'cancelled')
FROM bookings`

func (r *BookingReadStore) CountByStatus(ctx context.Context) (*queries.BookingStats, error) {
	var stats queries.BookingStats
	err := r.db.QueryRow(ctx, countBookingsByStatusSQL).Scan(
		&stats.Total, &stats.Pending, &stats.Confirmed, &stats.Cancelled,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}
	return &stats, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		startAt   pgtype.Timestamptz
		endAt     pgtype.Timestamptz
		price     pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ProductID, &view.ProductTitle,
		&startAt, &endAt, &view.Quantity,
		&view.CustomerName, &view.CustomerEmail, &view.CustomerPhone,
		&view.Address, &view.City, &view.Zip, &price, &view.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking row", err)
	}

	priceDec, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid price", err)
	}

	view.StartAt = pgconv.TimeFromPgtype(startAt)
	view.EndAt = pgconv.TimeFromPgtype(endAt)
	view.Price = priceDec
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
