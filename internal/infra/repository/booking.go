package repository

import (
	"context"

	"linenhire/internal/domain/booking"
	"linenhire/internal/infra"
	"linenhire/internal/pkg/pgconv"
	"linenhire/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) commands.BookingRepository {
	return &BookingRepository{db: db}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, product_id, start_at, end_at, quantity,
	customer_name, customer_email, customer_phone,
	address, city, zip, price, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	customer := b.Customer()
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertBookingSQL,
		b.ID(),
		b.ProductID(),
		pgconv.TimeToPgtype(b.Interval().Start()),
		pgconv.TimeToPgtype(b.Interval().End()),
		b.Quantity(),
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.City,
		customer.Zip,
		pgconv.DecimalToNumeric(b.Price()),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

const selectBookingSQL = `
SELECT id, product_id, start_at, end_at, quantity,
       customer_name, customer_email, customer_phone,
       address, city, zip, price, status, created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID uuid.UUID
		productID uuid.UUID
		startAt   pgtype.Timestamptz
		endAt     pgtype.Timestamptz
		quantity  int32
		name      string
		email     string
		phone     string
		address   string
		city      string
		zip       string
		price     pgtype.Numeric
		status    string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectBookingSQL, id).Scan(
		&bookingID, &productID, &startAt, &endAt, &quantity,
		&name, &email, &phone, &address, &city, &zip,
		&price, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	interval, err := booking.NewInterval(pgconv.TimeFromPgtype(startAt), pgconv.TimeFromPgtype(endAt))
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid interval", err)
	}
	priceDec, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid price", err)
	}

	return booking.ReconstructBooking(
		bookingID,
		productID,
		interval,
		quantity,
		booking.Customer{Name: name, Email: email, Phone: phone, Address: address, City: city, Zip: zip},
		priceDec,
		booking.Status(status),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
