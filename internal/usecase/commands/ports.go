package commands

import (
	"context"
	"time"

	"linenhire/internal/domain/booking"
	"linenhire/internal/domain/category"
	"linenhire/internal/domain/product"
	"linenhire/internal/domain/query"
	"linenhire/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSnapshot is the minimal product shape the booking flow needs:
// enough to resolve quantity and price an interval.
type ProductSnapshot struct {
	ID            uuid.UUID
	Title         string
	UnitPrice     *decimal.Decimal
	FixedQuantity *int32
	IsActive      bool
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) (uuid.UUID, error)
	Update(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	Snapshot(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *category.Category) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	// Create persists the booking as a single atomic insert; there is no
	// read-modify-write in the submission path.
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type QueryRepository interface {
	Create(ctx context.Context, q *query.Query) (uuid.UUID, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SeoRepository interface {
	Upsert(ctx context.Context, params UpsertSeoParams) error
}

type UpsertSeoParams struct {
	PageRoute   string
	Title       string
	Description string
	Keywords    string
	OgImage     *string
}

// MailSettings is the full SMTP row, password included. It never leaves
// the command/mailer path; the read side exposes MailConfigView instead.
type MailSettings struct {
	ID                     uuid.UUID
	Host                   string
	Port                   int32
	Username               string
	Password               string
	FromEmail              string
	SenderName             string
	AdminEmail             string
	QueryAdminSubject      string
	QueryAdminBody         string
	QueryCustomerSubject   string
	QueryCustomerBody      string
	BookingAdminSubject    string
	BookingAdminBody       string
	BookingCustomerSubject string
	BookingCustomerBody    string
	UpdatedAt              time.Time
}

type MailConfigRepository interface {
	// Get returns nil without error when mail has never been configured.
	Get(ctx context.Context) (*MailSettings, error)
	Upsert(ctx context.Context, settings MailSettings) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// MailMessage is a rendered, ready-to-send email.
type MailMessage struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, settings MailSettings, msg MailMessage) error
}
