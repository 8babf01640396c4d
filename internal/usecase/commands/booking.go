package commands

import (
	"context"

	"linenhire/internal/domain/booking"
	reqdto "linenhire/internal/handler/dto/request"
	"linenhire/internal/infra"
	"linenhire/internal/pkg/clock"
	"linenhire/internal/pkg/errs"
	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound     = errs.New("product not found")
	ErrProductUnavailable  = errs.New("product unavailable")
	ErrInvalidSchedule     = errs.New("invalid schedule")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrInvalidStatusChange = errs.New("invalid status change")
	ErrDomainValidation    = errs.New("domain validation error")
	ErrDatabaseOperation   = errs.New("database operation failed")
)

// QuoteResult mirrors the live price panel: an invalid interval is a normal
// outcome, not an error, so the caller can render the failure inline.
type QuoteResult struct {
	Valid     bool
	ErrorKind string
	Hours     decimal.Decimal
	Price     decimal.Decimal
	Quantity  int32
}

type BookingCommands interface {
	Quote(ctx context.Context, req reqdto.QuoteBookingRequest) (*QuoteResult, error)
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingStatusRequest) error
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	productRepo    ProductRepository
	bookingQueries queries.BookingQueries
	calculator     booking.PriceCalculator
	notifier       *notifier
	clock          clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	productRepo ProductRepository,
	bookingQueries queries.BookingQueries,
	calculator booking.PriceCalculator,
	mailConfigRepo MailConfigRepository,
	mailer Mailer,
	mailEnabled bool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		productRepo:    productRepo,
		bookingQueries: bookingQueries,
		calculator:     calculator,
		notifier:       newNotifier(mailConfigRepo, mailer, mailEnabled),
		clock:          clock,
	}
}

func (b *bookingCommandsImpl) Quote(ctx context.Context, req reqdto.QuoteBookingRequest) (*QuoteResult, error) {
	snapshot, err := b.availableProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	interval, err := booking.NewIntervalFromParts(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		if errs.Is(err, booking.ErrEndBeforeOrEqualStart) {
			return &QuoteResult{Valid: false, ErrorKind: "end_before_start"}, nil
		}
		return &QuoteResult{Valid: false, ErrorKind: "malformed_datetime"}, nil
	}

	quantity := booking.ResolveQuantity(snapshot.FixedQuantity, req.Quantity)
	quote := b.calculator.Quote(interval, snapshot.UnitPrice, quantity)

	return &QuoteResult{
		Valid:    true,
		Hours:    quote.Hours,
		Price:    quote.Price,
		Quantity: quantity,
	}, nil
}

func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	snapshot, err := b.availableProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	// The interval is validated again here regardless of what the quote
	// endpoint said earlier; the two requests are independent.
	interval, err := booking.NewIntervalFromParts(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}

	customer, err := booking.NewCustomer(req.Name, req.Email, req.Phone, req.Address, req.City, req.Zip)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	quantity := booking.ResolveQuantity(snapshot.FixedQuantity, req.Quantity)
	entity, err := booking.NewBooking(snapshot.ID, interval, quantity, customer, snapshot.UnitPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := b.bookingRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	view, err := b.bookingQueries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.notifyBookingCreated(ctx, snapshot, view)
	return view, nil
}

func (b *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingStatusRequest) error {
	next := booking.Status(req.Status)
	if !next.IsValid() {
		return errs.Mark(booking.ErrInvalidStatus, ErrInvalidStatusChange)
	}

	entity, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	if err := entity.TransitionTo(next); err != nil {
		return errs.Mark(err, ErrInvalidStatusChange)
	}

	if err := b.bookingRepo.UpdateStatus(ctx, id, entity.Status()); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func (b *bookingCommandsImpl) availableProduct(ctx context.Context, productID uuid.UUID) (*ProductSnapshot, error) {
	snapshot, err := b.productRepo.Snapshot(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if !snapshot.IsActive {
		return nil, ErrProductUnavailable
	}
	return snapshot, nil
}

func (b *bookingCommandsImpl) notifyBookingCreated(ctx context.Context, snapshot *ProductSnapshot, view *queries.BookingView) {
	vars := map[string]string{
		"name":     view.CustomerName,
		"email":    view.CustomerEmail,
		"phone":    view.CustomerPhone,
		"address":  view.Address,
		"city":     view.City,
		"zip":      view.Zip,
		"product":  snapshot.Title,
		"date":     view.StartAt.Format(booking.DateLayout),
		"time":     view.StartAt.Format(booking.TimeLayout),
		"end_date": view.EndAt.Format(booking.DateLayout),
		"end_time": view.EndAt.Format(booking.TimeLayout),
		"quantity": decimal.NewFromInt32(view.Quantity).String(),
		"hours":    booking.DurationHours(view.StartAt, view.EndAt).String(),
		"price":    view.Price.String(),
	}
	b.notifier.bookingCreated(ctx, vars, view.CustomerEmail)
}
