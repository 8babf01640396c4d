package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCustomer   = errors.New("customer name and email are required")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrStatusFinalized   = errors.New("booking status is already finalized")
	ErrInvalidTransition = errors.New("pending is not a valid transition target")
)

// Customer is the contact block captured on the final wizard step.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Zip     string
}

func NewCustomer(name, email, phone, address, city, zip string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return Customer{}, ErrInvalidCustomer
	}
	return Customer{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
		City:    strings.TrimSpace(city),
		Zip:     strings.TrimSpace(zip),
	}, nil
}

// Booking is the durable record persisted once the wizard's request passes
// every validation. The ephemeral in-flight request never touches storage;
// nothing is written until NewBooking succeeds.
type Booking struct {
	id        uuid.UUID
	productID uuid.UUID
	interval  Interval
	quantity  int32
	customer  Customer
	price     decimal.Decimal
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking re-runs the interval gate even when the wizard already checked
// it, then prices the stay server-side. Quantity must arrive resolved
// (ResolveQuantity), so it is ≥ 1 by construction.
func NewBooking(
	productID uuid.UUID,
	iv Interval,
	quantity int32,
	customer Customer,
	unitPrice *decimal.Decimal,
) (*Booking, error) {
	if err := ValidateInterval(iv.Start(), iv.End()); err != nil {
		return nil, err
	}
	if customer.Name == "" || customer.Email == "" {
		return nil, ErrInvalidCustomer
	}

	return &Booking{
		id:        uuid.New(),
		productID: productID,
		interval:  iv,
		quantity:  quantity,
		customer:  customer,
		price:     TotalPrice(iv.Hours(), unitPrice, quantity),
		status:    StatusPending,
	}, nil
}

func ReconstructBooking(
	id, productID uuid.UUID,
	iv Interval,
	quantity int32,
	customer Customer,
	price decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		productID: productID,
		interval:  iv,
		quantity:  quantity,
		customer:  customer,
		price:     price,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// TransitionTo moves a pending booking to confirmed or cancelled. Both
// targets are terminal; an explicit admin action is the only way here.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if next == StatusPending {
		return ErrInvalidTransition
	}
	if b.status.IsTerminal() {
		return ErrStatusFinalized
	}
	b.status = next
	return nil
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) ProductID() uuid.UUID   { return b.productID }
func (b *Booking) Interval() Interval     { return b.interval }
func (b *Booking) Quantity() int32        { return b.quantity }
func (b *Booking) Customer() Customer     { return b.customer }
func (b *Booking) Price() decimal.Decimal { return b.price }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
