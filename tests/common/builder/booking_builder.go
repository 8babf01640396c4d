//go:build unit || e2e

package builder

import (
	"time"

	reqdto "linenhire/internal/handler/dto/request"
	"linenhire/internal/usecase/commands"
	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ProductID    uuid.UUID
	ProductTitle string
	StartDate    string
	StartTime    string
	EndDate      string
	EndTime      string
	Quantity     int32
	Name         string
	Email        string
	Phone        string
	Address      string
	City         string
	Zip          string
	Price        decimal.Decimal
	Status       string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ProductID:    uuid.New(),
		ProductTitle: "Table Linen Set",
		StartDate:    "2026-06-01",
		StartTime:    "10:00",
		EndDate:      "2026-06-03",
		EndTime:      "10:00",
		Quantity:     2,
		Name:         "Jane Smith",
		Email:        "jane@example.com",
		Phone:        "07700900000",
		Address:      "1 High Street",
		City:         "London",
		Zip:          "SW1A 1AA",
		Price:        decimal.RequireFromString("1200.00"),
		Status:       "pending",
	}
}

func (b *BookingBuilder) BuildQuoteDTO() reqdto.QuoteBookingRequest {
	return reqdto.QuoteBookingRequest{
		ProductID: b.ProductID,
		StartDate: b.StartDate,
		StartTime: b.StartTime,
		EndDate:   b.EndDate,
		EndTime:   b.EndTime,
		Quantity:  b.Quantity,
	}
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ProductID: b.ProductID,
		StartDate: b.StartDate,
		StartTime: b.StartTime,
		EndDate:   b.EndDate,
		EndTime:   b.EndTime,
		Quantity:  b.Quantity,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Address:   b.Address,
		City:      b.City,
		Zip:       b.Zip,
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	start, _ := time.Parse("2006-01-02 15:04", b.StartDate+" "+b.StartTime)
	end, _ := time.Parse("2006-01-02 15:04", b.EndDate+" "+b.EndTime)
	now := time.Now().UTC().Truncate(time.Second)

	return &queries.BookingView{
		ID:            uuid.New(),
		ProductID:     b.ProductID,
		ProductTitle:  b.ProductTitle,
		StartAt:       start.UTC(),
		EndAt:         end.UTC(),
		Quantity:      b.Quantity,
		CustomerName:  b.Name,
		CustomerEmail: b.Email,
		CustomerPhone: b.Phone,
		Address:       b.Address,
		City:          b.City,
		Zip:           b.Zip,
		Price:         b.Price,
		Status:        b.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) BuildSnapshot(unitPrice string) *commands.ProductSnapshot {
	price := decimal.RequireFromString(unitPrice)
	return &commands.ProductSnapshot{
		ID:        b.ProductID,
		Title:     b.ProductTitle,
		UnitPrice: &price,
		IsActive:  true,
	}
}

func (b *BookingBuilder) WithSchedule(startDate, startTime, endDate, endTime string) *BookingBuilder {
	b.StartDate = startDate
	b.StartTime = startTime
	b.EndDate = endDate
	b.EndTime = endTime
	return b
}

func (b *BookingBuilder) WithQuantity(q int32) *BookingBuilder {
	b.Quantity = q
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}
