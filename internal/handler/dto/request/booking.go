package request

import (
	"github.com/google/uuid"
)

// QuoteBookingRequest carries the wizard's current selection. Date and time
// arrive as the raw picker strings (2006-01-02 and 15:04); parsing happens
// in the domain so the quote and submit paths cannot drift apart.
type QuoteBookingRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	EndTime   string    `json:"end_time" binding:"required"`
	Quantity  int32     `json:"quantity"`
}

type CreateBookingRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	EndTime   string    `json:"end_time" binding:"required"`
	Quantity  int32     `json:"quantity"`
	Name      string    `json:"name" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Zip       string    `json:"zip"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
