package response

import (
	"time"

	"linenhire/internal/usecase/commands"
	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
)

// QuoteResponse is the live price panel payload. Hours and price are
// decimal strings ("3.5", "21") so the client never re-rounds them.
type QuoteResponse struct {
	Valid     bool   `json:"valid"`
	ErrorKind string `json:"error_kind,omitempty"`
	Hours     string `json:"hours,omitempty"`
	Price     string `json:"price,omitempty"`
	Quantity  int32  `json:"quantity,omitempty"`
}

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	ProductTitle  string    `json:"product_title"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	Quantity      int32     `json:"quantity"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	Zip           string    `json:"zip"`
	Price         string    `json:"price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromQuoteResult(res *commands.QuoteResult) *QuoteResponse {
	if !res.Valid {
		return &QuoteResponse{Valid: false, ErrorKind: res.ErrorKind}
	}
	return &QuoteResponse{
		Valid:    true,
		Hours:    res.Hours.String(),
		Price:    res.Price.String(),
		Quantity: res.Quantity,
	}
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            rm.ID,
		ProductID:     rm.ProductID,
		ProductTitle:  rm.ProductTitle,
		StartAt:       rm.StartAt,
		EndAt:         rm.EndAt,
		Quantity:      rm.Quantity,
		CustomerName:  rm.CustomerName,
		CustomerEmail: rm.CustomerEmail,
		CustomerPhone: rm.CustomerPhone,
		Address:       rm.Address,
		City:          rm.City,
		Zip:           rm.Zip,
		Price:         rm.Price.StringFixed(2),
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromBookingView(rm))
	}
	return out
}
