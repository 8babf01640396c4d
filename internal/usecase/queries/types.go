package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type ProductView struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	FixedQuantity *int32           `json:"fixed_quantity,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	IsActive      bool             `json:"is_active"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	CategoryTitle *string          `json:"category_title,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type CategoryView struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	ImageRatio string    `json:"image_ratio"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingView struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	ProductTitle  string          `json:"product_title"`
	StartAt       time.Time       `json:"start_at"`
	EndAt         time.Time       `json:"end_at"`
	Quantity      int32           `json:"quantity"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	Zip           string          `json:"zip"`
	Price         decimal.Decimal `json:"price"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type QueryView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SeoSettingView struct {
	ID          uuid.UUID `json:"id"`
	PageRoute   string    `json:"page_route"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    string    `json:"keywords"`
	OgImage     *string   `json:"og_image,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MailConfigView never exposes the SMTP password to the back office; the
// update endpoint treats an empty password as "keep the current one".
type MailConfigView struct {
	ID                     uuid.UUID `json:"id"`
	Host                   string    `json:"host"`
	Port                   int32     `json:"port"`
	Username               string    `json:"username"`
	FromEmail              string    `json:"from_email"`
	SenderName             string    `json:"sender_name"`
	AdminEmail             string    `json:"admin_email"`
	QueryAdminSubject      string    `json:"query_admin_subject"`
	QueryAdminBody         string    `json:"query_admin_body"`
	QueryCustomerSubject   string    `json:"query_customer_subject"`
	QueryCustomerBody      string    `json:"query_customer_body"`
	BookingAdminSubject    string    `json:"booking_admin_subject"`
	BookingAdminBody       string    `json:"booking_admin_body"`
	BookingCustomerSubject string    `json:"booking_customer_subject"`
	BookingCustomerBody    string    `json:"booking_customer_body"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
}

type DashboardStats struct {
	Bookings      BookingStats `json:"bookings"`
	TotalQueries  int64        `json:"total_queries"`
	UnreadQueries int64        `json:"unread_queries"`
	RecentQueries []*QueryView `json:"recent_queries"`
}
