package request

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// productPayload is shared between create and update; both carry the full
// editable field set.
type productPayload struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	UnitPrice     *string    `json:"unit_price,omitempty"`
	FixedQuantity *int32     `json:"fixed_quantity,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	IsActive      bool       `json:"is_active"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
}

// UnitPriceDecimal parses the price string. nil or blank means the product
// has no hourly rate (a free consultation item).
func (p productPayload) UnitPriceDecimal() (*decimal.Decimal, error) {
	if p.UnitPrice == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(*p.UnitPrice)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type CreateProductRequest struct {
	productPayload
}

type UpdateProductRequest struct {
	productPayload
}

type CreateCategoryRequest struct {
	Title      string `json:"title" binding:"required"`
	ImageRatio string `json:"image_ratio" binding:"required"`
}
