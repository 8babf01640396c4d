package response

import (
	"time"

	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	UnitPrice     *string    `json:"unit_price,omitempty"`
	FixedQuantity *int32     `json:"fixed_quantity,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	IsActive      bool       `json:"is_active"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	CategoryTitle *string    `json:"category_title,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	ImageRatio string    `json:"image_ratio"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromProductView(rm *queries.ProductView) *ProductResponse {
	resp := &ProductResponse{}
	// Everything except the price copies by field name.
	_ = copier.Copy(resp, rm)
	resp.UnitPrice = nil
	if rm.UnitPrice != nil {
		price := rm.UnitPrice.StringFixed(2)
		resp.UnitPrice = &price
	}
	return resp
}

func FromProductViews(rms []*queries.ProductView) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromProductView(rm))
	}
	return out
}

func FromCategoryView(rm *queries.CategoryView) *CategoryResponse {
	resp := &CategoryResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromCategoryViews(rms []*queries.CategoryView) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromCategoryView(rm))
	}
	return out
}
