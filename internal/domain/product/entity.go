package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTitle      = errors.New("product title is required")
	ErrNegativePrice   = errors.New("unit price cannot be negative")
	ErrInvalidFixedQty = errors.New("fixed quantity must be positive")
)

// Product is a hireable line item. UnitPrice is an hourly rate and may be
// absent: a product with no price is presented as a free consultation and
// always quotes at zero. FixedQuantity, when set, overrides the customer's
// quantity choice entirely.
type Product struct {
	id            uuid.UUID
	title         string
	description   string
	unitPrice     *decimal.Decimal
	fixedQuantity *int32
	imageURL      *string
	isActive      bool
	categoryID    *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewProduct(
	title, description string,
	unitPrice *decimal.Decimal,
	fixedQuantity *int32,
	imageURL *string,
	isActive bool,
	categoryID *uuid.UUID,
) (*Product, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if unitPrice != nil && unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if fixedQuantity != nil && *fixedQuantity < 1 {
		return nil, ErrInvalidFixedQty
	}

	return &Product{
		id:            uuid.New(),
		title:         title,
		description:   strings.TrimSpace(description),
		unitPrice:     unitPrice,
		fixedQuantity: fixedQuantity,
		imageURL:      imageURL,
		isActive:      isActive,
		categoryID:    categoryID,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	title, description string,
	unitPrice *decimal.Decimal,
	fixedQuantity *int32,
	imageURL *string,
	isActive bool,
	categoryID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:            id,
		title:         title,
		description:   description,
		unitPrice:     unitPrice,
		fixedQuantity: fixedQuantity,
		imageURL:      imageURL,
		isActive:      isActive,
		categoryID:    categoryID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Update replaces the editable fields, running the same checks as NewProduct.
func (p *Product) Update(
	title, description string,
	unitPrice *decimal.Decimal,
	fixedQuantity *int32,
	imageURL *string,
	isActive bool,
	categoryID *uuid.UUID,
) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if unitPrice != nil && unitPrice.IsNegative() {
		return ErrNegativePrice
	}
	if fixedQuantity != nil && *fixedQuantity < 1 {
		return ErrInvalidFixedQty
	}
	p.title = title
	p.description = strings.TrimSpace(description)
	p.unitPrice = unitPrice
	p.fixedQuantity = fixedQuantity
	p.imageURL = imageURL
	p.isActive = isActive
	p.categoryID = categoryID
	return nil
}

// IsFreeConsultation reports whether the product carries no hourly rate and
// no fixed quantity, the shape the site renders as "free consultation".
func (p *Product) IsFreeConsultation() bool {
	return p.unitPrice == nil && p.fixedQuantity == nil
}

func (p *Product) ID() uuid.UUID               { return p.id }
func (p *Product) Title() string               { return p.title }
func (p *Product) Description() string         { return p.description }
func (p *Product) UnitPrice() *decimal.Decimal { return p.unitPrice }
func (p *Product) FixedQuantity() *int32       { return p.fixedQuantity }
func (p *Product) ImageURL() *string           { return p.imageURL }
func (p *Product) IsActive() bool              { return p.isActive }
func (p *Product) CategoryID() *uuid.UUID      { return p.categoryID }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
