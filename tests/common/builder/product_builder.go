//go:build unit || e2e

package builder

import (
	"time"

	"linenhire/internal/domain/product"
	reqdto "linenhire/internal/handler/dto/request"
	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	Title         string
	Description   string
	UnitPrice     *string
	FixedQuantity *int32
	ImageURL      *string
	IsActive      bool
	CategoryID    *uuid.UUID
}

func NewProductBuilder() *ProductBuilder {
	price := "25.00"
	return &ProductBuilder{
		Title:       "Damask Tablecloth",
		Description: "White damask tablecloth, 90x90",
		UnitPrice:   &price,
		IsActive:    true,
	}
}

func (p *ProductBuilder) BuildCreateDTO() reqdto.CreateProductRequest {
	var req reqdto.CreateProductRequest
	req.Title = p.Title
	req.Description = p.Description
	req.UnitPrice = p.UnitPrice
	req.FixedQuantity = p.FixedQuantity
	req.ImageURL = p.ImageURL
	req.IsActive = p.IsActive
	req.CategoryID = p.CategoryID
	return req
}

func (p *ProductBuilder) BuildUpdateDTO() reqdto.UpdateProductRequest {
	var req reqdto.UpdateProductRequest
	req.Title = p.Title
	req.Description = p.Description
	req.UnitPrice = p.UnitPrice
	req.FixedQuantity = p.FixedQuantity
	req.ImageURL = p.ImageURL
	req.IsActive = p.IsActive
	req.CategoryID = p.CategoryID
	return req
}

func (p *ProductBuilder) BuildDomain() (*product.Product, error) {
	var unitPrice *decimal.Decimal
	if p.UnitPrice != nil {
		d, err := decimal.NewFromString(*p.UnitPrice)
		if err != nil {
			return nil, err
		}
		unitPrice = &d
	}
	return product.NewProduct(p.Title, p.Description, unitPrice, p.FixedQuantity, p.ImageURL, p.IsActive, p.CategoryID)
}

func (p *ProductBuilder) BuildReadModel() *queries.ProductView {
	var unitPrice *decimal.Decimal
	if p.UnitPrice != nil {
		d := decimal.RequireFromString(*p.UnitPrice)
		unitPrice = &d
	}
	now := time.Now().UTC().Truncate(time.Second)

	return &queries.ProductView{
		ID:            uuid.New(),
		Title:         p.Title,
		Description:   p.Description,
		UnitPrice:     unitPrice,
		FixedQuantity: p.FixedQuantity,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		CategoryID:    p.CategoryID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (p *ProductBuilder) WithoutPrice() *ProductBuilder {
	p.UnitPrice = nil
	return p
}

func (p *ProductBuilder) WithFixedQuantity(q int32) *ProductBuilder {
	p.FixedQuantity = &q
	return p
}

func (p *ProductBuilder) AsInactive() *ProductBuilder {
	p.IsActive = false
	return p
}
