package commands

import (
	"context"

	"linenhire/internal/domain/product"
	reqdto "linenhire/internal/handler/dto/request"
	"linenhire/internal/infra"
	"linenhire/internal/pkg/errs"
	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidPrice = errs.New("invalid unit price")

type ProductCommands interface {
	Create(ctx context.Context, req reqdto.CreateProductRequest) (*queries.ProductView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) (*queries.ProductView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productCommandsImpl struct {
	productRepo    ProductRepository
	productQueries queries.ProductQueries
}

func NewProductCommands(productRepo ProductRepository, productQueries queries.ProductQueries) ProductCommands {
	return &productCommandsImpl{
		productRepo:    productRepo,
		productQueries: productQueries,
	}
}

func (p *productCommandsImpl) Create(ctx context.Context, req reqdto.CreateProductRequest) (*queries.ProductView, error) {
	unitPrice, err := req.UnitPriceDecimal()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPrice)
	}

	entity, err := product.NewProduct(
		req.Title,
		req.Description,
		unitPrice,
		req.FixedQuantity,
		req.ImageURL,
		req.IsActive,
		req.CategoryID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := p.productRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return p.productQueries.GetByID(ctx, id)
}

func (p *productCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) (*queries.ProductView, error) {
	unitPrice, err := req.UnitPriceDecimal()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPrice)
	}

	entity, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	if err := entity.Update(
		req.Title,
		req.Description,
		unitPrice,
		req.FixedQuantity,
		req.ImageURL,
		req.IsActive,
		req.CategoryID,
	); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := p.productRepo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return p.productQueries.GetByID(ctx, id)
}

func (p *productCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.productRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrProductNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}
