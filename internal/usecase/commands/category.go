package commands

import (
	"context"

	"linenhire/internal/domain/category"
	reqdto "linenhire/internal/handler/dto/request"
	"linenhire/internal/infra"
	"linenhire/internal/pkg/errs"
	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrCategoryNotFound = errs.New("category not found")

type CategoryCommands interface {
	Create(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryCommandsImpl struct {
	categoryRepo    CategoryRepository
	categoryQueries queries.CategoryQueries
}

func NewCategoryCommands(categoryRepo CategoryRepository, categoryQueries queries.CategoryQueries) CategoryCommands {
	return &categoryCommandsImpl{
		categoryRepo:    categoryRepo,
		categoryQueries: categoryQueries,
	}
}

func (c *categoryCommandsImpl) Create(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error) {
	ratio, err := category.NewImageRatio(req.ImageRatio)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := category.NewCategory(req.Title, ratio)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.categoryRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return c.categoryQueries.GetByID(ctx, id)
}

// Delete detaches the category's products via the schema's ON DELETE SET
// NULL; they stay in the catalogue uncategorised.
func (c *categoryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCategoryNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}
