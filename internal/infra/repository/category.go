package repository

import (
	"context"

	"linenhire/internal/domain/category"
	"linenhire/internal/infra"
	"linenhire/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) commands.CategoryRepository {
	return &CategoryRepository{db: db}
}

const insertCategorySQL = `
INSERT INTO categories (id, title, image_ratio)
VALUES ($1, $2, $3)
RETURNING id`

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertCategorySQL, c.ID(), c.Title(), c.ImageRatio().String()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create category", err)
	}
	return id, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}
