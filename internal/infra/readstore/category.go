package readstore

import (
	"context"

	"linenhire/internal/infra"
	"linenhire/internal/pkg/pgconv"
	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryReadStore struct {
	db *pgxpool.Pool
}

func NewCategoryReadStore(db *pgxpool.Pool) queries.CategoryReadStore {
	return &CategoryReadStore{db: db}
}

const selectCategoryViewSQL = `
SELECT id, title, image_ratio, created_at, updated_at
FROM categories`

func (r *CategoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	rows, err := r.db.Query(ctx, selectCategoryViewSQL+` WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find category by ID", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr("failed to find category by ID", err)
		}
		return nil, infra.WrapRepoErr("category not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return scanCategoryView(rows)
}

func (r *CategoryReadStore) FindAll(ctx context.Context) ([]*queries.CategoryView, error) {
	rows, err := r.db.Query(ctx, selectCategoryViewSQL+` ORDER BY created_at ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	views := []*queries.CategoryView{}
	for rows.Next() {
		view, err := scanCategoryView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	return views, nil
}

func scanCategoryView(row pgx.Row) (*queries.CategoryView, error) {
	var (
		view      queries.CategoryView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.Title, &view.ImageRatio, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to scan category row", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
