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

type ProductReadStore struct {
	db *pgxpool.Pool
}

func NewProductReadStore(db *pgxpool.Pool) queries.ProductReadStore {
	return &ProductReadStore{db: db}
}

const selectProductViewSQL = `
SELECT p.id, p.title, p.description, p.unit_price, p.fixed_quantity,
       p.image_url, p.is_active, p.category_id, c.title AS category_title,
       p.created_at, p.updated_at
FROM products p
LEFT JOIN categories c ON c.id = p.category_id`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	rows, err := r.db.Query(ctx, selectProductViewSQL+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr("failed to find product by ID", err)
		}
		return nil, infra.WrapRepoErr("product not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return scanProductView(rows)
}

func (r *ProductReadStore) FindAll(ctx context.Context) ([]*queries.ProductView, error) {
	return r.list(ctx, selectProductViewSQL+` ORDER BY p.created_at DESC`)
}

func (r *ProductReadStore) FindActive(ctx context.Context) ([]*queries.ProductView, error) {
	return r.list(ctx, selectProductViewSQL+` WHERE p.is_active ORDER BY p.created_at DESC`)
}

func (r *ProductReadStore) list(ctx context.Context, sql string) ([]*queries.ProductView, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	views := []*queries.ProductView{}
	for rows.Next() {
		view, err := scanProductView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	return views, nil
}

func scanProductView(row pgx.Row) (*queries.ProductView, error) {
	var (
		view          queries.ProductView
		unitPrice     pgtype.Numeric
		fixedQty      pgtype.Int4
		imageURL      pgtype.Text
		categoryID    pgtype.UUID
		categoryTitle pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Title, &view.Description, &unitPrice, &fixedQty,
		&imageURL, &view.IsActive, &categoryID, &categoryTitle,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan product row", err)
	}

	price, err := pgconv.DecimalPtrFromNumeric(unitPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("stored product has invalid price", err)
	}

	view.UnitPrice = price
	view.FixedQuantity = pgconv.Int32PtrFromPgtype(fixedQty)
	view.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	view.CategoryID = pgconv.UUIDPtrFromPgtype(categoryID)
	view.CategoryTitle = pgconv.StringPtrFromPgtype(categoryTitle)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
