package repository

import (
	"context"

	"linenhire/internal/domain/product"
	"linenhire/internal/infra"
	"linenhire/internal/pkg/pgconv"
	"linenhire/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) commands.ProductRepository {
	return &ProductRepository{db: db}
}

const insertProductSQL = `
INSERT INTO products (
	id, title, description, unit_price, fixed_quantity,
	image_url, is_active, category_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertProductSQL,
		p.ID(),
		p.Title(),
		p.Description(),
		pgconv.DecimalPtrToNumeric(p.UnitPrice()),
		pgconv.Int32PtrToPgtype(p.FixedQuantity()),
		pgconv.StringPtrToPgtype(p.ImageURL()),
		p.IsActive(),
		pgconv.UUIDPtrToPgtype(p.CategoryID()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err)
	}
	return id, nil
}

const updateProductSQL = `
UPDATE products SET
	title = $2, description = $3, unit_price = $4, fixed_quantity = $5,
	image_url = $6, is_active = $7, category_id = $8, updated_at = now()
WHERE id = $1`

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx, updateProductSQL,
		p.ID(),
		p.Title(),
		p.Description(),
		pgconv.DecimalPtrToNumeric(p.UnitPrice()),
		pgconv.Int32PtrToPgtype(p.FixedQuantity()),
		pgconv.StringPtrToPgtype(p.ImageURL()),
		p.IsActive(),
		pgconv.UUIDPtrToPgtype(p.CategoryID()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

const selectProductSQL = `
SELECT id, title, description, unit_price, fixed_quantity,
       image_url, is_active, category_id, created_at, updated_at
FROM products
WHERE id = $1`

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	var (
		productID   uuid.UUID
		title       string
		description string
		unitPrice   pgtype.Numeric
		fixedQty    pgtype.Int4
		imageURL    pgtype.Text
		isActive    bool
		categoryID  pgtype.UUID
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectProductSQL, id).Scan(
		&productID, &title, &description, &unitPrice, &fixedQty,
		&imageURL, &isActive, &categoryID, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	price, err := pgconv.DecimalPtrFromNumeric(unitPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("stored product has invalid price", err)
	}

	return product.ReconstructProduct(
		productID,
		title,
		description,
		price,
		pgconv.Int32PtrFromPgtype(fixedQty),
		pgconv.StringPtrFromPgtype(imageURL),
		isActive,
		pgconv.UUIDPtrFromPgtype(categoryID),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const snapshotProductSQL = `
SELECT id, title, unit_price, fixed_quantity, is_active
FROM products
WHERE id = $1`

// Snapshot loads only what the booking flow prices with.
func (r *ProductRepository) Snapshot(ctx context.Context, id uuid.UUID) (*commands.ProductSnapshot, error) {
	var (
		productID uuid.UUID
		title     string
		unitPrice pgtype.Numeric
		fixedQty  pgtype.Int4
		isActive  bool
	)
	err := r.db.QueryRow(ctx, snapshotProductSQL, id).Scan(&productID, &title, &unitPrice, &fixedQty, &isActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load product snapshot", err)
	}

	price, err := pgconv.DecimalPtrFromNumeric(unitPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("stored product has invalid price", err)
	}

	return &commands.ProductSnapshot{
		ID:            productID,
		Title:         title,
		UnitPrice:     price,
		FixedQuantity: pgconv.Int32PtrFromPgtype(fixedQty),
		IsActive:      isActive,
	}, nil
}
