package queries

import (
	"context"

	"github.com/google/uuid"
)

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindAll(ctx context.Context) ([]*ProductView, error)
	FindActive(ctx context.Context) ([]*ProductView, error)
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	// ListAll is the back-office view including inactive products.
	ListAll(ctx context.Context) ([]*ProductView, error)
	// ListActive is what the public catalogue renders.
	ListActive(ctx context.Context) ([]*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *productQueriesImpl) ListAll(ctx context.Context) ([]*ProductView, error) {
	return q.store.FindAll(ctx)
}

func (q *productQueriesImpl) ListActive(ctx context.Context) ([]*ProductView, error) {
	return q.store.FindActive(ctx)
}
