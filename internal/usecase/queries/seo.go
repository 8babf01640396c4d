package queries

import (
	"context"
)

type SeoReadStore interface {
	FindByRoute(ctx context.Context, pageRoute string) (*SeoSettingView, error)
	FindAll(ctx context.Context) ([]*SeoSettingView, error)
}

type SeoQueries interface {
	GetByRoute(ctx context.Context, pageRoute string) (*SeoSettingView, error)
	ListAll(ctx context.Context) ([]*SeoSettingView, error)
}

type seoQueriesImpl struct {
	store SeoReadStore
}

func NewSeoQueries(store SeoReadStore) SeoQueries {
	return &seoQueriesImpl{store: store}
}

func (q *seoQueriesImpl) GetByRoute(ctx context.Context, pageRoute string) (*SeoSettingView, error) {
	return q.store.FindByRoute(ctx, pageRoute)
}

func (q *seoQueriesImpl) ListAll(ctx context.Context) ([]*SeoSettingView, error) {
	return q.store.FindAll(ctx)
}
