package queries

import (
	"context"
)

type MailConfigReadStore interface {
	// Find returns nil without error when mail has never been configured.
	Find(ctx context.Context) (*MailConfigView, error)
}

type MailConfigQueries interface {
	Get(ctx context.Context) (*MailConfigView, error)
}

type mailConfigQueriesImpl struct {
	store MailConfigReadStore
}

func NewMailConfigQueries(store MailConfigReadStore) MailConfigQueries {
	return &mailConfigQueriesImpl{store: store}
}

func (q *mailConfigQueriesImpl) Get(ctx context.Context) (*MailConfigView, error) {
	return q.store.Find(ctx)
}
