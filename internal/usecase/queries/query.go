package queries

import (
	"context"

	"github.com/google/uuid"
)

type QueryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QueryView, error)
	FindAll(ctx context.Context) ([]*QueryView, error)
	FindRecent(ctx context.Context, limit int32) ([]*QueryView, error)
	CountTotalAndUnread(ctx context.Context) (total, unread int64, err error)
}

type CategoryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	FindAll(ctx context.Context) ([]*CategoryView, error)
}

type QueryQueries interface {
	ListAll(ctx context.Context) ([]*QueryView, error)
}

type CategoryQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	ListAll(ctx context.Context) ([]*CategoryView, error)
}

// DashboardQueries aggregates the landing numbers for the admin home page:
// booking counts by status plus the query inbox summary.
type DashboardQueries interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

const recentQueryLimit = 5

type queryQueriesImpl struct {
	store QueryReadStore
}

func NewQueryQueries(store QueryReadStore) QueryQueries {
	return &queryQueriesImpl{store: store}
}

func (q *queryQueriesImpl) ListAll(ctx context.Context) ([]*QueryView, error) {
	return q.store.FindAll(ctx)
}

type categoryQueriesImpl struct {
	store CategoryReadStore
}

func NewCategoryQueries(store CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{store: store}
}

func (q *categoryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *categoryQueriesImpl) ListAll(ctx context.Context) ([]*CategoryView, error) {
	return q.store.FindAll(ctx)
}

type dashboardQueriesImpl struct {
	bookings BookingReadStore
	queries  QueryReadStore
}

func NewDashboardQueries(bookings BookingReadStore, queries QueryReadStore) DashboardQueries {
	return &dashboardQueriesImpl{bookings: bookings, queries: queries}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context) (*DashboardStats, error) {
	bookingStats, err := q.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	total, unread, err := q.queries.CountTotalAndUnread(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := q.queries.FindRecent(ctx, recentQueryLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Bookings:      *bookingStats,
		TotalQueries:  total,
		UnreadQueries: unread,
		RecentQueries: recent,
	}, nil
}
