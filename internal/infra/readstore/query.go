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

type QueryReadStore struct {
	db *pgxpool.Pool
}

func NewQueryReadStore(db *pgxpool.Pool) queries.QueryReadStore {
	return &QueryReadStore{db: db}
}

const selectQueryViewSQL = `
SELECT id, name, email, phone, message, status, created_at
FROM queries`

func (r *QueryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QueryView, error) {
	rows, err := r.db.Query(ctx, selectQueryViewSQL+` WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find query by ID", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr("failed to find query by ID", err)
		}
		return nil, infra.WrapRepoErr("query not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return scanQueryView(rows)
}

func (r *QueryReadStore) FindAll(ctx context.Context) ([]*queries.QueryView, error) {
	return r.list(ctx, selectQueryViewSQL+` ORDER BY created_at DESC`)
}

func (r *QueryReadStore) FindRecent(ctx context.Context, limit int32) ([]*queries.QueryView, error) {
	rows, err := r.db.Query(ctx, selectQueryViewSQL+` ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent queries", err)
	}
	return collectQueryViews(rows)
}

func (r *QueryReadStore) CountTotalAndUnread(ctx context.Context) (int64, int64, error) {
	var total, unread int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE status = 'unread') FROM queries`,
	).Scan(&total, &unread)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count queries", err)
	}
	return total, unread, nil
}

func (r *QueryReadStore) list(ctx context.Context, sql string) ([]*queries.QueryView, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list queries", err)
	}
	return collectQueryViews(rows)
}

func collectQueryViews(rows pgx.Rows) ([]*queries.QueryView, error) {
	defer rows.Close()

	views := []*queries.QueryView{}
	for rows.Next() {
		view, err := scanQueryView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list queries", err)
	}
	return views, nil
}

func scanQueryView(row pgx.Row) (*queries.QueryView, error) {
	var (
		view      queries.QueryView
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.Name, &view.Email, &view.Phone, &view.Message, &view.Status, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan query row", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
