package readstore

import (
	"context"

	"linenhire/internal/infra"
	"linenhire/internal/pkg/pgconv"
	"linenhire/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeoReadStore struct {
	db *pgxpool.Pool
}

func NewSeoReadStore(db *pgxpool.Pool) queries.SeoReadStore {
	return &SeoReadStore{db: db}
}

const selectSeoViewSQL = `
SELECT id, page_route, title, description, keywords, og_image, updated_at
FROM seo_settings`

func (r *SeoReadStore) FindByRoute(ctx context.Context, pageRoute string) (*queries.SeoSettingView, error) {
	rows, err := r.db.Query(ctx, selectSeoViewSQL+` WHERE page_route = $1`, pageRoute)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find seo setting", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr("failed to find seo setting", err)
		}
		return nil, infra.WrapRepoErr("seo setting not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return scanSeoView(rows)
}

func (r *SeoReadStore) FindAll(ctx context.Context) ([]*queries.SeoSettingView, error) {
	rows, err := r.db.Query(ctx, selectSeoViewSQL+` ORDER BY page_route ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seo settings", err)
	}
	defer rows.Close()

	views := []*queries.SeoSettingView{}
	for rows.Next() {
		view, err := scanSeoView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list seo settings", err)
	}
	return views, nil
}

func scanSeoView(row pgx.Row) (*queries.SeoSettingView, error) {
	var (
		view      queries.SeoSettingView
		ogImage   pgtype.Text
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.PageRoute, &view.Title, &view.Description, &view.Keywords, &ogImage, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan seo row", err)
	}
	view.OgImage = pgconv.StringPtrFromPgtype(ogImage)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
