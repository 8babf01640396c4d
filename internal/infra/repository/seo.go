package repository

import (
	"context"

	"linenhire/internal/infra"
	"linenhire/internal/pkg/pgconv"
	"linenhire/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SeoRepository struct {
	db *pgxpool.Pool
}

func NewSeoRepository(db *pgxpool.Pool) commands.SeoRepository {
	return &SeoRepository{db: db}
}

const upsertSeoSQL = `
INSERT INTO seo_settings (page_route, title, description, keywords, og_image)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (page_route) DO UPDATE SET
	title       = EXCLUDED.title,
	description = EXCLUDED.description,
	keywords    = EXCLUDED.keywords,
	og_image    = EXCLUDED.og_image,
	updated_at  = now()`

func (r *SeoRepository) Upsert(ctx context.Context, params commands.UpsertSeoParams) error {
	_, err := r.db.Exec(ctx, upsertSeoSQL,
		params.PageRoute,
		params.Title,
		params.Description,
		params.Keywords,
		pgconv.StringPtrToPgtype(params.OgImage),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert seo setting", err)
	}
	return nil
}
