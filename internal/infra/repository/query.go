package repository

import (
	"context"

	"linenhire/internal/domain/query"
	"linenhire/internal/infra"
	"linenhire/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QueryRepository struct {
	db *pgxpool.Pool
}

func NewQueryRepository(db *pgxpool.Pool) commands.QueryRepository {
	return &QueryRepository{db: db}
}

const insertQuerySQL = `
INSERT INTO queries (id, name, email, phone, message, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *QueryRepository) Create(ctx context.Context, q *query.Query) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertQuerySQL,
		q.ID(), q.Name(), q.Email(), q.Phone(), q.Message(), q.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create query", err)
	}
	return id, nil
}

func (r *QueryRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE queries SET status = 'read' WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark query read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("query not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *QueryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM queries WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete query", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("query not found", nil, infra.KindNotFound)
	}
	return nil
}
