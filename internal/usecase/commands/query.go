package commands

import (
	"context"
	"strings"

	"linenhire/internal/domain/query"
	reqdto "linenhire/internal/handler/dto/request"
	"linenhire/internal/infra"
	"linenhire/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrQueryNotFound = errs.New("query not found")

type QueryCommands interface {
	Submit(ctx context.Context, req reqdto.SubmitQueryRequest) (uuid.UUID, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type queryCommandsImpl struct {
	queryRepo QueryRepository
	notifier  *notifier
}

func NewQueryCommands(queryRepo QueryRepository, mailConfigRepo MailConfigRepository, mailer Mailer, mailEnabled bool) QueryCommands {
	return &queryCommandsImpl{
		queryRepo: queryRepo,
		notifier:  newNotifier(mailConfigRepo, mailer, mailEnabled),
	}
}

func (q *queryCommandsImpl) Submit(ctx context.Context, req reqdto.SubmitQueryRequest) (uuid.UUID, error) {
	entity, err := query.NewQuery(req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := q.queryRepo.Create(ctx, entity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperation)
	}

	q.notifier.querySubmitted(ctx, map[string]string{
		"name":  entity.Name(),
		"email": entity.Email(),
		"phone": entity.Phone(),
		// Mail bodies are HTML; preserve the visitor's line breaks.
		"message": strings.ReplaceAll(entity.Message(), "\n", "<br>"),
	}, entity.Email())

	return id, nil
}

func (q *queryCommandsImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := q.queryRepo.MarkRead(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrQueryNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func (q *queryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := q.queryRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrQueryNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}
