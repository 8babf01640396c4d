package commands

import (
	"context"
	"strings"

	reqdto "linenhire/internal/handler/dto/request"
	"linenhire/internal/pkg/errs"
	"linenhire/internal/usecase/queries"
)

var ErrInvalidSeoRoute = errs.New("invalid page route")

type SeoCommands interface {
	Upsert(ctx context.Context, req reqdto.UpsertSeoRequest) (*queries.SeoSettingView, error)
}

type seoCommandsImpl struct {
	seoRepo    SeoRepository
	seoQueries queries.SeoQueries
}

func NewSeoCommands(seoRepo SeoRepository, seoQueries queries.SeoQueries) SeoCommands {
	return &seoCommandsImpl{seoRepo: seoRepo, seoQueries: seoQueries}
}

// Upsert keys on the page route, so saving the same route twice edits in
// place instead of duplicating rows.
func (s *seoCommandsImpl) Upsert(ctx context.Context, req reqdto.UpsertSeoRequest) (*queries.SeoSettingView, error) {
	route := strings.TrimSpace(req.PageRoute)
	if route == "" || !strings.HasPrefix(route, "/") {
		return nil, ErrInvalidSeoRoute
	}

	err := s.seoRepo.Upsert(ctx, UpsertSeoParams{
		PageRoute:   route,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Keywords:    strings.TrimSpace(req.Keywords),
		OgImage:     req.OgImage,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return s.seoQueries.GetByRoute(ctx, route)
}
