package components

import (
	"linenhire/internal/handler"
	"linenhire/internal/handler/api"
	"linenhire/internal/handler/middleware"
	"linenhire/internal/pkg/config"
	"linenhire/internal/pkg/jwt"
	"linenhire/internal/usecase/commands"
	"linenhire/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewBookingHandler,
		api.NewProductHandler,
		api.NewCategoryHandler,
		api.NewQueryHandler,
		api.NewSeoHandler,
		api.NewMailConfigHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userQueries queries.UserQueries,
	jwtService *jwt.Service,
	cfg config.Config,
) *api.AuthHandler {
	return api.NewAuthHandler(authCommands, userQueries, jwtService, cfg.Cookie)
}

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	product *api.ProductHandler,
	category *api.CategoryHandler,
	query *api.QueryHandler,
	seo *api.SeoHandler,
	mailConfig *api.MailConfigHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Booking:    booking,
		Product:    product,
		Category:   category,
		Query:      query,
		Seo:        seo,
		MailConfig: mailConfig,
		Dashboard:  dashboard,
	}
}
