package components

import (
	"linenhire/internal/domain/booking"
	"linenhire/internal/pkg/clock"
	"linenhire/internal/pkg/config"
	"linenhire/internal/pkg/jwt"
	"linenhire/internal/usecase/commands"
	"linenhire/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewHourlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewCategoryQueries,
		queries.NewBookingQueries,
		queries.NewQueryQueries,
		queries.NewDashboardQueries,
		queries.NewSeoQueries,
		queries.NewMailConfigQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		NewBookingCommands,
		NewQueryCommands,
		commands.NewProductCommands,
		commands.NewCategoryCommands,
		commands.NewSeoCommands,
		commands.NewMailConfigCommands,
	),
)

func NewAuthCommands(userRepo commands.UserRepository, jwtService *jwt.Service, clk clock.Clock) commands.AuthCommands {
	return commands.NewAuthCommands(userRepo, jwtService, clk)
}

func NewBookingCommands(
	bookingRepo commands.BookingRepository,
	productRepo commands.ProductRepository,
	bookingQueries queries.BookingQueries,
	calculator booking.PriceCalculator,
	mailConfigRepo commands.MailConfigRepository,
	mailer commands.Mailer,
	cfg config.Config,
	clk clock.Clock,
) commands.BookingCommands {
	return commands.NewBookingCommands(
		bookingRepo, productRepo, bookingQueries, calculator,
		mailConfigRepo, mailer, cfg.Mail.Enabled, clk,
	)
}

func NewQueryCommands(
	queryRepo commands.QueryRepository,
	mailConfigRepo commands.MailConfigRepository,
	mailer commands.Mailer,
	cfg config.Config,
) commands.QueryCommands {
	return commands.NewQueryCommands(queryRepo, mailConfigRepo, mailer, cfg.Mail.Enabled)
}
