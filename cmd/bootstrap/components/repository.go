package components

import (
	"linenhire/internal/infra/readstore"
	"linenhire/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		repository.NewBookingRepository,
		repository.NewProductRepository,
		repository.NewCategoryRepository,
		repository.NewQueryRepository,
		repository.NewSeoRepository,
		repository.NewMailConfigRepository,
		repository.NewUserRepository,

		// Read side
		readstore.NewBookingReadStore,
		readstore.NewProductReadStore,
		readstore.NewCategoryReadStore,
		readstore.NewQueryReadStore,
		readstore.NewSeoReadStore,
		readstore.NewMailConfigReadStore,
		readstore.NewUserReadStore,
	),
)
