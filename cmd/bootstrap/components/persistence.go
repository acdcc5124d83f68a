package components

import (
	"stayhub/internal/infra/readstore"
	"stayhub/internal/infra/repository"
	"stayhub/internal/infra/uow"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		repository.NewBookingRepository,
		repository.NewListingRepository,
		repository.NewNotificationJobRepository,
		readstore.NewBookingReadStore,
		readstore.NewAvailabilityReadStore,
	),
)
