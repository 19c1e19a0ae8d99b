package bootstrap

import (
	"venue-rsvp/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	SeatingModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.NotifierModule,
	components.HandlerModule,
)
