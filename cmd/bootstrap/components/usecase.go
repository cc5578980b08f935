package components

import (
	"tastebuds/internal/pkg/clock"
	"tastebuds/internal/usecase"
	"tastebuds/internal/usecase/commands"
	"tastebuds/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,

		usecase.NewTokenValidator,

		commands.NewAuthCommands,
		commands.NewStudentCommands,
		commands.NewWizardCommands,
		commands.NewPaymentCommands,
		commands.NewBookingCommands,
		commands.NewCatalogCommands,

		queries.NewUserQueries,
		queries.NewStudentQueries,
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
	),
)
