package components

import (
	"tastebuds/internal/infra/repository"
	"tastebuds/internal/usecase/commands"
	"tastebuds/internal/usecase/queries"

	"go.uber.org/fx"
)

// Each repository is bound to every usecase-side interface it satisfies, so
// commands and queries only ever see the narrow contract they declared.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repository.NewStudentRepository,
			fx.As(new(commands.StudentRepository)),
			fx.As(new(queries.StudentReadStore)),
		),
		fx.Annotate(
			repository.NewSessionRepository,
			fx.As(new(commands.SessionRepository)),
			fx.As(new(commands.SessionWriteRepository)),
			fx.As(new(commands.SessionCapacityRepository)),
			fx.As(new(queries.SessionReadStore)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repository.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
			fx.As(new(queries.CatalogReadStore)),
		),
		// The notifier worker drains jobs through the concrete repository,
		// while commands only enqueue.
		repository.NewNotificationRepository,
		func(r *repository.NotificationRepository) commands.NotificationEnqueuer { return r },
	),
)
