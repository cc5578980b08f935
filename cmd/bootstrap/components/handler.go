package components

import (
	"tastebuds/internal/handler"
	"tastebuds/internal/handler/api"
	"tastebuds/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewStudentHandler,
		api.NewWizardHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
