package components

import (
	"tastebuds/internal/infra/gateway"
	"tastebuds/internal/infra/mailer"
	"tastebuds/internal/infra/memstore"
	"tastebuds/internal/pkg/clock"
	"tastebuds/internal/pkg/config"
	"tastebuds/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			gateway.NewStripeClient,
			fx.As(new(commands.PaymentGateway)),
		),
		mailer.NewResendClient,
		NewWizardStore,
		func(s *memstore.WizardStore) commands.WizardStore { return s },
	),
)

func NewWizardStore(cfg config.Config, clk clock.Clock) *memstore.WizardStore {
	return memstore.NewWizardStore(cfg.Wizard.TTL, clk)
}
