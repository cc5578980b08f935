package bootstrap

import (
	"tastebuds/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
		func(cfg config.Config) config.ResendConfig { return cfg.Resend },
	),
)
