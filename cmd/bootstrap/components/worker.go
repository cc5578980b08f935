package components

import (
	"context"
	"time"

	"tastebuds/internal/infra/memstore"
	"tastebuds/internal/infra/worker"

	"go.uber.org/fx"
)

const wizardSweepInterval = 5 * time.Minute

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewNotifier,
	),
	fx.Invoke(
		runNotifier,
		runWizardSweeper,
	),
)

func runNotifier(lc fx.Lifecycle, n *worker.Notifier) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go n.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

func runWizardSweeper(lc fx.Lifecycle, store *memstore.WizardStore) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.RunSweeper(ctx, wizardSweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
