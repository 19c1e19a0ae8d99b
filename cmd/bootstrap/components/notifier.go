package components

import (
	"context"
	"log/slog"

	"venue-rsvp/internal/notifier"
	"venue-rsvp/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		fx.Annotate(
			notifier.NewLogSender,
			fx.As(new(notifier.Sender)),
		),
		NewDispatcher,
	),
	fx.Invoke(StartDispatcher),
)

func NewDispatcher(store notifier.JobStore, sender notifier.Sender, cfg config.Config, logger *slog.Logger) *notifier.Dispatcher {
	return notifier.NewDispatcher(store, sender, cfg.Mailer, logger)
}

func StartDispatcher(lc fx.Lifecycle, d *notifier.Dispatcher) {
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go d.Run(runCtx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			d.Wait()
			return nil
		},
	})
}
