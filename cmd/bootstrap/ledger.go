package bootstrap

import (
	"context"
	"log/slog"

	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/infra/outbox"
	"creator-booking/internal/pkg/clock"
	"creator-booking/internal/pkg/config"
	"creator-booking/internal/pkg/metrics"
	"creator-booking/internal/usecase/commands"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Invoke(
		seedLedgerSettings,
		startOutboxRelay,
	),
)

func initialSettings(cfg config.LedgerConfig) (*ledger.Settings, error) {
	wallet, err := uuid.Parse(cfg.PlatformWallet)
	if err != nil {
		return nil, err
	}
	custody, err := uuid.Parse(cfg.CustodyAccount)
	if err != nil {
		return nil, err
	}
	return ledger.NewSettings(cfg.FeePPM, wallet, custody)
}

// seedLedgerSettings writes the configured settings on first boot. Existing
// settings are never overwritten; admins change them through the API.
func seedLedgerSettings(lc fx.Lifecycle, cfg config.Config, admin commands.AdminCommands, logger *slog.Logger) error {
	initial, err := initialSettings(cfg.Ledger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			current, err := admin.EnsureSettings(ctx, initial)
			if err != nil {
				return err
			}
			logger.Info("ledger settings loaded",
				"fee_ppm", current.FeePPM(),
				"platform_wallet", current.PlatformWallet().String(),
				"custody", current.Custody().String())
			return nil
		},
	})
	return nil
}

func startOutboxRelay(
	lc fx.Lifecycle,
	cfg config.Config,
	unitOfWork shared.UnitOfWork,
	clk clock.Clock,
	m *metrics.Ledger,
	logger *slog.Logger,
) {
	if !cfg.Outbox.Enabled() {
		logger.Info("outbox relay disabled")
		return
	}

	var runner *outbox.Runner

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			publisher, err := outbox.NewAMQPPublisher(cfg.Outbox.AMQPURL, cfg.Outbox.Exchange)
			if err != nil {
				return err
			}
			relay := outbox.NewRelay(unitOfWork, publisher, clk, m, cfg.Outbox.PollInterval, cfg.Outbox.BatchSize)
			runner = outbox.Start(relay)
			logger.Info("outbox relay started", "exchange", cfg.Outbox.Exchange)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			if runner == nil {
				return nil
			}
			return runner.Stop(stopCtx)
		},
	})
}
