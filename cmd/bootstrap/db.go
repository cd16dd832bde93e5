package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"creator-booking/internal/infra/db"
	"creator-booking/internal/infra/memstore"
	"creator-booking/internal/infra/uow"
	"creator-booking/internal/pkg/config"
	"creator-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork selects the storage backend. The pool is only opened for the
// postgres driver.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	switch cfg.Storage.Driver {
	case "memory":
		logger.Warn("using in-memory storage; state is lost on restart")
		return memstore.New(), nil
	case "postgres":
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}

		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})

		return uow.NewPostgresUoW(pool), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
}
