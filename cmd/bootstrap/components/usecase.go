package components

import (
	"creator-booking/internal/domain/booking"
	"creator-booking/internal/pkg/clock"
	"creator-booking/internal/pkg/config"
	"creator-booking/internal/pkg/jwt"
	"creator-booking/internal/pkg/password"
	"creator-booking/internal/usecase"
	"creator-booking/internal/usecase/commands"
	"creator-booking/internal/usecase/queries"
	"creator-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *password.Hasher {
		return password.NewHasherWithCost(cfg.Auth.BcryptCost)
	},
	newPruneStrategy,
	newBookingPolicies,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		newAuthCommands,
		commands.NewCreatorCommands,
		commands.NewBookingCommands,
		commands.NewReceiptCommands,
		commands.NewFundsCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCreatorQueries,
		queries.NewBookingQueries,
		queries.NewFundsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newAuthCommands(
	uow shared.UnitOfWork,
	jwtService *jwt.Service,
	hasher *password.Hasher,
	clk clock.Clock,
	cfg config.Config,
) commands.AuthCommands {
	return commands.NewAuthCommands(uow, jwtService, hasher, clk, cfg.Auth.AdminEmails)
}

func newPruneStrategy(cfg config.Config) (booking.PruneStrategy, error) {
	return booking.ParsePruneStrategy(cfg.Ledger.PruneStrategy)
}

func newBookingPolicies(cfg config.Config) (queries.BookingPolicies, error) {
	resolver, err := booking.ParseResolverAccess(cfg.Ledger.ResolverPolicy)
	if err != nil {
		return queries.BookingPolicies{}, err
	}
	activeCheck, err := booking.ParseActiveCheck(cfg.Ledger.IsActivePolicy)
	if err != nil {
		return queries.BookingPolicies{}, err
	}
	return queries.BookingPolicies{Resolver: resolver, ActiveCheck: activeCheck}, nil
}
