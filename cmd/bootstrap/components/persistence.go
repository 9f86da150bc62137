package components

import (
	"mountworks/internal/infra/readstore"
	"mountworks/internal/infra/repository"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/infra/uow"
	"mountworks/internal/usecase/commands"
	"mountworks/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	uow.NewPostgresTxRunner,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
			fx.As(new(queries.BookedSlotReadStore)),
			fx.As(new(commands.BookingReads)),
		),
		// Worker
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.WorkerViewQueries)),
		),
		fx.Annotate(
			readstore.NewWorkerReadStore,
			fx.As(new(queries.WorkerReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.BookingWriteQueries)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		// Authorization
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.AuthorizationWriteQueries)),
		),
		fx.Annotate(
			repository.NewAuthorizationRepository,
			fx.As(new(commands.AuthorizationRepository)),
		),
		// Idempotency: the sweeper needs the concrete type for DeleteExpired
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.IdempotencyWriteQueries)),
		),
		repository.NewIdempotencyRepository,
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
		// Notification ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationLedger)),
		),
		// Worker coverage
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.WorkerWriteQueries)),
		),
		fx.Annotate(
			repository.NewWorkerRepository,
			fx.As(new(commands.CoverageRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
