package components

import (
	"time"

	"mountworks/internal/domain/booking"
	"mountworks/internal/domain/schedule"
	"mountworks/internal/pkg/clock"
	"mountworks/internal/pkg/config"
	"mountworks/internal/usecase/commands"
	"mountworks/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
	NewServiceLocation,
	NewSchedulePolicy,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		fx.Annotate(
			queries.NewAvailabilityQueries,
			fx.As(new(commands.WorkerMatcher)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
		commands.NewAssignmentUseCase,
		commands.NewNotificationUseCase,
		commands.NewWorkerUseCase,
	),
)

func NewServiceLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}

// NewSchedulePolicy builds the single Policy instance the availability
// display and the assignment engine share.
func NewSchedulePolicy(cfg config.Config, loc *time.Location) schedule.Policy {
	return schedule.Policy{
		Location:       loc,
		GranularityMin: cfg.Booking.SlotGranularity,
		LeadTimeMin:    cfg.Booking.SameDayLeadTime,
		HorizonDays:    cfg.Booking.SearchHorizonDay,
	}
}
