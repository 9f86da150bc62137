//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"mountworks/internal/domain/schedule"
	"mountworks/internal/pkg/clock"
	"mountworks/internal/pkg/errs"
	"mountworks/internal/usecase/queries"
	"mountworks/internal/usecase/shared"
	queriesmock "mountworks/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	availabilityNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	serviceTZ = func() *time.Location {
		loc, err := time.LoadLocation("America/Los_Angeles")
		if err != nil {
			panic(err)
		}
		return loc
	}()
)

func newAvailabilityQueries(t *testing.T, horizonDays int) (queries.AvailabilityQueries, *queriesmock.MockWorkerReadStore, *queriesmock.MockBookedSlotReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)

	workers := queriesmock.NewMockWorkerReadStore(ctrl)
	booked := queriesmock.NewMockBookedSlotReadStore(ctrl)
	policy := schedule.Policy{Location: serviceTZ, GranularityMin: 60, LeadTimeMin: 120, HorizonDays: horizonDays}

	return queries.NewAvailabilityQueries(workers, booked, policy, clock.NewMockClock(availabilityNow)), workers, booked
}

func weekdaysSchedule() schedule.WeeklySchedule {
	ws := schedule.WeeklySchedule{}
	for d := time.Monday; d <= time.Friday; d++ {
		ws[d] = schedule.DayWindow{Weekday: d, StartMin: 8 * 60, EndMin: 18 * 60, Active: true}
	}
	return ws
}

func mondayOnlySchedule() schedule.WeeklySchedule {
	return schedule.WeeklySchedule{
		time.Monday: {Weekday: time.Monday, StartMin: 8 * 60, EndMin: 18 * 60, Active: true},
	}
}

func workerRef(name string) shared.WorkerRef {
	return shared.WorkerRef{ID: uuid.New(), Name: name, Email: name + "@mountworks.test"}
}

func TestAvailabilityQueries_FreeSlots(t *testing.T) {
	// 2026-09-14 is a Monday.
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, serviceTZ)

	t.Run("merges workers per slot and drops conflicted starts", func(t *testing.T) {
		q, workers, booked := newAvailabilityQueries(t, 30)
		free := workerRef("free")
		busy := workerRef("busy")

		workers.EXPECT().WorkersByZip(gomock.Any(), "94104").Return([]shared.WorkerRef{free, busy}, nil)
		workers.EXPECT().ScheduleOf(gomock.Any(), free.ID).Return(weekdaysSchedule(), nil)
		workers.EXPECT().ScheduleOf(gomock.Any(), busy.ID).Return(weekdaysSchedule(), nil)
		booked.EXPECT().BookedSlotsFor(gomock.Any(), free.ID, gomock.Any()).Return(nil, nil)
		booked.EXPECT().BookedSlotsFor(gomock.Any(), busy.ID, gomock.Any()).
			Return([]schedule.BookedSlot{{StartMin: 10 * 60, DurationMin: 120}}, nil)

		slots, err := q.FreeSlots(context.Background(), "94104", date, 120)

		require.NoError(t, err)
		starts := make([]int, 0, len(slots))
		for _, s := range slots {
			starts = append(starts, s.StartMin)
		}
		assert.Equal(t, []int{480, 540, 600, 660, 720, 780, 840, 900, 960}, starts)

		byStart := make(map[int][]uuid.UUID, len(slots))
		for _, s := range slots {
			byStart[s.StartMin] = s.WorkerIDs
		}
		// Both free at 08:00; only one during the other's 10:00 job.
		assert.ElementsMatch(t, []uuid.UUID{free.ID, busy.ID}, byStart[480])
		assert.Equal(t, []uuid.UUID{free.ID}, byStart[600])
		assert.Equal(t, []uuid.UUID{free.ID}, byStart[660])
	})

	t.Run("returns nothing for an uncovered zip", func(t *testing.T) {
		q, workers, _ := newAvailabilityQueries(t, 30)

		workers.EXPECT().WorkersByZip(gomock.Any(), "00000").Return(nil, nil)

		slots, err := q.FreeSlots(context.Background(), "00000", date, 120)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("propagates coverage lookup failures", func(t *testing.T) {
		q, workers, _ := newAvailabilityQueries(t, 30)

		workers.EXPECT().WorkersByZip(gomock.Any(), "94104").Return(nil, errs.New("connection refused"))

		_, err := q.FreeSlots(context.Background(), "94104", date, 120)

		assert.Error(t, err)
	})
}

func TestAvailabilityQueries_NextAvailableDate(t *testing.T) {
	t.Run("walks forward to the first day with openings", func(t *testing.T) {
		q, workers, booked := newAvailabilityQueries(t, 30)
		w := workerRef("monday-only")

		workers.EXPECT().WorkersByZip(gomock.Any(), "94104").Return([]shared.WorkerRef{w}, nil).AnyTimes()
		workers.EXPECT().ScheduleOf(gomock.Any(), w.ID).Return(mondayOnlySchedule(), nil).AnyTimes()
		booked.EXPECT().BookedSlotsFor(gomock.Any(), w.ID, gomock.Any()).Return(nil, nil).AnyTimes()

		date, slots, err := q.NextAvailableDate(context.Background(), "94104", 120)

		require.NoError(t, err)
		// Clock reads Tuesday 2026-09-01 in the service timezone; the next
		// Monday is 2026-09-07.
		assert.Equal(t, "2026-09-07", date.Format("2006-01-02"))
		assert.NotEmpty(t, slots)
	})

	t.Run("reports no availability when the horizon is exhausted", func(t *testing.T) {
		q, workers, _ := newAvailabilityQueries(t, 5)
		w := workerRef("never-works")

		workers.EXPECT().WorkersByZip(gomock.Any(), "94104").Return([]shared.WorkerRef{w}, nil).Times(5)
		workers.EXPECT().ScheduleOf(gomock.Any(), w.ID).Return(schedule.WeeklySchedule{}, nil).Times(5)

		_, _, err := q.NextAvailableDate(context.Background(), "94104", 120)

		assert.ErrorIs(t, err, queries.ErrNoAvailability)
	})
}

func TestAvailabilityQueries_FindCandidates(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, serviceTZ)

	t.Run("keeps only workers free for the exact slot", func(t *testing.T) {
		q, workers, booked := newAvailabilityQueries(t, 30)
		free := workerRef("free")
		busy := workerRef("busy")

		workers.EXPECT().WorkersByZip(gomock.Any(), "94104").Return([]shared.WorkerRef{busy, free}, nil)
		workers.EXPECT().ScheduleOf(gomock.Any(), busy.ID).Return(weekdaysSchedule(), nil)
		workers.EXPECT().ScheduleOf(gomock.Any(), free.ID).Return(weekdaysSchedule(), nil)
		booked.EXPECT().BookedSlotsFor(gomock.Any(), busy.ID, gomock.Any()).
			Return([]schedule.BookedSlot{{StartMin: 9 * 60, DurationMin: 120}}, nil)
		booked.EXPECT().BookedSlotsFor(gomock.Any(), free.ID, gomock.Any()).Return(nil, nil)

		candidates, err := q.FindCandidates(context.Background(), "94104", date, 9*60, 120)

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, free.ID, candidates[0].ID)
		assert.Equal(t, "free", candidates[0].Name)
	})

	t.Run("preserves coverage lookup order", func(t *testing.T) {
		q, workers, booked := newAvailabilityQueries(t, 30)
		first := workerRef("first")
		second := workerRef("second")

		workers.EXPECT().WorkersByZip(gomock.Any(), "94104").Return([]shared.WorkerRef{first, second}, nil)
		workers.EXPECT().ScheduleOf(gomock.Any(), first.ID).Return(weekdaysSchedule(), nil)
		workers.EXPECT().ScheduleOf(gomock.Any(), second.ID).Return(weekdaysSchedule(), nil)
		booked.EXPECT().BookedSlotsFor(gomock.Any(), first.ID, gomock.Any()).Return(nil, nil)
		booked.EXPECT().BookedSlotsFor(gomock.Any(), second.ID, gomock.Any()).Return(nil, nil)

		candidates, err := q.FindCandidates(context.Background(), "94104", date, 9*60, 120)

		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, first.ID, candidates[0].ID)
		assert.Equal(t, second.ID, candidates[1].ID)
	})

	t.Run("fails closed on an uncovered zip", func(t *testing.T) {
		q, workers, _ := newAvailabilityQueries(t, 30)

		workers.EXPECT().WorkersByZip(gomock.Any(), "00000").Return(nil, nil)

		candidates, err := q.FindCandidates(context.Background(), "00000", date, 9*60, 120)

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("rejects slots outside the working window", func(t *testing.T) {
		q, workers, booked := newAvailabilityQueries(t, 30)
		w := workerRef("early-bird")

		workers.EXPECT().WorkersByZip(gomock.Any(), "94104").Return([]shared.WorkerRef{w}, nil)
		workers.EXPECT().ScheduleOf(gomock.Any(), w.ID).Return(weekdaysSchedule(), nil)
		booked.EXPECT().BookedSlotsFor(gomock.Any(), w.ID, gomock.Any()).Return(nil, nil)

		candidates, err := q.FindCandidates(context.Background(), "94104", date, 6*60, 120)

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})
}
