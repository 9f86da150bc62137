package queries

import (
	"context"
	"sort"
	"time"

	"mountworks/internal/domain/schedule"
	"mountworks/internal/pkg/clock"
	"mountworks/internal/pkg/errs"
	"mountworks/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoAvailability = errs.New("no availability within search horizon")

// WorkerReadStore resolves coverage and recurring schedules. Coverage is
// strict ZIP containment; there is no radius fallback anywhere.
type WorkerReadStore interface {
	WorkersByZip(ctx context.Context, zip string) ([]shared.WorkerRef, error)
	ScheduleOf(ctx context.Context, workerID uuid.UUID) (schedule.WeeklySchedule, error)
}

type BookedSlotReadStore interface {
	BookedSlotsFor(ctx context.Context, workerID uuid.UUID, date time.Time) ([]schedule.BookedSlot, error)
}

// AvailabilityQueries answers "who is free when". Both the booking UI and
// the assignment engine go through this type, so they cannot drift apart on
// conflict semantics.
type AvailabilityQueries interface {
	FreeSlots(ctx context.Context, zip string, date time.Time, durationMin int) ([]SlotView, error)
	NextAvailableDate(ctx context.Context, zip string, durationMin int) (time.Time, []SlotView, error)
	FindCandidates(ctx context.Context, zip string, date time.Time, startMin, durationMin int) ([]Candidate, error)
}

type availabilityQueriesImpl struct {
	workers WorkerReadStore
	booked  BookedSlotReadStore
	policy  schedule.Policy
	clock   clock.Clock
}

func NewAvailabilityQueries(
	workers WorkerReadStore,
	booked BookedSlotReadStore,
	policy schedule.Policy,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		workers: workers,
		booked:  booked,
		policy:  policy,
		clock:   clk,
	}
}

func (q *availabilityQueriesImpl) FreeSlots(ctx context.Context, zip string, date time.Time, durationMin int) ([]SlotView, error) {
	workers, err := q.workers.WorkersByZip(ctx, zip)
	if err != nil {
		return nil, err
	}
	if len(workers) == 0 {
		return nil, nil
	}

	now := q.clock.Now()
	day := q.policy.DayOf(date)

	byStart := make(map[int][]uuid.UUID)
	for _, w := range workers {
		slots, err := q.freeSlotsForWorker(ctx, w.ID, day, durationMin, now)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			byStart[s.StartMin] = append(byStart[s.StartMin], w.ID)
		}
	}

	starts := make([]int, 0, len(byStart))
	for start := range byStart {
		starts = append(starts, start)
	}
	sort.Ints(starts)

	views := make([]SlotView, 0, len(starts))
	for _, start := range starts {
		views = append(views, SlotView{
			Date:        day,
			StartMin:    start,
			DurationMin: durationMin,
			WorkerIDs:   byStart[start],
		})
	}
	return views, nil
}

// NextAvailableDate walks forward day-by-day within the policy horizon,
// reusing FreeSlots so the walk can never disagree with the per-day answer.
func (q *availabilityQueriesImpl) NextAvailableDate(ctx context.Context, zip string, durationMin int) (time.Time, []SlotView, error) {
	start := q.policy.DayOf(q.clock.Now())
	for d := 0; d < q.policy.HorizonDays; d++ {
		date := start.AddDate(0, 0, d)
		slots, err := q.FreeSlots(ctx, zip, date, durationMin)
		if err != nil {
			return time.Time{}, nil, err
		}
		if len(slots) > 0 {
			return date, slots, nil
		}
	}
	return time.Time{}, nil, ErrNoAvailability
}

// FindCandidates filters covered workers down to those free for the exact
// requested slot. Fails closed: coverage errors or empty coverage yield no
// candidates.
func (q *availabilityQueriesImpl) FindCandidates(ctx context.Context, zip string, date time.Time, startMin, durationMin int) ([]Candidate, error) {
	workers, err := q.workers.WorkersByZip(ctx, zip)
	if err != nil {
		return nil, err
	}
	if len(workers) == 0 {
		return nil, nil
	}

	now := q.clock.Now()
	day := q.policy.DayOf(date)
	slot := schedule.Slot{Date: day, StartMin: startMin, DurationMin: durationMin}

	var candidates []Candidate
	for _, w := range workers {
		ws, err := q.workers.ScheduleOf(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		booked, err := q.booked.BookedSlotsFor(ctx, w.ID, day)
		if err != nil {
			return nil, err
		}
		if q.policy.IsSlotFree(ws, booked, slot, now) {
			candidates = append(candidates, Candidate{ID: w.ID, Name: w.Name, Email: w.Email, Phone: w.Phone})
		}
	}
	return candidates, nil
}

func (q *availabilityQueriesImpl) freeSlotsForWorker(ctx context.Context, workerID uuid.UUID, day time.Time, durationMin int, now time.Time) ([]schedule.Slot, error) {
	ws, err := q.workers.ScheduleOf(ctx, workerID)
	if err != nil {
		return nil, err
	}
	booked, err := q.booked.BookedSlotsFor(ctx, workerID, day)
	if err != nil {
		return nil, err
	}
	return q.policy.FreeSlots(ws, booked, day, durationMin, now), nil
}
