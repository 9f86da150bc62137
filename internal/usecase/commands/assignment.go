package commands

import (
	"context"
	"log/slog"
	"sort"

	"mountworks/internal/infra"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/errs"
	"mountworks/internal/usecase/queries"
	"mountworks/internal/usecase/shared"

	"github.com/google/uuid"
)

type AssignResult struct {
	BookingID uuid.UUID
	WorkerID  *uuid.UUID
	Status    string
}

type AssignmentCommands interface {
	Assign(ctx context.Context, bookingID uuid.UUID, preferredWorkerID *uuid.UUID) (*AssignResult, error)
}

type assignmentUseCaseImpl struct {
	bookingRepo   BookingRepository
	bookingReads  BookingReads
	matcher       WorkerMatcher
	notifications NotificationCommands
	runner        shared.TxRunner
}

func NewAssignmentUseCase(
	bookingRepo BookingRepository,
	bookingReads BookingReads,
	matcher WorkerMatcher,
	notifications NotificationCommands,
	runner shared.TxRunner,
) AssignmentCommands {
	return &assignmentUseCaseImpl{
		bookingRepo:   bookingRepo,
		bookingReads:  bookingReads,
		matcher:       matcher,
		notifications: notifications,
		runner:        runner,
	}
}

// Assign finds a worker for a paid booking. The claim is a conditional update
// that re-checks the worker's calendar inside the same statement, so two
// bookings racing for one worker's last slot cannot both win: the loser's
// update matches zero rows and the loop moves to the next candidate.
func (a *assignmentUseCaseImpl) Assign(
	ctx context.Context,
	bookingID uuid.UUID,
	preferredWorkerID *uuid.UUID,
) (*AssignResult, error) {
	snap, err := a.bookingReads.SnapshotByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if snap.AssignedWorkerID != nil {
		return &AssignResult{BookingID: bookingID, WorkerID: snap.AssignedWorkerID, Status: snap.AssignmentStatus}, nil
	}
	if snap.PaymentStatus == "pending" {
		return nil, errs.Mark(errs.New("payment not settled"), errs.ErrAssignmentFailed)
	}

	claimed, err := a.markAssigning(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, errs.ErrAssignmentInProgress
	}

	workerID, err := a.pickAndClaim(ctx, snap, preferredWorkerID)
	if err != nil {
		a.failAssignment(ctx, bookingID)
		return nil, err
	}

	result := &AssignResult{BookingID: bookingID, WorkerID: &workerID, Status: "assigned"}
	a.notifyAssigned(ctx, bookingID)
	return result, nil
}

func (a *assignmentUseCaseImpl) markAssigning(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var claimed bool
	err := a.runner.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var markErr error
		claimed, markErr = a.bookingRepo.MarkAssigning(ctx, db, bookingID)
		return markErr
	})
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return claimed, nil
}

// pickAndClaim orders candidates and attempts the conditional claim against
// each in turn. Preference order: the customer's requested worker first, then
// fewest active bookings, ties broken by candidate order, which is stable.
func (a *assignmentUseCaseImpl) pickAndClaim(
	ctx context.Context,
	snap *shared.BookingSnapshot,
	preferredWorkerID *uuid.UUID,
) (uuid.UUID, error) {
	if preferredWorkerID == nil {
		preferredWorkerID = snap.PreferredWorkerID
	}

	candidates, err := a.matcher.FindCandidates(ctx, snap.Zip, snap.ScheduledDate, snap.StartMin, snap.DurationMin)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrAssignmentFailed)
	}
	if len(candidates) == 0 {
		return uuid.Nil, errs.ErrNoWorkersAvailable
	}

	ordered, err := a.orderByLoad(ctx, candidates, preferredWorkerID)
	if err != nil {
		return uuid.Nil, err
	}

	for _, cand := range ordered {
		won, err := a.tryClaim(ctx, snap.ID, cand.ID)
		if err != nil {
			return uuid.Nil, err
		}
		if won {
			return cand.ID, nil
		}
		slog.Info("worker slot taken during assignment, trying next candidate",
			"booking_id", snap.ID,
			"worker_id", cand.ID)
	}
	return uuid.Nil, errs.ErrNoWorkersAvailable
}

func (a *assignmentUseCaseImpl) orderByLoad(
	ctx context.Context,
	candidates []queries.Candidate,
	preferredWorkerID *uuid.UUID,
) ([]queries.Candidate, error) {
	var head []queries.Candidate
	if preferredWorkerID != nil {
		for i, cand := range candidates {
			if cand.ID == *preferredWorkerID {
				// The preferred worker skips load balancing entirely.
				head = []queries.Candidate{cand}
				candidates = removeCandidate(candidates, i)
				break
			}
		}
	}

	type loaded struct {
		cand  queries.Candidate
		load  int64
		index int
	}

	ranked := make([]loaded, 0, len(candidates))
	for i, cand := range candidates {
		count, err := a.bookingReads.ActiveCountFor(ctx, cand.ID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		ranked = append(ranked, loaded{cand: cand, load: count, index: i})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].load != ranked[j].load {
			return ranked[i].load < ranked[j].load
		}
		return ranked[i].index < ranked[j].index
	})

	out := make([]queries.Candidate, 0, len(head)+len(ranked))
	out = append(out, head...)
	for _, r := range ranked {
		out = append(out, r.cand)
	}
	return out, nil
}

func (a *assignmentUseCaseImpl) tryClaim(ctx context.Context, bookingID, workerID uuid.UUID) (bool, error) {
	var won bool
	err := a.runner.Within(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var claimErr error
		won, claimErr = a.bookingRepo.AssignWorkerIfFree(ctx, db, bookingID, workerID)
		return claimErr
	})
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return won, nil
}

// failAssignment parks the booking as assignment_failed for manual dispatch.
// The booking itself stays confirmed: money is held, so it must never be
// silently dropped back to an unpaid state.
func (a *assignmentUseCaseImpl) failAssignment(ctx context.Context, bookingID uuid.UUID) {
	err := a.runner.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		return a.bookingRepo.MarkAssignmentFailed(ctx, db, bookingID, "confirmed")
	})
	if err != nil {
		slog.Error("failed to record assignment failure",
			"booking_id", bookingID,
			"error", err)
	}
}

func (a *assignmentUseCaseImpl) notifyAssigned(ctx context.Context, bookingID uuid.UUID) {
	if a.notifications == nil {
		return
	}
	if _, err := a.notifications.Send(ctx, bookingID, "worker_assigned", false); err != nil {
		slog.Warn("post-assignment notification failed",
			"booking_id", bookingID,
			"error", err)
	}
}

func removeCandidate(candidates []queries.Candidate, i int) []queries.Candidate {
	out := make([]queries.Candidate, 0, len(candidates)-1)
	out = append(out, candidates[:i]...)
	return append(out, candidates[i+1:]...)
}
