package repository

import (
	"context"

	"mountworks/internal/domain/payment"
	"mountworks/internal/infra"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AuthorizationWriteQueries interface {
	TryInsertAuthorization(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertAuthorizationParams) (int64, error)
	GetAuthorizationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PaymentAuthorizations, error)
	GetAuthorizationByIdempotencyKey(ctx context.Context, db sqlc.DBTX, idempotencyKey uuid.UUID) (sqlc.PaymentAuthorizations, error)
	UpdateAuthorizationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAuthorizationStatusParams) error
}

type AuthorizationRepository struct {
	queries AuthorizationWriteQueries
}

func NewAuthorizationRepository(queries AuthorizationWriteQueries) *AuthorizationRepository {
	return &AuthorizationRepository{queries: queries}
}

func (r *AuthorizationRepository) TryInsert(ctx context.Context, db sqlc.DBTX, auth *payment.Authorization) (bool, error) {
	affected, err := r.queries.TryInsertAuthorization(ctx, db, sqlc.TryInsertAuthorizationParams{
		ID:               auth.ID,
		ProviderChargeID: auth.ProviderChargeID,
		IdempotencyKey:   auth.IdempotencyKey,
		AmountCents:      auth.AmountCents,
		Currency:         auth.Currency,
		Status:           auth.Status.String(),
		FailureCode:      pgconv.StringPtrToPgtype(auth.FailureCode),
		FailureMessage:   pgconv.StringPtrToPgtype(auth.FailureMessage),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert authorization", err)
	}
	return affected > 0, nil
}

func (r *AuthorizationRepository) GetByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*payment.Authorization, error) {
	row, err := r.queries.GetAuthorizationByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("authorization not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get authorization", err)
	}
	return authorizationFromRow(row), nil
}

func (r *AuthorizationRepository) GetByIdempotencyKey(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (*payment.Authorization, error) {
	row, err := r.queries.GetAuthorizationByIdempotencyKey(ctx, db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("authorization not found for idempotency key", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get authorization by idempotency key", err)
	}
	return authorizationFromRow(row), nil
}

func (r *AuthorizationRepository) UpdateStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status payment.AuthorizationStatus) error {
	err := r.queries.UpdateAuthorizationStatus(ctx, db, sqlc.UpdateAuthorizationStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update authorization status", err)
	}
	return nil
}

func authorizationFromRow(row sqlc.PaymentAuthorizations) *payment.Authorization {
	return &payment.Authorization{
		ID:               row.ID,
		ProviderChargeID: row.ProviderChargeID,
		IdempotencyKey:   row.IdempotencyKey,
		AmountCents:      row.AmountCents,
		Currency:         row.Currency,
		Status:           payment.AuthorizationStatus(row.Status),
		FailureCode:      pgconv.StringPtrFromPgtype(row.FailureCode),
		FailureMessage:   pgconv.StringPtrFromPgtype(row.FailureMessage),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
