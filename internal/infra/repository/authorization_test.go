//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"mountworks/internal/domain/payment"
	"mountworks/internal/infra"
	"mountworks/internal/infra/repository"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/pgconv"
	"mountworks/tests/common/builder"
	repositorymock "mountworks/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authorizationRow(auth *payment.Authorization) sqlc.PaymentAuthorizations {
	return sqlc.PaymentAuthorizations{
		ID:               auth.ID,
		ProviderChargeID: auth.ProviderChargeID,
		IdempotencyKey:   auth.IdempotencyKey,
		AmountCents:      auth.AmountCents,
		Currency:         auth.Currency,
		Status:           auth.Status.String(),
		FailureCode:      pgconv.StringPtrToPgtype(auth.FailureCode),
		FailureMessage:   pgconv.StringPtrToPgtype(auth.FailureMessage),
		CreatedAt:        pgconv.TimeToPgtype(auth.CreatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(auth.UpdatedAt),
	}
}

// =============================================================================
// TryInsert Tests
// =============================================================================

func TestAuthorizationRepository_TryInsert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name             string
		affected         int64
		queryErr         error
		expectedInserted bool
		expectError      bool
	}{
		{name: "success: authorization recorded", affected: 1, expectedInserted: true},
		{name: "success: key already recorded by a concurrent request", affected: 0, expectedInserted: false},
		{name: "error: database error", queryErr: errors.New("connection reset"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAuthorizationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAuthorizationRepository(mockQueries)

			auth := builder.NewAuthorizationBuilder().Build()

			mockQueries.EXPECT().
				TryInsertAuthorization(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.TryInsertAuthorizationParams) (int64, error) {
					if tc.queryErr != nil {
						return 0, tc.queryErr
					}
					assert.Equal(t, auth.ID, arg.ID)
					assert.Equal(t, auth.IdempotencyKey, arg.IdempotencyKey)
					assert.Equal(t, "requires_capture", arg.Status)
					return tc.affected, nil
				})

			inserted, err := repo.TryInsert(ctx, mockDB, auth)

			if tc.expectError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedInserted, inserted)
		})
	}
}

// =============================================================================
// GetByID / GetByIdempotencyKey Tests
// =============================================================================

func TestAuthorizationRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: authorization mapped back to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockAuthorizationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAuthorizationRepository(mockQueries)

		want := builder.NewAuthorizationBuilder().
			With(func(a *builder.AuthorizationBuilder) {
				code := "insufficient_fund"
				a.Status = payment.StatusFailed
				a.FailureCode = &code
			}).
			Build()

		mockQueries.EXPECT().
			GetAuthorizationByID(ctx, mockDB, want.ID).
			Return(authorizationRow(want), nil)

		got, err := repo.GetByID(ctx, mockDB, want.ID)

		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.ProviderChargeID, got.ProviderChargeID)
		assert.Equal(t, payment.StatusFailed, got.Status)
		require.NotNil(t, got.FailureCode)
		assert.Equal(t, "insufficient_fund", *got.FailureCode)
	})

	t.Run("error: unknown id maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockAuthorizationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAuthorizationRepository(mockQueries)

		id := uuid.New()
		mockQueries.EXPECT().
			GetAuthorizationByID(ctx, mockDB, id).
			Return(sqlc.PaymentAuthorizations{}, pgx.ErrNoRows)

		got, err := repo.GetByID(ctx, mockDB, id)

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAuthorizationRepository_GetByIdempotencyKey(t *testing.T) {
	ctx := context.Background()

	t.Run("success: lookup by key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockAuthorizationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAuthorizationRepository(mockQueries)

		want := builder.NewAuthorizationBuilder().Build()
		mockQueries.EXPECT().
			GetAuthorizationByIdempotencyKey(ctx, mockDB, want.IdempotencyKey).
			Return(authorizationRow(want), nil)

		got, err := repo.GetByIdempotencyKey(ctx, mockDB, want.IdempotencyKey)

		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.AmountCents, got.AmountCents)
	})

	t.Run("error: unseen key maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockAuthorizationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAuthorizationRepository(mockQueries)

		key := uuid.New()
		mockQueries.EXPECT().
			GetAuthorizationByIdempotencyKey(ctx, mockDB, key).
			Return(sqlc.PaymentAuthorizations{}, pgx.ErrNoRows)

		got, err := repo.GetByIdempotencyKey(ctx, mockDB, key)

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestAuthorizationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: status written as its wire string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockAuthorizationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAuthorizationRepository(mockQueries)

		id := uuid.New()
		mockQueries.EXPECT().
			UpdateAuthorizationStatus(ctx, mockDB, sqlc.UpdateAuthorizationStatusParams{ID: id, Status: "canceled"}).
			Return(nil)

		err := repo.UpdateStatus(ctx, mockDB, id, payment.StatusCanceled)

		assert.NoError(t, err)
	})
}
