//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mountworks/internal/infra"
	"mountworks/internal/infra/repository"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/pgconv"
	repositorymock "mountworks/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		affected         int64
		queryErr         error
		expectedInserted bool
		expectError      bool
	}{
		{name: "success: key claimed", affected: 1, expectedInserted: true},
		{name: "success: key already held", affected: 0, expectedInserted: false},
		{name: "error: database error", queryErr: errors.New("connection reset"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries)

			key := uuid.New()
			mockQueries.EXPECT().
				TryInsertIdempotencyKey(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
					if tc.queryErr != nil {
						return 0, tc.queryErr
					}
					assert.Equal(t, key, arg.Key)
					assert.Equal(t, "POST /bookings", arg.Endpoint)
					assert.Equal(t, "hash", arg.RequestHash)
					return tc.affected, nil
				})

			inserted, err := repo.TryInsert(ctx, mockDB, key, "POST /bookings", "hash", expiresAt)

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

func TestIdempotencyRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success: record mapped with result booking id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries)

		key := uuid.New()
		resultID := uuid.New()
		mockQueries.EXPECT().
			GetIdempotencyKey(ctx, mockDB, key).
			Return(sqlc.IdempotencyKeys{
				Key:             key,
				Endpoint:        "POST /bookings",
				RequestHash:     "hash",
				Status:          "completed",
				ResultBookingID: pgconv.UUIDToPgtype(resultID),
			}, nil)

		rec, err := repo.Get(ctx, mockDB, key)

		require.NoError(t, err)
		assert.Equal(t, "completed", rec.Status)
		require.NotNil(t, rec.ResultBookingID)
		assert.Equal(t, resultID, *rec.ResultBookingID)
	})

	t.Run("success: processing record has no result booking id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries)

		key := uuid.New()
		mockQueries.EXPECT().
			GetIdempotencyKey(ctx, mockDB, key).
			Return(sqlc.IdempotencyKeys{Key: key, Status: "processing", RequestHash: "hash"}, nil)

		rec, err := repo.Get(ctx, mockDB, key)

		require.NoError(t, err)
		assert.Equal(t, "processing", rec.Status)
		assert.Nil(t, rec.ResultBookingID)
	})

	t.Run("error: unknown key maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries)

		key := uuid.New()
		mockQueries.EXPECT().
			GetIdempotencyKey(ctx, mockDB, key).
			Return(sqlc.IdempotencyKeys{}, pgx.ErrNoRows)

		rec, err := repo.Get(ctx, mockDB, key)

		assert.Nil(t, rec)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reports swept row count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries)

		mockQueries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, mockDB).Return(int64(3), nil)

		count, err := repo.DeleteExpired(ctx, mockDB)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}
