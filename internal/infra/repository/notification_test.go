//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"mountworks/internal/infra"
	"mountworks/internal/infra/repository"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/pgconv"
	"mountworks/internal/usecase/shared"
	repositorymock "mountworks/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("success: existing send mapped back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries)

		bookingID := uuid.New()
		providerID := "msg_001"
		mockQueries.EXPECT().
			GetNotificationSend(ctx, mockDB, sqlc.GetNotificationSendParams{
				BookingID:   bookingID,
				Recipient:   "alex@example.com",
				MessageType: "booking_confirmed",
			}).
			Return(sqlc.NotificationSends{
				ID:                uuid.New(),
				BookingID:         bookingID,
				Recipient:         "alex@example.com",
				MessageType:       "booking_confirmed",
				Channel:           "email",
				Status:            "sent",
				ProviderMessageID: pgconv.StringToPgtype(providerID),
			}, nil)

		rec, err := repo.Find(ctx, mockDB, bookingID, "alex@example.com", "booking_confirmed")

		require.NoError(t, err)
		assert.Equal(t, "email", rec.Channel)
		require.NotNil(t, rec.ProviderMessageID)
		assert.Equal(t, providerID, *rec.ProviderMessageID)
	})

	t.Run("error: unsent tuple maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries)

		mockQueries.EXPECT().
			GetNotificationSend(ctx, mockDB, gomock.Any()).
			Return(sqlc.NotificationSends{}, pgx.ErrNoRows)

		rec, err := repo.Find(ctx, mockDB, uuid.New(), "alex@example.com", "booking_confirmed")

		assert.Nil(t, rec)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestNotificationRepository_TryRecord(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name             string
		affected         int64
		queryErr         error
		expectedInserted bool
		expectError      bool
	}{
		{name: "success: ledger row landed", affected: 1, expectedInserted: true},
		{name: "success: tuple already recorded", affected: 0, expectedInserted: false},
		{name: "error: database error", queryErr: errors.New("connection reset"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewNotificationRepository(mockQueries)

			rec := shared.SendRecord{
				ID:          uuid.New(),
				BookingID:   uuid.New(),
				Recipient:   "alex@example.com",
				MessageType: "booking_confirmed",
				Channel:     "email",
				Status:      "sent",
			}

			mockQueries.EXPECT().
				RecordNotificationSend(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.RecordNotificationSendParams) (int64, error) {
					if tc.queryErr != nil {
						return 0, tc.queryErr
					}
					assert.Equal(t, rec.BookingID, arg.BookingID)
					assert.Equal(t, rec.Recipient, arg.Recipient)
					assert.Equal(t, rec.MessageType, arg.MessageType)
					return tc.affected, nil
				})

			inserted, err := repo.TryRecord(ctx, mockDB, rec)

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

func TestWorkerRepository_RebuildCoverage(t *testing.T) {
	ctx := context.Background()

	t.Run("success: coverage swapped and counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockWorkerWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWorkerRepository(mockQueries)

		workerID := uuid.New()
		gomock.InOrder(
			mockQueries.EXPECT().DeleteZipCoverageByWorker(ctx, mockDB, workerID).Return(nil),
			mockQueries.EXPECT().InsertZipCoverageFromAreas(ctx, mockDB, workerID).Return(int64(12), nil),
		)

		count, err := repo.RebuildCoverage(ctx, mockDB, workerID)

		require.NoError(t, err)
		assert.Equal(t, int64(12), count)
	})

	t.Run("error: delete failure aborts before insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockWorkerWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWorkerRepository(mockQueries)

		workerID := uuid.New()
		mockQueries.EXPECT().
			DeleteZipCoverageByWorker(ctx, mockDB, workerID).
			Return(errors.New("connection reset"))

		count, err := repo.RebuildCoverage(ctx, mockDB, workerID)

		assert.Zero(t, count)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
