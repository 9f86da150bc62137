//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"mountworks/internal/infra"
	"mountworks/internal/infra/readstore"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/pgconv"
	readstoremock "mountworks/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWorkerReadStore_WorkersByZip(t *testing.T) {
	ctx := context.Background()

	t.Run("success: workers mapped with optional phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockWorkerViewQueries(ctrl)
		store := readstore.NewWorkerReadStore(mockQueries, &mockDBTX{})

		withPhone := uuid.New()
		withoutPhone := uuid.New()
		mockQueries.EXPECT().GetWorkersByZip(ctx, gomock.Any(), "94110").Return([]sqlc.GetWorkersByZipRow{
			{ID: withPhone, Name: "Dana Fixit", Email: "dana@example.com", Phone: pgconv.StringToPgtype("+14155550123")},
			{ID: withoutPhone, Name: "Lee Mounts", Email: "lee@example.com", Phone: pgtype.Text{}},
		}, nil)

		refs, err := store.WorkersByZip(ctx, "94110")

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, withPhone, refs[0].ID)
		assert.Equal(t, "Dana Fixit", refs[0].Name)
		assert.Equal(t, "+14155550123", refs[0].Phone)
		assert.Equal(t, withoutPhone, refs[1].ID)
		assert.Equal(t, "", refs[1].Phone)
	})

	t.Run("success: no rows means zip is not covered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockWorkerViewQueries(ctrl)
		store := readstore.NewWorkerReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetWorkersByZip(ctx, gomock.Any(), "00000").Return(nil, nil)

		refs, err := store.WorkersByZip(ctx, "00000")

		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockWorkerViewQueries(ctrl)
		store := readstore.NewWorkerReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetWorkersByZip(ctx, gomock.Any(), "94110").Return(nil, errDBConnectionLost)

		refs, err := store.WorkersByZip(ctx, "94110")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, refs)
	})
}

func TestWorkerReadStore_ScheduleOf(t *testing.T) {
	ctx := context.Background()
	workerID := uuid.New()

	t.Run("success: rows keyed by weekday", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockWorkerViewQueries(ctrl)
		store := readstore.NewWorkerReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetWorkerSchedule(ctx, gomock.Any(), workerID).Return([]sqlc.WorkerSchedules{
			{WorkerID: workerID, Weekday: int32(time.Monday), StartMin: 480, EndMin: 1080, Active: true},
			{WorkerID: workerID, Weekday: int32(time.Saturday), StartMin: 540, EndMin: 900, Active: false},
		}, nil)

		ws, err := store.ScheduleOf(ctx, workerID)

		require.NoError(t, err)
		require.Len(t, ws, 2)
		monday := ws[time.Monday]
		assert.Equal(t, time.Monday, monday.Weekday)
		assert.Equal(t, 480, monday.StartMin)
		assert.Equal(t, 1080, monday.EndMin)
		assert.True(t, monday.Active)
		assert.False(t, ws[time.Saturday].Active)
	})

	t.Run("success: empty schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockWorkerViewQueries(ctrl)
		store := readstore.NewWorkerReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetWorkerSchedule(ctx, gomock.Any(), workerID).Return(nil, nil)

		ws, err := store.ScheduleOf(ctx, workerID)

		require.NoError(t, err)
		assert.Empty(t, ws)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockWorkerViewQueries(ctrl)
		store := readstore.NewWorkerReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetWorkerSchedule(ctx, gomock.Any(), workerID).Return(nil, errDBConnectionLost)

		ws, err := store.ScheduleOf(ctx, workerID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, ws)
	})
}
