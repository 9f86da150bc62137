//go:build unit

package readstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mountworks/internal/infra"
	"mountworks/internal/infra/readstore"
	"mountworks/internal/infra/repository/converter"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/pgconv"
	readstoremock "mountworks/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

func serviceItemsJSON(t *testing.T, records []converter.ServiceItemRecord) []byte {
	t.Helper()
	data, err := json.Marshal(records)
	require.NoError(t, err)
	return data
}

func bookingRow(t *testing.T, id uuid.UUID) sqlc.GetBookingByIDRow {
	t.Helper()
	return sqlc.GetBookingByIDRow{
		ID:     id,
		UserID: pgconv.UUIDToPgtype(uuid.New()),
		ServiceItems: serviceItemsJSON(t, []converter.ServiceItemRecord{
			{ServiceID: uuid.New(), Name: "TV mount 55in", UnitPriceCents: 12900, Quantity: 1},
		}),
		ScheduledDate:      pgconv.DateToPgtype(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)),
		StartMin:           600,
		DurationMin:        90,
		TotalCents:         12900,
		Status:             "confirmed",
		PaymentStatus:      "authorized",
		AuthorizationID:    uuid.New(),
		AssignedWorkerID:   pgconv.UUIDToPgtype(uuid.New()),
		AssignmentStatus:   "assigned",
		Address:            "100 Main St",
		Zip:                "94110",
		CreatedAt:          pgtype.Timestamptz{Time: time.Now(), Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: time.Now(), Valid: true},
		AssignedWorkerName: pgconv.StringToPgtype("Dana Fixit"),
	}
}

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingViewQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingByID(ctx, gomock.Any(), id).Return(bookingRow(t, id), nil)
			},
			expectedError: false,
		},
		{
			name: "error: corrupt service items payload",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, id uuid.UUID) {
				row := bookingRow(t, id)
				row.ServiceItems = []byte("{not json")
				mock.EXPECT().GetBookingByID(ctx, gomock.Any(), id).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingByID(ctx, gomock.Any(), id).Return(sqlc.GetBookingByIDRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingByID(ctx, gomock.Any(), id).Return(sqlc.GetBookingByIDRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}, time.UTC)

			tc.setupMock(mockQueries, bookingID)

			result, actualError := store.FindByID(ctx, bookingID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, actualError)
				require.NotNil(t, result)
				assert.Equal(t, bookingID, result.ID)
				assert.Equal(t, "confirmed", result.Status)
				assert.Equal(t, "assigned", result.AssignmentStatus)
				require.Len(t, result.ServiceItems, 1)
				assert.Equal(t, "TV mount 55in", result.ServiceItems[0].Name)
				assert.Equal(t, int64(12900), result.ServiceItems[0].UnitPriceCents)
				require.NotNil(t, result.AssignedWorkerName)
				assert.Equal(t, "Dana Fixit", *result.AssignedWorkerName)
				assert.Equal(t, "2026-09-14", result.ScheduledDate.Format("2006-01-02"))
			}
		})
	}
}

func TestBookingReadStore_SnapshotByID(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("success: row mapped to snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}, time.UTC)

		row := bookingRow(t, bookingID)
		row.GuestName = pgconv.StringToPgtype("Pat Guest")
		row.GuestEmail = pgconv.StringToPgtype("pat@example.com")
		row.GuestPhone = pgconv.StringToPgtype("+14155550123")
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), bookingID).Return(row, nil)

		snap, err := store.SnapshotByID(ctx, bookingID)

		require.NoError(t, err)
		require.NotNil(t, snap)
		assert.Equal(t, bookingID, snap.ID)
		require.NotNil(t, snap.GuestEmail)
		assert.Equal(t, "pat@example.com", *snap.GuestEmail)
		require.NotNil(t, snap.GuestPhone)
		assert.Equal(t, "+14155550123", *snap.GuestPhone)
		assert.Equal(t, 600, snap.StartMin)
		assert.Equal(t, 90, snap.DurationMin)
		assert.Equal(t, row.AuthorizationID, snap.AuthorizationID)
		assert.Equal(t, "94110", snap.Zip)
	})

	t.Run("error: booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}, time.UTC)

		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), bookingID).Return(sqlc.GetBookingByIDRow{}, pgx.ErrNoRows)

		snap, err := store.SnapshotByID(ctx, bookingID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, snap)
	})
}

func TestBookingReadStore_BookedSlotsFor(t *testing.T) {
	ctx := context.Background()
	workerID := uuid.New()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	t.Run("success: slots mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}, time.UTC)

		mockQueries.EXPECT().GetWorkerBookedSlots(ctx, gomock.Any(), sqlc.GetWorkerBookedSlotsParams{
			AssignedWorkerID: pgconv.UUIDToPgtype(workerID),
			ScheduledDate:    pgconv.DateToPgtype(date),
		}).Return([]sqlc.GetWorkerBookedSlotsRow{
			{StartMin: 480, DurationMin: 60},
			{StartMin: 600, DurationMin: 120},
		}, nil)

		slots, err := store.BookedSlotsFor(ctx, workerID, date)

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, 480, slots[0].StartMin)
		assert.Equal(t, 60, slots[0].DurationMin)
		assert.Equal(t, 600, slots[1].StartMin)
		assert.Equal(t, 120, slots[1].DurationMin)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}, time.UTC)

		mockQueries.EXPECT().GetWorkerBookedSlots(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		slots, err := store.BookedSlotsFor(ctx, workerID, date)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, slots)
	})
}

func TestBookingReadStore_ActiveCountFor(t *testing.T) {
	ctx := context.Background()
	workerID := uuid.New()

	t.Run("success: count returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}, time.UTC)

		mockQueries.EXPECT().CountActiveBookingsByWorker(ctx, gomock.Any(), pgconv.UUIDToPgtype(workerID)).Return(int64(3), nil)

		count, err := store.ActiveCountFor(ctx, workerID)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}, time.UTC)

		mockQueries.EXPECT().CountActiveBookingsByWorker(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errDBConnectionLost)

		count, err := store.ActiveCountFor(ctx, workerID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Zero(t, count)
	})
}

// mockDBTX is a placeholder transaction handle; queries above it are mocked.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
