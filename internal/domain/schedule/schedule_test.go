//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"mountworks/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) schedule.Policy {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return schedule.Policy{
		Location:       loc,
		GranularityMin: 60,
		LeadTimeMin:    30,
		HorizonDays:    30,
	}
}

// Monday-Friday 08:00-18:00
func weekdaySchedule() schedule.WeeklySchedule {
	ws := schedule.WeeklySchedule{}
	for d := time.Monday; d <= time.Friday; d++ {
		ws[d] = schedule.DayWindow{Weekday: d, StartMin: 8 * 60, EndMin: 18 * 60, Active: true}
	}
	return ws
}

func TestIsSlotFree(t *testing.T) {
	p := testPolicy(t)
	ws := weekdaySchedule()

	// Monday 2026-09-14
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, p.Location)
	// now is the previous Friday, so lead time never applies
	now := time.Date(2026, 9, 11, 12, 0, 0, 0, p.Location)

	slot := func(startMin, durationMin int) schedule.Slot {
		return schedule.Slot{Date: date, StartMin: startMin, DurationMin: durationMin}
	}

	testCases := []struct {
		name   string
		booked []schedule.BookedSlot
		slot   schedule.Slot
		free   bool
	}{
		{name: "inside window, no bookings", slot: slot(9*60, 120), free: true},
		{name: "starts before window", slot: slot(7*60, 60), free: false},
		{name: "runs past window end", slot: slot(17*60, 120), free: false},
		{name: "exactly fills window", slot: slot(8*60, 10*60), free: true},
		{name: "zero duration", slot: slot(9*60, 0), free: false},
		{
			name:   "overlaps existing booking",
			booked: []schedule.BookedSlot{{StartMin: 10 * 60, DurationMin: 120}},
			slot:   slot(11*60, 60),
			free:   false,
		},
		{
			name:   "touching end of existing booking is free",
			booked: []schedule.BookedSlot{{StartMin: 10 * 60, DurationMin: 120}},
			slot:   slot(12*60, 60),
			free:   true,
		},
		{
			name:   "touching start of existing booking is free",
			booked: []schedule.BookedSlot{{StartMin: 10 * 60, DurationMin: 120}},
			slot:   slot(9*60, 60),
			free:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.free, p.IsSlotFree(ws, tc.booked, tc.slot, now))
		})
	}

	t.Run("no window on that weekday", func(t *testing.T) {
		sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, p.Location)
		s := schedule.Slot{Date: sunday, StartMin: 9 * 60, DurationMin: 60}
		assert.False(t, p.IsSlotFree(ws, nil, s, now))
	})

	t.Run("past date", func(t *testing.T) {
		s := slot(9*60, 60)
		later := time.Date(2026, 9, 20, 8, 0, 0, 0, p.Location)
		assert.False(t, p.IsSlotFree(ws, nil, s, later))
	})
}

func TestIsSlotFreeSameDayLeadTime(t *testing.T) {
	p := testPolicy(t)
	ws := weekdaySchedule()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, p.Location)

	// now = Monday 09:45; lead time 30min means earliest start is 10:15
	now := time.Date(2026, 9, 14, 9, 45, 0, 0, p.Location)

	tooSoon := schedule.Slot{Date: date, StartMin: 10 * 60, DurationMin: 60}
	assert.False(t, p.IsSlotFree(ws, nil, tooSoon, now))

	lateEnough := schedule.Slot{Date: date, StartMin: 11 * 60, DurationMin: 60}
	assert.True(t, p.IsSlotFree(ws, nil, lateEnough, now))
}

func TestFreeSlots(t *testing.T) {
	p := testPolicy(t)
	ws := weekdaySchedule()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, p.Location)
	now := time.Date(2026, 9, 11, 12, 0, 0, 0, p.Location)

	t.Run("generates at granularity minus conflicts", func(t *testing.T) {
		booked := []schedule.BookedSlot{{StartMin: 10 * 60, DurationMin: 120}}
		got := p.FreeSlots(ws, booked, date, 120, now)

		var starts []int
		for _, s := range got {
			starts = append(starts, s.StartMin)
		}
		// 08:00 blocked (runs into 10:00), 09:00-11:00 blocked, 12:00+ free,
		// last start leaving room for two hours is 16:00
		want := []int{8 * 60, 12 * 60, 13 * 60, 14 * 60, 15 * 60, 16 * 60}
		if diff := cmp.Diff(want, starts); diff != "" {
			t.Errorf("free slot starts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no slots on an off day", func(t *testing.T) {
		saturday := time.Date(2026, 9, 12, 0, 0, 0, 0, p.Location)
		assert.Empty(t, p.FreeSlots(ws, nil, saturday, 60, now))
	})

	t.Run("duration longer than window", func(t *testing.T) {
		assert.Empty(t, p.FreeSlots(ws, nil, date, 11*60, now))
	})
}

func TestDayOf(t *testing.T) {
	p := testPolicy(t)

	t.Run("truncates to local midnight", func(t *testing.T) {
		ts := time.Date(2026, 9, 14, 23, 30, 0, 0, p.Location)
		day := p.DayOf(ts)
		assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, p.Location), day)
	})

	t.Run("UTC evening stays on the local day", func(t *testing.T) {
		// 2026-09-15 02:00 UTC is 2026-09-14 19:00 in Los Angeles
		ts := time.Date(2026, 9, 15, 2, 0, 0, 0, time.UTC)
		day := p.DayOf(ts)
		assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, p.Location), day)
	})

	t.Run("fall-back DST transition day", func(t *testing.T) {
		// 2026-11-01 has 25 hours in Los Angeles
		ts := time.Date(2026, 11, 1, 23, 0, 0, 0, p.Location)
		day := p.DayOf(ts)
		assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, p.Location), day)
	})
}
