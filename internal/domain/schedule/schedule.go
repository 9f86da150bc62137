package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidWindow      = errors.New("schedule window start must be before end")
	ErrInvalidGranularity = errors.New("slot granularity must be positive")
)

// DayWindow is one weekday entry of a worker's recurring schedule,
// expressed as minutes from midnight in the service timezone.
type DayWindow struct {
	Weekday  time.Weekday
	StartMin int
	EndMin   int
	Active   bool
}

// WeeklySchedule maps weekday to the worker's recurring window. A missing
// entry means the worker does not work that day.
type WeeklySchedule map[time.Weekday]DayWindow

func (ws WeeklySchedule) WindowFor(date time.Time) (DayWindow, bool) {
	w, ok := ws[date.Weekday()]
	if !ok || !w.Active {
		return DayWindow{}, false
	}
	return w, true
}

// BookedSlot is an existing confirmed or in-progress booking projected onto
// a single day.
type BookedSlot struct {
	StartMin    int
	DurationMin int
}

// Slot is a candidate (date, start, duration) window. Never persisted;
// always derived from the weekly schedule minus existing bookings.
type Slot struct {
	Date        time.Time // midnight in the service timezone
	StartMin    int
	DurationMin int
}

func (s Slot) Start() time.Time {
	return s.Date.Add(time.Duration(s.StartMin) * time.Minute)
}

func (s Slot) End() time.Time {
	return s.Date.Add(time.Duration(s.StartMin+s.DurationMin) * time.Minute)
}

// overlaps reports whether [aStart, aStart+aDur) intersects [bStart, bStart+bDur),
// both in minutes from midnight of the same day.
func overlaps(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && bStart < aStart+aDur
}

// Policy carries the scheduling constants shared by the booking-time
// availability display and the assignment engine. Both must evaluate slots
// through the same Policy or they can disagree about what is bookable.
type Policy struct {
	Location       *time.Location
	GranularityMin int
	LeadTimeMin    int
	HorizonDays    int
}

// DayOf truncates t to midnight of its civil day in the policy timezone.
// All slot arithmetic goes through here so daylight-saving transitions
// cannot shift a date across midnight.
func (p Policy) DayOf(t time.Time) time.Time {
	local := t.In(p.Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, p.Location)
}

// IsSlotFree is the single conflict predicate: the requested window must sit
// inside the day's schedule window, must not intersect any existing booking,
// and a same-day slot must start at least LeadTimeMin after now.
func (p Policy) IsSlotFree(ws WeeklySchedule, booked []BookedSlot, slot Slot, now time.Time) bool {
	window, ok := ws.WindowFor(slot.Date)
	if !ok {
		return false
	}
	if slot.DurationMin <= 0 {
		return false
	}
	if slot.StartMin < window.StartMin || slot.StartMin+slot.DurationMin > window.EndMin {
		return false
	}

	for _, b := range booked {
		if overlaps(slot.StartMin, slot.DurationMin, b.StartMin, b.DurationMin) {
			return false
		}
	}

	if p.DayOf(now).Equal(slot.Date) {
		earliest := now.In(p.Location).Add(time.Duration(p.LeadTimeMin) * time.Minute)
		if slot.Start().Before(earliest) {
			return false
		}
	} else if slot.Date.Before(p.DayOf(now)) {
		return false
	}

	return true
}

// FreeSlots generates candidate slots at the policy granularity within the
// worker's window for the date and keeps those passing IsSlotFree. Pure
// function of its inputs; restartable.
func (p Policy) FreeSlots(ws WeeklySchedule, booked []BookedSlot, date time.Time, durationMin int, now time.Time) []Slot {
	window, ok := ws.WindowFor(date)
	if !ok {
		return nil
	}
	if p.GranularityMin <= 0 || window.StartMin >= window.EndMin {
		return nil
	}

	day := p.DayOf(date)
	var free []Slot
	for start := window.StartMin; start+durationMin <= window.EndMin; start += p.GranularityMin {
		candidate := Slot{Date: day, StartMin: start, DurationMin: durationMin}
		if p.IsSlotFree(ws, booked, candidate, now) {
			free = append(free, candidate)
		}
	}
	return free
}
