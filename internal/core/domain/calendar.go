package domain

import (
	"math"
	"time"
)

const (
	// FallbackHoursPerDay is assumed when a user has no logged history yet,
	// so projections never divide by zero.
	FallbackHoursPerDay = 8.0

	// ProjectionHorizonDays caps the forward walk. A policy that excludes
	// every day would otherwise never terminate.
	ProjectionHorizonDays = 730
)

// holidaySet indexes holidays by day key so classification is O(1) per day
// instead of scanning the list.
func (c CalendarConfig) holidaySet() map[string]struct{} {
	if len(c.Holidays) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(c.Holidays))
	for _, h := range c.Holidays {
		set[Midnight(h).Format(dayKeyLayout)] = struct{}{}
	}
	return set
}

func (c CalendarConfig) isWorkingDay(day time.Time, holidays map[string]struct{}) bool {
	dayOfWeek := int(day.Weekday()) // 0=Sunday .. 6=Saturday

	if c.ExcludeWeekends.Saturday && dayOfWeek == 6 {
		return false
	}
	if c.ExcludeWeekends.Sunday && dayOfWeek == 0 {
		return false
	}

	for _, excluded := range c.ExcludedWeekdays {
		if dayOfWeek == excluded {
			return false
		}
	}

	if _, isHoliday := holidays[day.Format(dayKeyLayout)]; isHoliday {
		return false
	}

	return true
}

// IsWorkingDay reports whether a date counts as a working day under this
// calendar policy. Time-of-day is ignored.
func (c CalendarConfig) IsWorkingDay(date time.Time) bool {
	return c.isWorkingDay(Midnight(date), c.holidaySet())
}

// CountWorkingDays counts working days between start and end, both inclusive
// and truncated to midnight. Returns 0 when start is after end.
//
// A closed form exists for plain weekend exclusion, but not once arbitrary
// weekday sets and discrete holidays combine, so this walks day by day.
// Ranges are bounded by realistic internship horizons.
func CountWorkingDays(start, end time.Time, config CalendarConfig) int {
	current := Midnight(start)
	last := Midnight(end)
	if current.After(last) {
		return 0
	}

	holidays := config.holidaySet()

	count := 0
	for !current.After(last) {
		if config.isWorkingDay(current, holidays) {
			count++
		}
		current = current.AddDate(0, 0, 1)
	}

	return count
}

// Projection is the outcome of a completion walk. Met distinguishes a real
// completion date from the horizon cap being hit first; callers must treat
// an unmet projection as "no reliable projection".
type Projection struct {
	Date               time.Time `json:"date"`
	Met                bool      `json:"met"`
	WorkingDaysNeeded  int       `json:"working_days_needed"`
	WorkingDaysCounted int       `json:"working_days_counted"`
}

// ProjectCompletion walks forward from anchor counting working days until
// the remaining hours are covered at the given pace. With remaining <= 0
// the goal is already met and the anchor itself is returned. A non-positive
// pace falls back to FallbackHoursPerDay.
func ProjectCompletion(remainingHours, averageHoursPerDay float64, anchor time.Time, config CalendarConfig) Projection {
	current := Midnight(anchor)

	if remainingHours <= 0 {
		return Projection{Date: current, Met: true}
	}

	pace := averageHoursPerDay
	if pace <= 0 {
		pace = FallbackHoursPerDay
	}

	needed := int(math.Ceil(remainingHours / pace))
	holidays := config.holidaySet()

	counted := 0
	daysPassed := 0
	for counted < needed && daysPassed < ProjectionHorizonDays {
		if config.isWorkingDay(current, holidays) {
			counted++
		}

		// The day that satisfies the last needed unit is the answer, so
		// only advance while demand is still open.
		if counted < needed {
			current = current.AddDate(0, 0, 1)
			daysPassed++
		}
	}

	return Projection{
		Date:               current,
		Met:                counted >= needed,
		WorkingDaysNeeded:  needed,
		WorkingDaysCounted: counted,
	}
}
