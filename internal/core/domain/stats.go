package domain

import (
	"math"
	"sort"
	"time"
)

type WeekWindow struct {
	Hours   float64 `json:"hours"`
	Days    int     `json:"days"`
	Average float64 `json:"average"`
}

type MonthWindow struct {
	Hours float64 `json:"hours"`
	Days  int     `json:"days"`
}

type PreviousMonth struct {
	Hours float64 `json:"hours"`
	// Delta is thisMonth - previousMonth, sign preserved.
	Delta float64 `json:"delta"`
}

// ProgressSnapshot is the full computed progress picture for one user at one
// point in time. It is recomputed from records + config on every request and
// never persisted.
type ProgressSnapshot struct {
	TotalHours           float64       `json:"total_hours"`
	TargetHours          float64       `json:"target_hours"`
	HoursRemaining       float64       `json:"hours_remaining"`
	ProgressPercentage   float64       `json:"progress_percentage"`
	AverageHoursPerDay   float64       `json:"average_hours_per_day"`
	CompletionDate       string        `json:"completion_date"`
	ProjectionMet        bool          `json:"projection_met"`
	WorkingDaysRemaining int           `json:"working_days_remaining"`
	ThisWeek             WeekWindow    `json:"this_week"`
	ThisMonth            MonthWindow   `json:"this_month"`
	PreviousMonth        PreviousMonth `json:"previous_month"`
	TotalEntries         int           `json:"total_entries"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func inWindow(day, start, end time.Time) bool {
	return !day.Before(start) && !day.After(end)
}

func sumHoursInWindow(records []*AttendanceRecord, start, end time.Time) (float64, int) {
	var hours float64
	days := 0
	for _, r := range records {
		if inWindow(Midnight(r.Date), start, end) {
			hours += r.HoursLogged
			days++
		}
	}
	return hours, days
}

// ComputeStats aggregates a user's records into a snapshot anchored at today.
// Every window is derived from the same today value so a single snapshot is
// internally consistent.
//
// The average pace is per logged day, not per elapsed working day. A sparse
// logger's gap days therefore do not drag the pace down; changing this
// definition would shift every projected date.
func ComputeStats(records []*AttendanceRecord, config CalendarConfig, today time.Time) *ProgressSnapshot {
	today = Midnight(today)

	var totalHours float64
	for _, r := range records {
		totalHours += r.HoursLogged
	}

	targetHours := config.TargetHours
	hoursRemaining := math.Max(0, targetHours-totalHours)

	progress := 0.0
	if targetHours > 0 {
		progress = totalHours / targetHours * 100
		if progress > 100 {
			progress = 100
		}
	}

	averageHoursPerDay := 0.0
	if len(records) > 0 {
		averageHoursPerDay = totalHours / float64(len(records))
	}

	projection := ProjectCompletion(hoursRemaining, averageHoursPerDay, today, config)
	workingDaysRemaining := CountWorkingDays(today, projection.Date, config)

	// Monday-start week containing today.
	weekOffset := (int(today.Weekday()) + 6) % 7
	weekStart := today.AddDate(0, 0, -weekOffset)
	weekEnd := weekStart.AddDate(0, 0, 6)
	weekHours, weekDays := sumHoursInWindow(records, weekStart, weekEnd)

	weekAverage := 0.0
	if weekDays > 0 {
		weekAverage = weekHours / float64(weekDays)
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	monthHours, monthDays := sumHoursInWindow(records, monthStart, monthEnd)

	prevMonthStart := monthStart.AddDate(0, -1, 0)
	prevMonthEnd := monthStart.AddDate(0, 0, -1)
	prevMonthHours, _ := sumHoursInWindow(records, prevMonthStart, prevMonthEnd)

	return &ProgressSnapshot{
		TotalHours:           totalHours,
		TargetHours:          targetHours,
		HoursRemaining:       hoursRemaining,
		ProgressPercentage:   round2(progress),
		AverageHoursPerDay:   round2(averageHoursPerDay),
		CompletionDate:       FormatCalendarDate(projection.Date),
		ProjectionMet:        projection.Met,
		WorkingDaysRemaining: workingDaysRemaining,
		ThisWeek: WeekWindow{
			Hours:   weekHours,
			Days:    weekDays,
			Average: round2(weekAverage),
		},
		ThisMonth: MonthWindow{
			Hours: monthHours,
			Days:  monthDays,
		},
		PreviousMonth: PreviousMonth{
			Hours: prevMonthHours,
			Delta: monthHours - prevMonthHours,
		},
		TotalEntries: len(records),
	}
}

type CalendarCell struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// BuildCalendarGrid returns one cell per record falling in the given month,
// sorted by date, for calendar visualizations.
func BuildCalendarGrid(records []*AttendanceRecord, year int, month time.Month) []CalendarCell {
	cells := make([]CalendarCell, 0)
	for _, r := range records {
		if r.Date.Year() == year && r.Date.Month() == month {
			cells = append(cells, CalendarCell{
				Date:  FormatCalendarDate(r.Date),
				Hours: r.HoursLogged,
			})
		}
	}

	sort.Slice(cells, func(i, j int) bool {
		return cells[i].Date < cells[j].Date
	})

	return cells
}
