package domain

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrInvalidTargetHours   = errors.New("target hours must be positive")
	ErrInvalidWeekday       = errors.New("invalid weekday (must be 0-6)")
	ErrLunchBreakOutOfRange = errors.New("lunch break hours must be between 0 and 8")
	ErrInvalidTimeFormat    = errors.New("invalid time format (use HH:MM)")
	ErrStartDateInFuture    = errors.New("start date cannot be in the future")
)

var timeOfDayRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

const (
	DefaultTargetHours      = 500.0
	DefaultLunchBreakHours  = 1.0
	DefaultWorkdayStartTime = "08:00"
	DefaultWorkdayEndTime   = "17:00"
)

type WeekendPolicy struct {
	Saturday bool `json:"saturday"`
	Sunday   bool `json:"sunday"`
}

type LunchBreak struct {
	Enabled bool    `json:"enabled"`
	Hours   float64 `json:"hours"`
}

// CalendarConfig is the per-user working-calendar policy. It is a plain
// immutable value: settings updates build a patched copy via ApplyPatch,
// they never mutate nested fields in place.
type CalendarConfig struct {
	TargetHours      float64       `json:"target_hours"`
	StartDate        *time.Time    `json:"start_date,omitempty"`
	ExcludeWeekends  WeekendPolicy `json:"exclude_weekends"`
	ExcludedWeekdays []int         `json:"excluded_weekdays"`
	Holidays         []time.Time   `json:"holidays"`
	LunchBreak       LunchBreak    `json:"lunch_break"`
	DefaultStartTime string        `json:"default_start_time"`
	DefaultEndTime   string        `json:"default_end_time"`
}

func DefaultCalendarConfig() CalendarConfig {
	return CalendarConfig{
		TargetHours: DefaultTargetHours,
		LunchBreak: LunchBreak{
			Enabled: false,
			Hours:   DefaultLunchBreakHours,
		},
		DefaultStartTime: DefaultWorkdayStartTime,
		DefaultEndTime:   DefaultWorkdayEndTime,
	}
}

func (c CalendarConfig) Validate() error {
	if c.TargetHours <= 0 {
		return ErrInvalidTargetHours
	}

	for _, day := range c.ExcludedWeekdays {
		if day < 0 || day > 6 {
			return ErrInvalidWeekday
		}
	}

	if c.LunchBreak.Hours < 0 || c.LunchBreak.Hours > 8 {
		return ErrLunchBreakOutOfRange
	}

	if c.DefaultStartTime != "" && !timeOfDayRegex.MatchString(c.DefaultStartTime) {
		return ErrInvalidTimeFormat
	}
	if c.DefaultEndTime != "" && !timeOfDayRegex.MatchString(c.DefaultEndTime) {
		return ErrInvalidTimeFormat
	}

	return nil
}

// ConfigPatch carries a partial settings update. Nil fields mean
// "leave unchanged"; slices replace the whole list when non-nil.
type ConfigPatch struct {
	TargetHours      *float64
	StartDate        *time.Time
	ExcludeSaturday  *bool
	ExcludeSunday    *bool
	ExcludedWeekdays []int
	Holidays         []time.Time
	LunchEnabled     *bool
	LunchHours       *float64
	DefaultStartTime *string
	DefaultEndTime   *string
}

// ApplyPatch merges a patch into the config and returns the new value.
// The receiver is never modified. Out-of-range values are rejected, not
// clamped.
func (c CalendarConfig) ApplyPatch(patch ConfigPatch, today time.Time) (CalendarConfig, error) {
	merged := c

	if patch.TargetHours != nil {
		merged.TargetHours = *patch.TargetHours
	}
	if patch.StartDate != nil {
		start := Midnight(*patch.StartDate)
		if start.After(Midnight(today)) {
			return CalendarConfig{}, ErrStartDateInFuture
		}
		merged.StartDate = &start
	}
	if patch.ExcludeSaturday != nil {
		merged.ExcludeWeekends.Saturday = *patch.ExcludeSaturday
	}
	if patch.ExcludeSunday != nil {
		merged.ExcludeWeekends.Sunday = *patch.ExcludeSunday
	}
	if patch.ExcludedWeekdays != nil {
		merged.ExcludedWeekdays = append([]int(nil), patch.ExcludedWeekdays...)
	}
	if patch.Holidays != nil {
		holidays := make([]time.Time, 0, len(patch.Holidays))
		for _, h := range patch.Holidays {
			holidays = append(holidays, Midnight(h))
		}
		merged.Holidays = holidays
	}
	if patch.LunchEnabled != nil {
		merged.LunchBreak.Enabled = *patch.LunchEnabled
	}
	if patch.LunchHours != nil {
		merged.LunchBreak.Hours = *patch.LunchHours
	}
	if patch.DefaultStartTime != nil {
		merged.DefaultStartTime = *patch.DefaultStartTime
	}
	if patch.DefaultEndTime != nil {
		merged.DefaultEndTime = *patch.DefaultEndTime
	}

	if err := merged.Validate(); err != nil {
		return CalendarConfig{}, err
	}

	return merged, nil
}
