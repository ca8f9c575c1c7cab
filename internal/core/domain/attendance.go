package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHoursOutOfRange = errors.New("hours logged must be between 0 and 24")
	ErrNotesTooLong    = errors.New("notes cannot exceed 500 characters")
	ErrDateRequired    = errors.New("date is required")
	ErrFutureDate      = errors.New("cannot log hours for a future date")
	ErrUnauthorized    = errors.New("unauthorized access to resource")
)

const MaxNotesLen = 500

// AttendanceRecord is one logged day of internship hours. Together with the
// user it is keyed by calendar day: at most one record may exist per
// (user, date) pair, which downstream aggregation relies on.
type AttendanceRecord struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Date        time.Time `json:"date" db:"entry_date"`
	HoursLogged float64   `json:"hours_logged" db:"hours_logged"`
	StartTime   *string   `json:"start_time,omitempty" db:"start_time"`
	EndTime     *string   `json:"end_time,omitempty" db:"end_time"`
	Notes       string    `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func NewAttendanceRecord(userID string, date time.Time, hoursLogged float64) *AttendanceRecord {
	now := time.Now().UTC()

	return &AttendanceRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        Midnight(date),
		HoursLogged: hoursLogged,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *AttendanceRecord) Validate() error {
	if r.UserID == "" {
		return ErrUnauthorized
	}
	if r.Date.IsZero() {
		return ErrDateRequired
	}
	if r.HoursLogged < 0 || r.HoursLogged > 24 {
		return ErrHoursOutOfRange
	}
	if r.StartTime != nil && !timeOfDayRegex.MatchString(*r.StartTime) {
		return ErrInvalidTimeFormat
	}
	if r.EndTime != nil && !timeOfDayRegex.MatchString(*r.EndTime) {
		return ErrInvalidTimeFormat
	}
	if len(r.Notes) > MaxNotesLen {
		return ErrNotesTooLong
	}
	return nil
}
