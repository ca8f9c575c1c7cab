package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEntryNotFound = errors.New("attendance entry not found")

	// ErrDuplicateEntry signals a second create for an already-logged day.
	// Callers should surface it as a conflict and point at the update path.
	ErrDuplicateEntry = errors.New("attendance entry already exists for this date")
)

type AttendanceRepository interface {
	// Create persists a new record. Implementations must enforce the
	// at-most-one-record-per-(user, date) invariant and return
	// ErrDuplicateEntry when it is violated.
	Create(ctx context.Context, record *AttendanceRecord) error

	// Update modifies an existing record.
	Update(ctx context.Context, record *AttendanceRecord) error

	// Delete removes a record. It requires userID so a user can only
	// delete their own entries.
	Delete(ctx context.Context, id string, userID string) error

	// GetByID retrieves a single record by its ID.
	GetByID(ctx context.Context, id string) (*AttendanceRecord, error)

	// GetByUserAndDate retrieves the record logged for a calendar day,
	// or ErrEntryNotFound when the day is empty.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*AttendanceRecord, error)

	// ListByUserID retrieves every record for a user, newest first.
	ListByUserID(ctx context.Context, userID string) ([]*AttendanceRecord, error)

	// ListByUserIDAndDateRange retrieves records whose date falls in
	// [from, to], both truncated to midnight.
	ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]*AttendanceRecord, error)
}
