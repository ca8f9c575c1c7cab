package services

import (
	"context"
	"errors"
	"time"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/workers"
)

type AttendanceService struct {
	repo   domain.AttendanceRepository
	worker *workers.SnapshotWorker
}

func NewAttendanceService(repo domain.AttendanceRepository, worker *workers.SnapshotWorker) *AttendanceService {
	return &AttendanceService{
		repo:   repo,
		worker: worker,
	}
}

type LogHoursInput struct {
	UserID      string
	Date        time.Time
	HoursLogged float64
	StartTime   *string
	EndTime     *string
	Notes       string
}

type UpdateEntryInput struct {
	ID          string
	UserID      string
	HoursLogged *float64
	StartTime   *string
	EndTime     *string
	Notes       *string
}

// Log creates the attendance record for a calendar day. A day that already
// has a record is a conflict: the update path must be used instead, so the
// one-record-per-day invariant holds no matter how aggregation consumes the
// data later.
func (s *AttendanceService) Log(ctx context.Context, input LogHoursInput) (*domain.AttendanceRecord, error) {
	record := domain.NewAttendanceRecord(input.UserID, input.Date, input.HoursLogged)
	record.StartTime = input.StartTime
	record.EndTime = input.EndTime
	record.Notes = input.Notes

	if err := record.Validate(); err != nil {
		return nil, err
	}

	today := domain.Midnight(time.Now())
	if record.Date.After(today) {
		return nil, domain.ErrFutureDate
	}

	existing, err := s.repo.GetByUserAndDate(ctx, input.UserID, record.Date)
	if err != nil && !errors.Is(err, domain.ErrEntryNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEntry
	}

	// The repository still guards with its unique index; the lookup above
	// just gives the common case a clean error before hitting the DB write.
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.worker.Enqueue(record.UserID)

	return record, nil
}

func (s *AttendanceService) Update(ctx context.Context, input UpdateEntryInput) (*domain.AttendanceRecord, error) {
	existing, err := s.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	// Merge into a copy: the fetched record may alias repository state, and
	// a rejected patch must leave the stored values untouched.
	updated := *existing

	if input.HoursLogged != nil {
		updated.HoursLogged = *input.HoursLogged
	}
	if input.StartTime != nil {
		updated.StartTime = input.StartTime
	}
	if input.EndTime != nil {
		updated.EndTime = input.EndTime
	}
	if input.Notes != nil {
		updated.Notes = *input.Notes
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	updated.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.worker.Enqueue(updated.UserID)

	return &updated, nil
}

func (s *AttendanceService) GetByID(ctx context.Context, id string, userID string) (*domain.AttendanceRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return record, nil
}

// List returns a user's records, optionally restricted to [from, to]. Zero
// times mean an unbounded side.
func (s *AttendanceService) List(ctx context.Context, userID string, from, to time.Time) ([]*domain.AttendanceRecord, error) {
	if from.IsZero() && to.IsZero() {
		return s.repo.ListByUserID(ctx, userID)
	}

	if from.IsZero() {
		from = time.Date(1970, 1, 1, 0, 0, 0, 0, to.Location())
	}
	if to.IsZero() {
		to = domain.Midnight(time.Now()).AddDate(10, 0, 0)
	}

	return s.repo.ListByUserIDAndDateRange(ctx, userID, from, to)
}

func (s *AttendanceService) Delete(ctx context.Context, id string, userID string) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if record.UserID != userID {
		return domain.ErrUnauthorized
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.worker.Enqueue(userID)

	return nil
}
