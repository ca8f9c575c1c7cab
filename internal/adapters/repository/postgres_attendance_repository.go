package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
)

type PostgresAttendanceRepository struct {
	db *sqlx.DB
}

func NewPostgresAttendanceRepository(db *sqlx.DB) *PostgresAttendanceRepository {
	return &PostgresAttendanceRepository{db: db}
}

func (r *PostgresAttendanceRepository) Create(ctx context.Context, record *domain.AttendanceRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_entries (
			id, user_id, entry_date,
			hours_logged, start_time, end_time, notes,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :entry_date,
			:hours_logged, :start_time, :end_time, :notes,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" {
				return errors.New("referenced user does not exist")
			}
			// Unique (user_id, entry_date) index: the day is already logged.
			if pqErr.Code == "23505" {
				return domain.ErrDuplicateEntry
			}
		}
		return err
	}
	return nil
}

func (r *PostgresAttendanceRepository) Update(ctx context.Context, record *domain.AttendanceRecord) error {
	query := `
		UPDATE attendance_entries
		SET hours_logged = :hours_logged,
		    start_time = :start_time,
		    end_time = :end_time,
		    notes = :notes,
		    updated_at = :updated_at
		WHERE id = :id
		  AND user_id = :user_id`

	result, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func (r *PostgresAttendanceRepository) Delete(ctx context.Context, id string, userID string) error {
	query := `
		DELETE FROM attendance_entries
		WHERE id = $1
		  AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func (r *PostgresAttendanceRepository) GetByID(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	var record domain.AttendanceRecord
	query := `SELECT * FROM attendance_entries WHERE id = $1`

	err := r.db.GetContext(ctx, &record, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresAttendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.AttendanceRecord, error) {
	var record domain.AttendanceRecord
	query := `
		SELECT * FROM attendance_entries
		WHERE user_id = $1
		  AND entry_date = $2`

	err := r.db.GetContext(ctx, &record, query, userID, domain.Midnight(date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresAttendanceRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error) {
	records := []*domain.AttendanceRecord{}

	query := `
		SELECT * FROM attendance_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC`

	err := r.db.SelectContext(ctx, &records, query, userID)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresAttendanceRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.AttendanceRecord, error) {
	records := []*domain.AttendanceRecord{}

	query := `
		SELECT * FROM attendance_entries
		WHERE user_id = $1
		  AND entry_date >= $2
		  AND entry_date <= $3
		ORDER BY entry_date DESC`

	err := r.db.SelectContext(ctx, &records, query, userID, domain.Midnight(from), domain.Midnight(to))
	if err != nil {
		return nil, err
	}
	return records, nil
}
